package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/bookmart/admin-service/admin/internal/model"
)

func (r *repository) ListCategories(ctx context.Context) ([]model.Category, error) {
	query, args, err := qb.Select(
		"category_id as id",
		"category_name as name",
		"coalesce(description, '') as description",
	).
		From(categoriesTableName).
		OrderBy("category_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0)
	if err := r.db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) CreateCategory(ctx context.Context, req model.CategoryRequest) error {
	query, args, err := qb.Insert(categoriesTableName).
		Columns("category_name", "description").
		Values(req.Name, req.Description).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *repository) UpdateCategory(ctx context.Context, name, description string) error {
	query, args, err := qb.Update(categoriesTableName).
		Set("description", description).
		Where(sq.Eq{"category_name": name}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *repository) DeleteCategory(ctx context.Context, name string) error {
	query, args, err := qb.Delete(categoriesTableName).
		Where(sq.Eq{"category_name": name}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}
