package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/bookmart/admin-service/admin/internal/model"
)

const userTypeCustomer = "customer"

func (r *repository) ListUsers(ctx context.Context, p model.PageParams) ([]model.User, int, error) {
	p = p.Normalize()

	total, err := r.count(ctx, qb.Select("count(*)").
		From(usersTableName).
		Where(sq.Eq{"user_type": userTypeCustomer}))
	if err != nil {
		return nil, 0, err
	}

	query, args, err := qb.Select(
		"user_id as id",
		"first_name",
		"last_name",
		"email",
		"coalesce(phone, '') as phone",
		"coalesce(address, '') as address",
		"coalesce(city, '') as city",
		"coalesce(postal_code, '') as postal_code",
		"user_type",
		"created_at as joined_date",
	).
		From(usersTableName).
		Where(sq.Eq{"user_type": userTypeCustomer}).
		OrderBy("created_at desc").
		Limit(uint64(p.PerPage)).
		Offset(uint64(p.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	users := make([]model.User, 0, p.PerPage)
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		r.log.Error("ListUsers", zap.String("q", query), zap.Any("args", args))
		return nil, 0, err
	}
	return users, total, nil
}

func (r *repository) UpdateUser(ctx context.Context, id int, firstName, lastName string, req model.UpdateUserRequest) error {
	query, args, err := qb.Update(usersTableName).
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("email", req.Email).
		Set("phone", req.Phone).
		Set("address", req.Address).
		Set("city", req.City).
		Set("user_type", req.UserType).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *repository) DeleteUser(ctx context.Context, id int) error {
	query, args, err := qb.Delete(usersTableName).
		Where(sq.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}
