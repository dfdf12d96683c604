package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/bookmart/admin-service/admin/internal/model"
)

// booksBase applies the shared joins and search predicate. The list and
// count queries are both derived from it so they never disagree on the
// filter.
func booksBase(search string, cols ...string) sq.SelectBuilder {
	q := qb.Select(cols...).
		From(booksTableName + " b").
		LeftJoin(authorsTableName + " a on a.author_id = b.author_id").
		LeftJoin(publishersTableName + " p on p.publisher_id = b.publisher_id").
		LeftJoin(categoriesTableName + " c on c.category_id = b.category_id")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.isbn": pattern},
			sq.ILike{"a.author_name": pattern},
		})
	}
	return q
}

func (r *repository) ListBooks(ctx context.Context, search string, p model.PageParams) ([]model.Book, int, error) {
	p = p.Normalize()

	total, err := r.count(ctx, booksBase(search, "count(*)"))
	if err != nil {
		return nil, 0, err
	}

	query, args, err := booksBase(search,
		"b.isbn",
		"b.title",
		"b.price",
		"b.stock_quantity as stock",
		"b.pages",
		"coalesce(b.description, '') as description",
		"coalesce(b.image_url, '') as image",
		"b.publication_date",
		"coalesce(a.author_name, '') as author",
		"coalesce(p.publisher_name, '') as publisher",
		"coalesce(c.category_name, '') as category_name",
	).
		OrderBy("b.title").
		Limit(uint64(p.PerPage)).
		Offset(uint64(p.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	books := make([]model.Book, 0, p.PerPage)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		r.log.Error("ListBooks", zap.String("q", query), zap.Any("args", args))
		return nil, 0, err
	}
	return books, total, nil
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) error {
	authorID, err := r.ensureAuthor(ctx, req.AuthorName)
	if err != nil {
		return err
	}
	publisherID, err := r.ensurePublisher(ctx, req.PublisherName)
	if err != nil {
		return err
	}
	categoryID, err := r.ensureCategory(ctx, req.CategoryName)
	if err != nil {
		return err
	}

	query, args, err := qb.Insert(booksTableName).
		Columns("isbn", "title", "author_id", "publisher_id", "category_id",
			"price", "stock_quantity", "pages", "description", "image_url", "publication_date").
		Values(req.ISBN, req.Title, authorID, publisherID, categoryID,
			req.Price, req.Stock, req.Pages, req.Description, req.Image, nullableDate(req.PublicationDate)).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.String("isbn", req.ISBN))
		return wrapErr(err)
	}
	return nil
}

func (r *repository) UpdateBook(ctx context.Context, isbn string, req model.BookFields) error {
	authorID, err := r.ensureAuthor(ctx, req.AuthorName)
	if err != nil {
		return err
	}
	publisherID, err := r.ensurePublisher(ctx, req.PublisherName)
	if err != nil {
		return err
	}
	categoryID, err := r.ensureCategory(ctx, req.CategoryName)
	if err != nil {
		return err
	}

	query, args, err := qb.Update(booksTableName).
		Set("title", req.Title).
		Set("author_id", authorID).
		Set("publisher_id", publisherID).
		Set("category_id", categoryID).
		Set("price", req.Price).
		Set("stock_quantity", req.Stock).
		Set("pages", req.Pages).
		Set("description", req.Description).
		Set("image_url", req.Image).
		Set("publication_date", nullableDate(req.PublicationDate)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"isbn": isbn}).
		ToSql()
	if err != nil {
		return err
	}
	// updating a missing ISBN is a no-op success
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *repository) DeleteBook(ctx context.Context, isbn string) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"isbn": isbn}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}

// ensureAuthor upserts the display name and returns its surrogate id.
func (r *repository) ensureAuthor(ctx context.Context, name string) (int, error) {
	const q = `
insert into authors (author_name) values ($1)
on conflict (author_name) do update set author_name = excluded.author_name
returning author_id`
	var id int
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) ensurePublisher(ctx context.Context, name string) (int, error) {
	const q = `
insert into publishers (publisher_name) values ($1)
on conflict (publisher_name) do update set publisher_name = excluded.publisher_name
returning publisher_id`
	var id int
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) ensureCategory(ctx context.Context, name string) (int, error) {
	const q = `
insert into categories (category_name) values ($1)
on conflict (category_name) do update set category_name = excluded.category_name
returning category_id`
	var id int
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func nullableDate(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
