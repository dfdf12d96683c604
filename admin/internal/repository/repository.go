package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookmart/admin-service/admin/internal/errs"
	"github.com/bookmart/admin-service/admin/internal/model"
)

type Repository interface {
	ListBooks(ctx context.Context, search string, p model.PageParams) ([]model.Book, int, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) error
	UpdateBook(ctx context.Context, isbn string, req model.BookFields) error
	DeleteBook(ctx context.Context, isbn string) error

	ListUsers(ctx context.Context, p model.PageParams) ([]model.User, int, error)
	UpdateUser(ctx context.Context, id int, firstName, lastName string, req model.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int) error

	ListOrders(ctx context.Context, status string, p model.PageParams) ([]model.OrderSummary, int, error)
	GetOrder(ctx context.Context, id int) (model.OrderRow, []model.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) error
	DeleteOrder(ctx context.Context, id int) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) error
	UpdateCategory(ctx context.Context, name, description string) error
	DeleteCategory(ctx context.Context, name string) error

	GetStats(ctx context.Context) (model.Stats, error)
	RecentOrders(ctx context.Context) ([]model.OrderSummary, error)
	LowStockBooks(ctx context.Context) ([]model.LowStockBook, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName      = `books`
	authorsTableName    = `authors`
	publishersTableName = `publishers`
	categoriesTableName = `categories`
	usersTableName      = `users`
	ordersTableName     = `orders`
	orderItemsTableName = `order_items`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// wrapErr maps constraint violations onto the typed errors the handler
// translates into status codes.
func wrapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation:
			return errs.ErrConflict
		}
	}
	return err
}

func (r *repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}
