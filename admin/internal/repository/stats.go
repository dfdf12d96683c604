package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/bookmart/admin-service/admin/internal/model"
)

func (r *repository) GetStats(ctx context.Context) (model.Stats, error) {
	const q = `
select
    (select count(*) from users where user_type = 'customer')                               as total_users,
    (select count(*) from books)                                                            as total_books,
    (select count(*) from orders)                                                           as total_orders,
    (select coalesce(sum(total_amount), 0) from orders where payment_status = 'completed')  as total_revenue,
    (select count(*) from orders where payment_status = 'pending')                          as pending_orders,
    (select count(*) from orders where payment_status = 'completed')                        as completed_orders`

	var stats model.Stats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		r.log.Error("GetStats", zap.Error(err))
		return model.Stats{}, err
	}
	return stats, nil
}

func (r *repository) RecentOrders(ctx context.Context) ([]model.OrderSummary, error) {
	query, args, err := ordersBase("").Limit(10).ToSql()
	if err != nil {
		return nil, err
	}
	orders := make([]model.OrderSummary, 0, 10)
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) LowStockBooks(ctx context.Context) ([]model.LowStockBook, error) {
	const lowStockThreshold = 10

	query, args, err := qb.Select(
		"b.isbn as id",
		"b.title",
		"b.stock_quantity as stock",
		"coalesce(b.image_url, '') as image",
		"coalesce(a.author_name, '') as author",
	).
		From(booksTableName + " b").
		LeftJoin(authorsTableName + " a on a.author_id = b.author_id").
		Where(sq.Lt{"b.stock_quantity": lowStockThreshold}).
		OrderBy("b.stock_quantity asc").
		Limit(10).
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.LowStockBook, 0, 10)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}
