package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookmart/admin-service/admin/internal/errs"
	"github.com/bookmart/admin-service/admin/internal/model"
)

func ordersBase(status string) sq.SelectBuilder {
	q := qb.Select(
		"o.order_id as id",
		"o.order_number",
		"o.total_amount",
		"o.payment_status as status",
		"o.created_at",
		"count(oi.order_item_id) as items_count",
	).
		From(ordersTableName + " o").
		LeftJoin(orderItemsTableName + " oi on oi.order_id = o.order_id").
		GroupBy("o.order_id").
		OrderBy("o.created_at desc")
	if status != "" {
		q = q.Where(sq.Eq{"o.payment_status": status})
	}
	return q
}

func (r *repository) ListOrders(ctx context.Context, status string, p model.PageParams) ([]model.OrderSummary, int, error) {
	p = p.Normalize()

	// count over orders only: the items join never changes the order count
	countQ := qb.Select("count(*)").From(ordersTableName + " o")
	if status != "" {
		countQ = countQ.Where(sq.Eq{"o.payment_status": status})
	}
	total, err := r.count(ctx, countQ)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := ordersBase(status).
		Limit(uint64(p.PerPage)).
		Offset(uint64(p.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	orders := make([]model.OrderSummary, 0, p.PerPage)
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		r.log.Error("ListOrders", zap.String("q", query), zap.Any("args", args))
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *repository) GetOrder(ctx context.Context, id int) (model.OrderRow, []model.OrderItem, error) {
	query, args, err := qb.Select(
		"o.order_id as id",
		"o.order_number",
		"o.total_amount",
		"o.payment_status",
		"u.first_name",
		"u.last_name",
		"u.email",
		"u.phone",
		"o.shipping_address",
		"o.shipping_city",
		"o.shipping_postal_code",
	).
		From(ordersTableName + " o").
		LeftJoin(usersTableName + " u on u.user_id = o.user_id").
		Where(sq.Eq{"o.order_id": id}).
		ToSql()
	if err != nil {
		return model.OrderRow{}, nil, err
	}

	var row model.OrderRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.OrderRow{}, nil, errs.ErrNotFound
		}
		return model.OrderRow{}, nil, err
	}

	itemsQ, itemsArgs, err := qb.Select(
		"oi.order_item_id as id",
		"oi.quantity",
		"oi.price_per_item",
		"oi.quantity * oi.price_per_item as total_price",
		"b.title",
		"coalesce(b.image_url, '') as image",
		"coalesce(a.author_name, '') as author",
	).
		From(orderItemsTableName + " oi").
		Join(booksTableName + " b on b.isbn = oi.isbn").
		LeftJoin(authorsTableName + " a on a.author_id = b.author_id").
		Where(sq.Eq{"oi.order_id": id}).
		ToSql()
	if err != nil {
		return model.OrderRow{}, nil, err
	}

	items := make([]model.OrderItem, 0)
	if err := r.db.SelectContext(ctx, &items, itemsQ, itemsArgs...); err != nil {
		return model.OrderRow{}, nil, err
	}
	return row, items, nil
}

func (r *repository) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	query, args, err := qb.Update(ordersTableName).
		Set("payment_status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *repository) DeleteOrder(ctx context.Context, id int) error {
	query, args, err := qb.Delete(ordersTableName).
		Where(sq.Eq{"order_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}
