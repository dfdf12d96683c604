package handler

import (
	"context"

	"github.com/bookmart/admin-service/admin/internal/diag"
	"github.com/bookmart/admin-service/admin/internal/model"
	"github.com/bookmart/admin-service/admin/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AdminService interface {
	ListBooks(ctx context.Context, search string, p model.PageParams) ([]model.Book, model.Pagination, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) error
	UpdateBook(ctx context.Context, isbn string, req model.BookFields) error
	DeleteBook(ctx context.Context, isbn string) error

	ListUsers(ctx context.Context, p model.PageParams) ([]model.User, model.Pagination, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int) error

	ListOrders(ctx context.Context, status string, p model.PageParams) ([]model.OrderSummary, model.Pagination, error)
	GetOrder(ctx context.Context, id int) (model.OrderDetail, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) error
	DeleteOrder(ctx context.Context, id int) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) error
	UpdateCategory(ctx context.Context, name, description string) error
	DeleteCategory(ctx context.Context, name string) error

	GetStats(ctx context.Context) (model.Stats, []model.OrderSummary, []model.LowStockBook, error)
	Diagnostics(ctx context.Context) []diag.Result
}

var _ AdminService = (*service.Service)(nil)
