package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookmart/admin-service/admin/internal/diag"
	"github.com/bookmart/admin-service/admin/internal/model"
	adminRepo "github.com/bookmart/admin-service/admin/internal/repository"
)

const (
	// the storefront stores tax-inclusive totals at an assumed 8% rate
	taxRate      = 0.08
	shippingCost = 5.99
)

type Service struct {
	log       *zap.Logger
	repo      adminRepo.Repository
	prober    *diag.Prober
	enqueuer  Enqueuer
	avatarURL string
}

func NewService(repo adminRepo.Repository, prober *diag.Prober, enqueuer Enqueuer, avatarURL string, log *zap.Logger) *Service {
	return &Service{
		log:       log,
		repo:      repo,
		prober:    prober,
		enqueuer:  enqueuer,
		avatarURL: avatarURL,
	}
}

func (s *Service) ListBooks(ctx context.Context, search string, p model.PageParams) ([]model.Book, model.Pagination, error) {
	books, total, err := s.repo.ListBooks(ctx, search, p)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return books, model.NewPagination(p, total), nil
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) error {
	if err := s.repo.CreateBook(ctx, req); err != nil {
		return err
	}
	s.audit(ctx, actionCreate, "book", req.ISBN)
	return nil
}

func (s *Service) UpdateBook(ctx context.Context, isbn string, req model.BookFields) error {
	if err := s.repo.UpdateBook(ctx, isbn, req); err != nil {
		return err
	}
	s.audit(ctx, actionUpdate, "book", isbn)
	return nil
}

func (s *Service) DeleteBook(ctx context.Context, isbn string) error {
	if err := s.repo.DeleteBook(ctx, isbn); err != nil {
		return err
	}
	s.audit(ctx, actionDelete, "book", isbn)
	return nil
}

func (s *Service) ListUsers(ctx context.Context, p model.PageParams) ([]model.User, model.Pagination, error) {
	users, total, err := s.repo.ListUsers(ctx, p)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	for i := range users {
		users[i].Avatar = s.avatar(users[i].FirstName, users[i].LastName)
	}
	return users, model.NewPagination(p, total), nil
}

func (s *Service) UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) error {
	firstName, lastName := splitName(req.Name)
	if err := s.repo.UpdateUser(ctx, id, firstName, lastName, req); err != nil {
		return err
	}
	s.audit(ctx, actionUpdate, "user", strconv.Itoa(id))
	return nil
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, actionDelete, "user", strconv.Itoa(id))
	return nil
}

func (s *Service) ListOrders(ctx context.Context, status string, p model.PageParams) ([]model.OrderSummary, model.Pagination, error) {
	orders, total, err := s.repo.ListOrders(ctx, status, p)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return orders, model.NewPagination(p, total), nil
}

func (s *Service) GetOrder(ctx context.Context, id int) (model.OrderDetail, error) {
	row, items, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return model.OrderDetail{}, err
	}
	return shapeOrder(row, items), nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	if err := s.repo.UpdateOrderStatus(ctx, id, status); err != nil {
		return err
	}
	s.audit(ctx, actionUpdate, "order", strconv.Itoa(id))
	return nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, actionDelete, "order", strconv.Itoa(id))
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, req model.CategoryRequest) error {
	if err := s.repo.CreateCategory(ctx, req); err != nil {
		return err
	}
	s.audit(ctx, actionCreate, "category", req.Name)
	return nil
}

func (s *Service) UpdateCategory(ctx context.Context, name, description string) error {
	if err := s.repo.UpdateCategory(ctx, name, description); err != nil {
		return err
	}
	s.audit(ctx, actionUpdate, "category", name)
	return nil
}

func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	if err := s.repo.DeleteCategory(ctx, name); err != nil {
		return err
	}
	s.audit(ctx, actionDelete, "category", name)
	return nil
}

func (s *Service) GetStats(ctx context.Context) (model.Stats, []model.OrderSummary, []model.LowStockBook, error) {
	var (
		stats  model.Stats
		recent []model.OrderSummary
		low    []model.LowStockBook
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		stats, err = s.repo.GetStats(ctx)
		return err
	})
	gg.Go(func() (err error) {
		recent, err = s.repo.RecentOrders(ctx)
		return err
	})
	gg.Go(func() (err error) {
		low, err = s.repo.LowStockBooks(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Stats{}, nil, nil, err
	}
	return stats, recent, low, nil
}

func (s *Service) Diagnostics(ctx context.Context) []diag.Result {
	return s.prober.Run(ctx)
}

// shapeOrder assembles the nested order detail the admin UI renders.
func shapeOrder(row model.OrderRow, items []model.OrderItem) model.OrderDetail {
	return model.OrderDetail{
		ID:          row.ID,
		OrderNumber: row.OrderNumber,
		Items:       items,
		Totals: model.OrderTotals{
			Subtotal:     row.TotalAmount,
			TaxAmount:    TaxAmount(row.TotalAmount),
			ShippingCost: shippingCost,
			TotalAmount:  row.TotalAmount,
		},
		Customer: model.OrderCustomer{
			FullName: strings.TrimSpace(row.FirstName.String + " " + row.LastName.String),
			Phone:    row.Phone.String,
			Email:    row.Email.String,
		},
		Shipping: model.OrderShipping{
			FullAddress: strings.TrimSpace(row.ShippingAddress.String + ", " +
				row.ShippingCity.String + " " + row.ShippingPostalCode.String),
		},
		Payment: model.OrderPayment{
			Status: row.PaymentStatus,
		},
	}
}

// TaxAmount backs the inclusive tax out of a gross total.
func TaxAmount(totalAmount float64) float64 {
	return totalAmount * taxRate / (1 + taxRate)
}

func splitName(name string) (firstName, lastName string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// avatar builds the third-party avatar URL; interpolated names are
// query-encoded.
func (s *Service) avatar(firstName, lastName string) string {
	v := url.Values{}
	v.Set("name", firstName+" "+lastName)
	v.Set("background", "6366f1")
	v.Set("color", "fff")
	return s.avatarURL + "?" + v.Encode()
}
