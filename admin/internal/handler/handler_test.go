package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookmart/admin-service/admin/internal/errs"
	"github.com/bookmart/admin-service/admin/internal/handler"
	"github.com/bookmart/admin-service/admin/internal/model"
	"github.com/bookmart/admin-service/pkg/validate"

	service_mocks "github.com/bookmart/admin-service/admin/internal/handler/mocks"
)

func newTestRouter(t *testing.T) (*echo.Echo, *service_mocks.MockAdminService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockAdminService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/admin/books", h.GetBooks)
	e.POST("/admin/books", h.CreateBook)
	e.DELETE("/admin/books/:isbn", h.DeleteBook)
	e.GET("/admin/orders/:id", h.GetOrder)
	e.PUT("/admin/orders/:id", h.UpdateOrder)
	e.GET("/admin/categories", h.GetCategories)
	e.POST("/admin/categories", h.CreateCategory)
	e.GET("/admin/stats", h.GetStats)
	return e, svc
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type input struct {
		search  string
		rawPage string
		params  model.PageParams
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAdminService, req input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockAdminService, req input) {
				r.EXPECT().
					ListBooks(context.Background(), req.search, req.params).
					Return([]model.Book{
						{
							ISBN:         "978-0134190440",
							Title:        "The Go Programming Language",
							Price:        39.99,
							Stock:        12,
							Pages:        380,
							Author:       "Alan Donovan",
							Publisher:    "Addison-Wesley",
							CategoryName: "Programming",
						},
					}, model.Pagination{Page: 1, PerPage: 2, Pages: 1, Total: 1}, nil)
			},
			input: input{
				search:  "go",
				rawPage: "1",
				params:  model.PageParams{Page: 1, PerPage: 2},
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"books":[{"isbn":"978-0134190440","title":"The Go Programming Language","price":39.99,"stock":12,"pages":380,"description":"","image":"","publicationDate":null,"author":"Alan Donovan","publisher":"Addison-Wesley","categoryName":"Programming"}],"pagination":{"page":1,"per_page":2,"pages":1,"total":1}}`,
			},
		},
		{
			name: "zero page is passed through for clamping",
			mockBehavior: func(r *service_mocks.MockAdminService, req input) {
				r.EXPECT().
					ListBooks(context.Background(), req.search, req.params).
					Return([]model.Book{}, model.Pagination{Page: 1, PerPage: 2, Pages: 0, Total: 0}, nil)
			},
			input: input{
				search:  "",
				rawPage: "0",
				params:  model.PageParams{Page: 0, PerPage: 2},
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"books":[],"pagination":{"page":1,"per_page":2,"pages":0,"total":0}}`,
			},
		},
		{
			name:         "err. page is invalid",
			mockBehavior: func(r *service_mocks.MockAdminService, req input) {},
			input: input{
				rawPage: "abc",
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"error":"page is invalid"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockAdminService, req input) {
				r.EXPECT().
					ListBooks(context.Background(), req.search, req.params).
					Return(nil, model.Pagination{}, errors.New("db internal"))
			},
			input: input{
				rawPage: "1",
				params:  model.PageParams{Page: 1, PerPage: 2},
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"success":false,"error":"Failed to fetch books"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newTestRouter(t)
			tt.mockBehavior(svc, tt.input)

			w := doJSON(e, http.MethodGet,
				"/admin/books?search="+tt.input.search+"&page="+tt.input.rawPage+"&per_page=2", "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		svc.EXPECT().
			CreateBook(context.Background(), model.CreateBookRequest{
				ISBN: "978-0134190440",
				BookFields: model.BookFields{
					Title:         "The Go Programming Language",
					AuthorName:    "Alan Donovan",
					PublisherName: "Addison-Wesley",
					CategoryName:  "Programming",
					Price:         39.99,
					Stock:         12,
				},
			}).
			Return(nil)

		w := doJSON(e, http.MethodPost, "/admin/books",
			`{"isbn":"978-0134190440","title":"The Go Programming Language","author_name":"Alan Donovan","publisher_name":"Addison-Wesley","category_name":"Programming","price":39.99,"stock_quantity":12}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"message":"Book created successfully"}`, w.Body.String())
	})

	t.Run("err. missing title", func(t *testing.T) {
		t.Parallel()
		e, _ := newTestRouter(t)

		w := doJSON(e, http.MethodPost, "/admin/books", `{"isbn":"978-0134190440"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("err. duplicate isbn", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		svc.EXPECT().
			CreateBook(context.Background(), gomock.Any()).
			Return(errs.ErrConflict)

		w := doJSON(e, http.MethodPost, "/admin/books",
			`{"isbn":"978-0134190440","title":"t","author_name":"a","publisher_name":"p","category_name":"c"}`)

		require.Equal(t, http.StatusConflict, w.Code)
		require.JSONEq(t, `{"success":false,"error":"Book already exists"}`, w.Body.String())
	})
}

func TestHandler_DeleteBook_Idempotent(t *testing.T) {
	t.Parallel()
	e, svc := newTestRouter(t)
	svc.EXPECT().
		DeleteBook(context.Background(), "978-0134190440").
		Return(nil).
		Times(2)

	// deleting the same ISBN twice must look identical to the client
	for i := 0; i < 2; i++ {
		w := doJSON(e, http.MethodDelete, "/admin/books/978-0134190440", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"message":"Book deleted successfully"}`, w.Body.String())
	}
}

func TestHandler_GetOrder(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		svc.EXPECT().
			GetOrder(context.Background(), 7).
			Return(model.OrderDetail{
				ID:          7,
				OrderNumber: "ORD-2024-0007",
				Items:       []model.OrderItem{},
				Totals: model.OrderTotals{
					Subtotal:     10.8,
					TaxAmount:    0.8,
					ShippingCost: 5.99,
					TotalAmount:  10.8,
				},
				Customer: model.OrderCustomer{FullName: "Jane Roe"},
				Shipping: model.OrderShipping{FullAddress: "1 Main St, Springfield 12345"},
				Payment:  model.OrderPayment{Status: "pending"},
			}, nil)

		w := doJSON(e, http.MethodGet, "/admin/orders/7", "")

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"order":{"id":7,"orderNumber":"ORD-2024-0007","items":[],"totals":{"subtotal":10.8,"taxAmount":0.8,"shippingCost":5.99,"totalAmount":10.8},"customer":{"fullName":"Jane Roe","phone":"","email":""},"shipping":{"fullAddress":"1 Main St, Springfield 12345"},"payment":{"status":"pending"}}}`, w.Body.String())
	})

	t.Run("err. not found", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		svc.EXPECT().
			GetOrder(context.Background(), 404).
			Return(model.OrderDetail{}, errs.ErrNotFound)

		w := doJSON(e, http.MethodGet, "/admin/orders/404", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"success":false,"error":"Order not found"}`, w.Body.String())
	})

	t.Run("err. id is invalid", func(t *testing.T) {
		t.Parallel()
		e, _ := newTestRouter(t)

		w := doJSON(e, http.MethodGet, "/admin/orders/seven", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_UpdateOrder(t *testing.T) {
	t.Parallel()
	e, svc := newTestRouter(t)
	svc.EXPECT().
		UpdateOrderStatus(context.Background(), 7, "completed").
		Return(nil)

	w := doJSON(e, http.MethodPut, "/admin/orders/7", `{"payment_status":"completed"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"message":"Order updated successfully"}`, w.Body.String())
}

func TestHandler_Categories(t *testing.T) {
	t.Parallel()

	t.Run("round trip shape", func(t *testing.T) {
		t.Parallel()
		e, svc := newTestRouter(t)
		svc.EXPECT().
			CreateCategory(context.Background(), model.CategoryRequest{Name: "Fiction", Description: "Fiction books"}).
			Return(nil)
		svc.EXPECT().
			ListCategories(context.Background()).
			Return([]model.Category{{ID: 1, Name: "Fiction", Description: "Fiction books"}}, nil)

		w := doJSON(e, http.MethodPost, "/admin/categories", `{"name":"Fiction","description":"Fiction books"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(e, http.MethodGet, "/admin/categories", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"categories":[{"id":1,"name":"Fiction","description":"Fiction books"}]}`, w.Body.String())
	})

	t.Run("err. name required", func(t *testing.T) {
		t.Parallel()
		e, _ := newTestRouter(t)

		w := doJSON(e, http.MethodPost, "/admin/categories", `{"description":"no name"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetStats(t *testing.T) {
	t.Parallel()
	e, svc := newTestRouter(t)
	svc.EXPECT().
		GetStats(context.Background()).
		Return(model.Stats{
			TotalUsers:      3,
			TotalBooks:      5,
			TotalOrders:     4,
			TotalRevenue:    120.5,
			PendingOrders:   1,
			CompletedOrders: 3,
		}, []model.OrderSummary{}, []model.LowStockBook{}, nil)

	w := doJSON(e, http.MethodGet, "/admin/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"stats":{"totalUsers":3,"totalBooks":5,"totalOrders":4,"totalRevenue":120.5,"pendingOrders":1,"completedOrders":3},"recentOrders":[],"lowStockBooks":[]}`, w.Body.String())
}
