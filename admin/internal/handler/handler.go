package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookmart/admin-service/admin/internal/errs"
	"github.com/bookmart/admin-service/admin/internal/model"
	md "github.com/bookmart/admin-service/pkg/middleware"
	"github.com/bookmart/admin-service/pkg/validate"
)

type Handler struct {
	adminSvc AdminService
	log      *zap.Logger
}

func New(adminSvc AdminService, log *zap.Logger) *Handler {
	return &Handler{
		adminSvc: adminSvc,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	admin := api.Group("/admin", md.AdminContext)

	admin.GET("/stats", h.GetStats)
	admin.GET("/diagnostics", h.GetDiagnostics)

	admin.GET("/books", h.GetBooks)
	admin.POST("/books", h.CreateBook)
	admin.PUT("/books/:isbn", h.UpdateBook)
	admin.DELETE("/books/:isbn", h.DeleteBook)

	admin.GET("/users", h.GetUsers)
	admin.PUT("/users/:id", h.UpdateUser)
	admin.DELETE("/users/:id", h.DeleteUser)

	admin.GET("/orders", h.GetOrders)
	admin.GET("/orders/:id", h.GetOrder)
	admin.PUT("/orders/:id", h.UpdateOrder)
	admin.DELETE("/orders/:id", h.DeleteOrder)

	admin.GET("/categories", h.GetCategories)
	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:name", h.UpdateCategory)
	admin.DELETE("/categories/:name", h.DeleteCategory)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func pageParams(c echo.Context) (model.PageParams, error) {
	p := model.PageParams{Page: 1, PerPage: model.DefaultPerPage}
	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, errors.New("page is invalid")
		}
		p.Page = n
	}
	if v := c.QueryParam("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, errors.New("per_page is invalid")
		}
		p.PerPage = n
	}
	return p, nil
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg})
}

// respondErr collapses a failure to the admin error envelope; typed
// errors keep their status, everything else is a 500.
func (h *Handler) respondErr(c echo.Context, err error, msg string) error {
	h.log.Error(msg, zap.Error(err))
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	}
	return c.JSON(code, model.ErrorResponse{Error: msg})
}

func ack(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, model.Ack{Success: true, Message: msg})
}
