package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookmart/admin-service/admin/internal/errs"
	"github.com/bookmart/admin-service/admin/internal/model"
)

func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()

	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	search := c.QueryParam("search")

	books, pagination, err := h.adminSvc.ListBooks(ctx, search, p)
	if err != nil {
		return h.respondErr(c, err, "Failed to fetch books")
	}
	return c.JSON(http.StatusOK, model.BookList{
		Success:    true,
		Books:      books,
		Pagination: pagination,
	})
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.adminSvc.CreateBook(c.Request().Context(), req); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return h.respondErr(c, err, "Book already exists")
		}
		return h.respondErr(c, err, "Failed to create book")
	}
	return ack(c, "Book created successfully")
}

func (h *Handler) UpdateBook(c echo.Context) error {
	isbn := c.Param("isbn")
	if isbn == "" {
		return badRequest(c, "isbn is empty")
	}
	var req model.BookFields
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.adminSvc.UpdateBook(c.Request().Context(), isbn, req); err != nil {
		return h.respondErr(c, err, "Failed to update book")
	}
	return ack(c, "Book updated successfully")
}

func (h *Handler) DeleteBook(c echo.Context) error {
	isbn := c.Param("isbn")
	if isbn == "" {
		return badRequest(c, "isbn is empty")
	}
	if err := h.adminSvc.DeleteBook(c.Request().Context(), isbn); err != nil {
		return h.respondErr(c, err, "Failed to delete book")
	}
	return ack(c, "Book deleted successfully")
}
