package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookmart/admin-service/admin/internal/errs"
	"github.com/bookmart/admin-service/admin/internal/model"
)

func (h *Handler) GetCategories(c echo.Context) error {
	categories, err := h.adminSvc.ListCategories(c.Request().Context())
	if err != nil {
		return h.respondErr(c, err, "Failed to fetch categories")
	}
	return c.JSON(http.StatusOK, model.CategoryList{
		Success:    true,
		Categories: categories,
	})
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req model.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.adminSvc.CreateCategory(c.Request().Context(), req); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return h.respondErr(c, err, "Category already exists")
		}
		return h.respondErr(c, err, "Failed to create category")
	}
	return ack(c, "Category created successfully")
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return badRequest(c, "name is empty")
	}
	var req model.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.adminSvc.UpdateCategory(c.Request().Context(), name, req.Description); err != nil {
		return h.respondErr(c, err, "Failed to update category")
	}
	return ack(c, "Category updated successfully")
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return badRequest(c, "name is empty")
	}
	if err := h.adminSvc.DeleteCategory(c.Request().Context(), name); err != nil {
		return h.respondErr(c, err, "Failed to delete category")
	}
	return ack(c, "Category deleted successfully")
}
