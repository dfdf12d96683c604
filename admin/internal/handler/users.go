package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookmart/admin-service/admin/internal/model"
)

func (h *Handler) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	users, pagination, err := h.adminSvc.ListUsers(ctx, p)
	if err != nil {
		return h.respondErr(c, err, "Failed to fetch users")
	}
	return c.JSON(http.StatusOK, model.UserList{
		Success:    true,
		Users:      users,
		Pagination: pagination,
	})
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(c, "id is invalid")
	}
	var req model.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.adminSvc.UpdateUser(c.Request().Context(), id, req); err != nil {
		return h.respondErr(c, err, "Failed to update user")
	}
	return ack(c, "User updated successfully")
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(c, "id is invalid")
	}
	if err := h.adminSvc.DeleteUser(c.Request().Context(), id); err != nil {
		return h.respondErr(c, err, "Failed to delete user")
	}
	return ack(c, "User deleted successfully")
}
