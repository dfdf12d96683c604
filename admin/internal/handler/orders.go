package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookmart/admin-service/admin/internal/errs"
	"github.com/bookmart/admin-service/admin/internal/model"
)

func (h *Handler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	p, err := pageParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	status := c.QueryParam("status")

	orders, pagination, err := h.adminSvc.ListOrders(ctx, status, p)
	if err != nil {
		return h.respondErr(c, err, "Failed to fetch orders")
	}
	return c.JSON(http.StatusOK, model.OrderList{
		Success:    true,
		Orders:     orders,
		Pagination: pagination,
	})
}

func (h *Handler) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(c, "id is invalid")
	}

	order, err := h.adminSvc.GetOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Order not found"})
		}
		return h.respondErr(c, err, "Failed to fetch order")
	}
	return c.JSON(http.StatusOK, model.OrderDetailResponse{
		Success: true,
		Order:   order,
	})
}

func (h *Handler) UpdateOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(c, "id is invalid")
	}
	var req model.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.adminSvc.UpdateOrderStatus(c.Request().Context(), id, req.PaymentStatus); err != nil {
		return h.respondErr(c, err, "Failed to update order")
	}
	return ack(c, "Order updated successfully")
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(c, "id is invalid")
	}
	if err := h.adminSvc.DeleteOrder(c.Request().Context(), id); err != nil {
		return h.respondErr(c, err, "Failed to delete order")
	}
	return ack(c, "Order deleted successfully")
}
