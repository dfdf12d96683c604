package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookmart/admin-service/admin/internal/diag"
	"github.com/bookmart/admin-service/admin/internal/model"
)

func (h *Handler) GetStats(c echo.Context) error {
	stats, recent, low, err := h.adminSvc.GetStats(c.Request().Context())
	if err != nil {
		return h.respondErr(c, err, "Failed to fetch stats")
	}
	return c.JSON(http.StatusOK, model.StatsResponse{
		Success:       true,
		Stats:         stats,
		RecentOrders:  recent,
		LowStockBooks: low,
	})
}

func (h *Handler) GetDiagnostics(c echo.Context) error {
	type response struct {
		Success bool          `json:"success"`
		Results []diag.Result `json:"results"`
	}
	return c.JSON(http.StatusOK, response{
		Success: true,
		Results: h.adminSvc.Diagnostics(c.Request().Context()),
	})
}
