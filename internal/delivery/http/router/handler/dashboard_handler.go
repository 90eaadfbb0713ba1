package handler

import (
	"net/http"

	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the dashboard aggregates.
type DashboardHandler struct {
	reports usecase.ReportUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(reports usecase.ReportUsecase) *DashboardHandler {
	return &DashboardHandler{reports: reports}
}

// Dashboard returns the KPI cards, the type distribution and the monthly
// sales trend in one payload.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	output, err := h.reports.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
