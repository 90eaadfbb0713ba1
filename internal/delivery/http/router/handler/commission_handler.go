package handler

import (
	"net/http"

	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommissionHandler holds dependencies for commission handlers.
type CommissionHandler struct {
	reports usecase.ReportUsecase
}

// NewCommissionHandler is the constructor for CommissionHandler, injected by Fx.
func NewCommissionHandler(reports usecase.ReportUsecase) *CommissionHandler {
	return &CommissionHandler{reports: reports}
}

// Report returns each agent's commission total with the closed deals
// behind it.
func (h *CommissionHandler) Report(c echo.Context) error {
	report, err := h.reports.CommissionReport(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// Calculate evaluates the standalone commission calculator.
func (h *CommissionHandler) Calculate(c echo.Context) error {
	var input *usecase.CalculateCommissionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calculator input")
	}

	commission := h.reports.CalculateCommission(input)

	return response.Success(c, http.StatusOK, map[string]float64{"commission": commission}, "")
}
