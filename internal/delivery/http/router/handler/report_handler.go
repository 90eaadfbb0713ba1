package handler

import (
	"fmt"
	"net/http"
	"time"

	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for report handlers.
type ReportHandler struct {
	reports usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(reports usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Report returns the full aggregate report as JSON.
func (h *ReportHandler) Report(c echo.Context) error {
	report, err := h.reports.Report(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// Export streams the report as a CSV download.
func (h *ReportHandler) Export(c echo.Context) error {
	export, err := h.reports.ExportCSV(c.Request().Context(), time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(export.Content))
}
