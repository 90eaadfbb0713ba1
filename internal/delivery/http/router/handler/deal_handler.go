package handler

import (
	"net/http"

	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DealHandler holds dependencies for deal handlers.
type DealHandler struct {
	uc usecase.DealUsecase
}

// NewDealHandler is the constructor for DealHandler, injected by Fx.
func NewDealHandler(uc usecase.DealUsecase) *DealHandler {
	return &DealHandler{uc: uc}
}

// List returns every deal enriched with property and agent names.
func (h *DealHandler) List(c echo.Context) error {
	deals, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deals, "")
}

// Pipeline returns the deals grouped by stage, empty stages included.
func (h *DealHandler) Pipeline(c echo.Context) error {
	groups, err := h.uc.Pipeline(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups, "")
}
