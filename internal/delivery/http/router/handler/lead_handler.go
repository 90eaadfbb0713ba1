package handler

import (
	"net/http"

	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LeadHandler holds dependencies for lead handlers.
type LeadHandler struct {
	uc usecase.LeadUsecase
}

// NewLeadHandler is the constructor for LeadHandler, injected by Fx.
func NewLeadHandler(uc usecase.LeadUsecase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// List returns every lead with its assigned agent's name.
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leads, "")
}

// Create captures a new lead.
func (h *LeadHandler) Create(c echo.Context) error {
	var input *usecase.CreateLeadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, lead, "Lead added successfully")
}
