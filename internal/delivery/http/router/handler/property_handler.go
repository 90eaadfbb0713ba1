package handler

import (
	"net/http"

	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for property handlers.
type PropertyHandler struct {
	uc usecase.PropertyUsecase
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

// List returns properties filtered by search text, type and status.
func (h *PropertyHandler) List(c echo.Context) error {
	var filter usecase.PropertyFilterInput
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property filter")
	}

	properties, err := h.uc.List(c.Request().Context(), &filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, properties, "")
}

// Get returns a single property by id.
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "")
}

// Create lists a new property.
func (h *PropertyHandler) Create(c echo.Context) error {
	var input *usecase.CreatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	property, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, property, "Property listed successfully")
}
