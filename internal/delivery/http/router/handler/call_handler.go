package handler

import (
	"net/http"

	deliverycontext "dreamcrm/internal/delivery/context"
	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CallHandler holds dependencies for call-log handlers.
type CallHandler struct {
	uc usecase.CallUsecase
}

// NewCallHandler is the constructor for CallHandler, injected by Fx.
func NewCallHandler(uc usecase.CallUsecase) *CallHandler {
	return &CallHandler{uc: uc}
}

// List returns the call log newest first.
func (h *CallHandler) List(c echo.Context) error {
	calls, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, calls, "")
}

// Log records a call for the acting user.
func (h *CallHandler) Log(c echo.Context) error {
	var input *usecase.LogCallInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid call input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	call, err := h.uc.Log(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, call, "Call logged successfully")
}
