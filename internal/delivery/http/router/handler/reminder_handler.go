package handler

import (
	"net/http"

	deliverycontext "dreamcrm/internal/delivery/context"
	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReminderHandler holds dependencies for reminder handlers.
type ReminderHandler struct {
	uc usecase.ReminderUsecase
}

// NewReminderHandler is the constructor for ReminderHandler, injected by Fx.
func NewReminderHandler(uc usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{uc: uc}
}

// List returns the reminders visible to the acting user.
func (h *ReminderHandler) List(c echo.Context) error {
	reminders, err := h.uc.List(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminders, "")
}

// Upcoming returns the incomplete visible reminders, soonest first.
func (h *ReminderHandler) Upcoming(c echo.Context) error {
	reminders, err := h.uc.Upcoming(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminders, "")
}

// Toggle flips a reminder's completion state.
func (h *ReminderHandler) Toggle(c echo.Context) error {
	reminder, err := h.uc.ToggleComplete(c.Request().Context(), deliverycontext.GetActor(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminder, "")
}

// Add creates a reminder for the acting user.
func (h *ReminderHandler) Add(c echo.Context) error {
	var input *usecase.AddReminderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	reminder, err := h.uc.Add(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reminder, "Reminder added")
}
