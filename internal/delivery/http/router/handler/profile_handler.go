package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "dreamcrm/internal/delivery/context"
	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and settings handlers.
type ProfileHandler struct {
	sessions usecase.SessionUsecase
	settings usecase.SettingsUsecase
	logger   *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(sessions usecase.SessionUsecase, settings usecase.SettingsUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{sessions: sessions, settings: settings, logger: logger}
}

// Me returns the logged-in user.
func (h *ProfileHandler) Me(c echo.Context) error {
	user := h.sessions.Current(c.Request().Context())
	if user == nil {
		// A valid token without a restored session still identifies the actor.
		user = deliverycontext.GetActor(c)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile merges a partial profile update into the session user.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.sessions.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// ChangePassword validates the password form. This is a mock action; no
// credential is stored.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := h.sessions.ChangePassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// Theme returns the persisted theme preference.
func (h *ProfileHandler) Theme(c echo.Context) error {
	theme, err := h.settings.Theme(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"theme": theme}, "")
}

// SetTheme persists the theme preference.
func (h *ProfileHandler) SetTheme(c echo.Context) error {
	var input *usecase.SetThemeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid theme input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.settings.SetTheme(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"theme": input.Theme}, "Theme updated")
}
