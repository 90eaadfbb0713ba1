package handler

import (
	"net/http"

	deliverycontext "dreamcrm/internal/delivery/context"
	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmailHandler holds dependencies for mailbox handlers.
type EmailHandler struct {
	uc usecase.EmailUsecase
}

// NewEmailHandler is the constructor for EmailHandler, injected by Fx.
func NewEmailHandler(uc usecase.EmailUsecase) *EmailHandler {
	return &EmailHandler{uc: uc}
}

// Folders returns every folder with its unread count.
func (h *EmailHandler) Folders(c echo.Context) error {
	folders, err := h.uc.Folders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, folders, "")
}

// List returns one folder's emails newest first. The folder defaults to
// Inbox.
func (h *EmailHandler) List(c echo.Context) error {
	folder := entity.EmailFolder(c.QueryParam("folder"))
	if folder == "" {
		folder = entity.FolderInbox
	}

	emails, err := h.uc.ListFolder(c.Request().Context(), folder)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, emails, "")
}

// Open returns an email and marks it read.
func (h *EmailHandler) Open(c echo.Context) error {
	email, err := h.uc.Open(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, email, "")
}

// Compose sends an email to a lead on behalf of the acting user.
func (h *EmailHandler) Compose(c echo.Context) error {
	var input *usecase.ComposeEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	email, err := h.uc.Compose(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, email, "Email sent")
}

// Delete trashes an email, or removes it for good when already trashed.
func (h *EmailHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email deleted")
}
