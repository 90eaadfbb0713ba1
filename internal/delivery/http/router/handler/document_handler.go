package handler

import (
	"net/http"

	deliverycontext "dreamcrm/internal/delivery/context"
	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DocumentHandler holds dependencies for document handlers.
type DocumentHandler struct {
	uc usecase.DocumentUsecase
}

// NewDocumentHandler is the constructor for DocumentHandler, injected by Fx.
func NewDocumentHandler(uc usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// List returns every document with uploader and linked-record names.
func (h *DocumentHandler) List(c echo.Context) error {
	documents, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, documents, "")
}

// Upload records document metadata for the acting user.
func (h *DocumentHandler) Upload(c echo.Context) error {
	var input *usecase.UploadDocumentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	document, err := h.uc.Upload(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, document, "Document uploaded successfully")
}

// Delete removes a document.
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Document deleted")
}
