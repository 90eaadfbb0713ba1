package handler

import (
	"net/http"

	deliverycontext "dreamcrm/internal/delivery/context"
	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/domain/access"

	"github.com/labstack/echo/v4"
)

// NavHandler serves the role-filtered sidebar.
type NavHandler struct{}

// NewNavHandler is the constructor for NavHandler, injected by Fx.
func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// Items returns the navigation items visible to the acting role. The
// same policy table backs the route guards, so a hidden item is also an
// unreachable one.
func (h *NavHandler) Items(c echo.Context) error {
	actor := deliverycontext.GetActor(c)
	if actor == nil {
		return response.Unauthenticated(c, access.LoginPath, c.Request().URL.Path)
	}

	return response.Success(c, http.StatusOK, access.VisibleItems(actor.Role), "")
}
