// Package middleware holds the HTTP guards for the role-gated surfaces.
package middleware

import (
	"net/http"
	"strings"

	deliverycontext "dreamcrm/internal/delivery/context"
	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/domain/access"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates bearer tokens and enforces the access
// policy table on every protected route group. Hidden navigation items
// are unreachable directly for the same reason the sidebar hides them:
// both derive from the same table.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	users    repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, users: users}
}

// Authenticate validates the session token and resolves the acting user.
// Unauthenticated requests get a 401 pointing at the login screen, with
// the requested path carried as "from".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		from := c.Request().URL.Path

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthenticated(c, access.LoginPath, from)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthenticated(c, access.LoginPath, from)
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthenticated(c, access.LoginPath, from)
		}

		user, err := m.users.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			// The token outlived its user.
			return response.Unauthenticated(c, access.LoginPath, from)
		}

		deliverycontext.SetActor(c, user)

		return next(c)
	}
}

// RequireCapability enforces the policy table for one capability. The
// unauthorized reaction is a 303 back to the landing page, except user
// management, which renders an in-place denial.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireCapability(capability access.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c)
			if actor == nil {
				return response.Unauthenticated(c, access.LoginPath, c.Request().URL.Path)
			}

			if access.CanAccess(capability, actor.Role) {
				return next(c)
			}

			if capability.DeniesInPlace() {
				return response.Forbidden(c, "ACCESS_DENIED", "Access Denied: You do not have permission to view this page.")
			}

			return c.Redirect(http.StatusSeeOther, access.DefaultLandingPath)
		}
	}
}
