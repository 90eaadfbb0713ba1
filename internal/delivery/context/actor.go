package context

import (
	"dreamcrm/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyActor is the key for storing the authenticated user in echo.Context.
const KeyActor ContextKey = "actor"

// SetActor stores the authenticated user for downstream handlers.
func SetActor(c echo.Context, user *entity.User) {
	c.Set(string(KeyActor), user)
}

// GetActor returns the authenticated user, or nil when the request is
// unauthenticated.
func GetActor(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyActor)).(*entity.User); ok {
		return user
	}

	return nil
}
