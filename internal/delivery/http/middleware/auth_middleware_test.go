package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dreamcrm/config"
	"dreamcrm/internal/domain/access"
	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/infra/auth"
	"dreamcrm/internal/infra/persistence/memory"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardFixture(t *testing.T) (*AuthMiddleware, func(user *entity.User) string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	guard := NewAuthMiddleware(tokenSvc, memory.NewUserRepository(memory.NewSeededStore()))

	issue := func(user *entity.User) string {
		token, err := tokenSvc.Generate(user)
		require.NoError(t, err)

		return token
	}

	return guard, issue
}

func serve(guard *AuthMiddleware, capability access.Capability, token, path string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ok := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	handler := guard.Authenticate(guard.RequireCapability(capability)(ok))
	_ = handler(c)

	return rec
}

func TestAuthenticate_MissingToken(t *testing.T) {
	guard, _ := newGuardFixture(t)

	rec := serve(guard, access.CapabilityDashboard, "", "/api/dashboard")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)
	assert.Contains(t, rec.Body.String(), `"from":"/api/dashboard"`)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	guard, _ := newGuardFixture(t)

	rec := serve(guard, access.CapabilityDashboard, "not-a-token", "/api/dashboard")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_StaleUser(t *testing.T) {
	guard, issue := newGuardFixture(t)
	token := issue(&entity.User{ID: "user-999", Role: entity.RoleAgent})

	rec := serve(guard, access.CapabilityDashboard, token, "/api/dashboard")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireCapability_Granted(t *testing.T) {
	guard, issue := newGuardFixture(t)
	token := issue(&entity.User{ID: "user-2", Role: entity.RoleAgent})

	rec := serve(guard, access.CapabilityDeals, token, "/api/deals")

	assert.Equal(t, http.StatusOK, rec.Code)
}

// Unauthorized surfaces bounce back to the landing page, except user
// management which answers in place.
func TestRequireCapability_DeniedRedirects(t *testing.T) {
	guard, issue := newGuardFixture(t)
	token := issue(&entity.User{ID: "user-4", Role: entity.RoleViewer})

	rec := serve(guard, access.CapabilityDeals, token, "/api/deals")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequireCapability_UsersDeniesInPlace(t *testing.T) {
	guard, issue := newGuardFixture(t)
	token := issue(&entity.User{ID: "user-2", Role: entity.RoleAgent})

	rec := serve(guard, access.CapabilityUsers, token, "/api/users")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACCESS_DENIED")
	assert.Contains(t, rec.Body.String(), "Access Denied: You do not have permission to view this page.")
}

func TestRequireCapability_AdminReachesUsers(t *testing.T) {
	guard, issue := newGuardFixture(t)
	token := issue(&entity.User{ID: "user-1", Role: entity.RoleAdmin})

	rec := serve(guard, access.CapabilityUsers, token, "/api/users")

	assert.Equal(t, http.StatusOK, rec.Code)
}
