package auth

import (
	"testing"
	"time"

	"dreamcrm/config"
	"dreamcrm/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t)
	user := &entity.User{ID: "user-2", Role: entity.RoleAgent}

	token, err := svc.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.UserID)
	assert.Equal(t, entity.RoleAgent, claims.Role)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Generate(&entity.User{ID: "user-1", Role: entity.RoleAdmin})
	require.NoError(t, err)

	other := &jwtService{secret: "different-secret", ttl: svc.ttl}
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_Validate_ExpiredToken(t *testing.T) {
	svc := newTestService(t)
	svc.ttl = -time.Hour

	token, err := svc.Generate(&entity.User{ID: "user-1", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
