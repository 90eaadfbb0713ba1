// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dreamcrm/config"
	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/service"
)

const sessionTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    sessionTokenTTL,
	}, nil
}

// Generate creates a signed session token carrying the user's id and role.
func (s *jwtService) Generate(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,                      // Subject (who the token is for)
		"role": user.Role.String(),           // Role for stateless authorization
		"iat":  time.Now().Unix(),            // Issued At
		"exp":  time.Now().Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the validity of a token string and extracts its claims.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}

	roleStr, _ := claims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &service.SessionClaims{UserID: userID, Role: role}, nil
}
