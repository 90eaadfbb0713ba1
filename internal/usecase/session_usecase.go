// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dreamcrm/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required to log in. There is no password
// field: authentication is a case-insensitive email lookup against the
// seeded directory.
type LoginInput struct {
	Email string `json:"email"`
}

// UpdateProfileInput carries a partial profile update. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

// ChangePasswordInput carries the change-password form. The operation is
// validation only; no credential is stored anywhere.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// --- Output DTOs ---

// LoginOutput returns the session token and the logged-in user.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// SessionUsecase defines the interface for session-related business operations.
type SessionUsecase interface {
	// Login matches email case-insensitively and persists the session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Logout clears the session. It always succeeds.
	Logout(ctx context.Context) error
	// Current returns the logged-in user, or nil when unauthenticated.
	Current(ctx context.Context) *entity.User
	// IsAuthenticated reports whether a session exists.
	IsAuthenticated() bool
	// UpdateProfile merges the partial update into the session user and
	// re-persists it. Without a session it is a silent no-op.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
	// ChangePassword validates the form and acknowledges. Nothing is stored.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	// Restore loads the persisted session at startup. Corrupt or missing
	// state yields an unauthenticated start, never an error.
	Restore(ctx context.Context) error
}
