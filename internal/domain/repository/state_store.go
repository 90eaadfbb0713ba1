package repository

import (
	"context"
	"errors"
)

// ErrStateNotFound is returned when no value is stored under a key.
var ErrStateNotFound = errors.New("state key not found")

// Fixed keys of the durable client-state store. The serialized session user
// and the theme token live under exactly these keys.
const (
	StateKeySessionUser = "user"
	StateKeyTheme       = "theme"
)

// StateStore is a small durable key/value store for client state: the
// serialized session record and the theme preference. Writes are
// fire-and-forget from the caller's perspective; a corrupt or missing value
// at read time is treated as absent, never surfaced to the user.
type StateStore interface {
	// Get retrieves the value stored under key, or ErrStateNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
