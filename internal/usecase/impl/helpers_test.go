package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStateStore is an in-memory StateStore for tests.
type memStateStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemStateStore() *memStateStore {
	return &memStateStore{values: map[string]string{}}
}

func (s *memStateStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return "", repository.ErrStateNotFound
	}

	return value, nil
}

func (s *memStateStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

func (s *memStateStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}

// staticTokenService issues predictable tokens for tests.
type staticTokenService struct{}

func (staticTokenService) Generate(user *entity.User) (string, error) {
	return "token-" + user.ID, nil
}

func (staticTokenService) Validate(tokenString string) (*service.SessionClaims, error) {
	return &service.SessionClaims{}, nil
}
