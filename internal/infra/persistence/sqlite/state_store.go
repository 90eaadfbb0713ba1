package sqlite

import (
	"context"
	stderrors "errors"
	"time"

	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clientState is a key/value row holding serialized client-side state
// such as the persisted session and the theme preference.
type clientState struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (clientState) TableName() string {
	return "client_state"
}

type stateStore struct {
	db *gorm.DB
}

// NewStateStore creates the client state store and ensures its schema exists.
func NewStateStore(db *gorm.DB) (repository.StateStore, error) {
	if err := db.AutoMigrate(&clientState{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate client_state table")
	}

	return &stateStore{db: db}, nil
}

func (s *stateStore) Get(ctx context.Context, key string) (string, error) {
	var row clientState
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrStateNotFound
		}

		return "", errors.Wrap(err, "failed to read client state")
	}

	return row.Value, nil
}

func (s *stateStore) Put(ctx context.Context, key string, value string) error {
	row := clientState{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return errors.Wrap(err, "failed to write client state")
	}

	return nil
}

func (s *stateStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&clientState{}, "key = ?", key).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete client state")
	}

	return nil
}
