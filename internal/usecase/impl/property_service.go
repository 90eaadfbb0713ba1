package impl

import (
	"context"
	"log/slog"
	"time"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	properties repository.PropertyRepository
	logger     *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(properties repository.PropertyRepository, logger *slog.Logger) usecase.PropertyUsecase {
	return &propertyService{properties: properties, logger: logger}
}

func (srv *propertyService) List(ctx context.Context, filter *usecase.PropertyFilterInput) ([]*entity.Property, error) {
	repoFilter := repository.PropertyFilter{}
	if filter != nil {
		repoFilter.Search = filter.Search
		repoFilter.Type = entity.PropertyType(filter.Type)
		repoFilter.Status = entity.PropertyStatus(filter.Status)
	}

	properties, err := srv.properties.List(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	return properties, nil
}

func (srv *propertyService) Get(ctx context.Context, id string) (*entity.Property, error) {
	property, err := srv.properties.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}

func (srv *propertyService) Create(ctx context.Context, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	propertyType := entity.PropertyType(input.Type)
	if !propertyType.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("unknown property type"))
	}
	status := entity.PropertyStatus(input.Status)
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("unknown property status"))
	}

	now := time.Now()
	property := &entity.Property{
		ID:        newID("prop", now),
		Title:     input.Title,
		Location:  input.Location,
		PriceAED:  input.PriceAED,
		Type:      propertyType,
		Status:    status,
		ImageURL:  input.ImageURL,
		Bedrooms:  input.Bedrooms,
		Bathrooms: input.Bathrooms,
		AreaSqFt:  input.AreaSqFt,
	}
	if property.ImageURL == "" {
		property.ImageURL = avatarURL(property.ID)
	}

	if err := srv.properties.Create(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create property")
	}

	srv.logger.Info("Property listed", "propertyID", property.ID, "title", property.Title)

	return property, nil
}
