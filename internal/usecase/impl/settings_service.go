package impl

import (
	"context"
	"log/slog"

	"dreamcrm/config"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	state        repository.StateStore
	defaultTheme string
	logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(state repository.StateStore, cfg *config.Config, logger *slog.Logger) usecase.SettingsUsecase {
	defaultTheme := cfg.Theme.Default
	if defaultTheme != usecase.ThemeLight && defaultTheme != usecase.ThemeDark {
		defaultTheme = usecase.ThemeLight
	}

	return &settingsService{state: state, defaultTheme: defaultTheme, logger: logger}
}

// Theme returns the persisted theme. Anything missing or unrecognized
// falls back to the configured default.
func (srv *settingsService) Theme(ctx context.Context) (string, error) {
	value, err := srv.state.Get(ctx, repository.StateKeyTheme)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return srv.defaultTheme, nil
		}

		return "", errors.Wrap(err, "failed to read theme")
	}

	if value != usecase.ThemeLight && value != usecase.ThemeDark {
		srv.logger.Warn("Ignoring unrecognized persisted theme", "theme", value)

		return srv.defaultTheme, nil
	}

	return value, nil
}

func (srv *settingsService) SetTheme(ctx context.Context, input *usecase.SetThemeInput) error {
	if input.Theme != usecase.ThemeLight && input.Theme != usecase.ThemeDark {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("theme must be light or dark"))
	}

	if err := srv.state.Put(ctx, repository.StateKeyTheme, input.Theme); err != nil {
		return errors.Wrap(domainerrors.ErrStateStoreFailed, err.Error())
	}

	return nil
}
