package usecase

import "context"

// Themes accepted by the settings store.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SetThemeInput selects the UI theme.
type SetThemeInput struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// SettingsUsecase defines the interface for client settings.
type SettingsUsecase interface {
	// Theme returns the persisted theme, or the configured default when
	// none is stored or the stored value is unrecognized.
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, input *SetThemeInput) error
}
