package port

import (
	"context"

	"github.com/bnema/deskclock/internal/domain/entity"
)

// SettingsRepository persists the overlay settings document.
type SettingsRepository interface {
	// Exists reports whether a settings document is present.
	Exists(ctx context.Context) (bool, error)
	// Load strictly decodes the stored document.
	Load(ctx context.Context) (*entity.Settings, error)
	// Save rewrites the whole document, creating parent directories as needed.
	Save(ctx context.Context, settings *entity.Settings) error
	// Location describes where the document lives (a file path for file repositories).
	Location() string
}
