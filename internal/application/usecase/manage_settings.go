// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/domain/entity"
	"github.com/bnema/deskclock/internal/logging"
)

// SettingsStore is the single owner of the overlay settings for a process.
// Every mutation is persisted before it returns; a mutation whose write fails
// leaves the in-memory settings untouched.
//
// SettingsStore is not safe for concurrent use. It is meant to be driven from
// the overlay event loop only.
type SettingsStore struct {
	repo     port.SettingsRepository
	settings *entity.Settings
}

// OpenSettingsStore loads the settings document, creating it from defaults
// when it does not exist yet.
func OpenSettingsStore(ctx context.Context, repo port.SettingsRepository) (*SettingsStore, error) {
	log := logging.FromContext(ctx)

	exists, err := repo.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check settings at %s: %w", repo.Location(), err)
	}

	if !exists {
		if err := repo.Save(ctx, entity.DefaultSettings()); err != nil {
			return nil, fmt.Errorf("failed to create default settings at %s: %w", repo.Location(), err)
		}
		log.Info().Str("path", repo.Location()).Msg("created default settings")
	}

	settings, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", repo.Location(), err)
	}

	log.Debug().
		Str("path", repo.Location()).
		Bool("draggable", settings.Draggable()).
		Bool("hidable", settings.Hidable()).
		Bool("always_show_top", settings.AlwaysShowTop()).
		Stringer("position", settings.Position()).
		Stringer("style", settings.ClockStyle()).
		Stringer("attributes", settings.Attributes()).
		Msg("settings loaded")

	return &SettingsStore{repo: repo, settings: settings}, nil
}

// mutate applies fn to a copy of the settings, persists the copy and only
// then makes it current.
func (s *SettingsStore) mutate(ctx context.Context, op string, fn func(*entity.Settings) error) error {
	next := s.settings.Clone()
	if err := fn(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("%s: failed to persist settings: %w", op, err)
	}
	s.settings = next

	logging.FromContext(ctx).Debug().
		Str("op", op).
		Stringer("attributes", next.Attributes()).
		Stringer("reload", next.ReloadState()).
		Msg("settings updated")
	return nil
}

// ToggleDraggable flips draggable and input transparency. Requires a reload.
func (s *SettingsStore) ToggleDraggable(ctx context.Context) error {
	return s.mutate(ctx, "toggle draggable", func(st *entity.Settings) error {
		st.ToggleDraggable()
		return nil
	})
}

// ToggleHidable flips hide-on-hover.
func (s *SettingsStore) ToggleHidable(ctx context.Context) error {
	return s.mutate(ctx, "toggle hidable", func(st *entity.Settings) error {
		st.ToggleHidable()
		return nil
	})
}

// ToggleAlwaysShowTop flips the stays-on-top attribute. Requires a reload.
func (s *SettingsStore) ToggleAlwaysShowTop(ctx context.Context) error {
	return s.mutate(ctx, "toggle always show top", func(st *entity.Settings) error {
		st.ToggleAlwaysShowTop()
		return nil
	})
}

// SavePosition records where the user left the window.
func (s *SettingsStore) SavePosition(ctx context.Context, p entity.Point) error {
	return s.mutate(ctx, "save position", func(st *entity.Settings) error {
		st.SavePosition(p)
		return nil
	})
}

// SetClockStyle replaces the font size and colour.
func (s *SettingsStore) SetClockStyle(ctx context.Context, style entity.ClockStyle) error {
	return s.mutate(ctx, "set clock style", func(st *entity.Settings) error {
		return st.SetClockStyle(style)
	})
}

// Reloaded acknowledges that the live window has the current attributes.
// The reload state is transient and is not written to disk.
func (s *SettingsStore) Reloaded() {
	s.settings.MarkReloaded()
}

func (s *SettingsStore) Draggable() bool { return s.settings.Draggable() }

func (s *SettingsStore) Hidable() bool { return s.settings.Hidable() }

func (s *SettingsStore) AlwaysShowTop() bool { return s.settings.AlwaysShowTop() }

func (s *SettingsStore) Position() entity.Point { return s.settings.Position() }

func (s *SettingsStore) ClockStyle() entity.ClockStyle { return s.settings.ClockStyle() }

func (s *SettingsStore) ReloadRequired() bool { return s.settings.ReloadRequired() }

// WindowAttributes returns the combined attribute mask for the host window.
func (s *SettingsStore) WindowAttributes() entity.AttributeMask {
	return s.settings.WindowAttributes()
}

// Attributes returns a copy of the attribute set.
func (s *SettingsStore) Attributes() entity.WindowAttributeSet {
	return s.settings.Attributes()
}

// Snapshot returns an independent copy of the current settings.
func (s *SettingsStore) Snapshot() *entity.Settings {
	return s.settings.Clone()
}

// Path returns where the settings are stored.
func (s *SettingsStore) Path() string {
	return s.repo.Location()
}

// WindowSpec describes the host window the current settings call for.
func (s *SettingsStore) WindowSpec() port.WindowSpec {
	return port.WindowSpec{
		Attributes: s.settings.WindowAttributes(),
		Style:      s.settings.ClockStyle(),
		Position:   s.settings.Position(),
	}
}
