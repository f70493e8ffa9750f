// Package config reads and writes the overlay settings document.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/domain/entity"
	"github.com/bnema/deskclock/internal/logging"
)

// FileRepository stores the settings as a YAML (or TOML) file.
type FileRepository struct {
	path string
	fs   port.FileSystem
}

// NewFileRepository creates a repository for the document at path.
func NewFileRepository(path string, fsys port.FileSystem) *FileRepository {
	return &FileRepository{path: path, fs: fsys}
}

// Exists implements port.SettingsRepository.
func (r *FileRepository) Exists(ctx context.Context) (bool, error) {
	return r.fs.Exists(ctx, r.path)
}

// Load implements port.SettingsRepository.
func (r *FileRepository) Load(ctx context.Context) (*entity.Settings, error) {
	doc, err := ReadDocument(r.path)
	if err != nil {
		return nil, err
	}

	settings, err := doc.Settings()
	if err != nil {
		return nil, fmt.Errorf("settings file %s: %w", r.path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", r.path).
		Str("format", string(FormatFor(r.path))).
		Msg("settings document decoded")
	return settings, nil
}

// Save implements port.SettingsRepository.
func (r *FileRepository) Save(ctx context.Context, settings *entity.Settings) error {
	if err := WriteDocument(newDocument(settings), r.path); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("path", r.path).Msg("settings document written")
	return nil
}

// Location implements port.SettingsRepository.
func (r *FileRepository) Location() string {
	return r.path
}

// ReadDocument strictly decodes the settings document at path. Every key in
// requiredKeys must be present, values must have the declared types and
// unknown keys are rejected.
func ReadDocument(path string) (*Document, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(string(FormatFor(path)))

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, err)
	}

	var missing []string
	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldError{Path: path, Fields: missing}
	}

	doc := &Document{}
	if err := v.Unmarshal(doc, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = false
		dc.ErrorUnused = true
		dc.DecodeHook = rejectFractionalInts
	}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, err)
	}
	return doc, nil
}

// rejectFractionalInts stops mapstructure from truncating a float such as
// 1.5 into an int field. Whole floats (TOML 64.0) still decode.
func rejectFractionalInts(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	var f float64
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f = reflect.ValueOf(data).Float()
	default:
		return data, nil
	}
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return nil, fmt.Errorf("expected type '%s', got fractional value %v", to, data)
	}
	return data, nil
}

var _ port.SettingsRepository = (*FileRepository)(nil)
