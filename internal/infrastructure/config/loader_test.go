package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/deskclock/internal/domain/entity"
	"github.com/bnema/deskclock/internal/infrastructure/filesystem"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func TestReadDocument_MissingFontColor(t *testing.T) {
	path := writeFile(t, "config.yml", `draggable: false
hidable: false
alwaysShowTop: true
x: null
y: null
fontSize: 100
`)

	doc, err := ReadDocument(path)

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrConfigMissingField)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"fontColor"}, missing.Fields)
	assert.Equal(t, path, missing.Path)
}

func TestReadDocument_EmptyFileMissesEveryRequiredKey(t *testing.T) {
	path := writeFile(t, "config.yml", "")

	_, err := ReadDocument(path)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, requiredKeys, missing.Fields)
}

func TestReadDocument_PositionIsOptional(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "null", content: "x: null\ny: null\n"},
		{name: "absent", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.yml", `draggable: true
hidable: true
alwaysShowTop: false
fontSize: 42
fontColor: white
`+tt.content)

			doc, err := ReadDocument(path)
			require.NoError(t, err)
			assert.Nil(t, doc.X)
			assert.Nil(t, doc.Y)

			settings, err := doc.Settings()
			require.NoError(t, err)
			assert.False(t, settings.Position().IsSet())
			assert.True(t, settings.Draggable())
			assert.True(t, settings.Hidable())
			assert.False(t, settings.AlwaysShowTop())
			assert.Equal(t, entity.ClockStyle{Size: 42, Color: "white"}, settings.ClockStyle())
		})
	}
}

func TestReadDocument_Rejects(t *testing.T) {
	valid := "draggable: false\nhidable: false\nalwaysShowTop: true\nfontSize: 100\nfontColor: '#dddddd'\n"

	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax error", content: "draggable: [\n"},
		{name: "mistyped bool", content: `draggable: "yes"
hidable: false
alwaysShowTop: true
fontSize: 100
fontColor: '#dddddd'
`},
		{name: "mistyped size", content: `draggable: false
hidable: false
alwaysShowTop: true
fontSize: big
fontColor: '#dddddd'
`},
		{name: "fractional size", content: `draggable: false
hidable: false
alwaysShowTop: true
fontSize: 1.5
fontColor: '#dddddd'
`},
		{name: "fractional position", content: valid + "x: 10.25\ny: 20\n"},
		{name: "unknown key", content: valid + "opacity: 0.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.yml", tt.content)

			_, err := ReadDocument(path)

			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestReadDocument_WholeFloatSizeInTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `draggable = false
hidable = false
alwaysShowTop = true
fontSize = 64.0
fontColor = "#dddddd"
`)

	doc, err := ReadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, 64, doc.FontSize)
}

func TestFileRepository_LoadRejectsFractionalSize(t *testing.T) {
	path := writeFile(t, "config.yml", `draggable: false
hidable: false
alwaysShowTop: true
fontSize: 1.5
fontColor: '#dddddd'
`)

	_, err := NewFileRepository(path, filesystem.New()).Load(context.Background())

	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestFileRepository_LoadRejectsInvalidStyle(t *testing.T) {
	path := writeFile(t, "config.yml", `draggable: false
hidable: false
alwaysShowTop: true
fontSize: 0
fontColor: '#dddddd'
`)
	repo := NewFileRepository(path, filesystem.New())

	_, err := repo.Load(context.Background())

	assert.ErrorIs(t, err, entity.ErrInvalidClockStyle)
}

func TestFileRepository_ExistsAndLocation(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	repo := NewFileRepository(path, filesystem.New())

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, path, repo.Location())

	require.NoError(t, repo.Save(ctx, entity.DefaultSettings()))

	exists, err = repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileRepository_RoundTrip(t *testing.T) {
	for _, name := range []string{"config.yml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := NewFileRepository(filepath.Join(t.TempDir(), name), filesystem.New())

			settings := entity.DefaultSettings()
			settings.ToggleDraggable()
			settings.ToggleAlwaysShowTop()
			settings.SavePosition(entity.NewPoint(-15, 730))
			require.NoError(t, settings.SetClockStyle(entity.ClockStyle{Size: 64, Color: "#ff8800"}))

			require.NoError(t, repo.Save(ctx, settings))
			loaded, err := repo.Load(ctx)
			require.NoError(t, err)

			assert.Equal(t, settings.Fields(), loaded.Fields())
			assert.Equal(t, settings.WindowAttributes(), loaded.WindowAttributes())
			assert.False(t, loaded.ReloadRequired())
		})
	}
}

func TestFileRepository_DefaultsRoundTrip(t *testing.T) {
	for _, name := range []string{"config.yml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := NewFileRepository(filepath.Join(t.TempDir(), name), filesystem.New())

			require.NoError(t, repo.Save(ctx, entity.DefaultSettings()))
			loaded, err := repo.Load(ctx)
			require.NoError(t, err)

			assert.Equal(t, entity.DefaultSettings().Fields(), loaded.Fields())
			assert.False(t, loaded.Position().IsSet())
		})
	}
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	path, err := GetSettingsFile()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, ".dev", "deskclock", "config.yml"), path)
}

func TestGetXDGDirs_HonoursXDGVariables(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	path, err := GetSettingsFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cfg/deskclock/config.yml", path)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state/deskclock/logs", logDir)
}
