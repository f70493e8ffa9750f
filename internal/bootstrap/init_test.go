package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/port/mocks"
	"github.com/bnema/deskclock/internal/domain/entity"
)

type stubProbe struct{ err error }

func (p stubProbe) Probe(context.Context) error { return p.err }

type stubFonts struct {
	path string
	err  error
}

func (f stubFonts) ResolveFontFile(_ context.Context, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return f.path, f.err
}

func loadedRepository(t *testing.T) *mocks.MockSettingsRepository {
	t.Helper()
	settings, err := entity.RestoreSettings(entity.SettingsFields{
		Draggable:     true,
		AlwaysShowTop: true,
		ClockStyle:    entity.DefaultClockStyle(),
	})
	require.NoError(t, err)

	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Exists(mock.Anything).Return(true, nil).Maybe()
	repo.EXPECT().Load(mock.Anything).Return(settings, nil).Maybe()
	repo.EXPECT().Location().Return("/tmp/config.yml").Maybe()
	return repo
}

func TestRunParallelInit(t *testing.T) {
	result, err := RunParallelInit(context.Background(), ParallelInitInput{
		Tray:     stubProbe{},
		Fonts:    stubFonts{path: "/fonts/DejaVuSans.ttf"},
		Settings: loadedRepository(t),
	})

	require.NoError(t, err)
	assert.Equal(t, "/fonts/DejaVuSans.ttf", result.FontFile)
	require.NotNil(t, result.Store)
	assert.True(t, result.Store.Draggable())
}

func TestRunParallelInit_FontOverride(t *testing.T) {
	result, err := RunParallelInit(context.Background(), ParallelInitInput{
		Tray:         stubProbe{},
		Fonts:        stubFonts{err: port.ErrNoFont},
		Settings:     loadedRepository(t),
		FontOverride: "/home/me/Clock.ttf",
	})

	require.NoError(t, err)
	assert.Equal(t, "/home/me/Clock.ttf", result.FontFile)
}

func TestRunParallelInit_NoTray(t *testing.T) {
	_, err := RunParallelInit(context.Background(), ParallelInitInput{
		Tray:     stubProbe{err: port.ErrNoHostTraySupport},
		Fonts:    stubFonts{path: "/fonts/DejaVuSans.ttf"},
		Settings: loadedRepository(t),
	})

	assert.ErrorIs(t, err, port.ErrNoHostTraySupport)
}

func TestRunParallelInit_NoTrayLeavesSettingsUntouched(t *testing.T) {
	// No expectations: any Exists, Load or Save call fails the test.
	repo := mocks.NewMockSettingsRepository(t)

	_, err := RunParallelInit(context.Background(), ParallelInitInput{
		Tray:     stubProbe{err: port.ErrNoHostTraySupport},
		Fonts:    stubFonts{path: "/fonts/DejaVuSans.ttf"},
		Settings: repo,
	})

	assert.ErrorIs(t, err, port.ErrNoHostTraySupport)
	repo.AssertNotCalled(t, "Exists", mock.Anything)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRunParallelInit_NoFont(t *testing.T) {
	_, err := RunParallelInit(context.Background(), ParallelInitInput{
		Tray:     stubProbe{},
		Fonts:    stubFonts{err: port.ErrNoFont},
		Settings: loadedRepository(t),
	})

	assert.ErrorIs(t, err, port.ErrNoFont)
}

func TestRunParallelInit_SettingsLoadFailure(t *testing.T) {
	loadErr := errors.New("settings file /tmp/config.yml: missing fontColor")
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Exists(mock.Anything).Return(true, nil)
	repo.EXPECT().Load(mock.Anything).Return(nil, loadErr)
	repo.EXPECT().Location().Return("/tmp/config.yml").Maybe()

	_, err := RunParallelInit(context.Background(), ParallelInitInput{
		Tray:     stubProbe{},
		Fonts:    stubFonts{path: "/fonts/DejaVuSans.ttf"},
		Settings: repo,
	})

	assert.ErrorIs(t, err, loadErr)
}
