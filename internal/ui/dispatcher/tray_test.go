package dispatcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/port/mocks"
	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/domain/entity"
	"github.com/bnema/deskclock/internal/ui/input"
)

func newStore(t *testing.T) (*usecase.SettingsStore, *mocks.MockSettingsRepository) {
	t.Helper()
	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Exists(mock.Anything).Return(true, nil)
	repo.EXPECT().Load(mock.Anything).Return(entity.DefaultSettings(), nil)
	repo.EXPECT().Location().Return("/tmp/config.yml").Maybe()

	store, err := usecase.OpenSettingsStore(context.Background(), repo)
	require.NoError(t, err)
	return store, repo
}

func TestDispatch_ToggleDraggableReloadsWindow(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	gomock.InOrder(
		window.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, spec port.WindowSpec) error {
				assert.False(t, spec.Attributes.Has(entity.AttrTransparentForInput))
				return nil
			}),
		window.EXPECT().Show(gomock.Any()).Return(nil),
	)

	d := NewTrayDispatcher(ctx, store, window, usecase.NewReloadOverlayUseCase(store, window, 0))
	require.NoError(t, d.Dispatch(ctx, input.CommandToggleDraggable))

	assert.True(t, store.Draggable())
	assert.False(t, store.ReloadRequired())
}

func TestDispatch_ToggleAlwaysShowTopReloadsWindow(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	window.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil)
	window.EXPECT().Show(gomock.Any()).Return(nil)

	d := NewTrayDispatcher(ctx, store, window, usecase.NewReloadOverlayUseCase(store, window, 0))
	require.NoError(t, d.Dispatch(ctx, input.CommandToggleAlwaysShowTop))

	assert.False(t, store.AlwaysShowTop())
	assert.False(t, store.ReloadRequired())
}

func TestDispatch_ToggleHidableDoesNotReload(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Twice()

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	// Turning hide-on-hover off makes a hidden clock visible again.
	window.EXPECT().SetClockVisible(true).Times(1)

	d := NewTrayDispatcher(ctx, store, window, usecase.NewReloadOverlayUseCase(store, window, 0))
	require.NoError(t, d.Dispatch(ctx, input.CommandToggleHidable))
	assert.True(t, store.Hidable())

	require.NoError(t, d.Dispatch(ctx, input.CommandToggleHidable))
	assert.False(t, store.Hidable())
	assert.False(t, store.ReloadRequired())
}

func TestDispatch_ShowAndClose(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	window.EXPECT().Show(gomock.Any()).Return(nil)
	window.EXPECT().Hide(gomock.Any()).Return(nil)

	d := NewTrayDispatcher(ctx, store, window, nil)
	require.NoError(t, d.Dispatch(ctx, input.CommandShow))
	require.NoError(t, d.Dispatch(ctx, input.CommandClose))
}

func TestDispatch_WithoutWindow(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	d := NewTrayDispatcher(ctx, store, nil, nil)

	assert.ErrorIs(t, d.Dispatch(ctx, input.CommandShow), ErrNoWindow)
	assert.ErrorIs(t, d.Dispatch(ctx, input.CommandClose), ErrNoWindow)

	// Settings still change and stay pending for the next overlay start.
	require.NoError(t, d.Dispatch(ctx, input.CommandToggleDraggable))
	assert.True(t, store.Draggable())
	assert.True(t, store.ReloadRequired())
}

func TestDispatch_Quit(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	d := NewTrayDispatcher(ctx, store, nil, nil)
	quit := false
	d.SetOnQuit(func() { quit = true })

	require.NoError(t, d.Dispatch(ctx, input.CommandQuit))
	assert.True(t, quit)
}

func TestDispatch_PersistFailureSkipsReload(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t)
	writeErr := errors.New("read-only filesystem")
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(writeErr).Once()

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)

	d := NewTrayDispatcher(ctx, store, window, usecase.NewReloadOverlayUseCase(store, window, 0))

	require.ErrorIs(t, d.Dispatch(ctx, input.CommandToggleDraggable), writeErr)
	assert.False(t, store.Draggable())
	assert.False(t, store.ReloadRequired())
}

func TestDispatch_UnknownCommand(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	d := NewTrayDispatcher(ctx, store, nil, nil)

	assert.Error(t, d.Dispatch(ctx, input.Command("explode")))
}
