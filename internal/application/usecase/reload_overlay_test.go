package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/port/mocks"
	"github.com/bnema/deskclock/internal/domain/entity"
)

func TestReloadOverlay_NoopWhenClean(t *testing.T) {
	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	store := reopen(t, &memoryRepository{})

	uc := NewReloadOverlayUseCase(store, window, 0)
	reloaded, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.False(t, reloaded)
}

func TestReloadOverlay_AppliesAttributesThenShows(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	store := reopen(t, &memoryRepository{})
	require.NoError(t, store.ToggleDraggable(ctx))

	want := port.WindowSpec{
		Attributes: entity.NewWindowAttributeSet(
			entity.AttrFrameless, entity.AttrNoTaskbarEntry, entity.AttrStaysOnTop,
		).Combined(),
		Style:    entity.DefaultClockStyle(),
		Position: entity.UnsetPoint(),
	}
	gomock.InOrder(
		window.EXPECT().Open(gomock.Any(), want).Return(nil),
		window.EXPECT().Show(gomock.Any()).Return(nil),
	)

	uc := NewReloadOverlayUseCase(store, window, 0)
	reloaded, err := uc.Execute(ctx)

	require.NoError(t, err)
	assert.True(t, reloaded)
	assert.False(t, store.ReloadRequired())
}

func TestReloadOverlay_ReopensWithCurrentStyle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	store := reopen(t, &memoryRepository{})
	style := entity.ClockStyle{Size: 64, Color: "#ff8800"}
	require.NoError(t, store.SetClockStyle(ctx, style))
	require.NoError(t, store.ToggleDraggable(ctx))

	gomock.InOrder(
		window.EXPECT().Open(gomock.Any(), gomock.Cond(func(spec port.WindowSpec) bool {
			return spec.Style == style
		})).Return(nil),
		window.EXPECT().Show(gomock.Any()).Return(nil),
	)

	uc := NewReloadOverlayUseCase(store, window, 0)
	reloaded, err := uc.Execute(ctx)

	require.NoError(t, err)
	assert.True(t, reloaded)
}

func TestReloadOverlay_WaitsForSettleDelay(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	store := reopen(t, &memoryRepository{})
	require.NoError(t, store.ToggleAlwaysShowTop(ctx))

	var openedAt time.Time
	window.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, port.WindowSpec) error {
			openedAt = time.Now()
			return nil
		})
	window.EXPECT().Show(gomock.Any()).DoAndReturn(func(context.Context) error {
		assert.GreaterOrEqual(t, time.Since(openedAt), 20*time.Millisecond)
		return nil
	})

	uc := NewReloadOverlayUseCase(store, window, 20*time.Millisecond)
	reloaded, err := uc.Execute(ctx)

	require.NoError(t, err)
	assert.True(t, reloaded)
}

func TestReloadOverlay_CancelledDuringSettleKeepsPending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	store := reopen(t, &memoryRepository{})
	require.NoError(t, store.ToggleAlwaysShowTop(ctx))

	window.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, port.WindowSpec) error {
			cancel()
			return nil
		})

	uc := NewReloadOverlayUseCase(store, window, time.Hour)
	reloaded, err := uc.Execute(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, reloaded)
	assert.True(t, store.ReloadRequired())
}

func TestReloadOverlay_OpenFailureKeepsPending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	store := reopen(t, &memoryRepository{})
	require.NoError(t, store.ToggleDraggable(ctx))

	openErr := errors.New("no display")
	window.EXPECT().Open(gomock.Any(), gomock.Any()).Return(openErr)

	uc := NewReloadOverlayUseCase(store, window, 0)
	reloaded, err := uc.Execute(ctx)

	require.ErrorIs(t, err, openErr)
	assert.False(t, reloaded)
	assert.True(t, store.ReloadRequired())
}

func TestNewReloadOverlayUseCase_ClampsNegativeDelay(t *testing.T) {
	uc := NewReloadOverlayUseCase(nil, nil, -time.Second)
	assert.Equal(t, time.Duration(0), uc.settleDelay)
}
