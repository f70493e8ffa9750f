package overlay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/port/mocks"
	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/domain/entity"
)

// newStore opens a store over a mocked repository holding fields.
func newStore(t *testing.T, fields entity.SettingsFields) (*usecase.SettingsStore, *mocks.MockSettingsRepository) {
	t.Helper()
	settings, err := entity.RestoreSettings(fields)
	require.NoError(t, err)

	repo := mocks.NewMockSettingsRepository(t)
	repo.EXPECT().Exists(mock.Anything).Return(true, nil)
	repo.EXPECT().Load(mock.Anything).Return(settings, nil)
	repo.EXPECT().Location().Return("/tmp/config.yml").Maybe()

	store, err := usecase.OpenSettingsStore(context.Background(), repo)
	require.NoError(t, err)
	return store, repo
}

func draggableFields() entity.SettingsFields {
	return entity.SettingsFields{
		Draggable:     true,
		AlwaysShowTop: true,
		ClockStyle:    entity.DefaultClockStyle(),
	}
}

func fixedClock(h, m int) func() time.Time {
	return func() time.Time { return time.Date(2024, 5, 1, h, m, 30, 0, time.Local) }
}

func TestController_StartOpensWithSettings(t *testing.T) {
	ctx := context.Background()
	fields := draggableFields()
	fields.Position = entity.NewPoint(40, 50)
	store, _ := newStore(t, fields)

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	gomock.InOrder(
		window.EXPECT().Open(gomock.Any(), port.WindowSpec{
			Attributes: store.WindowAttributes(),
			Style:      entity.DefaultClockStyle(),
			Position:   entity.NewPoint(40, 50),
		}).Return(nil),
		window.EXPECT().SetText("09:05").Return(nil),
		window.EXPECT().Show(gomock.Any()).Return(nil),
	)

	c := NewController(store, window)
	c.now = fixedClock(9, 5)

	require.NoError(t, c.Start(ctx))
}

func TestController_TickOnlyRedrawsOnChange(t *testing.T) {
	store, _ := newStore(t, draggableFields())

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	window.EXPECT().SetText("23:59").Return(nil).Times(1)
	window.EXPECT().SetText("00:00").Return(nil).Times(1)

	c := NewController(store, window)
	c.now = fixedClock(23, 59)
	require.NoError(t, c.Tick())
	require.NoError(t, c.Tick())

	c.now = fixedClock(0, 0)
	require.NoError(t, c.Tick())
}

func TestController_DragMovesAndSavesPosition(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t, draggableFields())
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	gomock.InOrder(
		window.EXPECT().SetDragIndicator(true),
		window.EXPECT().Position().Return(100, 200),
		window.EXPECT().Move(110, 195).Return(nil),
		window.EXPECT().Position().Return(110, 195),
		window.EXPECT().Move(112, 195).Return(nil),
		window.EXPECT().SetDragIndicator(false),
		window.EXPECT().Position().Return(112, 195),
	)

	c := NewController(store, window)
	events := []port.OverlayEvent{
		{Kind: port.OverlayPointerPressed, X: 500, Y: 500},
		{Kind: port.OverlayPointerMoved, X: 510, Y: 495},
		{Kind: port.OverlayPointerMoved, X: 510, Y: 495},
		{Kind: port.OverlayPointerMoved, X: 512, Y: 495},
		{Kind: port.OverlayPointerReleased, X: 512, Y: 495},
	}
	for _, ev := range events {
		require.NoError(t, c.HandleEvent(ctx, ev))
	}

	assert.True(t, store.Position().Equal(entity.NewPoint(112, 195)))
	assert.False(t, store.ReloadRequired())
}

func TestController_MoveWithoutPressIsIgnored(t *testing.T) {
	store, _ := newStore(t, draggableFields())

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)

	c := NewController(store, window)
	require.NoError(t, c.HandleEvent(context.Background(), port.OverlayEvent{Kind: port.OverlayPointerMoved, X: 1, Y: 1}))
	require.NoError(t, c.HandleEvent(context.Background(), port.OverlayEvent{Kind: port.OverlayPointerReleased, X: 1, Y: 1}))
}

func TestController_InputTransparentWindowIgnoresPointer(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t, entity.SettingsFields{
		Hidable:    true,
		ClockStyle: entity.DefaultClockStyle(),
	})

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)

	c := NewController(store, window)
	for _, kind := range []port.OverlayEventKind{
		port.OverlayPointerPressed,
		port.OverlayPointerMoved,
		port.OverlayPointerReleased,
		port.OverlayPointerEntered,
		port.OverlayPointerLeft,
	} {
		require.NoError(t, c.HandleEvent(ctx, port.OverlayEvent{Kind: kind}))
	}
}

func TestController_HoverHidesWhenHidable(t *testing.T) {
	ctx := context.Background()
	fields := draggableFields()
	fields.Hidable = true
	store, _ := newStore(t, fields)

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	gomock.InOrder(
		window.EXPECT().SetClockVisible(false),
		window.EXPECT().SetClockVisible(true),
	)

	c := NewController(store, window)
	require.NoError(t, c.HandleEvent(ctx, port.OverlayEvent{Kind: port.OverlayPointerEntered}))
	require.NoError(t, c.HandleEvent(ctx, port.OverlayEvent{Kind: port.OverlayPointerLeft}))
}

func TestController_HoverKeepsClockWhenNotHidable(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t, draggableFields())

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	window.EXPECT().SetClockVisible(true)

	c := NewController(store, window)
	require.NoError(t, c.HandleEvent(ctx, port.OverlayEvent{Kind: port.OverlayPointerEntered}))
	require.NoError(t, c.HandleEvent(ctx, port.OverlayEvent{Kind: port.OverlayPointerLeft}))
}

func TestController_CloseRequestHides(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t, entity.SettingsFields{ClockStyle: entity.DefaultClockStyle()})

	ctrl := gomock.NewController(t)
	window := mocks.NewMockOverlayWindow(ctrl)
	window.EXPECT().Hide(gomock.Any()).Return(nil)

	c := NewController(store, window)
	require.NoError(t, c.HandleEvent(ctx, port.OverlayEvent{Kind: port.OverlayCloseRequested}))
}
