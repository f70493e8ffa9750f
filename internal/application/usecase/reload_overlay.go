package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/logging"
)

// DefaultSettleDelay is how long the window system needs between receiving
// new window attributes and showing the window again. Shorter waits leave the
// old attributes in effect on some compositors.
const DefaultSettleDelay = time.Second

// ReloadOverlayUseCase re-applies the window attributes to the live overlay
// after a toggle that changed them.
type ReloadOverlayUseCase struct {
	store       *SettingsStore
	window      port.OverlayWindow
	settleDelay time.Duration
}

// NewReloadOverlayUseCase creates the reload use case.
// A negative settleDelay is treated as zero.
func NewReloadOverlayUseCase(
	store *SettingsStore,
	window port.OverlayWindow,
	settleDelay time.Duration,
) *ReloadOverlayUseCase {
	if settleDelay < 0 {
		settleDelay = 0
	}
	return &ReloadOverlayUseCase{
		store:       store,
		window:      window,
		settleDelay: settleDelay,
	}
}

// Execute recreates the window when a reload is pending. It reports whether a
// reload happened. The pending flag is cleared only once the window is shown.
func (uc *ReloadOverlayUseCase) Execute(ctx context.Context) (bool, error) {
	if !uc.store.ReloadRequired() {
		return false, nil
	}

	log := logging.FromContext(ctx)
	spec := uc.store.WindowSpec()
	log.Debug().
		Stringer("attributes", uc.store.Attributes()).
		Dur("settle_delay", uc.settleDelay).
		Msg("reloading overlay window")

	if err := uc.window.Open(ctx, spec); err != nil {
		return false, fmt.Errorf("failed to apply window attributes: %w", err)
	}

	if err := settle(ctx, uc.settleDelay); err != nil {
		return false, err
	}

	if err := uc.window.Show(ctx); err != nil {
		return false, fmt.Errorf("failed to show overlay after reload: %w", err)
	}

	uc.store.Reloaded()
	log.Info().Stringer("attributes", uc.store.Attributes()).Msg("overlay window reloaded")
	return true, nil
}

func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
