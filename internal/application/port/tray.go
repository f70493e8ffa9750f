package port

import (
	"context"
	"errors"
)

// ErrNoHostTraySupport is returned when the desktop offers no system tray.
var ErrNoHostTraySupport = errors.New("no system tray detected on this system")

// TrayProbe checks the desktop for a system tray host.
type TrayProbe interface {
	Probe(ctx context.Context) error
}
