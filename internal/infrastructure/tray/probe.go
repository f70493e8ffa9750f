// Package tray provides the system tray menu of the overlay.
package tray

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/logging"
)

// Bus names of the StatusNotifierItem hosts the tray can register with.
var watcherNames = []string{
	"org.kde.StatusNotifierWatcher",
	"org.freedesktop.StatusNotifierWatcher",
}

// Compile-time interface check.
var _ port.TrayProbe = (*DBusProbe)(nil)

// DBusProbe looks for a StatusNotifierWatcher on the session bus.
type DBusProbe struct {
	hasOwner func(ctx context.Context, name string) (bool, error)
}

// NewDBusProbe creates a probe using the session bus.
func NewDBusProbe() *DBusProbe {
	return &DBusProbe{hasOwner: sessionBusHasOwner}
}

// Probe implements port.TrayProbe.
func (p *DBusProbe) Probe(ctx context.Context) error {
	log := logging.FromContext(ctx)

	for _, name := range watcherNames {
		ok, err := p.hasOwner(ctx, name)
		if err != nil {
			log.Debug().Err(err).Msg("tray probe: cannot query D-Bus session bus")
			return fmt.Errorf("%w: %w", port.ErrNoHostTraySupport, err)
		}
		if ok {
			log.Debug().Str("watcher", name).Msg("tray probe: status notifier host found")
			return nil
		}
	}
	return port.ErrNoHostTraySupport
}

func sessionBusHasOwner(ctx context.Context, name string) (bool, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return false, err
	}

	var owned bool
	err = conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.NameHasOwner", 0, name).Store(&owned)
	if err != nil {
		return false, err
	}
	return owned, nil
}
