package port

import "context"

// DesktopIntegrationStatus represents the current state of desktop integration.
type DesktopIntegrationStatus struct {
	DesktopFileInstalled bool
	DesktopFilePath      string
	IconInstalled        bool
	IconFilePath         string
	AutostartEnabled     bool
	AutostartFilePath    string
	ExecutablePath       string
}

// DesktopIntegration installs the overlay into the desktop session.
type DesktopIntegration interface {
	// GetStatus checks the current desktop integration state.
	GetStatus(ctx context.Context) (*DesktopIntegrationStatus, error)

	// InstallDesktopFile writes the desktop entry to the XDG applications
	// directory and returns its path. Idempotent.
	InstallDesktopFile(ctx context.Context) (string, error)

	// InstallIcon writes the PNG icon to the XDG icons directory and returns
	// its path. Idempotent.
	InstallIcon(ctx context.Context, pngData []byte) (string, error)

	// RemoveDesktopFile removes the desktop entry. Returns nil if it doesn't exist.
	RemoveDesktopFile(ctx context.Context) error

	// RemoveIcon removes the icon file. Returns nil if it doesn't exist.
	RemoveIcon(ctx context.Context) error

	// EnableAutostart writes an XDG autostart entry so the overlay starts
	// with the session. Returns its path.
	EnableAutostart(ctx context.Context) (string, error)

	// DisableAutostart removes the autostart entry. Returns nil if it doesn't exist.
	DisableAutostart(ctx context.Context) error
}
