package usecase

import (
	"context"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/logging"
)

// InstallDesktopInput contains the input for the install operation.
type InstallDesktopInput struct {
	IconData []byte
}

// InstallDesktopUseCase installs the desktop entry and icon.
type InstallDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewInstallDesktopUseCase creates a new InstallDesktopUseCase.
func NewInstallDesktopUseCase(desktop port.DesktopIntegration) *InstallDesktopUseCase {
	return &InstallDesktopUseCase{desktop: desktop}
}

// InstallDesktopOutput contains the result of the install operation.
type InstallDesktopOutput struct {
	DesktopPath        string
	IconPath           string
	WasDesktopExisting bool
	WasIconExisting    bool
}

// Execute installs the desktop file and, when data is given, the icon.
func (uc *InstallDesktopUseCase) Execute(ctx context.Context, input InstallDesktopInput) (*InstallDesktopOutput, error) {
	status, err := uc.desktop.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	output := &InstallDesktopOutput{
		WasDesktopExisting: status.DesktopFileInstalled,
		WasIconExisting:    status.IconInstalled,
	}

	if output.DesktopPath, err = uc.desktop.InstallDesktopFile(ctx); err != nil {
		return nil, err
	}
	if len(input.IconData) > 0 {
		if output.IconPath, err = uc.desktop.InstallIcon(ctx, input.IconData); err != nil {
			return nil, err
		}
	}

	logging.FromContext(ctx).Info().
		Str("desktop_path", output.DesktopPath).
		Str("icon_path", output.IconPath).
		Bool("was_desktop_existing", output.WasDesktopExisting).
		Msg("desktop install complete")

	return output, nil
}

// AutostartUseCase turns starting the overlay with the session on or off.
type AutostartUseCase struct {
	desktop port.DesktopIntegration
}

// NewAutostartUseCase creates a new AutostartUseCase.
func NewAutostartUseCase(desktop port.DesktopIntegration) *AutostartUseCase {
	return &AutostartUseCase{desktop: desktop}
}

// AutostartOutput contains the result of an autostart change.
type AutostartOutput struct {
	Path       string
	WasEnabled bool
	Enabled    bool
}

// Execute enables or disables autostart. Enabling rewrites an existing entry
// so it points at the current executable.
func (uc *AutostartUseCase) Execute(ctx context.Context, enable bool) (*AutostartOutput, error) {
	status, err := uc.desktop.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	output := &AutostartOutput{
		Path:       status.AutostartFilePath,
		WasEnabled: status.AutostartEnabled,
		Enabled:    enable,
	}

	if enable {
		if output.Path, err = uc.desktop.EnableAutostart(ctx); err != nil {
			return nil, err
		}
		return output, nil
	}

	if status.AutostartEnabled {
		if err := uc.desktop.DisableAutostart(ctx); err != nil {
			return nil, err
		}
	}
	return output, nil
}

// RemoveDesktopUseCase removes desktop integration files.
type RemoveDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewRemoveDesktopUseCase creates a new RemoveDesktopUseCase.
func NewRemoveDesktopUseCase(desktop port.DesktopIntegration) *RemoveDesktopUseCase {
	return &RemoveDesktopUseCase{desktop: desktop}
}

// RemoveDesktopOutput contains the result of the remove operation.
type RemoveDesktopOutput struct {
	WasDesktopInstalled bool
	WasIconInstalled    bool
	WasAutostart        bool
	RemovedDesktopPath  string
	RemovedIconPath     string
}

// Execute removes the autostart entry, the desktop file and the icon.
func (uc *RemoveDesktopUseCase) Execute(ctx context.Context) (*RemoveDesktopOutput, error) {
	status, err := uc.desktop.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	output := &RemoveDesktopOutput{
		WasDesktopInstalled: status.DesktopFileInstalled,
		WasIconInstalled:    status.IconInstalled,
		WasAutostart:        status.AutostartEnabled,
		RemovedDesktopPath:  status.DesktopFilePath,
		RemovedIconPath:     status.IconFilePath,
	}

	if err := uc.desktop.DisableAutostart(ctx); err != nil {
		return nil, err
	}
	if err := uc.desktop.RemoveDesktopFile(ctx); err != nil {
		return nil, err
	}
	if err := uc.desktop.RemoveIcon(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Bool("was_desktop_installed", output.WasDesktopInstalled).
		Bool("was_icon_installed", output.WasIconInstalled).
		Bool("was_autostart", output.WasAutostart).
		Msg("desktop integration removed")

	return output, nil
}
