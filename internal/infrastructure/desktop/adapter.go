// Package desktop provides desktop environment integration for Linux (XDG).
package desktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/logging"
)

const (
	appName         = "deskclock"
	desktopFileName = "deskclock.desktop"
	iconFileName    = "deskclock.png"
	filePerm        = 0644
	dirPerm         = 0755
)

// desktopFileTemplate is the freedesktop.org desktop entry format.
// %s placeholder for executable path.
const desktopFileTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=Desk Clock
GenericName=Desktop Clock
Comment=A small always-visible clock
Exec=%s run
Icon=deskclock
Terminal=false
Categories=Utility;Clock;
StartupNotify=false
StartupWMClass=deskclock
`

// autostartExtra is appended to the entry written to the autostart directory.
const autostartExtra = "X-GNOME-Autostart-enabled=true\nX-KDE-autostart-after=panel\n"

// Adapter implements port.DesktopIntegration with XDG files.
type Adapter struct {
	updateDesktopDB string
	executable      func() (string, error)
}

// New creates a new desktop integration adapter.
func New() *Adapter {
	a := &Adapter{executable: getExecutablePath}

	// Optional, helps with some DEs
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		a.updateDesktopDB = path
	}
	return a
}

func xdgHome(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

func getDesktopFilePath() (string, error) {
	dataHome, err := xdgHome("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "applications", desktopFileName), nil
}

// getIconFilePath uses the hicolor theme; the icon is 32x32.
func getIconFilePath() (string, error) {
	dataHome, err := xdgHome("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "icons", "hicolor", "32x32", "apps", iconFileName), nil
}

func getAutostartFilePath() (string, error) {
	configHome, err := xdgHome("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "autostart", desktopFileName), nil
}

// getExecutablePath returns the path to the deskclock executable.
func getExecutablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GetStatus checks the current desktop integration state.
func (a *Adapter) GetStatus(ctx context.Context) (*port.DesktopIntegrationStatus, error) {
	status := &port.DesktopIntegrationStatus{}

	var err error
	if status.DesktopFilePath, err = getDesktopFilePath(); err != nil {
		return nil, err
	}
	if status.IconFilePath, err = getIconFilePath(); err != nil {
		return nil, err
	}
	if status.AutostartFilePath, err = getAutostartFilePath(); err != nil {
		return nil, err
	}
	status.DesktopFileInstalled = exists(status.DesktopFilePath)
	status.IconInstalled = exists(status.IconFilePath)
	status.AutostartEnabled = exists(status.AutostartFilePath)

	if execPath, execErr := a.executable(); execErr == nil {
		status.ExecutablePath = execPath
	}

	logging.FromContext(ctx).Debug().
		Bool("desktop_installed", status.DesktopFileInstalled).
		Bool("icon_installed", status.IconInstalled).
		Bool("autostart", status.AutostartEnabled).
		Str("exec_path", status.ExecutablePath).
		Msg("desktop integration status")

	return status, nil
}

// InstallDesktopFile writes the desktop entry to the XDG applications directory.
func (a *Adapter) InstallDesktopFile(ctx context.Context) (string, error) {
	desktopPath, err := getDesktopFilePath()
	if err != nil {
		return "", err
	}
	if err := a.writeEntry(desktopPath, ""); err != nil {
		return "", err
	}
	logging.FromContext(ctx).Info().Str("path", desktopPath).Msg("desktop file installed")

	a.updateDatabase(ctx, filepath.Dir(desktopPath))
	return desktopPath, nil
}

// EnableAutostart writes the desktop entry to the XDG autostart directory.
func (a *Adapter) EnableAutostart(ctx context.Context) (string, error) {
	autostartPath, err := getAutostartFilePath()
	if err != nil {
		return "", err
	}
	if err := a.writeEntry(autostartPath, autostartExtra); err != nil {
		return "", err
	}
	logging.FromContext(ctx).Info().Str("path", autostartPath).Msg("autostart enabled")
	return autostartPath, nil
}

func (a *Adapter) writeEntry(path, extra string) error {
	execPath, err := a.executable()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	content := fmt.Sprintf(desktopFileTemplate, execPath) + extra
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write desktop file: %w", err)
	}
	return nil
}

func (a *Adapter) updateDatabase(ctx context.Context, dir string) {
	if a.updateDesktopDB == "" {
		return
	}
	if err := exec.CommandContext(ctx, a.updateDesktopDB, dir).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
	}
}

// InstallIcon writes the icon file to the XDG icons directory.
func (a *Adapter) InstallIcon(ctx context.Context, pngData []byte) (string, error) {
	iconPath, err := getIconFilePath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(iconPath), dirPerm); err != nil {
		return "", fmt.Errorf("create icons dir: %w", err)
	}
	if err := os.WriteFile(iconPath, pngData, filePerm); err != nil {
		return "", fmt.Errorf("write icon file: %w", err)
	}
	logging.FromContext(ctx).Info().Str("path", iconPath).Msg("icon file installed")
	return iconPath, nil
}

// RemoveDesktopFile removes the desktop entry from the XDG applications directory.
func (a *Adapter) RemoveDesktopFile(ctx context.Context) error {
	desktopPath, err := getDesktopFilePath()
	if err != nil {
		return err
	}
	removed, err := remove(ctx, desktopPath)
	if err != nil {
		return fmt.Errorf("remove desktop file: %w", err)
	}
	if removed {
		a.updateDatabase(ctx, filepath.Dir(desktopPath))
	}
	return nil
}

// RemoveIcon removes the icon file from the XDG icons directory.
func (a *Adapter) RemoveIcon(ctx context.Context) error {
	iconPath, err := getIconFilePath()
	if err != nil {
		return err
	}
	if _, err := remove(ctx, iconPath); err != nil {
		return fmt.Errorf("remove icon file: %w", err)
	}
	return nil
}

// DisableAutostart removes the autostart entry.
func (a *Adapter) DisableAutostart(ctx context.Context) error {
	autostartPath, err := getAutostartFilePath()
	if err != nil {
		return err
	}
	if _, err := remove(ctx, autostartPath); err != nil {
		return fmt.Errorf("remove autostart entry: %w", err)
	}
	return nil
}

func remove(ctx context.Context, path string) (bool, error) {
	log := logging.FromContext(ctx)
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("file not found (already removed)")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	log.Info().Str("path", path).Msg("file removed")
	return true, nil
}

var _ port.DesktopIntegration = (*Adapter)(nil)
