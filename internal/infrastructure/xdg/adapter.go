package xdg

import (
	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) LogDir() (string, error) {
	return config.GetLogDir()
}

func (a *Adapter) SettingsFile() (string, error) {
	return config.GetSettingsFile()
}

func (a *Adapter) LockFile() (string, error) {
	return config.GetLockFile()
}

var _ port.XDGPaths = (*Adapter)(nil)
