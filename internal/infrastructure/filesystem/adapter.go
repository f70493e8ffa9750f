package filesystem

import (
	"context"
	"os"

	"github.com/bnema/deskclock/internal/application/port"
)

const dirPerm = 0o755

// Adapter implements port.FileSystem using the OS filesystem.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (a *Adapter) IsDirectory(_ context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (a *Adapter) EnsureDir(_ context.Context, path string) error {
	return os.MkdirAll(path, dirPerm)
}

var _ port.FileSystem = (*Adapter)(nil)
