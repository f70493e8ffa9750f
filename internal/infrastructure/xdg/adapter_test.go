package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_FollowsXDGVariables(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	adapter := New()

	configDir, err := adapter.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config/deskclock", configDir)

	settings, err := adapter.SettingsFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config/deskclock/config.yml", settings)

	stateDir, err := adapter.StateDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/state/deskclock", stateDir)

	logDir, err := adapter.LogDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/state/deskclock/logs", logDir)

	lockFile, err := adapter.LockFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/state/deskclock/deskclock.lock", lockFile)
}

func TestAdapter_FallsBackToHome(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	adapter := New()

	configDir, err := adapter.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "deskclock"), configDir)

	stateDir, err := adapter.StateDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "state", "deskclock"), stateDir)
}
