package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/deskclock/internal/cli/styles"
)

func TestLastLines(t *testing.T) {
	input := "one\ntwo\nthree\nfour\n"

	got, err := lastLines(strings.NewReader(input), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four"}, got)

	got, err = lastLines(strings.NewReader(input), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three", "four"}, got)

	got, err = lastLines(strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestColorizeLogLine_JSON(t *testing.T) {
	theme := styles.NewTheme()
	line := `{"level":"info","time":"2025-01-02T10:11:12Z","message":"overlay running"}`

	got := colorizeLogLine(line, theme)

	assert.Contains(t, got, "overlay running")
	assert.Contains(t, got, "INF")
	assert.Contains(t, got, "10:11:12")
}

func TestColorizeLogLine_PlainTextKept(t *testing.T) {
	theme := styles.NewTheme()
	assert.Contains(t, colorizeLogLine("10:00:00 WRN using default clock colour", theme), "using default clock colour")
	assert.Equal(t, "plain", colorizeLogLine("plain", theme))
}

func TestRotatedLogs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"deskclock.log",
		"deskclock-2025-01-02T10-11-12.000.log.gz",
		"deskclock-2025-01-03T10-11-12.000.log",
		"other.log",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	got, err := rotatedLogs(dir)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, path := range got {
		assert.NotEqual(t, "deskclock.log", filepath.Base(path))
	}
}
