package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter(t *testing.T) {
	ctx := context.Background()
	fs := New()
	dir := filepath.Join(t.TempDir(), "a", "b")

	exists, err := fs.Exists(ctx, dir)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, fs.EnsureDir(ctx, dir))

	isDir, err := fs.IsDirectory(ctx, dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	exists, err = fs.Exists(ctx, file)
	require.NoError(t, err)
	assert.True(t, exists)

	isDir, err = fs.IsDirectory(ctx, file)
	require.NoError(t, err)
	assert.False(t, isDir)
}
