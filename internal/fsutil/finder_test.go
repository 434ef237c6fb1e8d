package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"a.hcl", "b.txt", "nested/c.hcl", "nested/d.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
	}, files)

	files, err = FindFilesByExtension(dir, ".yaml", ".yml")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "nested", "d.yaml")}, files)
}

func TestFindFilesByExtensionFileRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.hcl")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	files, err := FindFilesByExtension(path, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	files, err = FindFilesByExtension(path, ".yaml")
	require.NoError(t, err)
	assert.Empty(t, files, "a non-matching file root yields nothing")
}

func TestFindFilesByExtensionMissingRoot(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "absent"), ".hcl")
	assert.Error(t, err)
}
