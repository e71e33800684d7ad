package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b/two.hcl", "a/one.hcl", "a/skip.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a", "one.hcl"),
		filepath.Join(dir, "b", "two.hcl"),
	}, files, "results are sorted and filtered by extension")

	_, err = FindFilesByExtension(dir, "")
	require.Error(t, err)

	_, err = FindFilesByExtension(filepath.Join(dir, "missing"), ".hcl")
	require.Error(t, err)
}
