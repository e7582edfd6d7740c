package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.dmp", "a.dmp", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	got, err := ExpandGlobs([]string{
		filepath.Join(dir, "*.dmp"),
		filepath.Join(dir, "a.dmp"),
		filepath.Join(dir, "missing.dmp"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.dmp"),
		filepath.Join(dir, "b.dmp"),
		filepath.Join(dir, "missing.dmp"),
	}, got)
}

func TestExpandGlobs_InvalidPattern(t *testing.T) {
	_, err := ExpandGlobs([]string{"[unclosed"})
	assert.ErrorContains(t, err, "invalid glob pattern")
}

func TestExpandGlobs_Empty(t *testing.T) {
	got, err := ExpandGlobs(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
