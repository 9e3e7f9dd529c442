package rewrite_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantfix/internal/rewrite"
)

func writeTemp(t *testing.T, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repo_test.go")
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, "package repository\n", 0600)

	f, err := rewrite.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Equal(t, "package repository\n", f.Content)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0600), f.Mode)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := rewrite.Load(filepath.Join(t.TempDir(), "missing_test.go"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = rewrite.Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestSaveInPlace(t *testing.T) {
	path := writeTemp(t, "old\n", 0644)
	f, err := rewrite.Load(path)
	require.NoError(t, err)

	require.NoError(t, f.Save("", "new\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestSaveUnchangedStillWrites(t *testing.T) {
	path := writeTemp(t, "same\n", 0644)
	f, err := rewrite.Load(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	require.NoError(t, f.Save("", f.Content))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "same\n", string(data))
}

func TestSaveToOtherPath(t *testing.T) {
	path := writeTemp(t, "old\n", 0644)
	f, err := rewrite.Load(path)
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "patched_test.go")
	require.NoError(t, f.Save(dest, "new\n"))

	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(orig))

	out, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(out))
}

func TestSaveError(t *testing.T) {
	f := &rewrite.File{Path: filepath.Join(t.TempDir(), "no", "such", "dir", "x_test.go")}
	err := f.Save("", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
}

func TestDiff(t *testing.T) {
	f := &rewrite.File{Path: "x_test.go", Content: "a\nb\nc\n"}

	out, err := f.Diff("a\nb\nc\n")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = f.Diff("a\nb\nb2\nc\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "--- a/x_test.go\n+++ b/x_test.go\n"), out)
	assert.Contains(t, out, "+b2\n")
	assert.NotContains(t, out, "-b\n")
}
