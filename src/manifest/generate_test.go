package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nimbus/src/manifest"
)

func TestGenerate_WritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, manifest.ConfigFile)

	require.NoError(t, manifest.Generate("demo", path))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", m.ProjectName())
	assert.Equal(t, []manifest.Table{manifest.Project, manifest.Build}, m.Tables())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(data), "[project]"), strings.Index(string(data), "[build]"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestGenerate_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, manifest.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("garbage that is not toml ["), 0o644))

	require.NoError(t, manifest.Generate("second", path))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "second", m.ProjectName())
}

func TestGenerate_MissingParentFails(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "does-not-exist")
	path := filepath.Join(parent, manifest.ConfigFile)

	err := manifest.Generate("demo", path)
	require.Error(t, err)

	var merr *manifest.ManifestError
	require.True(t, errors.As(err, &merr), "want *ManifestError, got %T", err)
	assert.Equal(t, manifest.WriteFailed, merr.Kind)
	assert.Equal(t, path, merr.Path)

	_, statErr := os.Stat(parent)
	assert.True(t, os.IsNotExist(statErr))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_DestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, manifest.ConfigFile)
	require.NoError(t, os.Mkdir(path, 0o755))

	err := manifest.Generate("demo", path)
	var merr *manifest.ManifestError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, manifest.WriteFailed, merr.Kind)

	// Only the directory we made remains; the temp file was cleaned up.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, manifest.ConfigFile, entries[0].Name())
}
