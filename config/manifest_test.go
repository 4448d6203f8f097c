package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(contents), 0o644))
}

func TestLoadManifestDefaultsSourceDirs(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `name = "hello"`)

	m, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "hello", m.Name)
	require.Equal(t, []string{"."}, m.SourceDirs)
	require.False(t, m.EnableCaching)
}

func TestLoadManifestHonorsExplicitSourceDirsAndCaching(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
name = "hello"
caching = true
source-dirs = ["src", "lib"]
`)

	m, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"src", "lib"}, m.SourceDirs)
	require.True(t, m.EnableCaching)
}

func TestLoadManifestRejectsMissingName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `caching = false`)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoadManifestRejectsInvalidIdentifierName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `name = "9-invalid"`)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoadManifestRejectsVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
name = "hello"
onyx-version = "9.9.9"
`)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoadManifestMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	require.Error(t, err)
}

func TestIsValidIdentifier(t *testing.T) {
	require.True(t, isValidIdentifier("hello"))
	require.True(t, isValidIdentifier("_hello2"))
	require.False(t, isValidIdentifier(""))
	require.False(t, isValidIdentifier("2hello"))
	require.False(t, isValidIdentifier("hello-world"))
}
