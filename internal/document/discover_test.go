package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x: y\n"), 0o644))
	}
}

func TestDiscoverSortsByIdentifier(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "fr.yml", "de.yaml", "en.yml", "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yml"), 0o755))

	sources, err := Discover(dir, "", "")
	require.NoError(t, err)
	ids := make([]string, 0, len(sources))
	for _, src := range sources {
		ids = append(ids, src.ID)
	}
	assert.Equal(t, []string{"de", "en", "fr"}, ids)
	assert.Equal(t, filepath.Join(dir, "de.yaml"), sources[0].Path)
}

func TestDiscoverPatternAndPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "client.en.yml", "client.zh_CN.yml", "server.en.yml")

	sources, err := Discover(dir, "client.*.yml", "client.")
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "en", sources[0].ID)
	assert.Equal(t, "zh_CN", sources[1].ID)
}

func TestDiscoverRejectsDuplicateIdentifiers(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "en.yml", "en.yaml")

	_, err := Discover(dir, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `locale "en" defined twice`)
}

func TestDiscoverEmptyDirectory(t *testing.T) {
	_, err := Discover(t.TempDir(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no locale documents found")
}

func TestDiscoverMissingDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), "", "")
	require.Error(t, err)
}

func TestIsDocumentPath(t *testing.T) {
	assert.True(t, IsDocumentPath("locales/en.yml"))
	assert.True(t, IsDocumentPath("locales/en.YAML"))
	assert.False(t, IsDocumentPath("locales/en.json"))
}
