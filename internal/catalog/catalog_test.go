package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0o644))
}

func TestScan_FindsZipsRecursively(t *testing.T) {
	roms := t.TempDir()
	writeFile(t, filepath.Join(roms, "mslug.zip"))
	writeFile(t, filepath.Join(roms, "shooters", "blazstar.zip"))
	writeFile(t, filepath.Join(roms, "notes.txt"))

	s := &Scanner{RomsDir: roms}
	games, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, games, 2)

	// Sorted by display name: Blazing Star, Metal Slug.
	assert.Equal(t, "Blazing Star", games[0].Name)
	assert.Equal(t, "shooters/blazstar.zip", games[0].Filename)
	assert.Equal(t, "Metal Slug", games[1].Name)
	assert.Equal(t, "mslug", games[1].Slug)
}

func TestScan_ExcludesBios(t *testing.T) {
	roms := t.TempDir()
	writeFile(t, filepath.Join(roms, "neogeo.zip"))
	writeFile(t, filepath.Join(roms, "mslug.zip"))

	s := &Scanner{RomsDir: roms}
	games, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "mslug", games[0].Slug)
}

func TestScan_MissingDirIsEmpty(t *testing.T) {
	s := &Scanner{RomsDir: filepath.Join(t.TempDir(), "nope")}
	games, err := s.Scan()
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestScan_ImageLookup(t *testing.T) {
	roms := t.TempDir()
	images := t.TempDir()
	writeFile(t, filepath.Join(roms, "mslug.zip"))
	writeFile(t, filepath.Join(roms, "garou.zip"))
	writeFile(t, filepath.Join(images, "mslug.webp"))

	s := &Scanner{RomsDir: roms, ImagesDir: images}
	games, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, games, 2)

	bySlug := map[string]Game{}
	for _, g := range games {
		bySlug[g.Slug] = g
	}
	assert.Equal(t, "/image/mslug.webp", bySlug["mslug"].Image)
	assert.Empty(t, bySlug["garou"].Image)
}

func TestDisplayName_Fallback(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"mslug", "Metal Slug"},
		{"kof98", "The King of Fighters '98"},
		{"some-homebrew_game", "Some Homebrew Game"},
		{"solo", "Solo"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, displayName(tt.slug))
	}
}
