// Package catalog lists the games available to a host by scanning a ROM
// directory. The room coordinator treats the resulting descriptors as opaque
// payloads; only the browser host and controllers interpret them.
package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// biosSet is the shared BIOS archive, never a playable game.
const biosSet = "neogeo.zip"

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// Game describes one playable entry in the library.
type Game struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Filename string `json:"filename"`
	Image    string `json:"image,omitempty"`
}

// Scanner discovers games under a ROM directory, with optional cover images
// looked up by slug in a separate image directory.
type Scanner struct {
	RomsDir   string
	ImagesDir string
}

// Scan walks the ROM directory recursively and returns the games found,
// sorted by display name. A missing ROM directory yields an empty list, not
// an error: a host with no library is still allowed to run rooms.
func (s *Scanner) Scan() ([]Game, error) {
	if _, err := os.Stat(s.RomsDir); err != nil {
		if os.IsNotExist(err) {
			return []Game{}, nil
		}
		return nil, err
	}

	games := []Game{}
	err := filepath.WalkDir(s.RomsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := d.Name()
		if !strings.HasSuffix(base, ".zip") || base == biosSet {
			return nil
		}

		rel, err := filepath.Rel(s.RomsDir, path)
		if err != nil {
			return err
		}
		slug := strings.TrimSuffix(base, ".zip")

		games = append(games, Game{
			Name:     displayName(slug),
			Slug:     slug,
			Filename: filepath.ToSlash(rel),
			Image:    s.findImage(slug),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Name < games[j].Name
	})
	return games, nil
}

// displayName resolves a slug to its arcade title, falling back to
// title-casing hyphen/underscore separated words.
func displayName(slug string) string {
	if title, ok := romTitles[slug]; ok {
		return title
	}
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// findImage returns the URL path of a cover image for the slug, or "".
func (s *Scanner) findImage(slug string) string {
	if s.ImagesDir == "" {
		return ""
	}
	for _, ext := range imageExtensions {
		if _, err := os.Stat(filepath.Join(s.ImagesDir, slug+ext)); err == nil {
			return "/image/" + slug + ext
		}
	}
	return ""
}
