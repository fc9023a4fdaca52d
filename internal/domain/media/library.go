package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"medianet/internal/config"
)

// Library is the configured media root plus one subdirectory per kind.
// Read once at startup and immutable for the process lifetime.
type Library struct {
	Base      string
	MusicDir  string
	VideoDir  string
	PhotoDir  string
	TVShowDir string
}

// NewLibrary builds the library layout from configuration.
func NewLibrary(cfg *config.Config) Library {
	return Library{
		Base:      cfg.MediaBase,
		MusicDir:  cfg.MusicPath,
		VideoDir:  cfg.VideoPath,
		PhotoDir:  cfg.PhotoPath,
		TVShowDir: cfg.TVShowPath,
	}
}

// ResolveFields are the descriptive fields that shape a destination
// directory.
type ResolveFields struct {
	Artist   string
	Album    string
	ShowName string
	Season   int
}

// ResolveDir maps a kind plus descriptive fields to the canonical
// destination directory. Pure: no I/O, deterministic for equal inputs.
// Variable components are sanitized so tag or form content cannot escape
// the media root.
func (l Library) ResolveDir(kind Kind, fields ResolveFields) string {
	switch kind {
	case KindMusic:
		return filepath.Join(l.Base, l.MusicDir,
			sanitizeComponent(fields.Artist),
			sanitizeComponent(fields.Album),
		)
	case KindTVShow:
		return filepath.Join(l.Base, l.TVShowDir,
			sanitizeComponent(fields.ShowName),
			fmt.Sprintf("Season %d", fields.Season),
		)
	case KindVideo:
		return filepath.Join(l.Base, l.VideoDir)
	case KindPhoto:
		return filepath.Join(l.Base, l.PhotoDir)
	}
	return l.Base
}

// sanitizeComponent makes a single path component safe: separators and NUL
// are stripped, dot-only names are replaced, surrounding dots and spaces
// trimmed. An empty result becomes "_" so the component never vanishes
// from the resolved path.
func sanitizeComponent(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return -1
		}
		return r
	}, raw)

	cleaned = strings.Trim(cleaned, ". ")
	if cleaned == "" {
		return "_"
	}
	return cleaned
}

// SanitizeFilename makes an original upload filename safe to place in a
// destination directory.
func SanitizeFilename(raw string) string {
	// Strip any client-supplied directory prefix first.
	base := filepath.Base(filepath.ToSlash(raw))
	return sanitizeComponent(base)
}
