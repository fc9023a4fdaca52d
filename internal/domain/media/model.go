package media

import (
	"context"
	"time"
)

// Kind is a category of catalog record with its own schema and storage
// subtree.
type Kind string

const (
	KindMusic  Kind = "music"
	KindVideo  Kind = "videos"
	KindPhoto  Kind = "photos"
	KindTVShow Kind = "tvshows"
)

// Valid reports whether the kind is one of the four catalog kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindMusic, KindVideo, KindPhoto, KindTVShow:
		return true
	}
	return false
}

// Record is one stored media file's catalog row. Kind-specific fields are
// zero for the kinds that do not use them.
type Record struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`
	Kind   Kind `json:"kind"`

	// Music
	Artist string `json:"artist,omitempty"`
	Album  string `json:"album,omitempty"`
	Title  string `json:"title,omitempty"`

	// TV shows
	ShowName string `json:"show_name,omitempty"`
	Season   int    `json:"season,omitempty"`
	Episode  *int   `json:"episode,omitempty"`

	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	MimeType   string    `json:"mime_type,omitempty"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// IngestRequest carries one uploaded file, already staged in the temp
// directory, plus the form fields that accompanied it.
type IngestRequest struct {
	UserID   uint
	Kind     Kind
	TempPath string
	Filename string
	Size     int64

	// TV show form fields
	ShowName string
	Season   int
	Episode  *int
}

// Tags are the descriptive fields read from an audio file. Each field is
// independently optional.
type Tags struct {
	Artist string
	Album  string
	Title  string
}

// Repository defines catalog persistence scoped by user.
type Repository interface {
	Insert(ctx context.Context, rec *Record) error
	List(ctx context.Context, kind Kind, userID uint) ([]Record, error)
	CountByKind(ctx context.Context, userID uint) (map[Kind]int64, error)
}

// FileStore defines the filesystem side effects of ingestion.
type FileStore interface {
	// EnsureDir creates the directory and any missing ancestors.
	EnsureDir(dir string) error
	// Place moves the staged file into dir under filename, never
	// overwriting: on collision the name gets a " (n)" suffix. Returns the
	// final absolute path.
	Place(src, dir, filename string) (string, error)
	// Remove deletes a previously placed file (compensating action).
	Remove(path string) error
}

// TagReader reads embedded descriptive tags from an audio file.
type TagReader interface {
	ReadAudioTags(path string) (Tags, error)
}
