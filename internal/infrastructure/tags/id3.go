// Package tags reads embedded descriptive metadata from audio files.
package tags

import (
	"fmt"

	"github.com/bogem/id3v2"

	"medianet/internal/domain/media"
)

// ID3Reader extracts artist/album/title from ID3v2 tag blocks. Read-only;
// the file is never modified.
type ID3Reader struct{}

func NewID3Reader() *ID3Reader {
	return &ID3Reader{}
}

// ReadAudioTags returns the embedded tags. A file without a tag block
// yields empty fields rather than an error; an unreadable or corrupt tag
// block is an error the caller treats as a soft failure.
func (r *ID3Reader) ReadAudioTags(path string) (media.Tags, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return media.Tags{}, fmt.Errorf("parse id3 tag: %w", err)
	}
	defer tag.Close()

	return media.Tags{
		Artist: tag.Artist(),
		Album:  tag.Album(),
		Title:  tag.Title(),
	}, nil
}
