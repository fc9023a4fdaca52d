package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"medianet/internal/utils/platformerrors"
)

// Fallback values when tag extraction soft-fails: the upload still
// succeeds with defaults.
const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// Service orchestrates the upload-and-catalog pipeline: extract metadata,
// resolve the destination, move the file into place, write the catalog row.
type Service struct {
	library Library
	repo    Repository
	files   FileStore
	tags    TagReader
	log     zerolog.Logger
}

func NewService(library Library, repo Repository, files FileStore, tags TagReader, log zerolog.Logger) *Service {
	return &Service{
		library: library,
		repo:    repo,
		files:   files,
		tags:    tags,
		log:     log.With().Str("component", "media-service").Logger(),
	}
}

// Ingest runs the pipeline for one staged upload. Every fallible step either
// completes or the whole request fails with a distinguishable error; no step
// is retried. If the catalog insert fails after the file move succeeded the
// moved file is deleted again, and a failure of that compensating delete is
// surfaced as PARTIAL_FAILURE for operator reconciliation.
func (s *Service) Ingest(ctx context.Context, req IngestRequest) (*Record, error) {
	if req.UserID == 0 {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized, "no authenticated user", nil)
	}
	if req.TempPath == "" || req.Size == 0 {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "no file uploaded", nil)
	}
	if !req.Kind.Valid() {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, fmt.Sprintf("unknown media kind %q", req.Kind), nil)
	}

	filename := SanitizeFilename(req.Filename)

	rec := &Record{
		UserID:    req.UserID,
		Kind:      req.Kind,
		Filename:  filename,
		SizeBytes: req.Size,
	}

	switch req.Kind {
	case KindMusic:
		s.applyAudioTags(rec, req.TempPath, filename)
	case KindTVShow:
		if strings.TrimSpace(req.ShowName) == "" || req.Season < 1 {
			return nil, platformerrors.NewError(platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation, "invalid fields: show_name and a positive season are required", nil)
		}
		rec.ShowName = req.ShowName
		rec.Season = req.Season
		rec.Episode = req.Episode
	}

	if mt, err := mimetype.DetectFile(req.TempPath); err == nil {
		rec.MimeType = clampMimeType(mt.String())
	}

	dir := s.library.ResolveDir(req.Kind, ResolveFields{
		Artist:   rec.Artist,
		Album:    rec.Album,
		ShowName: rec.ShowName,
		Season:   rec.Season,
	})
	if err := s.files.EnsureDir(dir); err != nil {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeUpstream, "create destination directory", err)
	}

	finalPath, err := s.files.Place(req.TempPath, dir, filename)
	if err != nil {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeUpstream, "move uploaded file", err)
	}
	rec.Path = finalPath

	if err := s.repo.Insert(ctx, rec); err != nil {
		// Compensating action: the catalog row never existed, so the file
		// must not survive either.
		if rmErr := s.files.Remove(finalPath); rmErr != nil {
			s.log.Error().Err(rmErr).Str("path", finalPath).
				Msg("orphaned file left on disk after failed catalog insert")
			return nil, platformerrors.NewError(platformerrors.LayerDomain,
				platformerrors.ErrorTypePartialFailure,
				fmt.Sprintf("catalog insert failed and cleanup of %s also failed: %v", finalPath, rmErr), err)
		}
		return nil, platformerrors.AsError(platformerrors.LayerDomain, err, "insert catalog record")
	}

	s.log.Info().
		Str("kind", string(req.Kind)).
		Uint("user_id", req.UserID).
		Str("path", finalPath).
		Msg("media ingested")

	return rec, nil
}

// maxMimeTypeLen matches the catalog column width. Sniffed types longer
// than this (vendor types with parameters) are informational only and get
// truncated rather than failing the insert.
const maxMimeTypeLen = 255

func clampMimeType(mt string) string {
	if len(mt) > maxMimeTypeLen {
		return mt[:maxMimeTypeLen]
	}
	return mt
}

// applyAudioTags fills artist/album/title from embedded tags, falling back
// per-field on soft failure.
func (s *Service) applyAudioTags(rec *Record, path, filename string) {
	rec.Artist = UnknownArtist
	rec.Album = UnknownAlbum
	rec.Title = filename

	tags, err := s.tags.ReadAudioTags(path)
	if err != nil {
		s.log.Warn().Err(err).Str("file", filename).Msg("metadata extraction failed")
		return
	}
	if tags.Artist != "" {
		rec.Artist = tags.Artist
	}
	if tags.Album != "" {
		rec.Album = tags.Album
	}
	if tags.Title != "" {
		rec.Title = tags.Title
	}
}

// List returns the user's records of one kind in its canonical order.
func (s *Service) List(ctx context.Context, kind Kind, userID uint) ([]Record, error) {
	if userID == 0 {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized, "no authenticated user", nil)
	}
	if !kind.Valid() {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, fmt.Sprintf("unknown media kind %q", kind), nil)
	}
	return s.repo.List(ctx, kind, userID)
}

// Counts returns per-kind record counts for the user's dashboard.
func (s *Service) Counts(ctx context.Context, userID uint) (map[Kind]int64, error) {
	if userID == 0 {
		return nil, platformerrors.NewError(platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized, "no authenticated user", nil)
	}
	return s.repo.CountByKind(ctx, userID)
}
