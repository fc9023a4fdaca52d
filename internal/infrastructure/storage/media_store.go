package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// MediaStore performs the filesystem side of ingestion: staging uploads in
// a temp directory and moving them into the media tree.
type MediaStore struct {
	tempDir string
	log     zerolog.Logger
}

// NewMediaStore creates the store and its temp directory.
func NewMediaStore(tempDir string, log zerolog.Logger) (*MediaStore, error) {
	if strings.TrimSpace(tempDir) == "" {
		return nil, fmt.Errorf("temp upload directory is required")
	}
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp upload directory: %w", err)
	}
	return &MediaStore{
		tempDir: tempDir,
		log:     log.With().Str("component", "media-store").Logger(),
	}, nil
}

// Stage writes an incoming upload stream to a temp file and returns its
// path and size.
func (m *MediaStore) Stage(body io.Reader) (string, int64, error) {
	tmp, err := os.CreateTemp(m.tempDir, "upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("create temp file: %w", err)
	}

	written, err := io.Copy(tmp, body)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", 0, fmt.Errorf("stage upload: %w", err)
	}
	return tmp.Name(), written, nil
}

// Discard removes a staged file that never made it into the library.
func (m *MediaStore) Discard(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		m.log.Warn().Err(err).Str("path", path).Msg("discard staged upload failed")
	}
}

// EnsureDir creates the directory and any missing ancestors. Idempotent.
func (m *MediaStore) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return nil
}

// Place moves a staged file into dir under filename. An existing file of
// that name is never overwritten: the name gets the first free " (n)"
// suffix instead. Rename-into-place is atomic on the same volume; across
// volumes it degrades to copy+remove.
func (m *MediaStore) Place(src, dir, filename string) (string, error) {
	dest, err := collisionFreePath(dir, filename)
	if err != nil {
		return "", err
	}

	if err := os.Rename(src, dest); err != nil {
		// EXDEV when the temp dir and media root are different volumes.
		if copyErr := copyFile(src, dest); copyErr != nil {
			return "", fmt.Errorf("move uploaded file: %w", copyErr)
		}
		if rmErr := os.Remove(src); rmErr != nil {
			m.log.Warn().Err(rmErr).Str("path", src).Msg("staged file left behind after copy")
		}
	}

	m.log.Debug().Str("path", dest).Msg("file placed in media library")
	return dest, nil
}

// Remove deletes a placed file. Used as the compensating action when the
// catalog insert fails after the move.
func (m *MediaStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// Health checks that the temp directory is writable.
func (m *MediaStore) Health() error {
	probe := filepath.Join(m.tempDir, ".health_check")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("temp directory not writable: %w", err)
	}
	_ = os.Remove(probe)
	return nil
}

// collisionFreePath returns dir/filename, or the first dir/"name (n).ext"
// that does not exist yet. Deterministic for a given directory state.
func collisionFreePath(dir, filename string) (string, error) {
	candidate := filepath.Join(dir, filename)
	if !exists(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for n := 1; n < 10000; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if !exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free filename for %s in %s", filename, dir)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dest)
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		_ = os.Remove(dest)
		return err
	}
	return out.Close()
}
