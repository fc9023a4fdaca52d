package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != 8083 {
		t.Errorf("HTTPPort = %d, want 8083", cfg.HTTPPort)
	}
	if cfg.MediaBase != "/NAS/MediaNet" {
		t.Errorf("MediaBase = %q, want /NAS/MediaNet", cfg.MediaBase)
	}
	if cfg.MusicPath != "Music" || cfg.TVShowPath != "TVShows" {
		t.Errorf("layout = %q/%q, want Music/TVShows", cfg.MusicPath, cfg.TVShowPath)
	}
	if cfg.DBMaxOpenConns != 5 {
		t.Errorf("DBMaxOpenConns = %d, want 5", cfg.DBMaxOpenConns)
	}
	if cfg.SessionCookie != "medianet_session" {
		t.Errorf("SessionCookie = %q, want medianet_session", cfg.SessionCookie)
	}
	if cfg.Addr() != ":8083" {
		t.Errorf("Addr() = %q, want :8083", cfg.Addr())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MEDIA_BASE", "/srv/media")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.HTTPPort)
	}
	if cfg.MediaBase != "/srv/media" {
		t.Errorf("MediaBase = %q, want /srv/media", cfg.MediaBase)
	}
	if cfg.SessionTTL.Hours() != 1 {
		t.Errorf("SessionTTL = %v, want 1h", cfg.SessionTTL)
	}
}

func TestLoad_LibraryFileOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	body := `{"base": "/mnt/library", "music": "Audio", "tvshows": "Series"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write library file: %v", err)
	}
	t.Setenv("MEDIA_CONFIG_FILE", path)
	t.Setenv("MUSIC_PATH", "EnvMusic")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MediaBase != "/mnt/library" {
		t.Errorf("MediaBase = %q, want /mnt/library", cfg.MediaBase)
	}
	if cfg.MusicPath != "Audio" {
		t.Errorf("MusicPath = %q, want Audio (file wins over env)", cfg.MusicPath)
	}
	if cfg.TVShowPath != "Series" {
		t.Errorf("TVShowPath = %q, want Series", cfg.TVShowPath)
	}
	// Keys absent from the file keep their env/default values.
	if cfg.VideoPath != "Videos" {
		t.Errorf("VideoPath = %q, want Videos", cfg.VideoPath)
	}
}

func TestLoad_MissingLibraryFile(t *testing.T) {
	t.Setenv("MEDIA_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.json"))
	if _, err := Load(); err == nil {
		t.Error("Load() succeeded with a missing media config file")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: 5432, DBUser: "u", DBPassword: "p", DBName: "medianet",
	}
	want := "host=db port=5432 user=u password=p dbname=medianet sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}

	cfg.DatabaseURL = "postgres://u:p@db:5432/medianet"
	if got := cfg.DSN(); got != cfg.DatabaseURL {
		t.Errorf("DSN() = %q, want DATABASE_URL passthrough", got)
	}
}
