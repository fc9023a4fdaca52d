package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the media server.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"medianet"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"PORT" envDefault:"8083"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database. DATABASE_URL wins; otherwise a DSN is composed from the
	// discrete DB_* variables.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort      int    `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`

	// Database Connection Pool
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Media library layout
	MediaBase  string `env:"MEDIA_BASE" envDefault:"/NAS/MediaNet"`
	MusicPath  string `env:"MUSIC_PATH" envDefault:"Music"`
	VideoPath  string `env:"VIDEO_PATH" envDefault:"Videos"`
	PhotoPath  string `env:"PHOTO_PATH" envDefault:"Photos"`
	TVShowPath string `env:"TVSHOW_PATH" envDefault:"TVShows"`

	// Optional JSON file overriding the five layout values above.
	MediaConfigFile string `env:"MEDIA_CONFIG_FILE"`

	// Uploads
	TempUploadDir  string `env:"TEMP_UPLOAD_DIR" envDefault:"temp"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"4294967296"`

	// Sessions
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"medianet_session"`
}

// libraryFile mirrors the JSON layout file used by later server iterations:
// {"base": ..., "music": ..., "videos": ..., "photos": ..., "tvshows": ...}
type libraryFile struct {
	Base    string `json:"base"`
	Music   string `json:"music"`
	Videos  string `json:"videos"`
	Photos  string `json:"photos"`
	TVShows string `json:"tvshows"`
}

// Load parses environment variables into Config and applies the optional
// JSON library file on top.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if cfg.MediaConfigFile != "" {
		if err := cfg.applyLibraryFile(cfg.MediaConfigFile); err != nil {
			return nil, err
		}
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 4 << 30
	}
	if strings.TrimSpace(cfg.MediaBase) == "" {
		return nil, fmt.Errorf("MEDIA_BASE must not be empty")
	}
	return cfg, nil
}

func (c *Config) applyLibraryFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read media config file: %w", err)
	}
	var lf libraryFile
	if err := json.Unmarshal(raw, &lf); err != nil {
		return fmt.Errorf("parse media config file: %w", err)
	}
	if lf.Base != "" {
		c.MediaBase = lf.Base
	}
	if lf.Music != "" {
		c.MusicPath = lf.Music
	}
	if lf.Videos != "" {
		c.VideoPath = lf.Videos
	}
	if lf.Photos != "" {
		c.PhotoPath = lf.Photos
	}
	if lf.TVShows != "" {
		c.TVShowPath = lf.TVShows
	}
	return nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
