package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"medianet/internal/auth"
	"medianet/internal/config"
	mediadomain "medianet/internal/domain/media"
	userdomain "medianet/internal/domain/user"
	"medianet/internal/infrastructure/database"
	"medianet/internal/infrastructure/logger"
	"medianet/internal/infrastructure/observability"
	mediarepo "medianet/internal/infrastructure/repository/media"
	userrepo "medianet/internal/infrastructure/repository/user"
	"medianet/internal/infrastructure/storage"
	"medianet/internal/infrastructure/tags"
	"medianet/internal/interfaces/httpserver"
	"medianet/internal/interfaces/httpserver/handlers"
)

// Application ties the HTTP server to the process lifecycle.
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DSN(),
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	store, err := storage.NewMediaStore(cfg.TempUploadDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize media store")
	}

	sessions := auth.NewMemorySessionStore(cfg.SessionTTL)

	users := userdomain.NewService(userrepo.NewRepository(db), sessions, log)
	media := mediadomain.NewService(
		mediadomain.NewLibrary(cfg),
		mediarepo.NewRepository(db),
		store,
		tags.NewID3Reader(),
		log,
	)

	provider := handlers.NewProvider(cfg, users, media, store, log)
	server := httpserver.New(cfg, log, provider, sessions, store)
	app := NewApplication(server, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
