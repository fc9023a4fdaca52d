package handlers

import (
	"github.com/rs/zerolog"

	"medianet/internal/config"
	mediadomain "medianet/internal/domain/media"
	userdomain "medianet/internal/domain/user"
	"medianet/internal/infrastructure/storage"
)

// Provider wires HTTP handlers.
type Provider struct {
	Auth  *AuthHandler
	Media *MediaHandler
	Pages *PagesHandler
}

func NewProvider(cfg *config.Config, users *userdomain.Service, media *mediadomain.Service, store *storage.MediaStore, log zerolog.Logger) *Provider {
	return &Provider{
		Auth:  NewAuthHandler(cfg, users, log),
		Media: NewMediaHandler(cfg, media, store, log),
		Pages: NewPagesHandler(),
	}
}
