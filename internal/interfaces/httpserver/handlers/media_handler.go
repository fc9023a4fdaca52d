package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"medianet/internal/config"
	mediadomain "medianet/internal/domain/media"
	"medianet/internal/infrastructure/metrics"
	"medianet/internal/infrastructure/storage"
	"medianet/internal/interfaces/httpserver/middlewares"
	"medianet/internal/interfaces/httpserver/responses"
)

// MediaHandler exposes the upload and listing endpoints for all four media
// kinds.
type MediaHandler struct {
	cfg     *config.Config
	service *mediadomain.Service
	store   *storage.MediaStore
	log     zerolog.Logger
}

func NewMediaHandler(cfg *config.Config, service *mediadomain.Service, store *storage.MediaStore, log zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		cfg:     cfg,
		service: service,
		store:   store,
		log:     log.With().Str("component", "media-handler").Logger(),
	}
}

// Upload handles the multipart POST for one kind: stage the file, then run
// the ingestion pipeline.
func (h *MediaHandler) Upload(kind mediadomain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "not logged in"})
			return
		}

		file, header, err := c.Request.FormFile("file")
		if err != nil {
			metrics.RecordUpload(string(kind), "rejected", 0)
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "no file uploaded"})
			return
		}
		defer file.Close()

		if header.Size > h.cfg.MaxUploadBytes {
			metrics.RecordUpload(string(kind), "rejected", 0)
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "file too large"})
			return
		}

		tempPath, size, err := h.store.Stage(file)
		if err != nil {
			h.log.Error().Err(err).Msg("staging upload failed")
			metrics.RecordUpload(string(kind), "error", 0)
			c.JSON(http.StatusInternalServerError, responses.ErrorResponse{Error: "could not store upload"})
			return
		}

		req := mediadomain.IngestRequest{
			UserID:   userID,
			Kind:     kind,
			TempPath: tempPath,
			Filename: header.Filename,
			Size:     size,
		}
		if kind == mediadomain.KindTVShow {
			req.ShowName = c.Request.FormValue("show_name")
			req.Season = atoiOrZero(c.Request.FormValue("season"))
			if raw := strings.TrimSpace(c.Request.FormValue("episode")); raw != "" {
				if ep, err := strconv.Atoi(raw); err == nil {
					req.Episode = &ep
				}
			}
		}

		rec, err := h.service.Ingest(c.Request.Context(), req)
		if err != nil {
			h.store.Discard(tempPath)
			h.log.Error().Err(err).Str("kind", string(kind)).Msg("ingest failed")
			metrics.RecordUpload(string(kind), "error", 0)
			responses.HandleError(c, err, "upload failed")
			return
		}

		metrics.RecordUpload(string(kind), "success", rec.SizeBytes)
		c.JSON(http.StatusOK, gin.H{
			"message": "upload stored",
			"record":  rec,
		})
	}
}

// List handles the session-gated listing page for one kind.
func (h *MediaHandler) List(kind mediadomain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "not logged in"})
			return
		}

		records, err := h.service.List(c.Request.Context(), kind, userID)
		if err != nil {
			h.log.Error().Err(err).Str("kind", string(kind)).Msg("listing failed")
			responses.HandleError(c, err, "listing failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"kind":    kind,
			"records": records,
		})
	}
}

// Dashboard handles GET /: per-kind record counts for the current user.
func (h *MediaHandler) Dashboard(c *gin.Context) {
	userID, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "not logged in"})
		return
	}

	counts, err := h.service.Counts(c.Request.Context(), userID)
	if err != nil {
		responses.HandleError(c, err, "dashboard failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": middlewares.CurrentUsername(c),
		"counts":   counts,
	})
}

func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
