package routes

import (
	"github.com/gin-gonic/gin"

	"medianet/internal/auth"
	"medianet/internal/config"
	mediadomain "medianet/internal/domain/media"
	"medianet/internal/interfaces/httpserver/handlers"
	"medianet/internal/interfaces/httpserver/middlewares"
)

// Routes encapsulates route registration.
type Routes struct {
	handlers *handlers.Provider
	sessions auth.SessionStore
	cfg      *config.Config
}

func NewRoutes(provider *handlers.Provider, sessions auth.SessionStore, cfg *config.Config) *Routes {
	return &Routes{
		handlers: provider,
		sessions: sessions,
		cfg:      cfg,
	}
}

// Register attaches the media server surface. Browsing routes redirect to
// /login without a session, API and upload routes answer 401.
func (r *Routes) Register(router gin.IRouter) {
	gate := middlewares.RequireSession(r.sessions, r.cfg.SessionCookie)
	page := middlewares.RequirePage(r.sessions, r.cfg.SessionCookie)

	// Public account surface.
	router.GET("/signup", r.handlers.Pages.SignupForm)
	router.GET("/login", r.handlers.Pages.LoginForm)
	router.POST("/api/signup", r.handlers.Auth.Signup)
	router.POST("/api/login", r.handlers.Auth.Login)
	router.POST("/api/logout", gate, r.handlers.Auth.Logout)
	router.DELETE("/api/account", gate, r.handlers.Auth.DeleteAccount)

	// Browsing.
	router.GET("/", page, r.handlers.Media.Dashboard)
	router.GET("/music", page, r.handlers.Media.List(mediadomain.KindMusic))
	router.GET("/videos", page, r.handlers.Media.List(mediadomain.KindVideo))
	router.GET("/photos", page, r.handlers.Media.List(mediadomain.KindPhoto))
	router.GET("/tvshows", page, r.handlers.Media.List(mediadomain.KindTVShow))

	// Upload forms and multipart endpoints.
	router.GET("/music/upload", page, r.handlers.Pages.MusicUploadForm)
	router.GET("/tvshows/upload", page, r.handlers.Pages.TVShowUploadForm)
	router.POST("/music/upload", gate, r.handlers.Media.Upload(mediadomain.KindMusic))
	router.POST("/videos/upload", gate, r.handlers.Media.Upload(mediadomain.KindVideo))
	router.POST("/photos/upload", gate, r.handlers.Media.Upload(mediadomain.KindPhoto))
	router.POST("/tvshows/upload", gate, r.handlers.Media.Upload(mediadomain.KindTVShow))
}
