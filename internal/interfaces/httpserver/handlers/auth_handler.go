package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"medianet/internal/config"
	userdomain "medianet/internal/domain/user"
	"medianet/internal/interfaces/httpserver/middlewares"
	"medianet/internal/interfaces/httpserver/requests"
	"medianet/internal/interfaces/httpserver/responses"
	"medianet/internal/utils/platformerrors"
)

// AuthHandler exposes account endpoints.
type AuthHandler struct {
	cfg     *config.Config
	service *userdomain.Service
	log     zerolog.Logger
}

func NewAuthHandler(cfg *config.Config, service *userdomain.Service, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "auth-handler").Logger(),
	}
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req requests.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "invalid json"})
		return
	}

	if _, err := h.service.Signup(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		// Duplicate accounts answered 400 in the original surface.
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "user already exists"})
			return
		}
		h.log.Error().Err(err).Msg("signup failed")
		responses.HandleError(c, err, "signup failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created"})
}

// Login handles POST /api/login: verifies credentials and sets the session
// cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "invalid json"})
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown account was a 400 in the original surface, not a 404.
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "user not found"})
			return
		}
		responses.HandleError(c, err, "login failed")
		return
	}

	maxAge := int(h.cfg.SessionTTL.Seconds())
	c.SetCookie(h.cfg.SessionCookie, session.Token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message":  "login successful",
		"username": session.Username,
	})
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middlewares.CurrentToken(c); token != "" {
		h.service.Logout(c.Request.Context(), token)
	}
	c.SetCookie(h.cfg.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// DeleteAccount handles DELETE /api/account. Owned catalog rows cascade.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "not logged in"})
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), userID); err != nil {
		h.log.Error().Err(err).Uint("user_id", userID).Msg("account deletion failed")
		responses.HandleError(c, err, "account deletion failed")
		return
	}

	c.SetCookie(h.cfg.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
