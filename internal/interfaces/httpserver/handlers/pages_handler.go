package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the form descriptors. Server-side HTML rendering is
// handled by a separate frontend; these endpoints document the POST bodies
// the forms submit.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action": "/api/signup",
		"fields": []string{"username", "email", "password"},
	})
}

func (h *PagesHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action": "/api/login",
		"fields": []string{"email", "password"},
	})
}

func (h *PagesHandler) MusicUploadForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action":   "/music/upload",
		"encoding": "multipart/form-data",
		"fields":   []string{"file"},
	})
}

func (h *PagesHandler) TVShowUploadForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action":   "/tvshows/upload",
		"encoding": "multipart/form-data",
		"fields":   []string{"file", "show_name", "season", "episode"},
	})
}
