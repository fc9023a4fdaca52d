package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medianet/internal/auth"
)

const (
	ctxUserIDKey   = "userID"
	ctxUsernameKey = "username"
	ctxTokenKey    = "sessionToken"
)

// RequireSession gates API routes: the session cookie must resolve to a
// live session or the request is rejected with 401 JSON.
func RequireSession(sessions auth.SessionStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := resolve(c, sessions, cookieName)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		inject(c, session)
		c.Next()
	}
}

// RequirePage gates browsing routes: without a session the client is
// redirected to the login page.
func RequirePage(sessions auth.SessionStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := resolve(c, sessions, cookieName)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		inject(c, session)
		c.Next()
	}
}

func resolve(c *gin.Context, sessions auth.SessionStore, cookieName string) (*auth.Session, bool) {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return nil, false
	}
	session, err := sessions.Get(token)
	if err != nil {
		return nil, false
	}
	return session, true
}

func inject(c *gin.Context, session *auth.Session) {
	c.Set(ctxUserIDKey, session.UserID)
	c.Set(ctxUsernameKey, session.Username)
	c.Set(ctxTokenKey, session.Token)
}

// CurrentUser returns the authenticated user injected by the session
// middleware.
func CurrentUser(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentUsername returns the authenticated username, if any.
func CurrentUsername(c *gin.Context) string {
	v, ok := c.Get(ctxUsernameKey)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}

// CurrentToken returns the session token of the current request, if any.
func CurrentToken(c *gin.Context) string {
	v, ok := c.Get(ctxTokenKey)
	if !ok {
		return ""
	}
	token, _ := v.(string)
	return token
}
