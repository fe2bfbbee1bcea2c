package middleware

import (
	"net/http"

	"gamewish/internal/session"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie set at login.
const CookieName = "gamewish_session"

// Context keys populated by the session middlewares.
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
	CtxRole     = "role"
	CtxToken    = "sessionToken"
)

// RequireSession resolves the session cookie against the store and
// puts the identity into the gin context. Requests without a live
// session are redirected to the login page.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}

		c.Set(CtxUserID, sess.UserID)
		c.Set(CtxUsername, sess.Username)
		c.Set(CtxRole, sess.Role)
		c.Set(CtxToken, sess.Token)

		c.Next()
	}
}

// IdentifySession is the optional variant used on the landing page:
// it attaches the identity when a session exists and stays silent
// otherwise.
func IdentifySession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err == nil && token != "" {
			if sess, err := store.Get(c.Request.Context(), token); err == nil {
				c.Set(CtxUserID, sess.UserID)
				c.Set(CtxUsername, sess.Username)
				c.Set(CtxRole, sess.Role)
				c.Set(CtxToken, sess.Token)
			}
		}
		c.Next()
	}
}

// RequireAdmin checks the role placed in the context by RequireSession.
// It must be used after it.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists || role.(string) != "admin" {
			c.HTML(http.StatusForbidden, "forbidden.html", gin.H{})
			c.Abort()
			return
		}
		c.Next()
	}
}
