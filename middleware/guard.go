// File: middleware/guard.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth gates views that need a logged-in user. Anonymous visitors
// are sent to the login view.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Authenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff gates the admin view. Anyone who is not staff, logged in or
// not, lands on the regular dashboard rather than the login view, so
// "logged in but not allowed" reads differently from "not logged in".
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if !sess.Authenticated() || !sess.IsStaff {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
