// File: middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FADHEEL1234/Online-Medical/config"
	"github.com/FADHEEL1234/Online-Medical/models"
	"github.com/FADHEEL1234/Online-Medical/session"
	"github.com/FADHEEL1234/Online-Medical/utils"
)

// SessionCookie names the browser cookie carrying the session id.
const SessionCookie = "om_session"

const (
	contextSessionID = "sessionID"
	contextSession   = "session"
)

// SessionMiddleware guarantees every request carries a session id cookie and
// loads the current snapshot into the gin context. The snapshot is re-read
// on every navigation; nothing is cached across requests, so a logout or a
// 401-triggered clear is visible on the very next one.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, int(config.SessionTTL().Seconds()),
				"/", "", config.IsProduction(), true)
		}

		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			utils.GetLogger().Error("failed to load session",
				zap.String("sid", sid), zap.Error(err))
			sess = models.Anonymous()
		}

		c.Set(contextSessionID, sid)
		c.Set(contextSession, sess)
		c.Next()
	}
}

// SessionID returns the request's session id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(contextSessionID)
}

// CurrentSession returns the snapshot loaded for this navigation, or the
// anonymous default when the middleware did not run.
func CurrentSession(c *gin.Context) models.Session {
	if v, ok := c.Get(contextSession); ok {
		if sess, ok := v.(models.Session); ok {
			return sess
		}
	}
	return models.Anonymous()
}
