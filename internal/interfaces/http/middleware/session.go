// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// Session identifies the device making the request. Every cart,
// preference, toast and analytics record hangs off this ID; there are
// no user accounts. The cookie is issued on first contact and renewed
// on every request so active sessions never expire mid-use.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
		}

		// 30 days, HttpOnly
		c.SetCookie(sessionCookie, sessionID, 30*86400, "/", "", false, true)
		c.Set(sessionCookie, sessionID)

		c.Next()
	}
}

// GetSessionID returns the session ID assigned by the Session middleware
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(sessionCookie); exists {
		if s, ok := sessionID.(string); ok {
			return s
		}
	}
	return ""
}
