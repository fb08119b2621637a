package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "cart_session"
	// Matches the cart TTL in the session store.
	sessionMaxAge = 7 * 24 * 60 * 60
)

// CartSession makes sure every request carries a cart session id, issuing a
// cookie on first contact. The id is anonymous: carts exist before login.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set("session_id", sid)
		c.Next()
	}
}

// SessionID returns the cart session id set by CartSession.
func SessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
