package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// POST /auth/session
// Issues an anonymous session token so visitors can build a cart before
// signing in.
func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := NewSessionID()

		token, err := IssueSessionToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": time.Now().Add(tokenTTL),
		})
	}
}
