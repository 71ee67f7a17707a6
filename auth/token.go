package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// NewSessionID returns a fresh opaque session identifier. Carts are keyed by
// this value, so issuing a new one always starts the caller with an empty cart.
func NewSessionID() string {
	return "sess_" + uuid.NewString()
}

// IssueSessionToken signs a token for an anonymous visitor.
func IssueSessionToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// IssueUserToken signs a token for an authenticated user.
func IssueUserToken(sessionID string, userID uint, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"user_id":    userID,
		"is_admin":   isAdmin,
		"exp":        time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
