package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cybertek-labs/storefront-api/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/session-only", ValidateToken, ok)
	r.GET("/user-only", ValidateToken, RequireAuth, ok)
	r.GET("/admin-only", ValidateToken, RequireAdmin, ok)
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingTokenIsRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGuardedRouter()

	assert.Equal(t, http.StatusUnauthorized, get(r, "/session-only", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin-only", "garbage").Code)
}

func TestSessionTokenReachesSessionRoutesOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGuardedRouter()

	token, err := auth.IssueSessionToken(auth.NewSessionID())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/session-only", token).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/user-only", token).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin-only", token).Code)
}

func TestUserTokenDeniedAdminRoutes(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGuardedRouter()

	token, err := auth.IssueUserToken(auth.NewSessionID(), 7, false)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/user-only", token).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin-only", token).Code)
}

func TestAdminTokenAllowed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newGuardedRouter()

	token, err := auth.IssueUserToken(auth.NewSessionID(), 7, true)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/admin-only", token).Code)
}

func TestTokenSignedWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := auth.IssueSessionToken(auth.NewSessionID())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	r := newGuardedRouter()
	assert.Equal(t, http.StatusUnauthorized, get(r, "/session-only", token).Code)
}
