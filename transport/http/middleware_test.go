package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/seimoney/seimoney-go/api"
	"github.com/seimoney/seimoney-go/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter(t *testing.T, sessions *core.SessionStore) (*gin.Engine, *api.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := api.NewClient("http://backend.invalid", nil)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/api/session", SessionGuard(sessions, client), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, client
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6",
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionGuardRejectsAnonymous(t *testing.T) {
	sessions := core.NewSessionStore()
	router, _ := guardedRouter(t, sessions)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authenticated")
}

func TestSessionGuardPassesAuthenticated(t *testing.T) {
	sessions := core.NewSessionStore()
	sessions.SetAccount(&core.Account{
		Owner:        common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6"),
		EmailAddress: "a@b.com",
	})
	router, _ := guardedRouter(t, sessions)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionGuardRejectsExpiredJWT(t *testing.T) {
	sessions := core.NewSessionStore()
	sessions.SetAccount(&core.Account{
		Owner:        common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6"),
		EmailAddress: "a@b.com",
	})
	router, client := guardedRouter(t, sessions)
	client.SetToken(signedToken(t, time.Now().Add(-time.Hour)))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session expired")
}

func TestSessionGuardAcceptsLiveJWT(t *testing.T) {
	sessions := core.NewSessionStore()
	sessions.SetAccount(&core.Account{
		Owner:        common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6"),
		EmailAddress: "a@b.com",
	})
	router, client := guardedRouter(t, sessions)
	client.SetToken(signedToken(t, time.Now().Add(time.Hour)))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionGuardAcceptsOpaqueToken(t *testing.T) {
	sessions := core.NewSessionStore()
	sessions.SetAccount(&core.Account{
		Owner:        common.HexToAddress("0x3E646e062F05e01e1860eA53a6DC81e7E9162DE6"),
		EmailAddress: "a@b.com",
	})
	router, client := guardedRouter(t, sessions)
	client.SetToken("tok123")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
