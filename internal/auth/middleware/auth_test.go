package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap-platform/skillswap/internal/auth"
	"github.com/skillswap-platform/skillswap/internal/auth/domain"
)

type fakeUsers struct {
	byID map[string]*domain.User
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func newAuthTestRouter(t *testing.T, users *fakeUsers) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", 30*time.Minute, 7*24*time.Hour)

	r := gin.New()
	authed := r.Group("/api")
	authed.Use(RequireAuth(tokens, users))
	authed.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": auth.UserID(c), "email": auth.UserEmail(c)})
	})

	admin := authed.Group("/admin")
	admin.Use(RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r, tokens
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthHappyPath(t *testing.T) {
	users := &fakeUsers{byID: map[string]*domain.User{
		"u1": {ID: "u1", Email: "alice@example.com"},
	}}
	r, tokens := newAuthTestRouter(t, users)

	pair, err := tokens.IssuePair("u1", "alice@example.com")
	require.NoError(t, err)

	w := doGet(r, "/api/whoami", pair.Access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestRequireAuthMissingToken(t *testing.T) {
	r, _ := newAuthTestRouter(t, &fakeUsers{byID: map[string]*domain.User{}})

	w := doGet(r, "/api/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthMalformedToken(t *testing.T) {
	r, _ := newAuthTestRouter(t, &fakeUsers{byID: map[string]*domain.User{}})

	w := doGet(r, "/api/whoami", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRefreshTokenRejected(t *testing.T) {
	users := &fakeUsers{byID: map[string]*domain.User{
		"u1": {ID: "u1", Email: "alice@example.com"},
	}}
	r, tokens := newAuthTestRouter(t, users)

	pair, err := tokens.IssuePair("u1", "alice@example.com")
	require.NoError(t, err)

	w := doGet(r, "/api/whoami", pair.Refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthDeletedUser(t *testing.T) {
	r, tokens := newAuthTestRouter(t, &fakeUsers{byID: map[string]*domain.User{}})

	pair, err := tokens.IssuePair("gone", "gone@example.com")
	require.NoError(t, err)

	w := doGet(r, "/api/whoami", pair.Access)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBannedUser(t *testing.T) {
	users := &fakeUsers{byID: map[string]*domain.User{
		"u1": {ID: "u1", Email: "alice@example.com", IsBanned: true},
	}}
	r, tokens := newAuthTestRouter(t, users)

	pair, err := tokens.IssuePair("u1", "alice@example.com")
	require.NoError(t, err)

	w := doGet(r, "/api/whoami", pair.Access)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "banned")
}

func TestRequireAdmin(t *testing.T) {
	users := &fakeUsers{byID: map[string]*domain.User{
		"u1":    {ID: "u1", Email: "alice@example.com"},
		"admin": {ID: "admin", Email: auth.AdminEmail},
	}}
	r, tokens := newAuthTestRouter(t, users)

	userPair, err := tokens.IssuePair("u1", "alice@example.com")
	require.NoError(t, err)
	adminPair, err := tokens.IssuePair("admin", auth.AdminEmail)
	require.NoError(t, err)

	w := doGet(r, "/api/admin/ping", userPair.Access)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(r, "/api/admin/ping", adminPair.Access)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminEmailIsCaseSensitive(t *testing.T) {
	users := &fakeUsers{byID: map[string]*domain.User{
		"u2": {ID: "u2", Email: "Admin@skillswap.com"},
	}}
	r, tokens := newAuthTestRouter(t, users)

	pair, err := tokens.IssuePair("u2", "Admin@skillswap.com")
	require.NoError(t, err)

	w := doGet(r, "/api/admin/ping", pair.Access)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
