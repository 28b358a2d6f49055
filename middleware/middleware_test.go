package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"schedulematch/database/repository/memory"
	userRepo "schedulematch/database/repository/user"
	"schedulematch/models"
	"schedulematch/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapTokenCache map[string]string

func (m mapTokenCache) Get(_ context.Context, username string) (string, error) {
	h, ok := m[username]
	if !ok {
		return "", utils.ErrCacheMiss
	}
	return h, nil
}

func (m mapTokenCache) Set(_ context.Context, username, hash string) error {
	m[username] = hash
	return nil
}

func (m mapTokenCache) Delete(_ context.Context, username string) error {
	delete(m, username)
	return nil
}

func setupAuth(t *testing.T, tokens utils.TokenCache) (*gin.Engine, userRepo.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, utils.ConfigureJWT("middleware-secret", "HS256"))

	repo := memory.NewUserRepo(memory.NewStore())
	require.NoError(t, repo.Create(context.Background(), &models.User{Username: "alice", DisplayName: "Alice"}))

	r := gin.New()
	r.GET("/me", JWTAuthUserMiddleware(repo, tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": CurrentUser(c).Username})
	})
	return r, repo
}

func login(t *testing.T, repo userRepo.UserRepository, username string) string {
	t.Helper()
	token, err := utils.GenerateToken(username, time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.SetTokenHash(context.Background(), username, utils.HashToken(token)))
	return token
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthUserMiddleware(t *testing.T) {
	cache := mapTokenCache{}
	r, repo := setupAuth(t, cache)
	token := login(t, repo, "alice")

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"detail"`)

	w = get(r, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"alice"}`, w.Body.String())
	assert.Equal(t, utils.HashToken(token), cache["alice"])
}

func TestJWTAuthUserMiddleware_RevokedToken(t *testing.T) {
	r, repo := setupAuth(t, nil)
	old := login(t, repo, "alice")
	time.Sleep(1100 * time.Millisecond) // iat has second resolution
	current := login(t, repo, "alice")

	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+old).Code)
	assert.Equal(t, http.StatusOK, get(r, "Bearer "+current).Code)

	require.NoError(t, repo.SetTokenHash(context.Background(), "alice", ""))
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+current).Code)
}

func TestJWTAuthUserMiddleware_UnknownUser(t *testing.T) {
	r, _ := setupAuth(t, nil)
	token, err := utils.GenerateToken("ghost", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
