package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/ratelimit"
)

type stubChecker struct {
	result ratelimit.Result

	scope      ratelimit.Scope
	identifier string
}

func (c *stubChecker) Check(_ context.Context, scope ratelimit.Scope, identifier string) ratelimit.Result {
	c.scope = scope
	c.identifier = identifier

	return c.result
}

func TestRateLimitPublic_Denied(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resetAt := time.Now().Add(42 * time.Second)
	checker := &stubChecker{result: ratelimit.Result{
		Allowed:    false,
		Limit:      30,
		Remaining:  0,
		ResetAt:    resetAt,
		RetryAfter: 7,
	}}

	handled := false
	router := gin.New()
	router.Use(RateLimitPublic(checker))
	router.GET("/", func(ctx *gin.Context) {
		handled = true
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.False(t, handled)

	assert.Equal(t, "30", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, strconv.FormatInt(resetAt.Unix(), 10), w.Header().Get("X-RateLimit-Reset"))
	assert.Equal(t, "7", w.Header().Get("Retry-After"))

	var body struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retryAfter"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Too many requests, please try again later.", body.Error)
	assert.Equal(t, 7, body.RetryAfter)

	assert.Equal(t, ratelimit.ScopePublic, checker.scope)
	assert.Equal(t, "203.0.113.9", checker.identifier)
}

func TestRateLimitPublic_Allowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resetAt := time.Now().Add(time.Minute)
	checker := &stubChecker{result: ratelimit.Result{
		Allowed:   true,
		Limit:     30,
		Remaining: 12,
		ResetAt:   resetAt,
	}}

	router := gin.New()
	router.Use(RateLimitPublic(checker))
	router.GET("/", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "30", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "12", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, strconv.FormatInt(resetAt.Unix(), 10), w.Header().Get("X-RateLimit-Reset"))
	assert.Empty(t, w.Header().Get("Retry-After"))
}

func TestRateLimitAuthenticated_KeyedByUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	checker := &stubChecker{result: ratelimit.Result{
		Allowed:   true,
		Limit:     100,
		Remaining: 99,
		ResetAt:   time.Now().Add(time.Minute),
	}}

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(ContextKeyUser, domain.User{ID: 7})
	})
	router.Use(RateLimitAuthenticated(checker))
	router.GET("/", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ratelimit.ScopeAuthenticated, checker.scope)
	assert.Equal(t, "7", checker.identifier)
}

func TestRateLimitAuthenticated_FallsBackWithoutUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	checker := &stubChecker{result: ratelimit.Result{
		Allowed:   true,
		Limit:     100,
		Remaining: 100,
		ResetAt:   time.Now().Add(time.Minute),
	}}

	router := gin.New()
	router.Use(RateLimitAuthenticated(checker))
	router.GET("/", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", checker.identifier)
}
