package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/response"
	"github.com/gamenighthq/gamenight-api/internal/ratelimit"
)

// RateLimitChecker reports whether one more request fits the identifier's
// budget. *ratelimit.Limiter satisfies it.
type RateLimitChecker interface {
	Check(ctx context.Context, scope ratelimit.Scope, identifier string) ratelimit.Result
}

// RateLimitAuthenticated budgets requests per authenticated user. It must
// run after the authenticator.
func RateLimitAuthenticated(limiter RateLimitChecker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identifier := "anonymous"
		if user, ok := UserFromContext(ctx); ok {
			identifier = strconv.FormatUint(uint64(user.ID), 10)
		}

		enforce(ctx, limiter, ratelimit.ScopeAuthenticated, identifier)
	}
}

// RateLimitPublic budgets requests per client IP for unauthenticated
// traffic. When no address can be derived, everything shares one bucket;
// acceptable for a soft abuse guard.
func RateLimitPublic(limiter RateLimitChecker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		enforce(ctx, limiter, ratelimit.ScopePublic, clientIdentifier(ctx))
	}
}

func enforce(ctx *gin.Context, limiter RateLimitChecker, scope ratelimit.Scope, identifier string) {
	result := limiter.Check(ctx.Request.Context(), scope, identifier)

	ctx.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	ctx.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	ctx.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

	if !result.Allowed {
		ctx.Header("Retry-After", strconv.Itoa(result.RetryAfter))
		response.AbortErr(ctx, response.ErrTooManyRequests(result.RetryAfter))
		return
	}

	ctx.Next()
}

func clientIdentifier(ctx *gin.Context) string {
	if forwarded := ctx.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	if realIP := ctx.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}

	if ip := ctx.ClientIP(); ip != "" {
		return ip
	}

	return "anonymous"
}
