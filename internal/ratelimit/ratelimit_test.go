package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gamenighthq/gamenight-api/internal/config"
)

func TestCheck_FailsOpenWithoutBackend(t *testing.T) {
	limiter := NewLimiter(nil, &config.RateLimitConfig{
		AuthenticatedLimit: 2,
		PublicLimit:        1,
		WindowSeconds:      60,
	})

	// With no backend every request passes, even past the limit.
	for i := 0; i < 10; i++ {
		result := limiter.Check(context.Background(), ScopePublic, "1.2.3.4")
		assert.True(t, result.Allowed)
		assert.Equal(t, 1, result.Limit)
	}
}

func TestCheck_FailsOpenOnBackendError(t *testing.T) {
	// An address nothing listens on; the pipeline errors and the limiter
	// lets the request through.
	client := OpenRedis(&config.RedisConfig{Addr: "127.0.0.1:1"})
	limiter := NewLimiter(client, &config.RateLimitConfig{
		AuthenticatedLimit: 1,
		PublicLimit:        1,
		WindowSeconds:      60,
	})
	defer limiter.Close()

	result := limiter.Check(context.Background(), ScopeAuthenticated, "42")
	assert.True(t, result.Allowed)
}

func TestNewLimiter_Defaults(t *testing.T) {
	limiter := NewLimiter(nil, nil)

	assert.Equal(t, 100, limiter.limitFor(ScopeAuthenticated))
	assert.Equal(t, 30, limiter.limitFor(ScopePublic))
}

func TestOpenRedis_UnconfiguredIsNil(t *testing.T) {
	assert.Nil(t, OpenRedis(nil))
	assert.Nil(t, OpenRedis(&config.RedisConfig{}))
}
