package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gamenighthq/gamenight-api/internal/config"
)

// Scope selects which request budget applies.
type Scope string

const (
	ScopeAuthenticated Scope = "auth"
	ScopePublic        Scope = "public"
)

// Result is everything a caller needs to answer a request: either the
// remaining budget for the rate-limit headers, or the seconds to wait for a
// Retry-After.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int
}

// Limiter is a sliding-window counter over a redis sorted set, one key per
// (scope, identifier). The limiter is a soft abuse guard, not a security
// boundary: with no backend, or a failing one, every request is allowed.
type Limiter struct {
	client *redis.Client
	conf   *config.RateLimitConfig
}

// OpenRedis connects the limiter backend. A missing address yields a nil
// client, which the limiter treats as "unconfigured".
func OpenRedis(conf *config.RedisConfig) *redis.Client {
	if conf == nil || conf.Addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
}

func NewLimiter(client *redis.Client, conf *config.RateLimitConfig) *Limiter {
	if conf == nil {
		conf = &config.RateLimitConfig{
			AuthenticatedLimit: 100,
			PublicLimit:        30,
			WindowSeconds:      60,
		}
	}

	return &Limiter{
		client: client,
		conf:   conf,
	}
}

func (l *Limiter) limitFor(scope Scope) int {
	if scope == ScopePublic {
		return l.conf.PublicLimit
	}

	return l.conf.AuthenticatedLimit
}

// Check records one request for the identifier and reports whether it fits
// the window.
func (l *Limiter) Check(ctx context.Context, scope Scope, identifier string) Result {
	limit := l.limitFor(scope)
	window := time.Duration(l.conf.WindowSeconds) * time.Second
	now := time.Now()

	allowed := Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit,
		ResetAt:   now.Add(window),
	}

	if l.client == nil {
		return allowed
	}

	key := fmt.Sprintf("ratelimit:%v:%v", scope, identifier)
	windowStart := now.Add(-window)

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	countCmd := pipe.ZCard(ctx, key)
	oldestCmd := pipe.ZRangeWithScores(ctx, key, 0, 0)
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		zap.L().Warn("rate limiter backend unavailable, failing open", zap.Error(err))
		return allowed
	}

	count := int(countCmd.Val())

	resetAt := now.Add(window)
	if oldest := oldestCmd.Val(); len(oldest) > 0 {
		resetAt = time.Unix(0, int64(oldest[0].Score)).Add(window)
	}

	if count > limit {
		retryAfter := int(time.Until(resetAt).Seconds()) + 1

		return Result{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}
	}

	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - count,
		ResetAt:   resetAt,
	}
}

func (l *Limiter) Close() {
	if l.client != nil {
		if err := l.client.Close(); err != nil {
			zap.L().Warn("failed to close redis client", zap.Error(err))
		}
	}
}
