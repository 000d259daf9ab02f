// File: internal/infrastructure/ratelimit/redis_rate_limiter.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/config"
	"github.com/Daniell17/football-app/internal/domain/service"
)

type redisRateLimiter struct {
	redisClient *redis.Client
	rule        config.RateLimitRule
	enabled     bool
	logger      *zap.Logger
}

// NewRedisRateLimiter creates a Redis-backed fixed-window limiter for the
// given rule. Counters live in Redis so every instance of the service shares
// the same window and block state.
func NewRedisRateLimiter(redisClient *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) service.RateLimiter {
	return &redisRateLimiter{
		redisClient: redisClient,
		rule:        cfg.AuthIP,
		enabled:     cfg.Enabled && cfg.AuthIP.Enabled,
		logger:      logger.Named("rate_limiter"),
	}
}

var _ service.RateLimiter = (*redisRateLimiter)(nil)

func counterKey(key string) string { return fmt.Sprintf("ratelimit:attempts:%s", key) }
func blockKey(key string) string   { return fmt.Sprintf("ratelimit:block:%s", key) }

// Consume implements the RateLimiter interface with Redis INCR and EXPIRE.
// Exceeding the window limit sets a block key whose TTL outlives the window,
// so attackers cannot reset the cooldown by waiting out a single window.
// The limiter fails open on Redis errors.
func (r *redisRateLimiter) Consume(ctx context.Context, key string) (bool, time.Duration, error) {
	if !r.enabled || r.rule.Limit <= 0 {
		return true, 0, nil
	}

	// Активный блок проверяется до счетчика
	blockTTL, err := r.redisClient.TTL(ctx, blockKey(key)).Result()
	if err != nil {
		r.logger.Error("Redis TTL for rate limit block failed", zap.String("key", key), zap.Error(err))
		return true, 0, fmt.Errorf("redis operation failed during block check: %w", err)
	}
	if blockTTL > 0 {
		return false, blockTTL, nil
	}

	var incr *redis.IntCmd
	_, err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, counterKey(key))
		pipe.Expire(ctx, counterKey(key), r.rule.Window)
		return nil
	})
	if err != nil {
		r.logger.Error("Redis pipeline for rate limiting failed", zap.String("key", key), zap.Error(err))
		return true, 0, fmt.Errorf("redis operation failed during rate limit check: %w", err)
	}

	if incr.Val() > int64(r.rule.Limit) {
		if err := r.redisClient.Set(ctx, blockKey(key), 1, r.rule.BlockDuration).Err(); err != nil {
			r.logger.Error("Redis SET for rate limit block failed", zap.String("key", key), zap.Error(err))
			return true, 0, fmt.Errorf("redis operation failed setting block: %w", err)
		}
		r.logger.Warn("Rate limit exceeded, block set",
			zap.String("key", key),
			zap.Int64("count", incr.Val()),
			zap.Int("limit", r.rule.Limit),
			zap.Duration("block_duration", r.rule.BlockDuration),
		)
		return false, r.rule.BlockDuration, nil
	}

	return true, 0, nil
}

// Reset clears the counter and any block for the key.
func (r *redisRateLimiter) Reset(ctx context.Context, key string) error {
	if !r.enabled {
		return nil
	}
	if err := r.redisClient.Del(ctx, counterKey(key), blockKey(key)).Err(); err != nil {
		return fmt.Errorf("redis DEL for rate limit reset failed: %w", err)
	}
	return nil
}
