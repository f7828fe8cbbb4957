package ratelimiter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisFixedWindowLimiter shares counters across API replicas.
type RedisFixedWindowLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *RedisFixedWindowLimiter {
	return &RedisFixedWindowLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
	}
}

func (rl *RedisFixedWindowLimiter) Allow(ctx context.Context, key string) (bool, time.Duration) {
	k := rl.prefix + key

	count, err := rl.client.Incr(ctx, k).Result()
	if err != nil {
		// redis errors fail open
		return true, 0
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, k, rl.window).Err(); err != nil {
			// a counter without a TTL would never reset
			rl.client.Del(ctx, k)
			return true, 0
		}
	}

	if count <= int64(rl.limit) {
		return true, 0
	}

	ttl, err := rl.client.PTTL(ctx, k).Result()
	if err != nil {
		return false, rl.window
	}
	if ttl < 0 {
		// counter lost its expiry; start a fresh window for it
		if err := rl.client.Expire(ctx, k, rl.window).Err(); err != nil {
			rl.client.Del(ctx, k)
		}
		ttl = rl.window
	}

	return false, ttl
}
