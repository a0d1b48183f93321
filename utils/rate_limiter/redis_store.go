package rate_limiter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindowStore keeps window counters in Redis so the limit survives
// restarts and is shared across replicas. The window is approximated with
// INCR plus a TTL set when the counter is created.
type RedisWindowStore struct {
	client *redis.Client
	prefix string
}

func NewRedisWindowStore(client *redis.Client) *RedisWindowStore {
	return &RedisWindowStore{
		client: client,
		prefix: "safeqr:ratelimit:",
	}
}

func (s *RedisWindowStore) Incr(ctx context.Context, key string, window time.Duration) (WindowState, error) {
	redisKey := s.prefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	// NX: only the request that created the counter sets the expiry, so the
	// window is anchored to the first request after reset.
	pipe.ExpireNX(ctx, redisKey, window)
	ttl := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return WindowState{}, err
	}

	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
	}

	return WindowState{
		Count:     int(incr.Val()),
		ResetTime: time.Now().Add(remaining),
	}, nil
}
