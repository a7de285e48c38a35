// README: Rate-limit store backed by Redis counters with TTL.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const windowKeyFormat = "ratelimit:%s:%d"

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Incr bumps the counter at key and makes it expire after ttl.
func (s *Store) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := s.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("ratelimit incr %s: %w", key, err)
	}
	return incr.Val(), nil
}

func windowKey(client string, windowStart time.Time) string {
	return fmt.Sprintf(windowKeyFormat, client, windowStart.Unix())
}
