// README: Fixed-window rate limiter keyed by client address.
package ratelimit

import (
	"context"
	"time"

	"itinerary/internal/config"
)

type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type Service struct {
	counter Counter
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewService(counter Counter, cfg config.RateLimitConfig) *Service {
	return &Service{
		counter: counter,
		limit:   cfg.Limit,
		window:  time.Duration(cfg.WindowSeconds) * time.Second,
		now:     time.Now,
	}
}

// Allow counts one request for client in the current window. A counter error
// still allows the request and is returned for logging.
func (s *Service) Allow(ctx context.Context, client string) (Decision, error) {
	if s.limit <= 0 {
		return Decision{Allowed: true}, nil
	}

	start := s.now().Truncate(s.window)
	d := Decision{Limit: s.limit, ResetAt: start.Add(s.window)}

	n, err := s.counter.Incr(ctx, windowKey(client, start), s.window)
	if err != nil {
		d.Allowed = true
		d.Remaining = s.limit
		return d, err
	}

	d.Allowed = n <= int64(s.limit)
	d.Remaining = max(s.limit-int(n), 0)
	return d, nil
}
