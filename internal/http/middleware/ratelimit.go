// README: Rate-limit middleware; rejects clients over their window budget with 429.
package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itinerary/internal/modules/ratelimit"
)

type Limiter interface {
	Allow(ctx context.Context, client string) (ratelimit.Decision, error)
}

func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("ratelimit: %v (allowing request) rid=%s", err, RequestIDFrom(c))
		}
		if d.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			c.Header("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
		}
		if !d.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
