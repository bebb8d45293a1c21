// Package ratelimit throttles anonymous endpoints per client address.
package ratelimit

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/respond"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/logging"
)

// Limiter reports whether one more request for key fits in the current budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Middleware rejects requests over budget with 429. Limiter failures let the
// request through.
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ok, err := l.Allow(ctx, c.ClientIP())
		if err != nil {
			logging.New(ctx).Warnf("rate_limit", "limiter unavailable, allowing request: %v", err)
			c.Next()
			return
		}
		if !ok {
			respond.Abort(c, "rate_limit", apperr.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
