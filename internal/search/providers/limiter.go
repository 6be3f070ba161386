package providers

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter wraps a token bucket sized from a requests-per-minute
// budget. Each provider client holds its own limiter so one noisy
// upstream cannot starve the other.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter allowing requestsPerMinute
// requests with a small burst allowance.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}

	interval := time.Minute / time.Duration(requestsPerMinute)
	burst := requestsPerMinute / 10
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(interval), burst),
	}
}

// Wait blocks until a request slot is available or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed without waiting.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}
