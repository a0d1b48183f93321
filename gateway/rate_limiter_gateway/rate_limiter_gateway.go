package rate_limiter_gateway

import (
	"context"
	"math"
	"time"

	"safeqr/utils/logger"
	"safeqr/utils/metrics"
	"safeqr/utils/rate_limiter"
)

// RateLimiterGateway implements the RateLimiterPort interface on top of a
// fixed window limiter
type RateLimiterGateway struct {
	limiter *rate_limiter.FixedWindowLimiter
	now     func() time.Time
}

// NewRateLimiterGateway creates a new rate limiter gateway
func NewRateLimiterGateway(limiter *rate_limiter.FixedWindowLimiter) *RateLimiterGateway {
	return &RateLimiterGateway{
		limiter: limiter,
		now:     time.Now,
	}
}

// Allow reports whether the client identified by key may proceed. A store
// failure fails open: limiting is best effort and must not take the API down.
func (g *RateLimiterGateway) Allow(ctx context.Context, key string) (bool, int, error) {
	allowed, state, err := g.limiter.Check(ctx, key)
	if err != nil {
		logger.SafeWarnContext(ctx, "rate limit store unavailable, allowing request",
			"key", key, "error", err)
		return true, 0, nil
	}

	if allowed {
		return true, 0, nil
	}

	metrics.RecordRateLimitRejection()
	retryAfter := int(math.Ceil(state.ResetTime.Sub(g.now()).Seconds()))
	if retryAfter < 1 {
		retryAfter = 1
	}
	return false, retryAfter, nil
}

// HostThrottleGateway implements the HostThrottlePort interface, pacing
// outbound fetches per target host
type HostThrottleGateway struct {
	hostLimiter *rate_limiter.HostRateLimiter
}

// NewHostThrottleGateway creates a new host throttle gateway
func NewHostThrottleGateway(hostLimiter *rate_limiter.HostRateLimiter) *HostThrottleGateway {
	return &HostThrottleGateway{
		hostLimiter: hostLimiter,
	}
}

// WaitForURL blocks until a fetch to the URL's host is permitted or ctx is done
func (g *HostThrottleGateway) WaitForURL(ctx context.Context, rawURL string) error {
	return g.hostLimiter.WaitForHost(ctx, rawURL)
}
