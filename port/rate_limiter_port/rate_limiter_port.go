package rate_limiter_port

import (
	"context"
)

//go:generate mockgen -source=rate_limiter_port.go -destination=../../mocks/mock_rate_limiter_port.go -package=mocks

// RateLimiterPort defines the interface for per-client request limiting
type RateLimiterPort interface {
	// Allow reports whether the client identified by key may proceed, and
	// how many seconds remain until its window resets when it may not.
	Allow(ctx context.Context, key string) (allowed bool, retryAfterSeconds int, err error)
}

// HostThrottlePort defines the interface for pacing outbound fetches so no
// external host is hit more often than the configured interval
type HostThrottlePort interface {
	// WaitForURL blocks until a fetch to the URL's host is permitted or ctx
	// is done.
	WaitForURL(ctx context.Context, rawURL string) error
}
