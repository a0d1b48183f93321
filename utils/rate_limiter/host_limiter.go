package rate_limiter

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostRateLimiter spaces outbound requests per remote host so a burst of
// metadata lookups for one site does not hammer it.
type HostRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	interval time.Duration
}

func NewHostRateLimiter(interval time.Duration) *HostRateLimiter {
	return &HostRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

// WaitForHost blocks until the host's limiter grants a slot or ctx expires.
func (h *HostRateLimiter) WaitForHost(ctx context.Context, urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return err
	}

	host := parsed.Host
	if host == "" {
		return errors.New("missing host in URL")
	}

	return h.limiterForHost(host).Wait(ctx)
}

func (h *HostRateLimiter) limiterForHost(host string) *rate.Limiter {
	h.mu.RLock()
	limiter, exists := h.limiters[host]
	h.mu.RUnlock()
	if exists {
		return limiter
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if limiter, exists := h.limiters[host]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Every(h.interval), 1)
	h.limiters[host] = limiter
	return limiter
}
