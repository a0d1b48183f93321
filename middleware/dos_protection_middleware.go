package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"safeqr/config"
)

// clientLimiter holds a per-IP token bucket and when it was last used
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// DOSProtectionMiddleware applies a coarse per-IP token bucket ahead of the
// endpoint-level rate limits. Whitelisted paths and event streams bypass it.
func DOSProtectionMiddleware(cfg config.DOSProtectionConfig, whitelistedPaths []string) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	limiters := make(map[string]*clientLimiter)
	var mu sync.Mutex
	ratePerSecond := rate.Limit(float64(cfg.RateLimit) / cfg.WindowSize.Seconds())

	allow := func(clientIP string) bool {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		entry, exists := limiters[clientIP]
		if !exists {
			entry = &clientLimiter{
				limiter: rate.NewLimiter(ratePerSecond, cfg.BurstLimit),
			}
			limiters[clientIP] = entry
		}
		entry.lastSeen = now

		// Prune buckets idle for two full windows
		if len(limiters) > 1 && now.Unix()%60 == 0 {
			cutoff := now.Add(-2 * cfg.WindowSize)
			for ip, stale := range limiters {
				if ip != clientIP && stale.lastSeen.Before(cutoff) {
					delete(limiters, ip)
				}
			}
		}

		return entry.limiter.Allow()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if isWhitelistedPath(path, whitelistedPaths) {
				return next(c)
			}

			clientIP := getClientIP(c)
			if clientIP == "" {
				clientIP = "unknown"
			}

			if !allow(clientIP) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}

			return next(c)
		}
	}
}

// getClientIP extracts the client IP from proxy headers, falling back to the
// connection's remote address
func getClientIP(c echo.Context) string {
	if ip := c.Request().Header.Get("X-Real-IP"); ip != "" {
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		for _, ip := range strings.Split(xff, ",") {
			ip = strings.TrimSpace(ip)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	if ip, _, err := net.SplitHostPort(c.Request().RemoteAddr); err == nil {
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	return ""
}

// isWhitelistedPath checks if the path bypasses DoS protection. Event stream
// endpoints hold connections open and must not consume bucket tokens.
func isWhitelistedPath(path string, whitelistedPaths []string) bool {
	if strings.Contains(path, "/events") {
		return true
	}

	for _, whitelisted := range whitelistedPaths {
		if path == whitelisted || strings.HasPrefix(path, whitelisted) {
			return true
		}
	}
	return false
}
