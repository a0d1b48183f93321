// Package rate_limiter provides the request-throttling primitives used by
// the metadata fetch path: a fixed-window per-key limiter backed by a
// pluggable store, and a per-host politeness limiter for outbound requests.
package rate_limiter

import (
	"context"
	"sync"
	"time"
)

// WindowState is the counter for one key inside the current window.
type WindowState struct {
	Count     int
	ResetTime time.Time
}

// WindowStore persists fixed-window counters. Implementations must be safe
// for concurrent use.
type WindowStore interface {
	// Incr bumps the counter for key, starting a fresh window of the given
	// length when none is active, and returns the post-increment state.
	Incr(ctx context.Context, key string, window time.Duration) (WindowState, error)
}

// FixedWindowLimiter allows at most maxRequests per window per key. Windows
// start on the first request after expiry, so they are not aligned across
// keys. That is deliberate: this is abuse mitigation, not a precise quota.
type FixedWindowLimiter struct {
	store       WindowStore
	window      time.Duration
	maxRequests int
}

func NewFixedWindowLimiter(store WindowStore, window time.Duration, maxRequests int) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		store:       store,
		window:      window,
		maxRequests: maxRequests,
	}
}

// Allow records one request for key and reports whether it fits in the
// current window. The request is counted even when rejected.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	allowed, _, err := l.Check(ctx, key)
	return allowed, err
}

// Check is Allow plus the window state, letting callers report when the
// window resets.
func (l *FixedWindowLimiter) Check(ctx context.Context, key string) (bool, WindowState, error) {
	state, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return false, WindowState{}, err
	}
	return state.Count <= l.maxRequests, state, nil
}

// MemoryWindowStore keeps counters in a mutex-guarded map. Counters vanish on
// process restart; that is acceptable for best-effort limiting.
type MemoryWindowStore struct {
	mu      sync.Mutex
	records map[string]*WindowState
	now     func() time.Time
}

func NewMemoryWindowStore() *MemoryWindowStore {
	return &MemoryWindowStore{
		records: make(map[string]*WindowState),
		now:     time.Now,
	}
}

// NewMemoryWindowStoreWithClock injects a clock for tests.
func NewMemoryWindowStoreWithClock(now func() time.Time) *MemoryWindowStore {
	return &MemoryWindowStore{
		records: make(map[string]*WindowState),
		now:     now,
	}
}

func (s *MemoryWindowStore) Incr(_ context.Context, key string, window time.Duration) (WindowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record, exists := s.records[key]
	if !exists || now.After(record.ResetTime) {
		record = &WindowState{ResetTime: now.Add(window)}
		s.records[key] = record
	}
	record.Count++

	return *record, nil
}

// Sweep drops expired counters so the map does not grow without bound. Call
// it periodically from a background goroutine.
func (s *MemoryWindowStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, record := range s.records {
		if now.After(record.ResetTime) {
			delete(s.records, key)
		}
	}
}
