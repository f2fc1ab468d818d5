package usecase

import (
	"sync"
	"time"
)

// unknownUser is the shared fallback key for events without a resolvable
// sender. Such events throttle each other; that is accepted behavior.
const unknownUser = "unknown"

// entryMaxAge bounds the limiter map: entries idle longer than this are
// swept on the next recorded request.
const entryMaxAge = time.Hour

// RateLimiter enforces a minimum interval between requests per user.
type RateLimiter struct {
	mu   sync.Mutex
	last map[string]time.Time
	now  func() time.Time
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		last: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Allow reports whether a request from userID may proceed. A denied
// request leaves the stored timestamp untouched, so a throttled user is
// not penalized further; every allowed request resets the clock.
func (l *RateLimiter) Allow(userID string, interval time.Duration) bool {
	if userID == "" {
		userID = unknownUser
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if last, ok := l.last[userID]; ok && now.Sub(last) < interval {
		return false
	}
	l.last[userID] = now

	// Sweep stale entries to keep the map bounded.
	cutoff := now.Add(-entryMaxAge)
	for id, ts := range l.last {
		if ts.Before(cutoff) {
			delete(l.last, id)
		}
	}

	return true
}
