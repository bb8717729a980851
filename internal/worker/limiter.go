package worker

import (
	"context"
	"path/filepath"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter implements per-directory rate limiting for document reads.
// Batch scans over shared or network mounts can be paced so a large list
// does not hammer one export; local runs leave the rate at 0 (disabled).
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter. A filesPerSecond of 0 or less
// returns a nil limiter, which disables pacing entirely.
func NewLimiter(filesPerSecond float64, burst int) *Limiter {
	if filesPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(filesPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until the directory holding path has rate-limit clearance.
// A nil limiter never blocks.
func (l *Limiter) Wait(ctx context.Context, path string) error {
	if l == nil {
		return nil
	}
	return l.getLimiter(dirKey(path)).Wait(ctx)
}

// Allow reports whether a read is allowed right now without waiting
func (l *Limiter) Allow(path string) bool {
	if l == nil {
		return true
	}
	return l.getLimiter(dirKey(path)).Allow()
}

// getLimiter returns the rate limiter for a directory
func (l *Limiter) getLimiter(dir string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[dir]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[dir]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[dir] = limiter

	return limiter
}

// dirKey normalizes a document path to its containing directory
func dirKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(abs)
}
