package chat

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRatePerMinute is the per-user message allowance.
const DefaultRatePerMinute = 20

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Limiter hands out one token bucket per user.
type Limiter struct {
	mu      sync.Mutex
	every   rate.Limit
	burst   int
	buckets map[string]*bucket
	now     func() time.Time
}

// NewLimiter allows perMinute messages per user per minute, bursting up to perMinute.
func NewLimiter(perMinute int) *Limiter {
	if perMinute <= 0 {
		perMinute = DefaultRatePerMinute
	}
	return &Limiter{
		every:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow consumes a token for userID if one is available.
func (l *Limiter) Allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	b, ok := l.buckets[userID]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.every, l.burst)}
		l.buckets[userID] = b
	}
	b.lastSeen = now
	return b.lim.AllowN(now, 1)
}

// Prune drops buckets unused for at least idle and reports how many went.
// A bucket idle for a minute has refilled, so forgetting it changes nothing.
func (l *Limiter) Prune(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := l.now().Add(-idle)
	n := 0
	for id, b := range l.buckets {
		if !b.lastSeen.After(cutoff) {
			delete(l.buckets, id)
			n++
		}
	}
	return n
}

// Len reports how many users currently hold a bucket.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
