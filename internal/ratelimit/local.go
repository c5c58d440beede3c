package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// sweepInterval bounds how often the client map is scanned for idle
	// entries.
	sweepInterval = 1 * time.Minute
	// idleTTL is how long a client may stay quiet before its bucket is
	// dropped.
	idleTTL = 5 * time.Minute
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Local is an in-process Limiter keeping one token bucket per client key.
// Idle buckets are swept opportunistically during Allow calls, so the type
// runs no background goroutine.
type Local struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	perSecond rate.Limit
	burst     int
	lastSweep time.Time
}

// NewLocal creates a Local limiter allowing perSecond requests with the
// given burst per client key.
func NewLocal(perSecond, burst int) *Local {
	return &Local{
		buckets:   make(map[string]*bucket),
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		lastSweep: time.Now(),
	}
}

// Allow never returns an error; the signature matches the Limiter interface
// shared with the Redis backend.
func (l *Local) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > sweepInterval {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.perSecond, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.Allow(), nil
}

// sweep drops buckets idle for longer than idleTTL. Callers must hold mu.
func (l *Local) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > idleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
