// Package ratelimit throttles clients per endpoint with token buckets.
// Analysis routes burn paid model calls, so each route tier carries its own
// budget. Buckets refill continuously instead of resetting on a window
// boundary, which keeps bursts bounded without a scheduler.
package ratelimit

import (
	"sync"
	"time"
)

// staleAfter is how long a client bucket may sit idle before the sweeper
// drops it.
const staleAfter = time.Hour

// bucket is one client's token bucket for one route. All fields are guarded
// by mu; refill happens lazily on access.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	refill   float64 // tokens per second
	tokens   float64
	updated  time.Time
	lastSeen time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity: float64(capacity),
		refill:   refillRate,
		tokens:   float64(capacity),
		updated:  now,
		lastSeen: now,
	}
}

// take refills the bucket for the elapsed time, then consumes one token when
// available. It reports whether the request may proceed, the whole tokens
// left, when the bucket is full again, and how long a denied caller should
// wait for the next token.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time, retryAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.updated).Seconds()*b.refill)
	b.updated = now
	b.lastSeen = now

	allowed = b.tokens >= 1
	if allowed {
		b.tokens--
	}

	reset = now
	if b.tokens < b.capacity {
		reset = now.Add(time.Duration((b.capacity - b.tokens) / b.refill * float64(time.Second)))
	}
	if !allowed {
		retryAfter = time.Duration((1 - b.tokens) / b.refill * float64(time.Second))
	}
	return allowed, int(b.tokens), reset, retryAfter
}

func (b *bucket) seen() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen
}

// Info describes the budget state reported back to the client in the
// X-RateLimit response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one bucket per client and route.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	sweepTicker *time.Ticker
	done        chan struct{}
	stopOnce    sync.Once
}

// NewLimiter creates a limiter. A nil config enables limiting with a
// permissive default budget.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.sweepTicker = time.NewTicker(config.CleanupInterval)
		l.done = make(chan struct{})
		go l.sweepLoop()
	}

	return l
}

// Allow reports whether a request from clientID to the given path and method
// fits the route's budget, consuming one token when it does.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	route := MatchEndpoint(path, method, l.config.EndpointConfigs)
	if route == nil {
		route = &EndpointConfig{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	}
	// Limit zero means the route is exempt
	if route.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+" "+method+" "+path, route)
	allowed, remaining, reset, retryAfter := b.take()
	return allowed, Info{
		Allowed:    allowed,
		Limit:      route.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) bucketFor(key string, route *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	burst := route.Burst
	if burst <= 0 {
		burst = route.Limit
	}
	b := newBucket(burst, float64(route.Limit)/route.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) sweepLoop() {
	for {
		select {
		case <-l.sweepTicker.C:
			l.sweep()
		case <-l.done:
			return
		}
	}
}

// sweep drops buckets whose clients have gone quiet so the registry does not
// grow without bound.
func (l *Limiter) sweep() {
	cutoff := time.Now().Add(-staleAfter)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.seen().Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop shuts down the sweeper. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.sweepTicker != nil {
			l.sweepTicker.Stop()
		}
		if l.done != nil {
			close(l.done)
		}
	})
}
