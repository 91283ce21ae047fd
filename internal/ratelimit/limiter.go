package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	start time.Time
	count int
}

// Limiter is a fixed-window counter keyed by client address.
//
// Counters live in process memory: they reset on restart and are not shared
// across instances.
type Limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	nowFunc func() time.Time
	buckets map[string]*bucket
}

// NewLimiter caps each key to max events per window.
func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:     max,
		window:  window,
		nowFunc: time.Now,
		buckets: map[string]*bucket{},
	}
}

// Allow records one event for key and reports whether it fits in the current
// window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) >= l.window {
		b = &bucket{start: now}
		l.buckets[key] = b
	}
	b.count++
	return b.count <= l.max
}
