package ratelimit

import (
	"context"
	"sync"
	"time"
)

type windowCounter struct {
	windowStart time.Time
	count       int
}

// MemoryStore is an in-process fixed-window counter store. Suitable for a
// single API instance; use RedisStore when counters must be shared.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*windowCounter
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]*windowCounter),
		now:      time.Now,
	}
}

// Allow implements Store with a mutex-guarded counter map.
func (s *MemoryStore) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, int, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c, ok := s.counters[key]
	if !ok || now.Sub(c.windowStart) >= window {
		c = &windowCounter{windowStart: now}
		s.counters[key] = c
	}

	if c.count >= limit {
		retryAfter := c.windowStart.Add(window).Sub(now)
		return false, 0, retryAfter, nil
	}

	c.count++
	return true, limit - c.count, 0, nil
}

// Cleanup drops counters whose window ended before the cutoff. Call
// periodically to keep memory bounded under many distinct clients.
func (s *MemoryStore) Cleanup(maxAge time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxAge)
	for key, c := range s.counters {
		if c.windowStart.Before(cutoff) {
			delete(s.counters, key)
		}
	}
}
