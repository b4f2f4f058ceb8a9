// Package ratelimit provides fixed-window rate limiting for HTTP routes.
// Counters live behind a Store so a single instance can use in-process memory
// while a multi-instance deployment shares counters through Redis.
package ratelimit

import (
	"context"
	"time"
)

// Store counts requests per key within fixed windows. Implementations must
// make the check-and-consume atomic: the counter is only incremented when the
// request is admitted, so a denied request never shortens the window for
// later ones.
type Store interface {
	// Allow admits the request if fewer than limit requests have been counted
	// in the key's current window, incrementing the counter on admission.
	// It returns the remaining allowance and, when denied, the time until the
	// window resets.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, retryAfter time.Duration, err error)
}

// Info describes the outcome of a rate limit check.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter applies per-class fixed-window limits using a Store.
type Limiter struct {
	store  Store
	config *Config
}

// NewLimiter creates a limiter over the given store. A nil config uses
// defaults; a nil store uses an in-memory store.
func NewLimiter(store Store, config *Config) *Limiter {
	if store == nil {
		store = NewMemoryStore()
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &Limiter{store: store, config: config}
}

// Allow checks the request against the named route class. clientID is the
// authenticated user ID for per-user classes and the client IP otherwise.
//
// A store failure fails open: the request is admitted rather than letting a
// counter backend outage take down the API.
func (l *Limiter) Allow(ctx context.Context, class, clientID string) Info {
	if !l.config.Enabled {
		return Info{Allowed: true}
	}

	cc := l.config.Class(class)
	if cc.MaxRequests <= 0 {
		return Info{Allowed: true}
	}

	key := class + ":" + clientID
	allowed, remaining, retryAfter, err := l.store.Allow(ctx, key, cc.MaxRequests, cc.Window)
	if err != nil {
		return Info{Allowed: true, Limit: cc.MaxRequests}
	}

	if !allowed && retryAfter <= 0 {
		retryAfter = time.Second
	}

	return Info{
		Allowed:    allowed,
		Limit:      cc.MaxRequests,
		Remaining:  remaining,
		RetryAfter: retryAfter,
	}
}

// PerUser reports whether the named class keys its counters by user rather
// than by client IP.
func (l *Limiter) PerUser(class string) bool {
	return l.config.Class(class).PerUser
}
