package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(max int, window time.Duration) *Config {
	return &Config{
		Enabled: true,
		Classes: map[string]ClassConfig{
			ClassAI:      {MaxRequests: max, Window: window, PerUser: true},
			ClassDefault: {MaxRequests: 100, Window: time.Minute},
		},
	}
}

func TestLimiterAllowsUpToLimitThenDenies(t *testing.T) {
	limiter := NewLimiter(NewMemoryStore(), testConfig(5, time.Minute))

	for i := 0; i < 5; i++ {
		info := limiter.Allow(context.Background(), ClassAI, "user-1")
		assert.True(t, info.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 5-(i+1), info.Remaining)
	}

	info := limiter.Allow(context.Background(), ClassAI, "user-1")
	assert.False(t, info.Allowed)
	assert.Equal(t, 5, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	limiter := NewLimiter(NewMemoryStore(), testConfig(1, time.Minute))

	assert.True(t, limiter.Allow(context.Background(), ClassAI, "user-1").Allowed)
	assert.False(t, limiter.Allow(context.Background(), ClassAI, "user-1").Allowed)

	// A different client keeps its own counter.
	assert.True(t, limiter.Allow(context.Background(), ClassAI, "user-2").Allowed)
}

func TestLimiterDeniedRequestDoesNotExtendWindow(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	limiter := NewLimiter(store, testConfig(2, time.Minute))

	assert.True(t, limiter.Allow(context.Background(), ClassAI, "user-1").Allowed)
	assert.True(t, limiter.Allow(context.Background(), ClassAI, "user-1").Allowed)

	// Hammering while denied must not push the reset time out.
	for i := 0; i < 10; i++ {
		now = now.Add(time.Second)
		assert.False(t, limiter.Allow(context.Background(), ClassAI, "user-1").Allowed)
	}

	now = now.Add(time.Minute)
	assert.True(t, limiter.Allow(context.Background(), ClassAI, "user-1").Allowed)
}

func TestMemoryStoreWindowReset(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	allowed, _, _, err := store.Allow(context.Background(), "k", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, retryAfter, err := store.Allow(context.Background(), "k", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)

	now = now.Add(61 * time.Second)
	allowed, _, _, err = store.Allow(context.Background(), "k", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryStoreCleanup(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	_, _, _, err := store.Allow(context.Background(), "old", 5, time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	store.Cleanup(time.Hour)

	store.mu.Lock()
	_, exists := store.counters["old"]
	store.mu.Unlock()
	assert.False(t, exists)
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int, time.Duration) (bool, int, time.Duration, error) {
	return false, 0, 0, errors.New("store unavailable")
}

func TestLimiterFailsOpenOnStoreError(t *testing.T) {
	limiter := NewLimiter(failingStore{}, testConfig(1, time.Minute))

	info := limiter.Allow(context.Background(), ClassAI, "user-1")
	assert.True(t, info.Allowed)
}

func TestLimiterDisabled(t *testing.T) {
	config := testConfig(1, time.Minute)
	config.Enabled = false
	limiter := NewLimiter(NewMemoryStore(), config)

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow(context.Background(), ClassAI, "user-1").Allowed)
	}
}

func TestConfigUnknownClassFallsBackToDefault(t *testing.T) {
	config := DefaultConfig()
	cc := config.Class("no-such-class")
	assert.Equal(t, config.Classes[ClassDefault], cc)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_AI_MAX_REQUESTS", "3")
	t.Setenv("RATE_LIMIT_AI_WINDOW", "30s")

	config := LoadConfig()
	assert.Equal(t, 3, config.Classes[ClassAI].MaxRequests)
	assert.Equal(t, 30*time.Second, config.Classes[ClassAI].Window)
	assert.True(t, config.Classes[ClassAI].PerUser)
}
