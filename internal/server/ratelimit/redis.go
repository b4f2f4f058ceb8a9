package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// allowScript performs the fixed-window check-and-consume atomically on the
// Redis side. The counter is incremented only when the request is admitted,
// and the key expires with the window.
//
// KEYS[1] counter key, ARGV[1] limit, ARGV[2] window in milliseconds.
// Returns {1, remaining} on admit and {0, pttl_ms} on deny.
var allowScript = redis.NewScript(`
local count = tonumber(redis.call("GET", KEYS[1]) or "0")
local limit = tonumber(ARGV[1])
if count >= limit then
    local ttl = redis.call("PTTL", KEYS[1])
    if ttl < 0 then ttl = tonumber(ARGV[2]) end
    return {0, ttl}
end
count = redis.call("INCR", KEYS[1])
if count == 1 then
    redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return {1, limit - count}
`)

// RedisStore is a Redis-backed fixed-window counter store for multi-instance
// deployments.
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

// NewRedisStore creates a store over an existing Redis client. Keys are
// namespaced under "ratelimit:".
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client, prefix: "ratelimit:"}
}

// Allow implements Store via a Lua script so check and increment are one
// atomic Redis operation.
func (s *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, time.Duration, error) {
	res, err := allowScript.Run(ctx, s.client, []string{s.prefix + key}, limit, window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, 0, fmt.Errorf("rate limit script: %w", err)
	}
	if len(res) != 2 {
		return false, 0, 0, fmt.Errorf("rate limit script: unexpected reply %v", res)
	}

	if res[0] == 1 {
		return true, int(res[1]), 0, nil
	}
	return false, 0, time.Duration(res[1]) * time.Millisecond, nil
}
