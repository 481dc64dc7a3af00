package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginPrefix       = "fintrack:rl:login:"
	defaultLoginLimit = 5
)

// LoginLimiter counts login attempts per key in fixed one-minute windows.
type LoginLimiter struct {
	rdb    *redis.Client
	max    int64
	window time.Duration
}

// NewLoginLimiter allows maxPerMin attempts per key per minute. Non-positive
// values fall back to 5.
func NewLoginLimiter(rdb *redis.Client, maxPerMin int) *LoginLimiter {
	if maxPerMin <= 0 {
		maxPerMin = defaultLoginLimit
	}
	return &LoginLimiter{rdb: rdb, max: int64(maxPerMin), window: time.Minute}
}

// Allow records an attempt for key and reports whether it is within the limit.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := loginPrefix + strings.ToLower(strings.TrimSpace(key))
	// SET NX opens the window with its TTL; INCR keeps the TTL.
	var incr *redis.IntCmd
	if _, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, k, 0, l.window)
		incr = pipe.Incr(ctx, k)
		return nil
	}); err != nil {
		return false, err
	}
	return incr.Val() <= l.max, nil
}
