package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a fixed-window Limiter backed by a shared Redis instance, for
// deployments where several replicas must enforce one limit. Each client key
// gets a counter per one-second window; the window size means bursts are
// bounded by perSecond+burst rather than shaped like the local bucket.
type Redis struct {
	rdb   *redis.Client
	limit int64
}

// NewRedis creates a Redis-backed limiter allowing perSecond requests plus
// burst headroom per client key per second.
func NewRedis(rdb *redis.Client, perSecond, burst int) *Redis {
	return &Redis{
		rdb:   rdb,
		limit: int64(perSecond + burst),
	}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	window := time.Now().Unix()
	counterKey := "ratelimit:" + key + ":" + strconv.FormatInt(window, 10)

	pipe := r.rdb.TxPipeline()
	incr := pipe.Incr(ctx, counterKey)
	// Expire comfortably after the window closes so counters clean
	// themselves up.
	pipe.Expire(ctx, counterKey, 2*time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ratelimit: incr %s: %w", key, err)
	}

	return incr.Val() <= r.limit, nil
}

// Ping verifies the backing connection, for readiness checks.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ratelimit: ping: %w", err)
	}
	return nil
}
