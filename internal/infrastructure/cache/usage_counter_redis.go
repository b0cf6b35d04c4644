package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/redis/go-redis/v9"
)

const (
	counterKeyPrefix = "usage:"
	fieldTokens      = "tokens"
	fieldItems       = "items"

	// buckets outlive their period by this much so late readers still see them
	counterRetention = 48 * time.Hour
)

// RedisUsageCounter keeps period counters in Redis hashes, one per bucket.
// HINCRBY is atomic on the server, so concurrent increments are never lost.
type RedisUsageCounter struct {
	client redis.UniversalClient
}

// NewRedisUsageCounter creates a counter store on an existing client
func NewRedisUsageCounter(client redis.UniversalClient) *RedisUsageCounter {
	return &RedisUsageCounter{client: client}
}

var _ usage.CounterRepository = (*RedisUsageCounter)(nil)

// bucketKey is usage:<owner>:<period>:<yyyymmdd of period start>
func bucketKey(ownerID string, p usage.Period, at time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", counterKeyPrefix, ownerID, p, p.Start(at).Format("20060102"))
}

// Increment adds delta to the daily and monthly buckets in one MULTI/EXEC
func (c *RedisUsageCounter) Increment(ctx context.Context, ownerID string, delta usage.Delta, at time.Time) error {
	if err := delta.Validate(); err != nil {
		return err
	}
	if ownerID == "" {
		return shared.NewValidationError("owner is required")
	}
	if delta.IsZero() {
		return nil
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, p := range usage.Periods() {
			key := bucketKey(ownerID, p, at)
			pipe.HIncrBy(ctx, key, fieldTokens, delta.Tokens)
			pipe.HIncrBy(ctx, key, fieldItems, delta.Items)
			pipe.ExpireAt(ctx, key, p.End(at).Add(counterRetention))
		}
		return nil
	})
	if err != nil {
		return shared.NewPersistenceError("increment usage counters", err)
	}
	return nil
}

// Snapshot reads both current buckets in one round trip
func (c *RedisUsageCounter) Snapshot(ctx context.Context, ownerID string, at time.Time) (usage.Snapshot, error) {
	periods := usage.Periods()
	cmds := make([]*redis.SliceCmd, len(periods))
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, p := range periods {
			cmds[i] = pipe.HMGet(ctx, bucketKey(ownerID, p, at), fieldTokens, fieldItems)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return usage.Snapshot{}, shared.NewPersistenceError("load usage counters", err)
	}

	counters := make([]usage.Counter, 0, len(periods))
	for i, p := range periods {
		vals, err := cmds[i].Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return usage.Snapshot{}, shared.NewPersistenceError("load usage counters", err)
		}
		tokens, err := parseCount(vals, 0)
		if err != nil {
			return usage.Snapshot{}, err
		}
		items, err := parseCount(vals, 1)
		if err != nil {
			return usage.Snapshot{}, err
		}
		counters = append(counters, usage.Counter{
			OwnerID:        ownerID,
			Period:         p,
			PeriodStart:    p.Start(at),
			TokensUsed:     tokens,
			ItemsProcessed: items,
		})
	}
	return usage.SnapshotFromCounters(counters), nil
}

// parseCount reads one HMGET slot; a missing field counts as zero
func parseCount(vals []any, i int) (int64, error) {
	if i >= len(vals) || vals[i] == nil {
		return 0, nil
	}
	s, ok := vals[i].(string)
	if !ok {
		return 0, shared.NewPersistenceError("decode usage counter", fmt.Errorf("unexpected type %T", vals[i]))
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, shared.NewPersistenceError("decode usage counter", err)
	}
	return n, nil
}
