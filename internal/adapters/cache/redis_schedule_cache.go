package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"elevator-sequence-service/internal/domain"
	"elevator-sequence-service/internal/platform/obs"
)

// Redis-backed cache for computed schedule results, keyed by request
// fingerprint. Errors are surfaced to the caller, which treats them as
// misses; a cold or unreachable Redis never fails an optimization.
type RedisScheduleCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration) *RedisScheduleCache {
	return &RedisScheduleCache{Client: client, TTL: ttl}
}

// Return the cached schedule for a key, with ok=false on a miss.
func (c *RedisScheduleCache) Get(ctx context.Context, key string) (_ *domain.ScheduleResult, _ bool, err error) {
	defer obs.Time(ctx, "schedule.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("schedule cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get schedule cache: key must not be empty")
	}

	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get schedule cache: %w", err)
	}

	var result domain.ScheduleResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false, fmt.Errorf("get schedule cache: decode entry: %w", err)
	}

	return &result, true, nil
}

// Store a schedule under the key with the configured TTL.
func (c *RedisScheduleCache) Put(ctx context.Context, key string, result *domain.ScheduleResult) (err error) {
	defer obs.Time(ctx, "schedule.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("schedule cache: client is nil")
	}
	if key == "" {
		return errors.New("put schedule cache: key must not be empty")
	}
	if result == nil {
		return errors.New("put schedule cache: result must not be nil")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("put schedule cache: encode entry: %w", err)
	}

	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put schedule cache: %w", err)
	}

	return nil
}
