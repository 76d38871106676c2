package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// CountsCache caches the calendar's date→count mapping per filter
// combination. Entries stay hot only briefly; the backend remains the
// source of truth and a miss simply refetches.
type CountsCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewCountsCache creates a counts cache with the given entry TTL.
func NewCountsCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *CountsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CountsCache{
		client: client,
		prefix: "auction_counts:",
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached counts for a filter key. A miss returns
// (nil, false, nil); a corrupt entry is dropped and reported as a miss.
func (c *CountsCache) Get(ctx context.Context, filterKey string) (map[string]int, bool, error) {
	key := c.prefix + filterKey
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var counts map[string]int
	if unmarshalErr := json.Unmarshal([]byte(data), &counts); unmarshalErr != nil {
		c.logger.WarnContext(ctx, "discarding corrupt counts entry",
			"key", key, "error", unmarshalErr)
		_ = c.client.Del(ctx, key).Err()
		return nil, false, nil
	}
	return counts, true, nil
}

// Set stores the counts for a filter key with the cache TTL.
func (c *CountsCache) Set(ctx context.Context, filterKey string, counts map[string]int) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("marshal counts: %w", err)
	}
	return c.client.Set(ctx, c.prefix+filterKey, data, c.ttl).Err()
}

// Invalidate removes every cached counts entry. Called after operations
// that change the underlying auction set, such as a scraper run.
func (c *CountsCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan counts keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
