package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mindwrite-api/models"

	"github.com/redis/go-redis/v9"
)

const tagCountsKey = "tags:with-count"

// Cache wraps the Redis client used for the tag post-count aggregate.
// A nil client disables it: reads miss, writes are no-ops.
type Cache struct {
	client *redis.Client
	ctx    context.Context
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client, ctx: context.Background()}
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil
}

// GetTagCounts returns nil, nil on a cache miss.
func (c *Cache) GetTagCounts() ([]models.TagWithCount, error) {
	if !c.enabled() {
		return nil, nil
	}

	data, err := c.client.Get(c.ctx, tagCountsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}

	var counts []models.TagWithCount
	if err := json.Unmarshal([]byte(data), &counts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached data: %w", err)
	}

	return counts, nil
}

func (c *Cache) SetTagCounts(counts []models.TagWithCount, ttl time.Duration) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to marshal tag counts: %w", err)
	}

	if err := c.client.Set(c.ctx, tagCountsKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// InvalidateTagCounts drops the aggregate after any post or tag mutation.
func (c *Cache) InvalidateTagCounts() error {
	if !c.enabled() {
		return nil
	}

	if err := c.client.Del(c.ctx, tagCountsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}

	return nil
}
