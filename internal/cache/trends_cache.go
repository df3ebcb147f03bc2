package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"mindwell/internal/model"
)

// TrendsCache handles Redis operations for computed sentiment trends
type TrendsCache interface {
	Get(ctx context.Context, userID string) (*model.TrendSummary, error)
	Set(ctx context.Context, userID string, summary *model.TrendSummary) error
	Invalidate(ctx context.Context, userID string) error
}

type trendsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrendsCache creates a new trends cache
func NewTrendsCache(client *redis.Client) TrendsCache {
	return &trendsCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *trendsCache) key(userID string) string {
	return "trends:" + userID
}

func (c *trendsCache) Get(ctx context.Context, userID string) (*model.TrendSummary, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary model.TrendSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *trendsCache) Set(ctx context.Context, userID string, summary *model.TrendSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

func (c *trendsCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
