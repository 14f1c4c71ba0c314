package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"best-menu/ai-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get reports ok=false without an error when the key is absent.
func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.Dish, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendations from Redis: %w", err)
	}

	var dishes []domain.Dish
	if err := json.Unmarshal(data, &dishes); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}
	return dishes, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, dishes []domain.Dish) error {
	data, err := json.Marshal(dishes)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save recommendations to Redis: %w", err)
	}
	return nil
}
