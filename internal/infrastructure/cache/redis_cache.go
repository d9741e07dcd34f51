package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
	redis "github.com/redis/go-redis/v9"
)

// RedisSalesCache caches computed aggregates in Redis as JSON.
type RedisSalesCache struct {
	client *redis.Client
}

// NewRedisSalesCache creates a Redis-backed sales cache
func NewRedisSalesCache(addr string, password string, db int) *RedisSalesCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisSalesCache{client: client}
}

func (c *RedisSalesCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSalesCache) Close() error {
	return c.client.Close()
}

func (c *RedisSalesCache) Get(ctx context.Context, key string) (*entity.SalesAggregate, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var agg entity.SalesAggregate
	if err := json.Unmarshal([]byte(val), &agg); err != nil {
		return nil, false, err
	}
	return &agg, true, nil
}

func (c *RedisSalesCache) Set(ctx context.Context, key string, value *entity.SalesAggregate, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
