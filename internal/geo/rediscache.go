package geo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 24 * time.Hour

// RedisCache stores resolved coordinates keyed by the raw address string.
// Identical addresses geocode to identical points, and provider lookups are
// billed per call.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *RedisCache) Get(ctx context.Context, address string) (Point, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(address)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Point{}, false, nil
	}
	if err != nil {
		return Point{}, false, err
	}

	var point Point
	if err := json.Unmarshal(raw, &point); err != nil {
		return Point{}, false, err
	}
	return point, true, nil
}

func (c *RedisCache) Set(ctx context.Context, address string, point Point) error {
	raw, err := json.Marshal(point)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(address), raw, cacheTTL).Err()
}

func cacheKey(address string) string {
	return "geocode:" + address
}
