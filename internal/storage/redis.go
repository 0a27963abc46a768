package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"menubyte/internal/domain"
)

// RedisMenuCache holds assembled menus so repeated customer reads skip the
// database. Invalidated on any catalog mutation.
type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func (c *RedisMenuCache) MenuKey(businessID int64) string {
	return "menu:business:" + strconv.FormatInt(businessID, 10)
}

// GetMenu returns (nil, nil) on a cache miss.
func (c *RedisMenuCache) GetMenu(ctx context.Context, key string) (*domain.MenuView, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var view domain.MenuView
	if err := json.Unmarshal(payload, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *RedisMenuCache) SetMenu(ctx context.Context, key string, view *domain.MenuView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

func (c *RedisMenuCache) Invalidate(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
