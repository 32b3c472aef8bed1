package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pulsefeed/ranking-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

// Cache stores the full diversified ranking per user. Serving every page
// from one cached ordering is what keeps pagination stable across calls
// within a snapshot.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func buildKey(userID string) string {
	return fmt.Sprintf("rank:user:%s", userID)
}

// GetRanking returns the cached full ordering for a user, if present.
func (c *Cache) GetRanking(ctx context.Context, userID string) ([]domain.RankedItem, bool, error) {
	key := buildKey(userID)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get ranking from cache: %w", err)
	}

	var items []domain.RankedItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal ranking %s: %w", key, err)
	}

	return items, true, nil
}

// SetRanking stores the full ordering for a user.
func (c *Cache) SetRanking(ctx context.Context, userID string, items []domain.RankedItem) error {
	key := buildKey(userID)
	val, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal ranking: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set ranking in cache: %w", err)
	}

	return nil
}

// Invalidate drops a user's cached ranking: used when their interaction
// history changes.
func (c *Cache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, buildKey(userID)).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", buildKey(userID), err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
