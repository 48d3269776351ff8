package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"aqarBack/internal/models"
)

const searchKeyPrefix = "property:search:"

// SearchCache keeps dynamic search results in Redis for a short TTL so repeated
// browse queries skip the database. A nil *SearchCache is a no-op, letting the
// service run without Redis configured.
type SearchCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &SearchCache{Client: client, TTL: ttl}
}

// Key derives a deterministic cache key from the filter. Field order in the
// struct is fixed, so the JSON encoding is stable across calls.
func Key(f models.PropertyFilter) string {
	data, err := json.Marshal(f)
	if err != nil {
		return searchKeyPrefix + "invalid"
	}
	sum := md5.Sum(data)
	return searchKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *SearchCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil || c.Client == nil {
		return false, nil
	}
	data, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func (c *SearchCache) Set(ctx context.Context, key string, value interface{}) error {
	if c == nil || c.Client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, data, c.TTL).Err()
}

// Invalidate drops all cached search results. Called after any property write
// so stale listings never outlive a mutation by more than one round trip.
func (c *SearchCache) Invalidate(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	iter := c.Client.Scan(ctx, 0, searchKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
