// Package store persists the single most recently resolved location.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/brunohmlima/cep-forecast/internal/forecast"
	"github.com/redis/go-redis/v9"
)

// lastLocationKey is the fixed key holding the single cached location slot.
const lastLocationKey = "cep-forecast:last-location"

// RedisLocationCache implements forecast.LocationCache on one Redis string
// key. The slot has no TTL: it is overwritten on each qualifying resolution
// and kept across restarts for the map-marker bootstrap.
type RedisLocationCache struct {
	client *redis.Client
}

// NewRedisLocationCache creates a RedisLocationCache.
func NewRedisLocationCache(client *redis.Client) *RedisLocationCache {
	return &RedisLocationCache{client: client}
}

// Load reads the cached location. An absent key, a transport error, and a
// corrupt payload all return nil; the latter two are logged. Load never
// fails the caller.
func (c *RedisLocationCache) Load(ctx context.Context) *forecast.CachedLocation {
	data, err := c.client.Get(ctx, lastLocationKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("ERROR: load cached location: %v", err)
		}
		return nil
	}

	var loc forecast.CachedLocation
	if err := json.Unmarshal(data, &loc); err != nil {
		log.Printf("ERROR: cached location payload is corrupt, ignoring: %v", err)
		return nil
	}
	return &loc
}

// Save overwrites the slot. Last write wins, no merge.
func (c *RedisLocationCache) Save(ctx context.Context, loc forecast.CachedLocation) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("marshal cached location: %w", err)
	}
	if err := c.client.Set(ctx, lastLocationKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save cached location: %w", err)
	}
	return nil
}
