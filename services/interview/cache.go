package interview

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// EnrichmentCache is a short-TTL read-through cache for candidate/job
// summaries, so paging through a long interview list does not hammer the
// candidate and job collections. All failures degrade to a direct lookup.
type EnrichmentCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewEnrichmentCache(client *redis.Client, ttl time.Duration) *EnrichmentCache {
	return &EnrichmentCache{Client: client, TTL: ttl}
}

// get loads a cached JSON value into dest, reporting whether it was present.
func (c *EnrichmentCache) get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.Client == nil {
		return false
	}
	data, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

func (c *EnrichmentCache) set(ctx context.Context, key string, v interface{}) {
	if c == nil || c.Client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.Client.Set(ctx, key, data, c.TTL)
}

func (c *EnrichmentCache) invalidate(ctx context.Context, key string) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Del(ctx, key)
}
