// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"hireflow/config"
)

// CacheClient is the generic cache client, used for enrichment caching.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. Unlike the document store,
// Redis is optional: when it is unreachable the service runs without the
// enrichment cache instead of refusing to start.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Printf("Redis cache unavailable, continuing without enrichment cache: %v", err)
		CacheClient = nil
	}
}

// GetCacheClient returns the cache client, which may be nil when Redis is
// down.
func GetCacheClient() *redis.Client {
	return CacheClient
}
