package rdx

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"yatra/globals"
)

var Conn *redis.Client

func init() {
	Conn = NewClient(globals.Getenv("REDIS_URL", "localhost:6379"))
}

// NewClient builds a Redis client for the given address.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: globals.Getenv("REDIS_PASSWORD", ""),
		DB:       0,
	})
}

// GetJSON reads a cached JSON value into dst. A miss or a Redis error both
// report false; the caller falls through to the origin either way.
func GetJSON(ctx context.Context, c *redis.Client, key string, dst any) bool {
	v, err := c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("redis get %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal(v, dst); err != nil {
		log.Printf("redis decode %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON caches a value as JSON with a TTL. Failures are logged, not
// surfaced; the cache is best effort.
func SetJSON(ctx context.Context, c *redis.Client, key string, v any, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("redis encode %s: %v", key, err)
		return
	}
	if err := c.Set(ctx, key, b, ttl).Err(); err != nil {
		log.Printf("redis set %s: %v", key, err)
	}
}
