// Package cache provides an optional Redis-backed store for extracted
// feature vectors. It lives strictly in the serving layer: the extraction
// engine stays pure, and every cache failure degrades to recomputation, so
// a missing or unhealthy Redis never affects correctness.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// VectorCache stores feature vectors keyed by the exact raw URL. Extraction
// is deterministic, so entries are valid forever; TTL only bounds memory.
type VectorCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the link with a short ping.
// Returns an error when Redis is unreachable; callers are expected to treat
// that as "run without a cache", not as fatal.
func New(addr string, ttl time.Duration) (*VectorCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return &VectorCache{client: client, ttl: ttl}, nil
}

// vectorKey namespaces cache entries. The raw URL is the key material:
// two byte-identical URLs always extract to the same vector.
func vectorKey(url string) string {
	return "vigilant:vec:" + url
}

// Get returns the cached vector for url, or found=false on a miss.
// Errors are reported as misses with the error attached; callers recompute
// either way.
func (c *VectorCache) Get(ctx context.Context, url string) ([]float32, bool, error) {
	data, err := c.client.Get(ctx, vectorKey(url)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var vec []float32
	if err := json.Unmarshal([]byte(data), &vec); err != nil {
		// A corrupt entry is a miss; it will be overwritten on Set.
		return nil, false, err
	}
	return vec, true, nil
}

// Set stores a vector for url. Best-effort: errors are returned for logging
// but callers must not fail the request over them.
func (c *VectorCache) Set(ctx context.Context, url string, vec []float32) error {
	data, err := json.Marshal(vec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, vectorKey(url), data, c.ttl).Err()
}

// Close releases the Redis connection.
func (c *VectorCache) Close() error {
	return c.client.Close()
}
