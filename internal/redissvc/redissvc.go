package redissvc

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService is a small JSON cache over a Redis client, used to memoize
// analytics responses. A nil *RedisService is a valid no-op cache.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedisService creates a new RedisService.
func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{rdb: rdb, ctx: ctx}
}

// Rdb returns the underlying client.
func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

// GetJSON loads a cached value into dest, reporting whether it was found.
func (s *RedisService) GetJSON(key string, dest any) bool {
	if s == nil {
		return false
	}
	raw, err := s.rdb.Get(s.ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("dropping malformed cache entry %s: %v", key, err)
		s.rdb.Del(s.ctx, key)
		return false
	}
	return true
}

// SetJSON stores a value with a TTL. Cache write failures are logged, not
// surfaced; the store remains the source of truth.
func (s *RedisService) SetJSON(key string, value any, ttl time.Duration) {
	if s == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(s.ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("could not cache %s: %v", key, err)
	}
}
