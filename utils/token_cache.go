package utils

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned by TokenCache.Get when nothing is cached.
var ErrCacheMiss = errors.New("cache miss")

// TokenCache remembers the hash of each user's active access token so the auth
// middleware can skip the database on most requests.
type TokenCache interface {
	Get(ctx context.Context, username string) (string, error)
	Set(ctx context.Context, username, tokenHash string) error
	Delete(ctx context.Context, username string) error
}

// RedisTokenCache stores token hashes under AuthCachePrefix with a sliding TTL.
type RedisTokenCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisTokenCache returns nil when client is nil so that callers can treat a
// missing redis as "no cache".
func NewRedisTokenCache(client *redis.Client) TokenCache {
	if client == nil {
		return nil
	}
	return &RedisTokenCache{Client: client, TTL: AuthCacheTTL}
}

func (c *RedisTokenCache) Get(ctx context.Context, username string) (string, error) {
	key := AuthCacheKey(username)
	hash, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	_ = c.Client.Expire(ctx, key, c.TTL).Err()
	return hash, nil
}

func (c *RedisTokenCache) Set(ctx context.Context, username, tokenHash string) error {
	return c.Client.Set(ctx, AuthCacheKey(username), tokenHash, c.TTL).Err()
}

func (c *RedisTokenCache) Delete(ctx context.Context, username string) error {
	return c.Client.Del(ctx, AuthCacheKey(username)).Err()
}
