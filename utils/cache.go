// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"schedulematch/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching. It stays nil
// when redis is unreachable; callers then go straight to the database.
var AuthCacheClient *redis.Client

// InitAuthCache connects the authorization cache using the DB index from AppConfig.
func InitAuthCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	AuthCacheClient = client
	return nil
}

// GetAuthCacheClient returns the Redis client for authorization caching, or nil.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// AuthCacheKey is the key under which a user's active token hash is cached.
func AuthCacheKey(username string) string {
	return AuthCachePrefix + username
}
