package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// Set stores a value under key with an expiry. No-op when redis is not
// configured.
func Set(key string, value any, expiration time.Duration) error {
	if Client == nil {
		return nil
	}
	return Client.Set(Ctx, key, value, expiration).Err()
}

// Get returns the cached value for key, or an error on miss or when redis is
// not configured.
func Get(key string) (string, error) {
	if Client == nil {
		return "", redis.Nil
	}
	return Client.Get(Ctx, key).Result()
}

// Del drops keys. No-op when redis is not configured.
func Del(keys ...string) error {
	if Client == nil {
		return nil
	}
	return Client.Del(Ctx, keys...).Err()
}
