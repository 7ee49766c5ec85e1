package redis

import (
	"context"
	"time"

	"valfantasy/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Type for the client.
type RedisClient struct {
	*redis.Client
}

// NewClient creates a redis client from the configuration.
func NewClient(cfg config.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + cfg.Port,
		Password:     cfg.Password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     100,
		MinIdleConns: 10,
		PoolTimeout:  30 * time.Second,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisClient{Client: client}, nil
}

// Close the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Wrapper to return the Result directly.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Wrapper to already return the .Err()
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}
