package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "asistente:"

// RedisDocuments stores each collection as one value under a prefixed key.
type RedisDocuments struct {
	client *redis.Client
}

// NewRedisDocuments connects to Redis and verifies the connection.
func NewRedisDocuments(redisURL string) (*RedisDocuments, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisDocuments{client: client}, nil
}

// Read returns the collection document, or nil when the key does not exist.
func (r *RedisDocuments) Read(ctx context.Context, c Collection) ([]byte, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+string(c)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write replaces the collection document. Documents never expire.
func (r *RedisDocuments) Write(ctx context.Context, c Collection, data []byte) error {
	return r.client.Set(ctx, redisKeyPrefix+string(c), data, 0).Err()
}

// Close closes the Redis connection.
func (r *RedisDocuments) Close() error {
	return r.client.Close()
}
