// internal/infrastructure/database/redis/connection.go
package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client. All session-scoped state (carts,
// preferences, toasts, analytics events) lives behind this wrapper;
// domain services consume it through their own narrow interfaces.
type Client struct {
	Redis *redis.Client
}

// NewConnection creates a new Redis connection
func NewConnection(cfg *config.Config) (*Client, error) {
	// Create Redis client
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,

		// Connection timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		// Pool timeouts
		PoolTimeout: 4 * time.Second,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("✅ Redis connection established successfully")

	return &Client{
		Redis: rdb,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.Redis.Close()
}

// GetClient returns the Redis client instance
func (c *Client) GetClient() *redis.Client {
	return c.Redis
}

// Health checks the Redis connection health
func (c *Client) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return c.Redis.Ping(ctx).Err()
}

// Set stores a key-value pair without expiration
func (c *Client) Set(ctx context.Context, key string, value string) error {
	return c.Redis.Set(ctx, key, value, 0).Err()
}

// SetWithTTL stores a key-value pair that expires after the given duration
func (c *Client) SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.Redis.Set(ctx, key, value, ttl).Err()
}

// Get retrieves a value by key. A missing key yields an empty string,
// not an error; callers treat absence as "start empty".
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

// Delete deletes one or more keys
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	return c.Redis.Del(ctx, keys...).Err()
}

// Exists checks if key exists
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.Redis.Exists(ctx, key).Result()
	return count > 0, err
}

// Push prepends a value to a list and trims the list to at most max
// entries, oldest dropped first.
func (c *Client) Push(ctx context.Context, key string, value string, max int64) error {
	pipe := c.Redis.Pipeline()
	pipe.LPush(ctx, key, value)
	pipe.LTrim(ctx, key, 0, max-1)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns up to n entries from a list, newest first
func (c *Client) List(ctx context.Context, key string, n int64) ([]string, error) {
	values, err := c.Redis.LRange(ctx, key, 0, n-1).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return values, err
}
