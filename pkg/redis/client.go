package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yujm08/MSAProjects-ezen/pkg/errors"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

type client struct {
	logger  logger.Interface
	config  *Config
	cmdable *redis.Client
}

// NewClient creates a new Redis client with the provided logger and configuration.
func NewClient(logger logger.Interface, config *Config) Client {
	return &client{
		logger: logger,
		config: config,
	}
}

func (c *client) Connect(ctx context.Context) error {
	if c.config == nil {
		return errors.NewErrorDetails("Redis config is nil", string(errors.RedisConfigError), "connect")
	}

	if c.config.Addr == "" {
		return errors.NewErrorDetails("Redis address is empty", string(errors.RedisConfigError), "connect")
	}

	if c.config.ConnectTimeout <= 0 {
		return errors.NewErrorDetails("Invalid Redis connect timeout", string(errors.RedisConfigError), "connect")
	}

	if c.config.PoolSize <= 0 {
		return errors.NewErrorDetails("Invalid Redis pool size", string(errors.RedisConfigError), "connect")
	}

	c.cmdable = redis.NewClient(&redis.Options{
		Addr:         c.config.Addr,
		Username:     c.config.Username,
		Password:     c.config.Password,
		DB:           c.config.DB,
		DialTimeout:  c.config.ConnectTimeout,
		ReadTimeout:  c.config.ConnectTimeout,
		WriteTimeout: c.config.ConnectTimeout,
		PoolSize:     c.config.PoolSize,
		MinIdleConns: c.config.MinIdleConns,
		MaxIdleConns: c.config.MaxIdleConns,
	})

	if err := c.cmdable.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetails("Failed to connect to Redis", string(errors.RedisConnectionError), "connect")
	}

	return nil
}

func (c *client) Disconnect(ctx context.Context) error {
	if c.cmdable == nil {
		return nil
	}
	return c.cmdable.Close()
}

func (c *client) Ping(ctx context.Context) error {
	if err := c.cmdable.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetails("Failed to ping Redis", string(errors.RedisPingError), "ping")
	}
	return nil
}

func (c *client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.cmdable.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.NewErrorDetails("Failed to get value from Redis", string(errors.RedisGetError), "get")
	}
	return val, nil
}

func (c *client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if err := c.cmdable.Set(ctx, key, value, expiration).Err(); err != nil {
		return errors.NewErrorDetails("Failed to set value in Redis", string(errors.RedisSetError), "set")
	}
	return nil
}

func (c *client) Del(ctx context.Context, keys ...string) (int64, error) {
	deleted, err := c.cmdable.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.NewErrorDetails("Failed to delete keys from Redis", string(errors.RedisDelError), "del")
	}
	return deleted, nil
}
