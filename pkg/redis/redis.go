package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Redis struct {
	Client *redis.Client
}

type Option func(*redis.Options)

func PoolSize(n int) Option {
	return func(o *redis.Options) {
		if n > 0 {
			o.PoolSize = n
		}
	}
}

func DialTimeout(d time.Duration) Option {
	return func(o *redis.Options) {
		if d > 0 {
			o.DialTimeout = d
		}
	}
}

// New only configures the client; the first command opens a connection.
func New(addr, password string, db int, opts ...Option) (*Redis, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis: empty address")
	}

	options := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Redis{Client: redis.NewClient(options)}, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		_ = r.Client.Close()
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
