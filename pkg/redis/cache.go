package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/savioruz/turfics/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mock/cache.go -package=mock github.com/savioruz/turfics/pkg/redis Interface

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = redis.Nil

type IRedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type iRedisCacheImpl struct {
	client redis.Cmdable
	log    logger.Interface
}

func NewRedisCache(client redis.Cmdable, log logger.Interface) IRedisCache {
	return &iRedisCacheImpl{
		client: client,
		log:    log,
	}
}

// Clear removes every key starting with prefix.
func (i *iRedisCacheImpl) Clear(ctx context.Context, prefix string) (err error) {
	iter := i.client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		if err = i.client.Del(ctx, iter.Val()).Err(); err != nil {
			i.log.Error("redis - clear - failed to delete cache: %v", err)

			return err
		}
	}

	return iter.Err()
}

// Delete implements IRedisCache.
func (i *iRedisCacheImpl) Delete(ctx context.Context, key string) error {
	err := i.client.Del(ctx, key).Err()

	if err != nil {
		i.log.Error("redis - delete - failed to delete cache: %v", err)

		return err
	}

	return nil
}

// Get implements IRedisCache. A missing key returns ErrCacheMiss and is not logged.
func (i *iRedisCacheImpl) Get(ctx context.Context, key string, value any) (err error) {
	cacheValue, err := i.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			i.log.Error("redis - get - failed to read cache: %v", err)
		}

		return err
	}

	switch v := value.(type) {
	case *string:
		*v = cacheValue
	default:
		if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
			i.log.Error("redis - get - failed to unmarshal value: %v", err)

			return err
		}
	}

	return nil
}

// Save implements IRedisCache.
func (i *iRedisCacheImpl) Save(ctx context.Context, key string, value any, duration int) (err error) {
	var strValue string

	switch v := value.(type) {
	case string:
		strValue = v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			i.log.Error("redis - save - failed to marshal value: %v", err)

			return err
		}

		strValue = string(raw)
	}

	err = i.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()
	if err != nil {
		i.log.Error("redis - save - failed to save value: %v", err)

		return err
	}

	i.log.Debug("redis - save - saved value %s", key)

	return nil
}
