package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisLookupCacheRepository struct {
	client *redis.Client
}

func NewRedisLookupCacheRepository(client *redis.Client) *RedisLookupCacheRepository {
	return &RedisLookupCacheRepository{client: client}
}

func lookupCacheKey(url string) string {
	return "lookup:" + url
}

func (r *RedisLookupCacheRepository) Get(ctx context.Context, url string) (PageInfo, bool, error) {
	data, err := r.client.Get(ctx, lookupCacheKey(url)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return PageInfo{}, false, nil
		}
		return PageInfo{}, false, err
	}

	var info PageInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return PageInfo{}, false, err
	}
	return info, true, nil
}

func (r *RedisLookupCacheRepository) Set(ctx context.Context, url string, info PageInfo, ttl time.Duration) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, lookupCacheKey(url), data, ttl).Err()
}
