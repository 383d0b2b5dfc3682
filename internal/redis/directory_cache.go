package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

const directoryKey = "directory:facilities"

// DirectoryCache stores the whole facility directory as one JSON value.
type DirectoryCache struct {
	client *goredis.Client
	key    string
}

func NewDirectoryCache(r *Redis) *DirectoryCache {
	return &DirectoryCache{
		client: r.Client,
		key:    directoryKey,
	}
}

// GetFacilities returns nil, nil when the snapshot is missing or expired.
func (c *DirectoryCache) GetFacilities(ctx context.Context) ([]domain.CachedFacility, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, e.Wrap("redis.DirectoryCache.GetFacilities", err)
	}

	facilities := make([]domain.CachedFacility, 0)
	if err := json.Unmarshal(data, &facilities); err != nil {
		return nil, e.Wrap("redis.DirectoryCache.GetFacilities: decode", err)
	}

	return facilities, nil
}

func (c *DirectoryCache) SetFacilities(ctx context.Context, facilities []domain.CachedFacility, ttl time.Duration) error {
	if facilities == nil {
		facilities = []domain.CachedFacility{}
	}
	b, err := json.Marshal(facilities)
	if err != nil {
		return e.Wrap("redis.DirectoryCache.SetFacilities: encode", err)
	}
	if err := c.client.Set(ctx, c.key, b, ttl).Err(); err != nil {
		return e.Wrap("redis.DirectoryCache.SetFacilities", err)
	}
	return nil
}

func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return e.Wrap("redis.DirectoryCache.Invalidate", err)
	}
	return nil
}
