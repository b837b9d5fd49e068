package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

// CacheService is the vector cache: generated posts keyed by video ID,
// stored with their embedding so repeat requests skip the whole pipeline.
// Entries are written once and never expire.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and all
// cache operations become no-ops.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		middleware.Logger.Info().Msg("redis: no URL configured, post cache disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, post cache disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn().Err(err).Msg("redis: connection failed, post cache disabled")
		return &CacheService{}
	}

	middleware.Logger.Info().Msg("redis: connected, post cache enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetPost retrieves a cached post by video ID. A miss returns (nil, nil):
// absence is an expected state, not an error.
func (c *CacheService) GetPost(ctx context.Context, videoID string) (*model.CachedPost, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, postKey(videoID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cached model.CachedPost
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

// SetPost stores a generated post and its embedding under the video ID.
// No TTL: cached posts live until the key is overwritten.
func (c *CacheService) SetPost(ctx context.Context, cached *model.CachedPost) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, postKey(cached.VideoID), b, 0).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func postKey(videoID string) string {
	return fmt.Sprintf("post:%s", videoID)
}
