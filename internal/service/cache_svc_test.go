package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

func newTestCache(t *testing.T) *CacheService {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCacheService("redis://" + mr.Addr())
}

func TestCacheService_RoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	stored := &model.CachedPost{
		VideoID:   "dQw4w9WgXcQ",
		Title:     "Workshop Tour",
		Embedding: []float32{0.1, 0.2, 0.3},
		BlogHTML:  "<h1>Workshop Tour</h1><p>Hello</p>",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, cache.SetPost(ctx, stored))

	got, err := cache.GetPost(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stored.BlogHTML, got.BlogHTML)
	assert.Equal(t, stored.Title, got.Title)
	assert.Equal(t, stored.Embedding, got.Embedding)
}

func TestCacheService_MissIsNotAnError(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.GetPost(context.Background(), "unknown-key")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheService_DisabledIsNoOp(t *testing.T) {
	cache := NewCacheService("")
	ctx := context.Background()

	require.NoError(t, cache.SetPost(ctx, &model.CachedPost{VideoID: "x"}))

	got, err := cache.GetPost(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, got)
}
