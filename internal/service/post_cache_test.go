package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/repository"
)

func TestGenerate_CacheHitShortCircuits(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := NewCacheService("redis://" + mr.Addr())

	ctx := context.Background()
	err := cache.SetPost(ctx, &model.CachedPost{
		VideoID:   "vid123xyz00",
		Title:     "Cutting Dovetails by Hand",
		BlogHTML:  "<h1>Cutting Dovetails by Hand</h1>",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	md := &fakeMetadata{meta: testMeta()}
	svc := NewPostService(md, &fakeTranscripts{}, &fakeCompleter{}, cache, repository.NewPostRepo(nil), PostServiceOptions{})

	result, err := svc.Generate(ctx, "vid123xyz00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.FromCache {
		t.Error("expected cached result")
	}
	if result.HTML != "<h1>Cutting Dovetails by Hand</h1>" {
		t.Errorf("cached HTML not returned verbatim: %q", result.HTML)
	}
	if md.infoCalls != 0 {
		t.Errorf("cache hit must not touch the metadata API, got %d calls", md.infoCalls)
	}
}
