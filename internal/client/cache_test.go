package client

import (
	"Photoshare/internal/api/dto"
	"context"
	"testing"
	"time"
)

func TestMemoryCache_MissThenHit(t *testing.T) {
	cache := NewMemorySummaryCache()
	ctx := context.Background()

	_, hit, err := cache.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("want miss on empty cache")
	}

	comments := []dto.CommentSummary{
		{PhotoID: "p1", FileName: "a.jpg", Comment: "nice", DateTime: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
	if err := cache.Put(ctx, "u1", comments); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, hit, err := cache.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("want hit after put")
	}
	if len(got) != 1 || got[0].PhotoID != "p1" || got[0].Comment != "nice" {
		t.Fatalf("got %+v", got)
	}
}

func TestMemoryCache_WriteOnce(t *testing.T) {
	cache := NewMemorySummaryCache()
	ctx := context.Background()

	first := []dto.CommentSummary{{PhotoID: "p1", Comment: "first"}}
	second := []dto.CommentSummary{{PhotoID: "p2", Comment: "second"}}

	if err := cache.Put(ctx, "u1", first); err != nil {
		t.Fatalf("first put: %v", err)
	}
	// second write must be silently ignored
	if err := cache.Put(ctx, "u1", second); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, hit, err := cache.Get(ctx, "u1")
	if err != nil || !hit {
		t.Fatalf("get: hit=%v err=%v", hit, err)
	}
	if len(got) != 1 || got[0].Comment != "first" {
		t.Fatalf("first write was overwritten: %+v", got)
	}
}

func TestMemoryCache_KeysAreIndependent(t *testing.T) {
	cache := NewMemorySummaryCache()
	ctx := context.Background()

	if err := cache.Put(ctx, "u1", []dto.CommentSummary{{PhotoID: "p1"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	_, hit, err := cache.Get(ctx, "u2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("u2 must not see u1's entry")
	}
}

func TestMemoryCache_EmptyListIsAHit(t *testing.T) {
	cache := NewMemorySummaryCache()
	ctx := context.Background()

	if err := cache.Put(ctx, "u1", []dto.CommentSummary{}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, hit, err := cache.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("cached empty list should still be a hit")
	}
	if len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}
}
