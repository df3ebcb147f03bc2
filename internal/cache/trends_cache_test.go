package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"mindwell/internal/model"
)

// newTestTrendsCache creates a TrendsCache backed by a miniredis server.
func newTestTrendsCache(t *testing.T) (TrendsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewTrendsCache(client), mr
}

func TestTrendsCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestTrendsCache(t)

	summary := &model.TrendSummary{
		Trend:              "declining",
		AverageScore:       -0.42,
		Volatility:         0.15,
		PositivePercentage: 10,
		NegativePercentage: 70,
		CrisisCount:        2,
	}

	if err := cache.Set(ctx, "user_1", summary); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, "user_1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached summary")
	}
	if got.Trend != "declining" || got.AverageScore != -0.42 || got.CrisisCount != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestTrendsCacheMissReturnsNil(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestTrendsCache(t)

	got, err := cache.Get(ctx, "nobody")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil on miss, got %+v", got)
	}
}

func TestTrendsCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestTrendsCache(t)

	if err := cache.Set(ctx, "user_1", &model.TrendSummary{Trend: "stable"}); err != nil {
		t.Fatal(err)
	}
	if err := cache.Invalidate(ctx, "user_1"); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}

	got, err := cache.Get(ctx, "user_1")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil after invalidate, got %+v", got)
	}
}

func TestTrendsCacheExpires(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestTrendsCache(t)

	if err := cache.Set(ctx, "user_1", &model.TrendSummary{Trend: "stable"}); err != nil {
		t.Fatal(err)
	}

	mr.FastForward(11 * time.Minute)

	got, err := cache.Get(ctx, "user_1")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("expected entry to expire after TTL")
	}
}
