package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client
}

func TestRedisGeocodeCacheRoundtrip(t *testing.T) {
	c := NewRedisGeocodeCache(newTestRedis(t))
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "Alexanderplatz, Berlin"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	entry := ports.GeocodeEntry{
		Location: domain.Coordinates{Lat: 52.52, Lon: 13.405},
		Found:    true,
	}
	if err := c.Put(ctx, "Alexanderplatz, Berlin", entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "Alexanderplatz, Berlin")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got != entry {
		t.Fatalf("entry = %+v, want %+v", got, entry)
	}
}

func TestRedisGeocodeCacheNegativeEntry(t *testing.T) {
	c := NewRedisGeocodeCache(newTestRedis(t))
	ctx := context.Background()

	if err := c.Put(ctx, "nowhere at all", ports.GeocodeEntry{Found: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "nowhere at all")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Found {
		t.Fatalf("expected negative entry, got %+v", got)
	}
}

func TestRedisGeocodeCacheRejectsEmptyAddress(t *testing.T) {
	c := NewRedisGeocodeCache(newTestRedis(t))
	ctx := context.Background()

	if _, _, err := c.Get(ctx, "  "); err == nil {
		t.Fatal("expected error for empty address")
	}
	if err := c.Put(ctx, "", ports.GeocodeEntry{}); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestRedisRouteCacheRoundtrip(t *testing.T) {
	c := NewRedisRouteCache(newTestRedis(t))
	ctx := context.Background()

	key := "driving|52.52000,13.40500|52.60000,13.50000"

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	shape := ports.RouteShape{
		DistanceKm: 2.5,
		Path: []domain.PathPoint{
			{52.52, 13.405},
			{52.6, 13.5},
		},
	}
	if err := c.Put(ctx, key, shape); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.DistanceKm != shape.DistanceKm || len(got.Path) != 2 || got.Path[0] != shape.Path[0] {
		t.Fatalf("shape = %+v, want %+v", got, shape)
	}
}
