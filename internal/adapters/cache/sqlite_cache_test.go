package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return db
}

func TestSqliteGeocodeCacheRoundtrip(t *testing.T) {
	c := NewSqliteGeocodeCache(newTestDB(t))
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

	// Upsert keeps the newest value.
	entry.Location.Lat = 52.53
	if err := c.Put(ctx, "Alexanderplatz, Berlin", entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _, _ = c.Get(ctx, "Alexanderplatz, Berlin")
	if got.Location.Lat != 52.53 {
		t.Fatalf("lat after upsert = %v, want 52.53", got.Location.Lat)
	}
}

func TestSqliteGeocodeCacheNegativeEntry(t *testing.T) {
	c := NewSqliteGeocodeCache(newTestDB(t))
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

func TestSqliteRouteCacheRoundtrip(t *testing.T) {
	c := NewSqliteRouteCache(newTestDB(t))
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
	if got.DistanceKm != shape.DistanceKm || len(got.Path) != 2 || got.Path[1] != shape.Path[1] {
		t.Fatalf("shape = %+v, want %+v", got, shape)
	}
}
