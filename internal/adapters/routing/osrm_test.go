package routing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

type memRouteCache struct {
	entries map[string]ports.RouteShape
}

func newMemRouteCache() *memRouteCache {
	return &memRouteCache{entries: make(map[string]ports.RouteShape)}
}

func (c *memRouteCache) Get(_ context.Context, key string) (ports.RouteShape, bool, error) {
	s, ok := c.entries[key]
	return s, ok, nil
}

func (c *memRouteCache) Put(_ context.Context, key string, shape ports.RouteShape) error {
	c.entries[key] = shape
	return nil
}

func TestPlanLegParsesRouteAndCaches(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"routes":[{"distance":2500.0,"geometry":{"coordinates":[[13.405,52.52],[13.5,52.6]]}}]}`)
	}))
	defer srv.Close()

	p := NewOSRMPlanner(newMemRouteCache())
	p.SetBaseURL(srv.URL)

	origin := domain.Coordinates{Lat: 52.52, Lon: 13.405}
	dest := domain.Coordinates{Lat: 52.6, Lon: 13.5}

	shape, err := p.PlanLeg(context.Background(), origin, dest, "driving")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if shape.DistanceKm != 2.5 {
		t.Fatalf("distance = %v, want 2.5", shape.DistanceKm)
	}
	if len(shape.Path) != 2 {
		t.Fatalf("expected 2 path points, got %d", len(shape.Path))
	}
	// Geometry arrives as [lon, lat] and is flipped to [lat, lon].
	if shape.Path[0] != (domain.PathPoint{52.52, 13.405}) {
		t.Fatalf("first path point = %v, want [52.52 13.405]", shape.Path[0])
	}

	// Second call hits the cache.
	if _, err := p.PlanLeg(context.Background(), origin, dest, "driving"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
}

func TestPlanLegRequiresProfile(t *testing.T) {
	p := NewOSRMPlanner(nil)
	if _, err := p.PlanLeg(context.Background(), domain.Coordinates{}, domain.Coordinates{}, ""); err == nil {
		t.Fatal("expected error for empty profile")
	}
}

func TestPlanLegEmptyRouteSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"routes":[]}`)
	}))
	defer srv.Close()

	p := NewOSRMPlanner(nil)
	p.SetBaseURL(srv.URL)

	origin := domain.Coordinates{Lat: 52.52, Lon: 13.405}
	dest := domain.Coordinates{Lat: 52.6, Lon: 13.5}
	if _, err := p.PlanLeg(context.Background(), origin, dest, "driving"); err == nil {
		t.Fatal("expected error for empty route set")
	}
}
