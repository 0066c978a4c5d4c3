// Package routing provides road-network route planners backed by OSRM.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/platform/obs"
	"squaremiles-route-service/internal/ports"
)

const defaultBaseURL = "https://router.project-osrm.org"

// OSRMPlanner implements RoutePlanner against the public OSRM demo server.
// Results are cached persistently; a failed call is not retried here because
// callers fall back to great-circle routing instead.
type OSRMPlanner struct {
	session *http.Client
	baseURL string
	cache   ports.RouteShapeCache
}

func NewOSRMPlanner(cache ports.RouteShapeCache) *OSRMPlanner {
	return &OSRMPlanner{
		session: &http.Client{Timeout: 12 * time.Second},
		baseURL: defaultBaseURL,
		cache:   cache,
	}
}

// SetBaseURL overrides the OSRM endpoint (self-hosted instances, tests).
func (p *OSRMPlanner) SetBaseURL(u string) { p.baseURL = strings.TrimRight(u, "/") }

// ShapeKey builds the cache key for a leg. Coordinates are rounded to five
// decimals (~1 m) so jittery geocode results still hit the cache.
func ShapeKey(profile string, origin, destination domain.Coordinates) string {
	return fmt.Sprintf("%s|%.5f,%.5f|%.5f,%.5f",
		profile, origin.Lat, origin.Lon, destination.Lat, destination.Lon)
}

type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// PlanLeg fetches the routed distance and geometry between two points.
func (p *OSRMPlanner) PlanLeg(
	ctx context.Context,
	origin, destination domain.Coordinates,
	profile string,
) (_ ports.RouteShape, err error) {
	defer obs.Time(ctx, "osrm.PlanLeg")(&err)

	if profile == "" {
		return ports.RouteShape{}, errors.New("plan leg: profile must be non-empty")
	}

	key := ShapeKey(profile, origin, destination)
	if p.cache != nil {
		shape, ok, err := p.cache.Get(ctx, key)
		if err != nil {
			return ports.RouteShape{}, fmt.Errorf("route cache read: %w", err)
		}
		if ok {
			return shape, nil
		}
	}

	endpoint := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson",
		p.baseURL, profile, origin.Lon, origin.Lat, destination.Lon, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.RouteShape{}, fmt.Errorf("create route request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.session.Do(req)
	if err != nil {
		return ports.RouteShape{}, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return ports.RouteShape{}, fmt.Errorf("route request status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteShape{}, fmt.Errorf("decode route response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return ports.RouteShape{}, errors.New("route response contains no routes")
	}

	route := decoded.Routes[0]
	path := make([]domain.PathPoint, 0, len(route.Geometry.Coordinates))
	for _, c := range route.Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		// OSRM geometry is [lon, lat]; the domain carries [lat, lon].
		path = append(path, domain.PathPoint{c[1], c[0]})
	}

	shape := ports.RouteShape{
		DistanceKm: route.Distance / 1000.0,
		Path:       path,
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, key, shape); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return shape, nil
}
