package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/platform/obs"
	"squaremiles-route-service/internal/ports"
)

// SQLRouteCache is a Postgres-backed cache for routed leg shapes.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch a cached leg shape.
func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ ports.RouteShape, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteShape{}, false, errors.New("route cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return ports.RouteShape{}, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT distance_km, path
    FROM route_cache
    WHERE leg_key = $1;
	`

	var km float64
	var pathJSON string
	scanErr := s.DB.QueryRowContext(ctx, q, key).Scan(&km, &pathJSON)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return ports.RouteShape{}, false, nil
	}
	if scanErr != nil {
		return ports.RouteShape{}, false, fmt.Errorf("get route cache: query route_cache table: %w", scanErr)
	}

	var path []domain.PathPoint
	if err := json.Unmarshal([]byte(pathJSON), &path); err != nil {
		return ports.RouteShape{}, false, fmt.Errorf("get route cache: decode path for %q: %w", key, err)
	}

	return ports.RouteShape{DistanceKm: km, Path: path}, true, nil
}

// Store a leg shape, replacing any previous entry.
func (s *SQLRouteCache) Put(ctx context.Context, key string, shape ports.RouteShape) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	pathJSON, err := json.Marshal(shape.Path)
	if err != nil {
		return fmt.Errorf("insert route cache: encode path for %q: %w", key, err)
	}

	q := `
	INSERT INTO route_cache (leg_key, distance_km, path)
    VALUES ($1, $2, $3)
	ON CONFLICT (leg_key) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		path = EXCLUDED.path;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, shape.DistanceKm, string(pathJSON)); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
