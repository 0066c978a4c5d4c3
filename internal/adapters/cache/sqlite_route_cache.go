package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

// SQLite backed cache for routed leg shapes keyed by profile and endpoints.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Fetch a cached leg shape.
func (s *SqliteRouteCache) Get(ctx context.Context, key string) (ports.RouteShape, bool, error) {
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
    WHERE leg_key = ?;
	`

	var km float64
	var pathJSON string
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&km, &pathJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RouteShape{}, false, nil
	}
	if err != nil {
		return ports.RouteShape{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	var path []domain.PathPoint
	if err := json.Unmarshal([]byte(pathJSON), &path); err != nil {
		return ports.RouteShape{}, false, fmt.Errorf("get route cache: decode path for %q: %w", key, err)
	}

	return ports.RouteShape{DistanceKm: km, Path: path}, true, nil
}

// Store a leg shape, replacing any previous entry.
func (s *SqliteRouteCache) Put(ctx context.Context, key string, shape ports.RouteShape) error {
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
	INSERT OR REPLACE INTO route_cache (leg_key, distance_km, path)
    VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, key, shape.DistanceKm, string(pathJSON)); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
