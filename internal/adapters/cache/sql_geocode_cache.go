package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/platform/obs"
	"squaremiles-route-service/internal/ports"
)

// SQLGeocodeCache is a Postgres-backed cache mapping addresses to geocoding
// outcomes.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Fetch the cached outcome for an address.
func (s *SQLGeocodeCache) Get(ctx context.Context, address string) (_ ports.GeocodeEntry, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return ports.GeocodeEntry{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return ports.GeocodeEntry{}, false, errors.New("get geocode cache: address must not be empty")
	}

	q := `
	SELECT lat, lon, found
    FROM geocode_cache
    WHERE address = $1;
	`

	var lat, lon float64
	var found int
	scanErr := s.DB.QueryRowContext(ctx, q, address).Scan(&lat, &lon, &found)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return ports.GeocodeEntry{}, false, nil
	}
	if scanErr != nil {
		return ports.GeocodeEntry{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", scanErr)
	}

	return ports.GeocodeEntry{
		Location: domain.Coordinates{Lat: lat, Lon: lon},
		Found:    found != 0,
	}, true, nil
}

// Store an outcome for an address, replacing any previous entry.
func (s *SQLGeocodeCache) Put(ctx context.Context, address string, entry ports.GeocodeEntry) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	found := 0
	if entry.Found {
		found = 1
	}

	q := `
	INSERT INTO geocode_cache (address, lat, lon, found)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (address) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		found = EXCLUDED.found;
	`

	if _, err := s.DB.ExecContext(ctx, q, address, entry.Location.Lat, entry.Location.Lon, found); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}
