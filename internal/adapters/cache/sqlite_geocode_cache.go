package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

// SQLite backed cache mapping address strings to geocoding outcomes.
// Address keys are expected to be consistent (e.g., normalized)
// by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch the cached outcome for an address.
func (s *SqliteGeocodeCache) Get(ctx context.Context, address string) (ports.GeocodeEntry, bool, error) {
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
    WHERE address = ?;
	`

	var lat, lon float64
	var found int
	err := s.DB.QueryRowContext(ctx, q, address).Scan(&lat, &lon, &found)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.GeocodeEntry{}, false, nil
	}
	if err != nil {
		return ports.GeocodeEntry{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return ports.GeocodeEntry{
		Location: domain.Coordinates{Lat: lat, Lon: lon},
		Found:    found != 0,
	}, true, nil
}

// Store an outcome for an address, replacing any previous entry.
func (s *SqliteGeocodeCache) Put(ctx context.Context, address string, entry ports.GeocodeEntry) error {
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
	INSERT OR REPLACE INTO geocode_cache (address, lat, lon, found)
    VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, address, entry.Location.Lat, entry.Location.Lon, found); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}
