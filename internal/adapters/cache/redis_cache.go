package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

const (
	geocodeKeyPrefix = "geo:"
	routeKeyPrefix   = "route:"
)

type redisGeocodeEntry struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Found bool    `json:"found"`
}

// RedisGeocodeCache stores geocoding outcomes in Redis as JSON values.
// Entries do not expire; geocoded addresses are effectively immutable.
type RedisGeocodeCache struct {
	Client *redis.Client
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client}
}

func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (ports.GeocodeEntry, bool, error) {
	if r.Client == nil {
		return ports.GeocodeEntry{}, false, errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return ports.GeocodeEntry{}, false, errors.New("get geocode cache: address must not be empty")
	}

	raw, err := r.Client.Get(ctx, geocodeKeyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return ports.GeocodeEntry{}, false, nil
	}
	if err != nil {
		return ports.GeocodeEntry{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var e redisGeocodeEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return ports.GeocodeEntry{}, false, fmt.Errorf("get geocode cache: decode entry for %q: %w", address, err)
	}

	return ports.GeocodeEntry{
		Location: domain.Coordinates{Lat: e.Lat, Lon: e.Lon},
		Found:    e.Found,
	}, true, nil
}

func (r *RedisGeocodeCache) Put(ctx context.Context, address string, entry ports.GeocodeEntry) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	raw, err := json.Marshal(redisGeocodeEntry{
		Lat:   entry.Location.Lat,
		Lon:   entry.Location.Lon,
		Found: entry.Found,
	})
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode entry for %q: %w", address, err)
	}

	if err := r.Client.Set(ctx, geocodeKeyPrefix+address, raw, 0).Err(); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}

type redisRouteEntry struct {
	DistanceKm float64            `json:"distance_km"`
	Path       []domain.PathPoint `json:"path"`
}

// RedisRouteCache stores routed leg shapes in Redis as JSON values.
type RedisRouteCache struct {
	Client *redis.Client
}

func NewRedisRouteCache(client *redis.Client) *RedisRouteCache {
	return &RedisRouteCache{Client: client}
}

func (r *RedisRouteCache) Get(ctx context.Context, key string) (ports.RouteShape, bool, error) {
	if r.Client == nil {
		return ports.RouteShape{}, false, errors.New("route cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return ports.RouteShape{}, false, errors.New("get route cache: key must not be empty")
	}

	raw, err := r.Client.Get(ctx, routeKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return ports.RouteShape{}, false, nil
	}
	if err != nil {
		return ports.RouteShape{}, false, fmt.Errorf("get route cache: redis get: %w", err)
	}

	var e redisRouteEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return ports.RouteShape{}, false, fmt.Errorf("get route cache: decode entry for %q: %w", key, err)
	}

	return ports.RouteShape{DistanceKm: e.DistanceKm, Path: e.Path}, true, nil
}

func (r *RedisRouteCache) Put(ctx context.Context, key string, shape ports.RouteShape) error {
	if r.Client == nil {
		return errors.New("route cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	raw, err := json.Marshal(redisRouteEntry{DistanceKm: shape.DistanceKm, Path: shape.Path})
	if err != nil {
		return fmt.Errorf("insert route cache: encode entry for %q: %w", key, err)
	}

	if err := r.Client.Set(ctx, routeKeyPrefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
