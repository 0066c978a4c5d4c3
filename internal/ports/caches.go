package ports

import (
	"context"

	"squaremiles-route-service/internal/domain"
)

// Cached geocoding outcome. Found is false when the backend previously
// returned no match for the address; such entries are cached so a dead
// address is not re-queried on every request.
type GeocodeEntry struct {
	Location domain.Coordinates
	Found    bool
}

// Persistent cache mapping normalized address strings to geocoding outcomes.
type GeocodeCache interface {
	// Look up an address. The second return reports whether an entry exists.
	Get(ctx context.Context, address string) (GeocodeEntry, bool, error)
	// Store an outcome for an address, replacing any previous entry.
	Put(ctx context.Context, address string, entry GeocodeEntry) error
}

// Persistent cache for routed leg shapes, keyed by profile and endpoint
// coordinates.
type RouteShapeCache interface {
	Get(ctx context.Context, key string) (RouteShape, bool, error)
	Put(ctx context.Context, key string, shape RouteShape) error
}
