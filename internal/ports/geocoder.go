package ports

import (
	"context"
	"errors"

	"squaremiles-route-service/internal/domain"
)

// Returned when the geocoding backend authoritatively found no match for an
// address. Distinct from transport failures, which surface as other errors.
var ErrAddressNotFound = errors.New("address not found")

// Contract for resolving free-form addresses to coordinates.
type Geocoder interface {
	// Resolve an address to coordinates. Returns ErrAddressNotFound when the
	// backend has no match for the address.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
