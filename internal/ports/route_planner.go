package ports

import (
	"context"

	"squaremiles-route-service/internal/domain"
)

// Travel distance and path geometry for a single leg.
type RouteShape struct {
	DistanceKm float64
	Path       []domain.PathPoint
}

// Contract for obtaining road-network routes from an external engine.
// Callers fall back to great-circle distance when the planner fails or the
// mode has no routing profile.
type RoutePlanner interface {
	// Return the routed distance and path between two points for a routing
	// profile (driving, cycling, walking).
	PlanLeg(ctx context.Context, origin, destination domain.Coordinates, profile string) (RouteShape, error)
}
