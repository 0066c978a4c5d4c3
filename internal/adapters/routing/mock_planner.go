package routing

import (
	"context"
	"fmt"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

type MockLeg struct {
	Profile  string
	From, To domain.Coordinates
	Km       float64
}

// MockPlanner serves fixed leg shapes for tests.
type MockPlanner struct {
	m map[string]ports.RouteShape
}

func NewMockPlanner(legs []MockLeg) *MockPlanner {
	m := make(map[string]ports.RouteShape, len(legs))
	for _, l := range legs {
		m[ShapeKey(l.Profile, l.From, l.To)] = ports.RouteShape{
			DistanceKm: l.Km,
			Path: []domain.PathPoint{
				{l.From.Lat, l.From.Lon},
				{l.To.Lat, l.To.Lon},
			},
		}
	}
	return &MockPlanner{m: m}
}

func (p *MockPlanner) PlanLeg(
	ctx context.Context,
	origin, destination domain.Coordinates,
	profile string,
) (ports.RouteShape, error) {
	s, ok := p.m[ShapeKey(profile, origin, destination)]
	if !ok {
		return ports.RouteShape{}, fmt.Errorf("missing leg %v -> %v (%s)", origin, destination, profile)
	}
	return s, nil
}
