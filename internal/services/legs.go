package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"squaremiles-route-service/internal/catalog"
	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

// LegPlanner builds fully-costed legs for a given routing engine.
// A nil Planner routes every leg by great-circle distance; otherwise modes
// with a routing profile go through the external engine, falling back to
// great-circle when the engine fails.
type LegPlanner struct {
	Planner ports.RoutePlanner
}

// Leg routes a single mode between two points and attaches its impact.
func (lp LegPlanner) Leg(
	ctx context.Context,
	fromName, toName string,
	from, to domain.Coordinates,
	modeKey string,
) (domain.Leg, error) {
	m, err := catalog.ModeByKey(modeKey)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("plan leg: %w", err)
	}

	shape := greatCircleShape(from, to)
	if lp.Planner != nil && m.OSRMProfile != "" {
		routed, err := lp.Planner.PlanLeg(ctx, from, to, m.OSRMProfile)
		if err != nil {
			log.Printf("leg routing failed, using great-circle fallback: mode=%s err=%v", modeKey, err)
		} else {
			shape = routed
		}
	}

	km := round3(shape.DistanceKm)
	impact, err := ImpactForLeg(km, modeKey)
	if err != nil {
		return domain.Leg{}, err
	}

	return domain.Leg{
		From:       fromName,
		To:         toName,
		Mode:       modeKey,
		DistanceKm: km,
		TimeHours:  impact.TimeHours,
		CO2Kg:      impact.CO2Kg,
		Cost:       impact.Cost,
		Path:       shape.Path,
	}, nil
}

func greatCircleShape(from, to domain.Coordinates) ports.RouteShape {
	return ports.RouteShape{
		DistanceKm: domain.HaversineKm(from, to),
		Path: []domain.PathPoint{
			{from.Lat, from.Lon},
			{to.Lat, to.Lon},
		},
	}
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
