package services

import (
	"fmt"

	"squaremiles-route-service/internal/catalog"
)

// Impact of traversing a distance with a given mode.
type LegImpact struct {
	TimeHours float64
	CO2Kg     float64
	Cost      float64
}

// ImpactForLeg converts a leg's distance and mode into travel time, emissions
// and cost using the catalog's per-km factors.
func ImpactForLeg(distanceKm float64, modeKey string) (LegImpact, error) {
	m, err := catalog.ModeByKey(modeKey)
	if err != nil {
		return LegImpact{}, fmt.Errorf("leg impact: %w", err)
	}

	speed := m.SpeedKph
	if speed < 1e-6 {
		speed = 1e-6
	}

	return LegImpact{
		TimeHours: distanceKm / speed,
		CO2Kg:     m.EmissionKgPerKm * distanceKm,
		Cost:      (m.CostTransport + m.CostLabour) * distanceKm,
	}, nil
}
