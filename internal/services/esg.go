package services

import (
	"math"

	"squaremiles-route-service/internal/catalog"
	"squaremiles-route-service/internal/domain"
)

// Secondary environmental metrics derived from per-mode distance aggregates.
type ESGMetrics struct {
	FuelL           float64
	ElectricityKWh  float64
	FuelEquivalentL float64
	RoadSpaceEqKm   float64
	NoiseIndexKm    float64
	SafetyRiskKm    float64
}

// Percentage change with an explicit infinity marker for zero baselines.
type Delta struct {
	Percent  float64
	Infinite bool
}

// Badge direction markers.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// A rendered dashboard indicator: direction of change and whether that
// direction is desirable for the metric.
type Badge struct {
	Direction string
	Percent   float64
	Infinite  bool
	Good      bool
}

// Full ESG comparison of a scenario against the baseline.
type Dashboard struct {
	CO2           Badge
	Fuel          Badge
	Congestion    Badge
	LabourHours   Badge
	Safety        Badge
	Noise         Badge
	Cost          Badge
	TimeToDeliver Badge

	BaselineCO2Kg float64
	ScenarioCO2Kg float64

	GreenCapexKUSD   float64
	MonthlySavingUSD float64
	// ROIMonths is meaningless when no saving exists; ROIBreakeven is false
	// in that case and ROIMonths must be ignored.
	ROIMonths        float64
	ROIBreakeven     bool
	SubsidyNeededUSD float64
}

// AggregateModeKm sums the distance travelled per mode over a set of legs.
func AggregateModeKm(legs []domain.Leg) map[string]float64 {
	agg := make(map[string]float64)
	for _, l := range legs {
		agg[l.Mode] += l.DistanceKm
	}
	return agg
}

// ESGForLegs derives secondary metrics from the per-mode distance aggregate.
func ESGForLegs(legs []domain.Leg) ESGMetrics {
	var m ESGMetrics
	for mode, km := range AggregateModeKm(legs) {
		f := catalog.ESGForMode(mode)
		m.FuelL += f.FuelLPerKm * km
		m.ElectricityKWh += f.ElectricityKWhPerKm * km
		m.RoadSpaceEqKm += f.RoadSpaceEq * km
		m.NoiseIndexKm += f.NoiseIdx * km
		m.SafetyRiskKm += f.SafetyRisk * km
	}
	m.FuelEquivalentL = m.FuelL + m.ElectricityKWh*catalog.KWhToLitreEq
	return m
}

// DeltaPercent computes the percentage change from a to b. A zero base with a
// nonzero scenario yields an infinite delta.
func DeltaPercent(a, b float64) Delta {
	if a == 0 {
		if b != 0 {
			return Delta{Infinite: true}
		}
		return Delta{}
	}
	return Delta{Percent: (b - a) / a * 100.0}
}

// MakeBadge classifies a delta. With invertGood set, decreases are the
// desirable direction (emissions, cost); otherwise increases are (labour).
func MakeBadge(d Delta, invertGood bool) Badge {
	v := d.Percent
	if d.Infinite {
		v = math.Inf(1)
	}

	dir := DirectionFlat
	if v > 0 {
		dir = DirectionUp
	} else if v < 0 {
		dir = DirectionDown
	}

	good := v > 0
	if invertGood {
		good = v < 0
	}

	return Badge{Direction: dir, Percent: d.Percent, Infinite: d.Infinite, Good: good}
}

// BuildDashboard compares a scenario candidate against the baseline and
// derives the ESG impact dashboard, including green-fleet ROI estimates.
func BuildDashboard(base Baseline, scenario *domain.RouteOption) Dashboard {
	baseESG := ESGForLegs(base.Legs)
	scenESG := ESGForLegs(scenario.Legs)

	d := Dashboard{
		CO2:           MakeBadge(DeltaPercent(base.Totals.CO2Kg, scenario.Totals.CO2Kg), true),
		Fuel:          MakeBadge(DeltaPercent(baseESG.FuelL, scenESG.FuelL), true),
		Congestion:    MakeBadge(DeltaPercent(baseESG.RoadSpaceEqKm, scenESG.RoadSpaceEqKm), true),
		LabourHours:   MakeBadge(DeltaPercent(base.Totals.TimeHours, scenario.Totals.TimeHours), false),
		Safety:        MakeBadge(DeltaPercent(baseESG.SafetyRiskKm, scenESG.SafetyRiskKm), true),
		Noise:         MakeBadge(DeltaPercent(baseESG.NoiseIndexKm, scenESG.NoiseIndexKm), true),
		Cost:          MakeBadge(DeltaPercent(base.Totals.Cost, scenario.Totals.Cost), true),
		TimeToDeliver: MakeBadge(DeltaPercent(base.Totals.TimeHours, scenario.Totals.TimeHours), true),
		BaselineCO2Kg: base.Totals.CO2Kg,
		ScenarioCO2Kg: scenario.Totals.CO2Kg,
	}

	// Capex is attributed at 2% per green mode present in the scenario,
	// independent of the distance it covers.
	greenCapexK := 0.0
	for mode := range AggregateModeKm(scenario.Legs) {
		if catalog.IsGreenMode(mode) {
			greenCapexK += catalog.ESGForMode(mode).CapexKUSD * 0.02
		}
	}

	saving := base.Totals.Cost - scenario.Totals.Cost
	if saving < 0 {
		saving = 0
	}

	d.GreenCapexKUSD = greenCapexK
	d.MonthlySavingUSD = saving
	if saving > 0 {
		d.ROIMonths = greenCapexK * 1000 / saving
		d.ROIBreakeven = true
	}

	subsidy := greenCapexK*1000 - 12*saving
	if subsidy < 0 {
		subsidy = 0
	}
	d.SubsidyNeededUSD = subsidy

	return d
}
