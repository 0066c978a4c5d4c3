// Package catalog holds the static fleet, city and policy tables the optimizer
// operates over. All data is hard-coded; there is no runtime mutation.
package catalog

import (
	"fmt"
	"sort"
)

// OSRM routing profiles. An empty profile means the mode cannot be routed on
// the road network and always falls back to great-circle distance.
const (
	ProfileDriving = "driving"
	ProfileCycling = "cycling"
	ProfileWalking = "walking"
)

// Mode keys.
const (
	ModeTruck           = "truck"
	ModeELCV            = "elcv"
	ModeSmallVan        = "small_van"
	ModeCargoBike       = "cargo_bike"
	ModeEScooterTrailer = "e_scooter_trailer"
	ModeAutonomousRobot = "autonomous_robot"
	ModeCargoTram       = "cargo_tram"
	ModeCargoBus        = "cargo_bus"
	ModeBoat            = "boat"
)

// Economic and emission factors for a transport mode, all per kilometer.
type Mode struct {
	Key             string
	Label           string
	EmissionKgPerKm float64
	CostTransport   float64
	CostLabour      float64
	SpeedKph        float64
	OSRMProfile     string
}

// ESG side factors for a mode, per kilometer except Capex.
type ESGFactors struct {
	FuelLPerKm          float64
	ElectricityKWhPerKm float64
	RoadSpaceEq         float64
	NoiseIdx            float64
	SafetyRisk          float64
	CapexKUSD           float64
}

// Conversion factor from electricity to litres of fuel equivalent.
const KWhToLitreEq = 0.25

var modes = map[string]Mode{
	ModeTruck:           {Key: ModeTruck, Label: "Truck (HGV)", EmissionKgPerKm: 0.448, CostTransport: 0.508, CostLabour: 0.289190, SpeedKph: 23.45, OSRMProfile: ProfileDriving},
	ModeELCV:            {Key: ModeELCV, Label: "Electric LCV", EmissionKgPerKm: 0.346, CostTransport: 0.070, CostLabour: 0.289190, SpeedKph: 23.45, OSRMProfile: ProfileDriving},
	ModeSmallVan:        {Key: ModeSmallVan, Label: "Small Van (ICE)", EmissionKgPerKm: 0.210, CostTransport: 0.179, CostLabour: 0.289190, SpeedKph: 23.45, OSRMProfile: ProfileDriving},
	ModeCargoBike:       {Key: ModeCargoBike, Label: "Cargo Bike", EmissionKgPerKm: 0.033, CostTransport: 0.004, CostLabour: 0.419688, SpeedKph: 16.0, OSRMProfile: ProfileCycling},
	ModeEScooterTrailer: {Key: ModeEScooterTrailer, Label: "E-Scooter + Trailer", EmissionKgPerKm: 0.025, CostTransport: 0.005, CostLabour: 0.479643, SpeedKph: 14.0, OSRMProfile: ProfileCycling},
	ModeAutonomousRobot: {Key: ModeAutonomousRobot, Label: "Autonomous Delivery Robot", EmissionKgPerKm: 0.010, CostTransport: 0.005, CostLabour: 1.119167, SpeedKph: 6.0, OSRMProfile: ProfileWalking},
	ModeCargoTram:       {Key: ModeCargoTram, Label: "Cargo Tram", EmissionKgPerKm: 0.0, CostTransport: 0.808, CostLabour: 0.335750, SpeedKph: 20.0, OSRMProfile: ""},
	ModeCargoBus:        {Key: ModeCargoBus, Label: "Cargo Bus / Night Bus", EmissionKgPerKm: 0.822, CostTransport: 0.366, CostLabour: 0.289190, SpeedKph: 23.45, OSRMProfile: ProfileDriving},
	ModeBoat:            {Key: ModeBoat, Label: "Urban River Barge / Boat", EmissionKgPerKm: 0.033, CostTransport: 31.718, CostLabour: 0.559583, SpeedKph: 12.0, OSRMProfile: ""},
}

var esgFactors = map[string]ESGFactors{
	ModeTruck:           {FuelLPerKm: 0.30, ElectricityKWhPerKm: 0.0, RoadSpaceEq: 3.0, NoiseIdx: 0.84, SafetyRisk: 0.8, CapexKUSD: 150},
	ModeSmallVan:        {FuelLPerKm: 0.12, ElectricityKWhPerKm: 0.0, RoadSpaceEq: 1.6, NoiseIdx: 0.68, SafetyRisk: 0.6, CapexKUSD: 35},
	ModeELCV:            {FuelLPerKm: 0.0, ElectricityKWhPerKm: 0.20, RoadSpaceEq: 1.6, NoiseIdx: 0.68, SafetyRisk: 0.5, CapexKUSD: 45},
	ModeCargoBike:       {FuelLPerKm: 0.0, ElectricityKWhPerKm: 0.05, RoadSpaceEq: 0.4, NoiseIdx: 0.40, SafetyRisk: 0.3, CapexKUSD: 7},
	ModeEScooterTrailer: {FuelLPerKm: 0.0, ElectricityKWhPerKm: 0.03, RoadSpaceEq: 0.2, NoiseIdx: 0.24, SafetyRisk: 0.25, CapexKUSD: 3},
	ModeAutonomousRobot: {FuelLPerKm: 0.0, ElectricityKWhPerKm: 0.02, RoadSpaceEq: 0.1, NoiseIdx: 0.24, SafetyRisk: 0.2, CapexKUSD: 12},
	ModeCargoTram:       {FuelLPerKm: 0.0, ElectricityKWhPerKm: 0.40, RoadSpaceEq: 0.0, NoiseIdx: 0.72, SafetyRisk: 0.15, CapexKUSD: 500},
	ModeCargoBus:        {FuelLPerKm: 0.08, ElectricityKWhPerKm: 0.0, RoadSpaceEq: 1.8, NoiseIdx: 0.88, SafetyRisk: 0.5, CapexKUSD: 250},
	ModeBoat:            {FuelLPerKm: 0.05, ElectricityKWhPerKm: 0.0, RoadSpaceEq: 0.0, NoiseIdx: 0.56, SafetyRisk: 0.3, CapexKUSD: 350},
}

// Neutral row applied when a mode has no registered ESG factors.
var defaultESGFactors = ESGFactors{RoadSpaceEq: 1.0, NoiseIdx: 0.5, SafetyRisk: 0.5}

// Modes considered "green" for capex/ROI accounting.
var greenModes = map[string]struct{}{
	ModeELCV:            {},
	ModeCargoBike:       {},
	ModeEScooterTrailer: {},
	ModeAutonomousRobot: {},
	ModeCargoTram:       {},
	ModeCargoBus:        {},
	ModeBoat:            {},
}

// ModeByKey returns the mode definition for key.
func ModeByKey(key string) (Mode, error) {
	m, ok := modes[key]
	if !ok {
		return Mode{}, fmt.Errorf("catalog: unknown mode %q", key)
	}
	return m, nil
}

// IsMode reports whether key names a known transport mode.
func IsMode(key string) bool {
	_, ok := modes[key]
	return ok
}

// AllModes returns every mode definition sorted by key.
func AllModes() []Mode {
	out := make([]Mode, 0, len(modes))
	for _, m := range modes {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ESGForMode returns the ESG factor row for a mode, or a neutral default row
// when the mode is not registered.
func ESGForMode(key string) ESGFactors {
	if f, ok := esgFactors[key]; ok {
		return f
	}
	return defaultESGFactors
}

// IsGreenMode reports whether the mode counts towards green capex.
func IsGreenMode(key string) bool {
	_, ok := greenModes[key]
	return ok
}
