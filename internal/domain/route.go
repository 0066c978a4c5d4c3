package domain

// A single point of a leg's path as [lat, lon].
type PathPoint [2]float64

// Represents one traversed segment of a delivery route.
// A Leg records which mode carried the shipment between two named points,
// along with its computed distance, travel time, emissions and cost.
type Leg struct {
	From       string
	To         string
	Mode       string
	DistanceKm float64
	TimeHours  float64
	CO2Kg      float64
	Cost       float64
	Path       []PathPoint
}

// Aggregate metrics over a sequence of legs.
type Totals struct {
	DistanceKm float64
	TimeHours  float64
	CO2Kg      float64
	Cost       float64
}

// Add accumulates another leg into the totals.
func (t *Totals) Add(l Leg) {
	t.DistanceKm += l.DistanceKm
	t.TimeHours += l.TimeHours
	t.CO2Kg += l.CO2Kg
	t.Cost += l.Cost
}

// Represents one candidate transport chain for an origin/destination pair.
// A RouteOption is the output of the candidate search and is immutable
// planning data: either a single direct mode, or a mode pair through Hub.
// Normalized scores are filled in after the full candidate set is known.
type RouteOption struct {
	Hub      *Node
	Modes    []string
	Legs     []Leg
	Totals   Totals
	NormCO2  float64
	NormCost float64
}
