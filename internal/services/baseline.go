package services

import (
	"context"
	"fmt"
	"strings"

	"squaremiles-route-service/internal/catalog"
	"squaremiles-route-service/internal/domain"
)

// Transfer hops between chained modes at the same hub are billed a fixed
// distance rather than routed.
const transferLegKm = 0.5

// ParseChain splits a baseline chain string ("truck -> cargo_bike") into mode
// keys. Both "→" and "->" separate links; keys are lowercased with spaces
// collapsed to underscores. Unknown tokens are kept; filtering against the
// mode table happens in BuildBaseline.
func ParseChain(chain string) []string {
	chain = strings.ReplaceAll(chain, "->", "→")
	parts := strings.Split(chain, "→")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		p = strings.ReplaceAll(p, " ", "_")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NearestMicroHub picks the hub closest to a point by great-circle distance.
func NearestMicroHub(hubs []domain.Node, to domain.Coordinates) *domain.Node {
	var best *domain.Node
	bestKm := 0.0
	for i := range hubs {
		d := domain.HaversineKm(hubs[i].Location, to)
		if best == nil || d < bestKm {
			best = &hubs[i]
			bestKm = d
		}
	}
	return best
}

// MicroHubByName finds a hub by display name.
func MicroHubByName(hubs []domain.Node, name string) *domain.Node {
	for i := range hubs {
		if hubs[i].Name == name {
			return &hubs[i]
		}
	}
	return nil
}

// Inputs for building the user's declared baseline chain.
type BaselineRequest struct {
	City        string
	Origin      domain.Coordinates
	Destination domain.Coordinates
	Chain       []string
	ViaHub      bool
	HubOverride *domain.Node
	Hubs        []domain.Node
}

// The routed baseline: its legs, totals and the hub actually used (nil for
// direct routing).
type Baseline struct {
	Legs   []domain.Leg
	Totals domain.Totals
	Hub    *domain.Node
}

// BuildBaseline routes the user's current transport chain.
//
// Modes not permitted in the city (or unknown) are dropped from the chain;
// an empty chain degrades to a plain truck run. Direct routing uses only the
// first chain mode. Via hub, the first mode runs origin->hub, the last mode
// hub->destination, and any middle modes become fixed-length transfer hops at
// the hub.
func BuildBaseline(ctx context.Context, lp LegPlanner, req BaselineRequest) (Baseline, error) {
	allowed, err := catalog.AllowedModes(req.City)
	if err != nil {
		return Baseline{}, fmt.Errorf("build baseline: %w", err)
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, m := range allowed {
		allowedSet[m] = struct{}{}
	}

	chain := make([]string, 0, len(req.Chain))
	for _, m := range req.Chain {
		if !catalog.IsMode(m) {
			continue
		}
		if _, ok := allowedSet[m]; !ok {
			continue
		}
		chain = append(chain, m)
	}
	if len(chain) == 0 {
		chain = []string{catalog.ModeTruck}
	}

	var legs []domain.Leg
	var hub *domain.Node

	if req.ViaHub {
		hub = req.HubOverride
		if hub == nil {
			hub = NearestMicroHub(req.Hubs, req.Destination)
		}
		if hub == nil {
			return Baseline{}, fmt.Errorf("build baseline: no micro hub available in %q", req.City)
		}

		first, err := lp.Leg(ctx, "Start", hub.Name, req.Origin, hub.Location, chain[0])
		if err != nil {
			return Baseline{}, fmt.Errorf("build baseline: %w", err)
		}
		legs = append(legs, first)

		// Middle chain modes shuttle within the hub area at a nominal distance.
		for idx, m := range chain[1 : max(len(chain)-1, 1)] {
			impact, err := ImpactForLeg(transferLegKm, m)
			if err != nil {
				return Baseline{}, fmt.Errorf("build baseline: %w", err)
			}
			legs = append(legs, domain.Leg{
				From:       fmt.Sprintf("%s – Xfer %d", hub.Name, idx+1),
				To:         fmt.Sprintf("%s – Xfer %d end", hub.Name, idx+1),
				Mode:       m,
				DistanceKm: transferLegKm,
				TimeHours:  impact.TimeHours,
				CO2Kg:      impact.CO2Kg,
				Cost:       impact.Cost,
				Path: []domain.PathPoint{
					{hub.Location.Lat, hub.Location.Lon},
					{hub.Location.Lat + 0.001, hub.Location.Lon + 0.001},
				},
			})
		}

		lastMode := chain[0]
		if len(chain) > 1 {
			lastMode = chain[len(chain)-1]
		}
		last, err := lp.Leg(ctx, hub.Name, "Destination", hub.Location, req.Destination, lastMode)
		if err != nil {
			return Baseline{}, fmt.Errorf("build baseline: %w", err)
		}
		legs = append(legs, last)
	} else {
		leg, err := lp.Leg(ctx, "Start", "Destination", req.Origin, req.Destination, chain[0])
		if err != nil {
			return Baseline{}, fmt.Errorf("build baseline: %w", err)
		}
		legs = append(legs, leg)
	}

	var totals domain.Totals
	for _, l := range legs {
		totals.Add(l)
	}

	return Baseline{Legs: legs, Totals: totals, Hub: hub}, nil
}
