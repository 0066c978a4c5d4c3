package services

import (
	"context"
	"errors"
	"fmt"

	"squaremiles-route-service/internal/catalog"
	"squaremiles-route-service/internal/domain"
)

// Inputs for the candidate search over one origin/destination pair.
type SearchRequest struct {
	City        string
	Origin      domain.Coordinates
	Destination domain.Coordinates
	ViaHub      bool
	// When set together with ViaHub, only this hub is considered; otherwise
	// every micro hub of the city graph is enumerated.
	FixedHub *domain.Node
	Hubs     []domain.Node
}

// Result of the candidate search: the full scored set plus the two
// single-criterion optima. The weighted optimum is picked separately so the
// weight can vary without re-running the search.
type SearchResult struct {
	All     []domain.RouteOption
	MinCO2  *domain.RouteOption
	MinCost *domain.RouteOption
}

// SearchRoutes enumerates every permitted candidate chain and scores it.
//
// Direct mode: one candidate per allowed mode. Via hub: one candidate per
// (first mode, second mode) pair for each hub under consideration. The search
// is a plain brute-force sweep; the candidate space is bounded by the mode
// and hub tables.
func SearchRoutes(ctx context.Context, lp LegPlanner, req SearchRequest) (SearchResult, error) {
	allowed, err := catalog.AllowedModes(req.City)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search routes: %w", err)
	}

	var options []domain.RouteOption

	if req.ViaHub {
		hubs := req.Hubs
		if req.FixedHub != nil {
			hubs = []domain.Node{*req.FixedHub}
		}
		if len(hubs) == 0 {
			return SearchResult{}, errors.New("search routes: no hubs to route via")
		}

		for i := range hubs {
			hub := hubs[i]
			for _, m1 := range allowed {
				for _, m2 := range allowed {
					opt, err := evalViaHub(ctx, lp, req.Origin, req.Destination, hub, m1, m2)
					if err != nil {
						return SearchResult{}, err
					}
					options = append(options, opt)
				}
			}
		}
	} else {
		for _, m := range allowed {
			opt, err := evalDirect(ctx, lp, req.Origin, req.Destination, m)
			if err != nil {
				return SearchResult{}, err
			}
			options = append(options, opt)
		}
	}

	if len(options) == 0 {
		return SearchResult{}, errors.New("search routes: no feasible candidates")
	}

	normalizeScores(options)

	minCO2 := &options[0]
	minCost := &options[0]
	for i := range options {
		if options[i].Totals.CO2Kg < minCO2.Totals.CO2Kg {
			minCO2 = &options[i]
		}
		if options[i].Totals.Cost < minCost.Totals.Cost {
			minCost = &options[i]
		}
	}

	return SearchResult{All: options, MinCO2: minCO2, MinCost: minCost}, nil
}

// PickBestCombo selects the candidate minimizing the weighted blend of
// normalized cost and CO2. weightCost is clamped to [0, 1]; 0 prioritizes
// emissions, 1 prioritizes cost.
func PickBestCombo(result SearchResult, weightCost float64) *domain.RouteOption {
	if len(result.All) == 0 {
		return nil
	}

	w := weightCost
	if w < 0 {
		w = 0
	}
	if w > 1 {
		w = 1
	}

	best := &result.All[0]
	bestScore := w*best.NormCost + (1-w)*best.NormCO2
	for i := 1; i < len(result.All); i++ {
		opt := &result.All[i]
		score := w*opt.NormCost + (1-w)*opt.NormCO2
		if score < bestScore {
			best = opt
			bestScore = score
		}
	}

	return best
}

func evalDirect(
	ctx context.Context,
	lp LegPlanner,
	origin, dest domain.Coordinates,
	mode string,
) (domain.RouteOption, error) {
	leg, err := lp.Leg(ctx, "Start", "Destination", origin, dest, mode)
	if err != nil {
		return domain.RouteOption{}, fmt.Errorf("direct candidate %s: %w", mode, err)
	}

	var totals domain.Totals
	totals.Add(leg)

	return domain.RouteOption{
		Modes:  []string{mode},
		Legs:   []domain.Leg{leg},
		Totals: totals,
	}, nil
}

func evalViaHub(
	ctx context.Context,
	lp LegPlanner,
	origin, dest domain.Coordinates,
	hub domain.Node,
	m1, m2 string,
) (domain.RouteOption, error) {
	leg1, err := lp.Leg(ctx, "Start", hub.Name, origin, hub.Location, m1)
	if err != nil {
		return domain.RouteOption{}, fmt.Errorf("hub candidate %s/%s via %s: %w", m1, m2, hub.Name, err)
	}
	leg2, err := lp.Leg(ctx, hub.Name, "Destination", hub.Location, dest, m2)
	if err != nil {
		return domain.RouteOption{}, fmt.Errorf("hub candidate %s/%s via %s: %w", m1, m2, hub.Name, err)
	}

	var totals domain.Totals
	totals.Add(leg1)
	totals.Add(leg2)
	totals.DistanceKm = round3(totals.DistanceKm)

	h := hub
	return domain.RouteOption{
		Hub:    &h,
		Modes:  []string{m1, m2},
		Legs:   []domain.Leg{leg1, leg2},
		Totals: totals,
	}, nil
}

// normalizeScores min-max normalizes CO2 and cost across the candidate set.
// A degenerate range maps every candidate to 0.
func normalizeScores(options []domain.RouteOption) {
	coMin, coMax := options[0].Totals.CO2Kg, options[0].Totals.CO2Kg
	cMin, cMax := options[0].Totals.Cost, options[0].Totals.Cost
	for _, o := range options[1:] {
		if o.Totals.CO2Kg < coMin {
			coMin = o.Totals.CO2Kg
		}
		if o.Totals.CO2Kg > coMax {
			coMax = o.Totals.CO2Kg
		}
		if o.Totals.Cost < cMin {
			cMin = o.Totals.Cost
		}
		if o.Totals.Cost > cMax {
			cMax = o.Totals.Cost
		}
	}

	norm := func(x, lo, hi float64) float64 {
		if hi == lo {
			return 0
		}
		return (x - lo) / (hi - lo)
	}

	for i := range options {
		options[i].NormCO2 = norm(options[i].Totals.CO2Kg, coMin, coMax)
		options[i].NormCost = norm(options[i].Totals.Cost, cMin, cMax)
	}
}
