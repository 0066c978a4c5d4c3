package services

import (
	"context"
	"testing"

	"squaremiles-route-service/internal/domain"
)

// Istanbul permits boat, cargo_bus, cargo_tram and truck. With great-circle
// routing every direct candidate covers the same distance, so the optima are
// decided purely by the per-km factors.
func istanbulRequest(viaHub bool) SearchRequest {
	return SearchRequest{
		City:        "Istanbul, Turkey",
		Origin:      domain.Coordinates{Lat: 41.0151, Lon: 28.9550},
		Destination: domain.Coordinates{Lat: 41.0433, Lon: 29.0094},
		ViaHub:      viaHub,
	}
}

func TestSearchRoutesDirect(t *testing.T) {
	lp := LegPlanner{}

	result, err := SearchRoutes(context.Background(), lp, istanbulRequest(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.All) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(result.All))
	}

	if got := result.MinCO2.Modes; len(got) != 1 || got[0] != "cargo_tram" {
		t.Fatalf("min CO2 modes = %v, want [cargo_tram]", got)
	}
	if got := result.MinCost.Modes; len(got) != 1 || got[0] != "cargo_bus" {
		t.Fatalf("min cost modes = %v, want [cargo_bus]", got)
	}

	for _, opt := range result.All {
		if len(opt.Legs) != 1 {
			t.Fatalf("direct candidate %v has %d legs, want 1", opt.Modes, len(opt.Legs))
		}
		if opt.Hub != nil {
			t.Fatalf("direct candidate %v carries a hub", opt.Modes)
		}
		if opt.NormCO2 < 0 || opt.NormCO2 > 1 || opt.NormCost < 0 || opt.NormCost > 1 {
			t.Fatalf("candidate %v has scores outside [0,1]: co2=%v cost=%v",
				opt.Modes, opt.NormCO2, opt.NormCost)
		}
	}
}

func TestSearchRoutesViaFixedHub(t *testing.T) {
	lp := LegPlanner{}

	hub := domain.Node{
		Key:      "istanbul-hub-1",
		Name:     "Karaköy Micro Hub",
		Location: domain.Coordinates{Lat: 41.0256, Lon: 28.9741},
		Kind:     domain.NodeKindHub,
	}

	req := istanbulRequest(true)
	req.FixedHub = &hub

	result, err := SearchRoutes(context.Background(), lp, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 4 allowed modes squared over a single pinned hub.
	if len(result.All) != 16 {
		t.Fatalf("expected 16 candidates, got %d", len(result.All))
	}

	for _, opt := range result.All {
		if len(opt.Legs) != 2 {
			t.Fatalf("hub candidate %v has %d legs, want 2", opt.Modes, len(opt.Legs))
		}
		if opt.Hub == nil || opt.Hub.Name != hub.Name {
			t.Fatalf("hub candidate %v not attributed to %q", opt.Modes, hub.Name)
		}
	}
}

func TestSearchRoutesViaHubRequiresHubs(t *testing.T) {
	req := istanbulRequest(true)
	if _, err := SearchRoutes(context.Background(), LegPlanner{}, req); err == nil {
		t.Fatal("expected error when no hubs are available")
	}
}

func TestPickBestCombo(t *testing.T) {
	result, err := SearchRoutes(context.Background(), LegPlanner{}, istanbulRequest(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Full weight on emissions selects the zero-emission tram.
	if best := PickBestCombo(result, 0); best.Modes[0] != "cargo_tram" {
		t.Fatalf("weight 0 picked %v, want cargo_tram", best.Modes)
	}

	// Full weight on cost selects the cheapest bus run.
	if best := PickBestCombo(result, 1); best.Modes[0] != "cargo_bus" {
		t.Fatalf("weight 1 picked %v, want cargo_bus", best.Modes)
	}

	// Out-of-range weights clamp rather than fail.
	if best := PickBestCombo(result, -3); best.Modes[0] != "cargo_tram" {
		t.Fatalf("weight -3 picked %v, want cargo_tram", best.Modes)
	}
	if best := PickBestCombo(result, 7); best.Modes[0] != "cargo_bus" {
		t.Fatalf("weight 7 picked %v, want cargo_bus", best.Modes)
	}
}
