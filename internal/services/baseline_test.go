package services

import (
	"context"
	"math"
	"reflect"
	"testing"

	"squaremiles-route-service/internal/domain"
)

func TestParseChain(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Truck → Cargo Bike", []string{"truck", "cargo_bike"}},
		{"truck->cargo bike -> boat", []string{"truck", "cargo_bike", "boat"}},
		{"  TRUCK  ", []string{"truck"}},
		{"", []string{}},
		{" → -> ", []string{}},
	}

	for _, tc := range cases {
		got := ParseChain(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseChain(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNearestMicroHub(t *testing.T) {
	hubs := []domain.Node{
		{Name: "Far", Location: domain.Coordinates{Lat: 41.2, Lon: 29.2}},
		{Name: "Near", Location: domain.Coordinates{Lat: 41.05, Lon: 29.0}},
	}

	got := NearestMicroHub(hubs, domain.Coordinates{Lat: 41.04, Lon: 29.0})
	if got == nil || got.Name != "Near" {
		t.Fatalf("nearest hub = %v, want Near", got)
	}

	if NearestMicroHub(nil, domain.Coordinates{}) != nil {
		t.Fatal("expected nil for empty hub list")
	}
}

func TestMicroHubByName(t *testing.T) {
	hubs := []domain.Node{{Name: "A"}, {Name: "B"}}

	if got := MicroHubByName(hubs, "B"); got == nil || got.Name != "B" {
		t.Fatalf("lookup B = %v", got)
	}
	if got := MicroHubByName(hubs, "C"); got != nil {
		t.Fatalf("lookup C = %v, want nil", got)
	}
}

func TestBuildBaselineDefaultsToTruck(t *testing.T) {
	// cargo_bike is not permitted in Istanbul; the chain degrades to a truck run.
	req := BaselineRequest{
		City:        "Istanbul, Turkey",
		Origin:      domain.Coordinates{Lat: 41.0151, Lon: 28.9550},
		Destination: domain.Coordinates{Lat: 41.0433, Lon: 29.0094},
		Chain:       []string{"cargo_bike", "hoverboard"},
	}

	base, err := BuildBaseline(context.Background(), LegPlanner{}, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(base.Legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(base.Legs))
	}
	if base.Legs[0].Mode != "truck" {
		t.Fatalf("mode = %q, want truck", base.Legs[0].Mode)
	}
	if base.Hub != nil {
		t.Fatalf("direct baseline carries hub %v", base.Hub)
	}
}

func TestBuildBaselineViaHubTransfers(t *testing.T) {
	hub := domain.Node{
		Name:     "Test Hub",
		Location: domain.Coordinates{Lat: 41.0256, Lon: 28.9741},
		Kind:     domain.NodeKindHub,
	}

	req := BaselineRequest{
		City:        "Istanbul, Turkey",
		Origin:      domain.Coordinates{Lat: 41.0151, Lon: 28.9550},
		Destination: domain.Coordinates{Lat: 41.0433, Lon: 29.0094},
		Chain:       []string{"truck", "cargo_tram", "cargo_bus"},
		ViaHub:      true,
		HubOverride: &hub,
	}

	base, err := BuildBaseline(context.Background(), LegPlanner{}, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if base.Hub == nil || base.Hub.Name != "Test Hub" {
		t.Fatalf("baseline hub = %v, want Test Hub", base.Hub)
	}
	if len(base.Legs) != 3 {
		t.Fatalf("expected 3 legs, got %d", len(base.Legs))
	}

	if base.Legs[0].Mode != "truck" || base.Legs[0].To != "Test Hub" {
		t.Fatalf("first leg = %+v, want truck to Test Hub", base.Legs[0])
	}

	xfer := base.Legs[1]
	if xfer.Mode != "cargo_tram" {
		t.Fatalf("transfer mode = %q, want cargo_tram", xfer.Mode)
	}
	if xfer.DistanceKm != 0.5 {
		t.Fatalf("transfer distance = %v, want 0.5", xfer.DistanceKm)
	}
	wantCost := 0.5 * (0.808 + 0.335750)
	if math.Abs(xfer.Cost-wantCost) > 1e-9 {
		t.Fatalf("transfer cost = %v, want %v", xfer.Cost, wantCost)
	}

	if base.Legs[2].Mode != "cargo_bus" || base.Legs[2].From != "Test Hub" {
		t.Fatalf("last leg = %+v, want cargo_bus from Test Hub", base.Legs[2])
	}

	wantTotal := base.Legs[0].DistanceKm + 0.5 + base.Legs[2].DistanceKm
	if math.Abs(base.Totals.DistanceKm-wantTotal) > 1e-9 {
		t.Fatalf("total distance = %v, want %v", base.Totals.DistanceKm, wantTotal)
	}
}

func TestBuildBaselineViaHubSingleMode(t *testing.T) {
	hub := domain.Node{
		Name:     "Test Hub",
		Location: domain.Coordinates{Lat: 41.0256, Lon: 28.9741},
	}

	req := BaselineRequest{
		City:        "Istanbul, Turkey",
		Origin:      domain.Coordinates{Lat: 41.0151, Lon: 28.9550},
		Destination: domain.Coordinates{Lat: 41.0433, Lon: 29.0094},
		Chain:       []string{"truck"},
		ViaHub:      true,
		HubOverride: &hub,
	}

	base, err := BuildBaseline(context.Background(), LegPlanner{}, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One mode via hub means two truck legs and no transfer hops.
	if len(base.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(base.Legs))
	}
	for i, l := range base.Legs {
		if l.Mode != "truck" {
			t.Fatalf("leg %d mode = %q, want truck", i, l.Mode)
		}
	}
}
