package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"squaremiles-route-service/internal/api/dto"
	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

// stubGeocoder resolves every address to a deterministic point near Istanbul,
// except addresses listed in miss.
type stubGeocoder struct {
	miss map[string]bool
}

func (s stubGeocoder) Geocode(_ context.Context, address string) (domain.Coordinates, error) {
	if s.miss[address] {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ports.ErrAddressNotFound)
	}

	h := fnv.New32a()
	h.Write([]byte(address))
	n := h.Sum32()

	return domain.Coordinates{
		Lat: 41.0 + float64(n%100)/1000.0,
		Lon: 28.9 + float64(n/100%100)/1000.0,
	}, nil
}

func postPlan(t *testing.T, h *PlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestPlanHappyPath(t *testing.T) {
	h := &PlanHandler{Geocoder: stubGeocoder{}}

	rec := postPlan(t, h, `{"city":"Istanbul, Turkey","destination_address":"Moda Caddesi 1, Kadikoy"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.City != "Istanbul, Turkey" {
		t.Fatalf("city = %q, want Istanbul", res.City)
	}
	if res.Engine != "osrm" {
		t.Fatalf("engine = %q, want osrm", res.Engine)
	}

	// Empty chain degrades the baseline to a single truck leg.
	if len(res.Baseline.Legs) != 1 || res.Baseline.Legs[0].Mode != "truck" {
		t.Fatalf("baseline legs = %+v, want one truck leg", res.Baseline.Legs)
	}

	// The zero-emission tram wins on CO2 in Istanbul.
	if len(res.LowestEmissions.Modes) != 1 || res.LowestEmissions.Modes[0] != "cargo_tram" {
		t.Fatalf("lowest emissions modes = %v, want [cargo_tram]", res.LowestEmissions.Modes)
	}
	if len(res.LowestCost.Modes) != 1 || res.LowestCost.Modes[0] != "cargo_bus" {
		t.Fatalf("lowest cost modes = %v, want [cargo_bus]", res.LowestCost.Modes)
	}
	if len(res.BestCombined.Modes) == 0 {
		t.Fatal("best combined candidate is empty")
	}
}

func TestPlanViaHubPinsBaselineHub(t *testing.T) {
	h := &PlanHandler{Geocoder: stubGeocoder{}}

	rec := postPlan(t, h, `{"city":"Istanbul, Turkey","destination_address":"Moda Caddesi 1, Kadikoy","via_hub":true,"baseline_chain":"truck -> cargo tram -> cargo bus"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Baseline.Hub == nil {
		t.Fatal("expected baseline hub")
	}
	if len(res.Baseline.Legs) != 3 {
		t.Fatalf("baseline legs = %d, want 3", len(res.Baseline.Legs))
	}
	if res.Baseline.Legs[1].DistanceKm != 0.5 {
		t.Fatalf("transfer leg distance = %v, want 0.5", res.Baseline.Legs[1].DistanceKm)
	}

	// Every candidate must route via the same hub as the baseline.
	if res.LowestEmissions.Hub == nil || res.LowestEmissions.Hub.Name != res.Baseline.Hub.Name {
		t.Fatalf("lowest emissions hub = %+v, want %q", res.LowestEmissions.Hub, res.Baseline.Hub.Name)
	}
	if len(res.LowestEmissions.Legs) != 2 {
		t.Fatalf("hub candidate legs = %d, want 2", len(res.LowestEmissions.Legs))
	}
}

func TestPlanValidation(t *testing.T) {
	h := &PlanHandler{Geocoder: stubGeocoder{}}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"unknown city", `{"city":"Atlantis","destination_address":"x"}`, http.StatusBadRequest},
		{"missing destination", `{"city":"Istanbul, Turkey"}`, http.StatusBadRequest},
		{"bad engine", `{"city":"Istanbul, Turkey","destination_address":"x","engine":"teleport"}`, http.StatusBadRequest},
		{"weight too high", `{"city":"Istanbul, Turkey","destination_address":"x","weight_cost":1.5}`, http.StatusBadRequest},
		{"weight negative", `{"city":"Istanbul, Turkey","destination_address":"x","weight_cost":-0.1}`, http.StatusBadRequest},
		{"unknown field", `{"city":"Istanbul, Turkey","destination_address":"x","bogus":1}`, http.StatusBadRequest},
		{"invalid json", `{`, http.StatusBadRequest},
		{"unknown micro hub", `{"city":"Istanbul, Turkey","destination_address":"x","via_hub":true,"micro_hub":"No Such Hub"}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		rec := postPlan(t, h, tc.body)
		if rec.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d (body %s)", tc.name, rec.Code, tc.want, rec.Body.String())
		}
	}
}

func TestPlanMethodNotAllowed(t *testing.T) {
	h := &PlanHandler{Geocoder: stubGeocoder{}}

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestPlanUnresolvableDestination(t *testing.T) {
	h := &PlanHandler{Geocoder: stubGeocoder{miss: map[string]bool{"nowhere at all": true}}}

	rec := postPlan(t, h, `{"city":"Istanbul, Turkey","destination_address":"nowhere at all"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", rec.Code, rec.Body.String())
	}
}
