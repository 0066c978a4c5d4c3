package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"squaremiles-route-service/internal/api/dto"
)

func TestListCities(t *testing.T) {
	h := &CatalogHandler{}

	req := httptest.NewRequest(http.MethodGet, "/cities", nil)
	rec := httptest.NewRecorder()
	h.ListCities(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListCitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Cities) != 10 {
		t.Fatalf("expected 10 cities, got %d", len(res.Cities))
	}

	for _, c := range res.Cities {
		if len(c.AllowedModes) == 0 {
			t.Fatalf("city %q has no allowed modes", c.Name)
		}
		if c.CentralHub.Address == "" {
			t.Fatalf("city %q has no central hub address", c.Name)
		}
		if len(c.MicroHubs) != 10 {
			t.Fatalf("city %q has %d micro hubs, want 10", c.Name, len(c.MicroHubs))
		}
	}
}

func TestListModes(t *testing.T) {
	h := &CatalogHandler{}

	req := httptest.NewRequest(http.MethodGet, "/modes", nil)
	rec := httptest.NewRecorder()
	h.ListModes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListModesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Modes) != 9 {
		t.Fatalf("expected 9 modes, got %d", len(res.Modes))
	}
}

func TestPolicyLinks(t *testing.T) {
	h := &CatalogHandler{}

	req := httptest.NewRequest(http.MethodGet, "/policies?city="+url.QueryEscape("Istanbul, Turkey"), nil)
	rec := httptest.NewRecorder()
	h.PolicyLinks(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.PolicyLinksResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.City != "Istanbul, Turkey" {
		t.Fatalf("city = %q, want Istanbul", res.City)
	}
}

func TestPolicyLinksValidation(t *testing.T) {
	h := &CatalogHandler{}

	for _, target := range []string{"/policies", "/policies?city=Atlantis"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.PolicyLinks(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestCatalogMethodNotAllowed(t *testing.T) {
	h := &CatalogHandler{}

	for _, fn := range []http.HandlerFunc{h.ListCities, h.ListModes, h.PolicyLinks} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		fn(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("status = %d, want 405", rec.Code)
		}
	}
}
