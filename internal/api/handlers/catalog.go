package handlers

import (
	"log"
	"net/http"
	"strings"

	"squaremiles-route-service/internal/api/dto"
	"squaremiles-route-service/internal/catalog"
)

// CatalogHandler exposes the static city and fleet tables.
type CatalogHandler struct{}

func (h *CatalogHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListCitiesResponse{Cities: make([]dto.CityResponse, 0, len(catalog.CityList))}
	for _, city := range catalog.CityList {
		rules, err := catalog.RulesForCity(city)
		if err != nil {
			log.Printf("list cities failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		allowed, err := catalog.AllowedModes(city)
		if err != nil {
			log.Printf("list cities failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		refs := make([]dto.ModeRef, 0, len(allowed))
		for _, key := range allowed {
			m, err := catalog.ModeByKey(key)
			if err != nil {
				log.Printf("list cities failed: %v", err)
				writeError(w, r, http.StatusInternalServerError, "internal server error")
				return
			}
			refs = append(refs, dto.ModeRef{Key: m.Key, Label: m.Label})
		}

		central, err := catalog.CentralHub(city)
		if err != nil {
			log.Printf("list cities failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		hubs, err := catalog.MicroHubs(city)
		if err != nil {
			log.Printf("list cities failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		microOut := make([]dto.HubAddressResponse, 0, len(hubs))
		for _, hub := range hubs {
			microOut = append(microOut, dto.HubAddressResponse{Key: hub.Key, Name: hub.Name, Address: hub.Address})
		}

		res.Cities = append(res.Cities, dto.CityResponse{
			Name:         city,
			Notes:        rules.Notes,
			AllowedModes: refs,
			CentralHub:   dto.HubAddressResponse{Key: central.Key, Name: central.Name, Address: central.Address},
			MicroHubs:    microOut,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CatalogHandler) ListModes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListModesResponse{}
	for _, m := range catalog.AllModes() {
		res.Modes = append(res.Modes, dto.ModeResponse{
			Key:             m.Key,
			Label:           m.Label,
			EmissionKgPerKm: m.EmissionKgPerKm,
			CostTransport:   m.CostTransport,
			CostLabour:      m.CostLabour,
			SpeedKph:        m.SpeedKph,
			OSRMProfile:     m.OSRMProfile,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CatalogHandler) PolicyLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city query parameter is required")
		return
	}
	if !catalog.IsCity(city) {
		writeError(w, r, http.StatusBadRequest, "unknown city")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PolicyLinksResponse{
		City:  city,
		Links: catalog.PolicyLinks(city),
	})
}
