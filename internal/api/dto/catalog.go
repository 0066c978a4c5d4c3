package dto

import "squaremiles-route-service/internal/catalog"

type ModeResponse struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	EmissionKgPerKm float64 `json:"emission_kg_per_km"`
	CostTransport   float64 `json:"cost_trans"`
	CostLabour      float64 `json:"cost_labour"`
	SpeedKph        float64 `json:"speed_kph"`
	OSRMProfile     string  `json:"osrm_profile,omitempty"`
}

type ListModesResponse struct {
	Modes []ModeResponse `json:"modes"`
}

type ModeRef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type HubAddressResponse struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type CityResponse struct {
	Name         string               `json:"name"`
	Notes        string               `json:"notes"`
	AllowedModes []ModeRef            `json:"allowed_modes"`
	CentralHub   HubAddressResponse   `json:"central_hub"`
	MicroHubs    []HubAddressResponse `json:"micro_hubs"`
}

type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}

type PolicyLinksResponse struct {
	City  string               `json:"city"`
	Links []catalog.PolicyLink `json:"links"`
}
