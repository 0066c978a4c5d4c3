package api

import (
	"net/http"

	"squaremiles-route-service/internal/api/handlers"
	"squaremiles-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(geocoder ports.Geocoder, planner ports.RoutePlanner) http.Handler {
	mux := http.NewServeMux()

	catalogHandler := &handlers.CatalogHandler{}
	planHandler := &handlers.PlanHandler{
		Geocoder: geocoder,
		Planner:  planner,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/cities", catalogHandler.ListCities)
	mux.HandleFunc("/modes", catalogHandler.ListModes)
	mux.HandleFunc("/policies", catalogHandler.PolicyLinks)
	mux.HandleFunc("/routes", planHandler.Plan)

	return loggingMiddleware(mux)
}
