package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"squaremiles-route-service/internal/catalog"
	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
)

// A city's logistics network after geocoding: the central depot plus its
// reachable micro hubs.
type CityGraph struct {
	City       string
	CentralHub domain.Node
	MicroHubs  []domain.Node
}

// BuildCityGraph geocodes a city's hard-coded hub addresses into nodes.
//
// Micro hubs whose address cannot be resolved are skipped with a log line;
// the graph is unusable (error) when the central hub fails or no micro hub
// survives. Repeated calls are cheap once the geocode cache is warm.
func BuildCityGraph(ctx context.Context, geocoder ports.Geocoder, city string) (*CityGraph, error) {
	central, err := catalog.CentralHub(city)
	if err != nil {
		return nil, fmt.Errorf("build city graph: %w", err)
	}

	centralLoc, err := geocoder.Geocode(ctx, central.Address)
	if err != nil {
		return nil, fmt.Errorf("build city graph: central hub %q: %w", central.Name, err)
	}

	hubAddrs, err := catalog.MicroHubs(city)
	if err != nil {
		return nil, fmt.Errorf("build city graph: %w", err)
	}

	micro := make([]domain.Node, 0, len(hubAddrs))
	for _, h := range hubAddrs {
		loc, err := geocoder.Geocode(ctx, h.Address)
		if err != nil {
			if errors.Is(err, ports.ErrAddressNotFound) {
				log.Printf("skipping micro hub: city=%q hub=%q not geocodable", city, h.Key)
				continue
			}
			return nil, fmt.Errorf("build city graph: micro hub %q: %w", h.Key, err)
		}
		micro = append(micro, domain.Node{Key: h.Key, Name: h.Name, Location: loc, Kind: domain.NodeKindHub})
	}

	if len(micro) == 0 {
		return nil, fmt.Errorf("build city graph: no micro hubs geocoded for %q", city)
	}

	return &CityGraph{
		City: city,
		CentralHub: domain.Node{
			Key:      central.Key,
			Name:     central.Name,
			Location: centralLoc,
			Kind:     domain.NodeKindDepot,
		},
		MicroHubs: micro,
	}, nil
}
