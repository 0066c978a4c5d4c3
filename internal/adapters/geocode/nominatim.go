package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/platform/obs"
	"squaremiles-route-service/internal/ports"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder implements Geocoder against the public Nominatim API.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching, including negative results
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session *http.Client
	baseURL string
	email   string
	cache   ports.GeocodeCache
}

func NewNominatimGeocoder(email string, cache ports.GeocodeCache) (*NominatimGeocoder, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("nominatim contact email is empty")
	}

	g := &NominatimGeocoder{
		session: &http.Client{Timeout: 12 * time.Second},
		baseURL: defaultBaseURL,
		email:   email,
		cache:   cache,
	}

	return g, nil
}

// SetBaseURL overrides the Nominatim endpoint (self-hosted instances, tests).
func (g *NominatimGeocoder) SetBaseURL(u string) { g.baseURL = strings.TrimRight(u, "/") }

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *NominatimGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves an address to coordinates, consulting the persistent cache
// first. A cached negative entry short-circuits to ErrAddressNotFound without
// touching the network.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	norm := g.normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	if g.cache != nil {
		entry, ok, err := g.cache.Get(ctx, norm)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode cache read: %w", err)
		}
		if ok {
			if !entry.Found {
				return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, ports.ErrAddressNotFound)
			}
			return entry.Location, nil
		}
	}

	endpoint := g.baseURL + "/search"
	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", fmt.Sprintf("SquareMiles-RouteService/1.0 (contact: %s)", g.email))
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("q", norm)
		q.Set("format", "json")
		q.Set("limit", "1")
		q.Set("addressdetails", "0")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response for %q: %w", norm, err)
	}

	if len(results) == 0 {
		// Cache the miss so dead addresses are not re-queried every run.
		g.putCache(ctx, norm, ports.GeocodeEntry{Found: false})
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, ports.ErrAddressNotFound)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lat for %q: %w", norm, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lon for %q: %w", norm, err)
	}

	coords := domain.Coordinates{Lat: lat, Lon: lon}
	g.putCache(ctx, norm, ports.GeocodeEntry{Location: coords, Found: true})

	return coords, nil
}

func (g *NominatimGeocoder) putCache(ctx context.Context, address string, entry ports.GeocodeEntry) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Put(ctx, address, entry); err != nil {
		log.Printf("geocode cache write failed: %v", err)
	}
}
