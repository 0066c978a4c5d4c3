package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"squaremiles-route-service/internal/adapters/cache"
	"squaremiles-route-service/internal/adapters/geocode"
	"squaremiles-route-service/internal/catalog"
	"squaremiles-route-service/internal/config"
	"squaremiles-route-service/internal/platform/db"
	"squaremiles-route-service/internal/ports"
)

// geotool warms the geocode cache for every hub address in the catalog so
// first requests against a fresh deployment do not stall on Nominatim.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	email := os.Getenv("NOMINATIM_EMAIL")
	if strings.TrimSpace(email) == "" {
		log.Fatal("NOMINATIM_EMAIL is required (Nominatim usage policy)")
	}

	delayMs, err := strconv.Atoi(config.Get("GEOCODE_DELAY_MS", "1100"))
	if err != nil || delayMs < 0 {
		log.Fatal("GEOCODE_DELAY_MS must be a non-negative integer")
	}
	delay := time.Duration(delayMs) * time.Millisecond

	backend := strings.ToLower(config.Get("CACHE_BACKEND", "sqlite"))
	geoCache, closeCache, err := openGeocodeCache(backend)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	geocoder, err := geocode.NewNominatimGeocoder(email, geoCache)
	if err != nil {
		log.Fatal(err)
	}
	if u := os.Getenv("NOMINATIM_BASE_URL"); u != "" {
		geocoder.SetBaseURL(u)
	}

	ctx := context.Background()
	var cached, fetched, failed int

	for _, city := range catalog.CityList {
		addrs, err := hubAddresses(city)
		if err != nil {
			log.Fatal(err)
		}

		for _, addr := range addrs {
			if _, hit, err := geoCache.Get(ctx, addr); err == nil && hit {
				cached++
				continue
			}

			// Respect the Nominatim rate limit between live requests.
			time.Sleep(delay)

			if _, err := geocoder.Geocode(ctx, addr); err != nil {
				if errors.Is(err, ports.ErrAddressNotFound) {
					log.Printf("not found city=%q address=%q", city, addr)
				} else {
					log.Printf("geocode failed city=%q address=%q err=%v", city, addr, err)
				}
				failed++
				continue
			}
			fetched++
		}

		log.Printf("city done city=%q", city)
	}

	log.Printf("warmup complete cached=%d fetched=%d failed=%d", cached, fetched, failed)
}

func hubAddresses(city string) ([]string, error) {
	central, err := catalog.CentralHub(city)
	if err != nil {
		return nil, err
	}

	hubs, err := catalog.MicroHubs(city)
	if err != nil {
		return nil, err
	}

	addrs := make([]string, 0, len(hubs)+1)
	addrs = append(addrs, central.Address)
	for _, hub := range hubs {
		addrs = append(addrs, hub.Address)
	}
	return addrs, nil
}

func openGeocodeCache(backend string) (ports.GeocodeCache, func(), error) {
	switch backend {
	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
		}
		if err := cache.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init sqlite schema: %w", err)
		}
		return cache.NewSqliteGeocodeCache(conn), func() { conn.Close() }, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for CACHE_BACKEND=postgres")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchemaPostgres(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init postgres schema: %w", err)
		}
		return cache.NewSQLGeocodeCache(conn), func() { conn.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown CACHE_BACKEND %q (want sqlite or postgres)", backend)
	}
}
