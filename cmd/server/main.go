package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"squaremiles-route-service/internal/adapters/cache"
	"squaremiles-route-service/internal/adapters/geocode"
	"squaremiles-route-service/internal/adapters/routing"
	"squaremiles-route-service/internal/api"
	"squaremiles-route-service/internal/config"
	"squaremiles-route-service/internal/platform/db"
	"squaremiles-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres/Redis caches, Nominatim, OSRM)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	backend := strings.ToLower(config.Get("CACHE_BACKEND", "sqlite"))

	email := os.Getenv("NOMINATIM_EMAIL")
	if strings.TrimSpace(email) == "" {
		log.Fatal("NOMINATIM_EMAIL is required (Nominatim usage policy)")
	}

	geoCache, routeCache, closeCaches, err := openCaches(backend)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCaches()

	// Nominatim and OSRM clients share persistent caches so repeated requests
	// do not hammer the public endpoints.
	geocoder, err := geocode.NewNominatimGeocoder(email, geoCache)
	if err != nil {
		log.Fatal(err)
	}
	if u := os.Getenv("NOMINATIM_BASE_URL"); u != "" {
		geocoder.SetBaseURL(u)
	}

	planner := routing.NewOSRMPlanner(routeCache)
	if u := os.Getenv("OSRM_BASE_URL"); u != "" {
		planner.SetBaseURL(u)
	}

	router := api.NewRouter(geocoder, planner)

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s cache_backend=%s", port, backend)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openCaches builds the geocode and route-shape caches for the configured
// backend and returns a cleanup func for the underlying connection.
func openCaches(backend string) (ports.GeocodeCache, ports.RouteShapeCache, func(), error) {
	switch backend {
	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err := openSqlite(dbPath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := cache.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, nil, fmt.Errorf("init sqlite schema: %w", err)
		}
		return cache.NewSqliteGeocodeCache(conn), cache.NewSqliteRouteCache(conn), func() { conn.Close() }, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, nil, fmt.Errorf("DATABASE_URL is required for CACHE_BACKEND=postgres")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := cache.InitSchemaPostgres(conn); err != nil {
			conn.Close()
			return nil, nil, nil, fmt.Errorf("init postgres schema: %w", err)
		}
		return cache.NewSQLGeocodeCache(conn), cache.NewSQLRouteCache(conn), func() { conn.Close() }, nil

	case "redis":
		addr := config.Get("REDIS_ADDR", "localhost:6379")
		client := redis.NewClient(&redis.Options{Addr: addr})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, nil, fmt.Errorf("verify redis connection to %q: %w", addr, err)
		}
		return cache.NewRedisGeocodeCache(client), cache.NewRedisRouteCache(client), func() { client.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown CACHE_BACKEND %q (want sqlite, postgres or redis)", backend)
	}
}

func openSqlite(dbPath string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openSqlite: open sqlite database %q: %w", dbPath, err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("openSqlite: verify sqlite connection to %q: %w", dbPath, err)
	}

	return conn, nil
}
