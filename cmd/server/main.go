package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/adapters/cache"
	"route-optimizer-service/internal/adapters/geo"
	"route-optimizer-service/internal/adapters/repositories"
	"route-optimizer-service/internal/api"
	"route-optimizer-service/internal/config"
	"route-optimizer-service/internal/platform/db"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/services"
)

// main is the application composition root.
// It wires the optimization engine and the optional storage adapters behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dist, err := geo.NewHaversineDistance(settings.EarthRadiusKm)
	if err != nil {
		log.Fatal(err)
	}
	speed, err := geo.NewConstantSpeedEstimator(settings.AverageSpeedKmph)
	if err != nil {
		log.Fatal(err)
	}

	optimizer := services.NewRouteOptimizer(
		services.NewInterleavedPathGenerator(),
		services.NewTimeCostEvaluator(),
		dist,
		speed,
	)

	// Postgres route history is optional; the engine never reads it.
	var (
		sqlDB   *sql.DB
		history ports.RouteLog
	)
	if settings.DatabaseURL != "" {
		sqlDB, err = db.Open(settings.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer sqlDB.Close()

		if err := repositories.InitSchema(sqlDB); err != nil {
			log.Fatal(err)
		}
		history = repositories.NewPgRouteLog(sqlDB)
		log.Println("Route history enabled")
	}

	// Redis result cache is optional; identical requests short-circuit the
	// factorial enumeration when it is on.
	var resultCache ports.ResultCache
	if settings.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: settings.RedisAddr})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatalf("redis ping failed: addr=%s err=%v", settings.RedisAddr, err)
		}
		cancel()

		resultCache, err = cache.NewRedisResultCache(client)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Result cache enabled")
	}

	router := api.NewRouter(api.RouterDeps{
		Finder:    optimizer,
		Cache:     resultCache,
		History:   history,
		DB:        sqlDB,
		MaxOrders: settings.MaxOrders,
		CacheTTL:  settings.ResultCacheTTL,
		SpeedKmph: settings.AverageSpeedKmph,
		RadiusKm:  settings.EarthRadiusKm,
	})

	// Write timeout leaves headroom for max-order brute-force enumeration.
	log.Printf("Server listening addr=:%s speed_kmph=%v radius_km=%v max_orders=%d",
		settings.Port, settings.AverageSpeedKmph, settings.EarthRadiusKm, settings.MaxOrders)
	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
