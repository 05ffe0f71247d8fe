package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"route-optimizer-service/internal/adapters/geo"
)

// Get returns the value of an environment variable or a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetFloat parses an environment variable as float64, using fallback when
// the variable is unset.
func GetFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q as float: %w", key, v, err)
	}
	return f, nil
}

// GetInt parses an environment variable as int, using fallback when the
// variable is unset.
func GetInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

// DefaultMaxOrders bounds request size: candidate count grows as (2N)!/2^N,
// and N=6 already means ~7.5M evaluations per request.
const DefaultMaxOrders = 6

// Settings holds the environment-driven configuration for one process.
type Settings struct {
	AverageSpeedKmph float64
	EarthRadiusKm    float64
	MaxOrders        int
	Port             string
	DatabaseURL      string
	RedisAddr        string
	ResultCacheTTL   time.Duration
}

// Load reads settings from the environment and validates the optimization
// parameters. Non-positive speed or radius is a configuration error and
// refuses startup rather than producing undefined route times.
func Load() (Settings, error) {
	speed, err := GetFloat("AVERAGE_SPEED_KMPH", geo.DefaultAverageSpeedKmph)
	if err != nil {
		return Settings{}, err
	}
	if speed <= 0 {
		return Settings{}, fmt.Errorf("config: AVERAGE_SPEED_KMPH must be positive, got %v", speed)
	}

	radius, err := GetFloat("EARTH_RADIUS_KM", geo.DefaultEarthRadiusKm)
	if err != nil {
		return Settings{}, err
	}
	if radius <= 0 {
		return Settings{}, fmt.Errorf("config: EARTH_RADIUS_KM must be positive, got %v", radius)
	}

	maxOrders, err := GetInt("MAX_ORDERS", DefaultMaxOrders)
	if err != nil {
		return Settings{}, err
	}
	if maxOrders < 1 {
		return Settings{}, fmt.Errorf("config: MAX_ORDERS must be at least 1, got %d", maxOrders)
	}

	ttlSeconds, err := GetInt("RESULT_CACHE_TTL_SECONDS", 300)
	if err != nil {
		return Settings{}, err
	}
	if ttlSeconds < 0 {
		return Settings{}, fmt.Errorf("config: RESULT_CACHE_TTL_SECONDS must be non-negative, got %d", ttlSeconds)
	}

	return Settings{
		AverageSpeedKmph: speed,
		EarthRadiusKm:    radius,
		MaxOrders:        maxOrders,
		Port:             Get("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		ResultCacheTTL:   time.Duration(ttlSeconds) * time.Second,
	}, nil
}
