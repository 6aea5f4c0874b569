// README: Config loader with env defaults for HTTP, dataset sources, Redis, and routing providers.
package config

import (
	"os"
	"strconv"
	"time"
)

type RoutingConfig struct {
	// ORSKey is the OpenRouteService credential. Empty disables the remote
	// provider entirely; the estimator then answers from the heuristic alone.
	ORSKey        string
	ORSBaseURL    string
	GoogleMapsKey string
	Timeout       time.Duration
	CacheTTL      time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Data struct {
		CSVPath string
		DBDSN   string
	}
	Redis struct {
		Addr string
	}
	Routing RoutingConfig
	Log     struct {
		Level string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("SUNUGUIDE_HTTP_ADDR", ":8080")
	cfg.Data.CSVPath = envOrDefault("SUNUGUIDE_DATA_CSV", "data/routes.csv")
	cfg.Data.DBDSN = os.Getenv("SUNUGUIDE_DB_DSN")
	cfg.Redis.Addr = os.Getenv("SUNUGUIDE_REDIS_ADDR")
	cfg.Routing.ORSKey = os.Getenv("ORS_API_KEY")
	cfg.Routing.ORSBaseURL = envOrDefault("SUNUGUIDE_ORS_URL", "https://api.openrouteservice.org/v2/directions/driving-car")
	cfg.Routing.GoogleMapsKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.Routing.Timeout = time.Duration(envOrDefaultInt("SUNUGUIDE_ROUTING_TIMEOUT_MS", 5000)) * time.Millisecond
	cfg.Routing.CacheTTL = time.Duration(envOrDefaultInt("SUNUGUIDE_DISTANCE_CACHE_TTL_S", 3600)) * time.Second
	cfg.Log.Level = envOrDefault("SUNUGUIDE_LOG_LEVEL", "info")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
