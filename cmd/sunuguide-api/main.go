// README: Entry point; loads config and the route dataset, wires the engine, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sunuguide/internal/config"
	"sunuguide/internal/dataset"
	"sunuguide/internal/geo"
	httptransport "sunuguide/internal/http"
	"sunuguide/internal/infra"
	"sunuguide/internal/modules/distance"
	"sunuguide/internal/modules/fare"
	"sunuguide/internal/modules/routesearch"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Fatalf("invalid log level: %s", cfg.Log.Level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routes, err := loadRoutes(ctx, cfg)
	if err != nil {
		logrus.Fatalf("dataset load: %v", err)
	}
	data, err := dataset.New(routes)
	if err != nil {
		logrus.Fatalf("dataset init: %v", err)
	}

	var providers []distance.Provider
	if cfg.Routing.ORSKey != "" {
		providers = append(providers, distance.NewORSClient(cfg.Routing.ORSKey, cfg.Routing.ORSBaseURL, cfg.Routing.Timeout))
	}
	if cfg.Routing.GoogleMapsKey != "" {
		gp, err := distance.NewGoogleProvider(cfg.Routing.GoogleMapsKey)
		if err != nil {
			logrus.Fatalf("google maps init: %v", err)
		}
		providers = append(providers, gp)
	}
	if len(providers) == 0 {
		logrus.Warn("no routing provider configured, taxi distances will be heuristic only")
	}

	var cache *distance.Cache
	if cfg.Redis.Addr != "" {
		cache = distance.NewCache(infra.NewRedis(cfg.Redis.Addr), cfg.Routing.CacheTTL)
	}

	estimator := distance.NewEstimator(geo.Default(), providers, cache)
	engine, err := routesearch.NewEngine(data, estimator, fare.NewPolicy())
	if err != nil {
		logrus.Fatalf("engine init: %v", err)
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(engine)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logrus.Infof("sunuguide api listening at %s (%d routes, %d stations)", cfg.HTTP.Addr, data.Len(), len(data.Stations()))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatal(err)
	}
	logrus.Info("sunuguide api stopped")
}

// loadRoutes prefers the Postgres source when a DSN is configured and falls
// back to the CSV file otherwise.
func loadRoutes(ctx context.Context, cfg config.Config) ([]dataset.Route, error) {
	if cfg.Data.DBDSN != "" {
		pool, err := infra.NewDB(ctx, cfg.Data.DBDSN)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return dataset.NewPGStore(pool).LoadRoutes(ctx)
	}
	return dataset.LoadCSV(cfg.Data.CSVPath)
}
