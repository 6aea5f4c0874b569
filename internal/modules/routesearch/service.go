// README: Route search engine — resolves stations, ranks direct matches, or synthesizes a taxi option.
package routesearch

import (
	"context"
	"errors"
	"sort"
	"strings"

	"sunuguide/internal/dataset"
	"sunuguide/internal/modules/distance"
	"sunuguide/internal/modules/fare"
	"sunuguide/internal/modules/scoring"
	"sunuguide/internal/modules/stations"
)

const (
	modelName    = "SunuGuide Transport Model"
	modelVersion = "1.0.0"

	maxOptions = 3

	// Fixed ratings for a synthesized taxi suggestion.
	taxiSpeedRating   = 7.5
	taxiComfortRating = 9.0
)

var ErrNoDataset = errors.New("routesearch: engine requires a non-empty dataset")

// Engine answers route searches over an immutable dataset. Construct it once
// and share it across requests; nothing in it is mutated after New.
type Engine struct {
	data     *dataset.Dataset
	resolver *stations.Resolver
	scoring  *scoring.Model
	distance *distance.Estimator
	fare     *fare.Policy
}

func NewEngine(data *dataset.Dataset, estimator *distance.Estimator, farePolicy *fare.Policy) (*Engine, error) {
	if data == nil || data.Len() == 0 {
		return nil, ErrNoDataset
	}
	return &Engine{
		data:     data,
		resolver: stations.NewResolver(data.Stations()),
		scoring:  scoring.NewModel(data.Aggregates()),
		distance: estimator,
		fare:     farePolicy,
	}, nil
}

// FindRoutes runs the single-pass search flow: resolve both inputs, rank
// direct dataset matches, or fall back to one synthesized taxi option. An
// unresolvable station yields a structured failure, never an error.
func (e *Engine) FindRoutes(ctx context.Context, departInput, arriveeInput, preference string) Result {
	corrections := make(map[string]any)

	depart, departOK := e.resolver.Resolve(departInput)
	if departOK && depart != strings.TrimSpace(departInput) {
		corrections["depart"] = depart
	}
	arrivee, arriveeOK := e.resolver.Resolve(arriveeInput)
	if arriveeOK && arrivee != strings.TrimSpace(arriveeInput) {
		corrections["arrivee"] = arrivee
	}

	if !departOK || !arriveeOK {
		return Result{
			Success:     false,
			Corrections: corrections,
			Message:     "no route found",
		}
	}

	if matches := e.data.FindPair(depart, arrivee); len(matches) > 0 {
		return Result{
			Success:     true,
			Options:     e.rank(matches, preference),
			Corrections: corrections,
		}
	}

	corrections["taxi_suggestion"] = true
	return Result{
		Success:     true,
		Options:     []Option{e.suggestTaxi(ctx, depart, arrivee, preference)},
		Corrections: corrections,
	}
}

// rank scores every match and keeps the top 3 by score. The sort is stable,
// so equal scores keep dataset order.
func (e *Engine) rank(matches []dataset.Route, preference string) []Option {
	options := make([]Option, 0, len(matches))
	for _, r := range matches {
		options = append(options, Option{
			TransportType: r.TransportType,
			Departure:     r.Departure,
			Arrival:       r.Arrival,
			Price:         r.Price,
			Speed:         r.Speed,
			Comfort:       r.Comfort,
			Score: e.scoring.Score(scoring.Option{
				TransportType: r.TransportType,
				Price:         float64(r.Price),
				Speed:         r.Speed,
				Comfort:       r.Comfort,
			}, preference),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})
	if len(options) > maxOptions {
		options = options[:maxOptions]
	}
	return options
}

// suggestTaxi synthesizes a taxi option priced from the estimated trip
// distance.
func (e *Engine) suggestTaxi(ctx context.Context, depart, arrivee, preference string) Option {
	est := e.distance.Estimate(ctx, depart, arrivee)
	price := e.fare.Price(est.DistanceKm)

	opt := Option{
		TransportType:  "TAXI",
		Departure:      depart,
		Arrival:        arrivee,
		Price:          price.Amount,
		Speed:          taxiSpeedRating,
		Comfort:        taxiComfortRating,
		DistanceKm:     est.DistanceKm,
		DurationMin:    est.DurationMin,
		TaxiSuggestion: true,
		DistanceSource: est.Source,
	}
	opt.Score = e.scoring.Score(scoring.Option{
		TransportType: opt.TransportType,
		Price:         float64(opt.Price),
		Speed:         opt.Speed,
		Comfort:       opt.Comfort,
	}, preference)
	return opt
}

// Stations returns the sorted known-station names.
func (e *Engine) Stations() []string {
	return e.data.Stations()
}

func (e *Engine) Info() ModelInfo {
	stats := e.data.Stats()
	return ModelInfo{
		Name:              modelName,
		Version:           modelVersion,
		TotalRoutes:       stats.TotalRoutes,
		AvailableStations: len(e.data.Stations()),
		TransportTypes:    stats.TransportTypes,
		PriceMin:          stats.PriceMin,
		PriceMax:          stats.PriceMax,
		PriceAvg:          stats.PriceAvg,
	}
}
