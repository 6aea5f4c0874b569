// README: Route search result model.
package routesearch

import "sunuguide/internal/modules/distance"

// Option is one ranked transport offering, either a direct dataset match or a
// synthesized taxi suggestion.
type Option struct {
	TransportType  string
	Departure      string
	Arrival        string
	Price          int64
	Speed          float64
	Comfort        float64
	Score          float64
	DistanceKm     float64
	DurationMin    float64
	TaxiSuggestion bool
	// DistanceSource is set on taxi suggestions only: whether the distance
	// was measured remotely or estimated by the heuristic.
	DistanceSource distance.Source
}

// Result is the structured outcome of a search. Corrections is always
// present: canonicalized station names keyed by side, plus the
// taxi_suggestion marker when the single option is synthesized.
type Result struct {
	Success     bool
	Options     []Option
	Corrections map[string]any
	Message     string
}

// ModelInfo describes the loaded network for the info endpoint.
type ModelInfo struct {
	Name              string
	Version           string
	TotalRoutes       int
	AvailableStations int
	TransportTypes    map[string]int
	PriceMin          int64
	PriceMax          int64
	PriceAvg          int64
}
