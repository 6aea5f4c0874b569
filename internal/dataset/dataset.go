// README: Immutable route dataset with construction-time aggregates and the derived station set.
package dataset

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Route is one transport offering between two stations. Speed and Comfort are
// 0..10 ratings; a loader must have filled blanks with the neutral 5.0 before
// rows reach this package.
type Route struct {
	TransportType string
	Departure     string
	Arrival       string
	Price         int64
	Speed         float64
	Comfort       float64
}

// Aggregates are network-wide averages captured once at construction.
type Aggregates struct {
	AvgPrice   float64
	AvgSpeed   float64
	AvgComfort float64
}

// Stats summarizes the network for the model-info endpoint.
type Stats struct {
	TotalRoutes    int
	TransportTypes map[string]int
	PriceMin       int64
	PriceMax       int64
	PriceAvg       int64
}

var ErrEmpty = errors.New("dataset: no routes loaded")

// Dataset is read-only after New and safe to share across requests.
type Dataset struct {
	routes   []Route
	stations []string
	agg      Aggregates
}

func New(routes []Route) (*Dataset, error) {
	if len(routes) == 0 {
		return nil, ErrEmpty
	}

	var priceSum, speedSum, comfortSum float64
	for _, r := range routes {
		priceSum += float64(r.Price)
		speedSum += r.Speed
		comfortSum += r.Comfort
	}
	n := float64(len(routes))

	names := make([]string, 0, len(routes)*2)
	for _, r := range routes {
		names = append(names, r.Departure, r.Arrival)
	}
	stations := lo.Uniq(names)
	sort.Strings(stations)

	return &Dataset{
		routes:   routes,
		stations: stations,
		agg: Aggregates{
			AvgPrice:   priceSum / n,
			AvgSpeed:   speedSum / n,
			AvgComfort: comfortSum / n,
		},
	}, nil
}

func (d *Dataset) Len() int               { return len(d.routes) }
func (d *Dataset) Aggregates() Aggregates { return d.agg }

// Stations returns the sorted union of all departure and arrival names.
// Callers must not mutate the returned slice.
func (d *Dataset) Stations() []string { return d.stations }

// FindPair returns every route serving the given pair, compared
// case-insensitively, in dataset order.
func (d *Dataset) FindPair(departure, arrival string) []Route {
	dep := strings.ToLower(departure)
	arr := strings.ToLower(arrival)

	var matches []Route
	for _, r := range d.routes {
		if strings.ToLower(r.Departure) == dep && strings.ToLower(r.Arrival) == arr {
			matches = append(matches, r)
		}
	}
	return matches
}

func (d *Dataset) Stats() Stats {
	s := Stats{
		TotalRoutes:    len(d.routes),
		TransportTypes: make(map[string]int),
		PriceMin:       d.routes[0].Price,
		PriceMax:       d.routes[0].Price,
	}
	for _, r := range d.routes {
		s.TransportTypes[r.TransportType]++
		if r.Price < s.PriceMin {
			s.PriceMin = r.Price
		}
		if r.Price > s.PriceMax {
			s.PriceMax = r.Price
		}
	}
	s.PriceAvg = int64(d.agg.AvgPrice)
	return s
}
