// README: CSV route table loader; fills missing ratings with the neutral default.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// neutralRating replaces a blank or unparsable speed/comfort cell.
const neutralRating = 5.0

// Column names accepted in the header. The second alias set matches the
// legacy export format of the route table.
var columnAliases = map[string][]string{
	"transport_type": {"transport_type", "type transport"},
	"departure":      {"departure", "depart"},
	"arrival":        {"arrival", "arrivee"},
	"price":          {"price", "prix"},
	"speed_rating":   {"speed_rating", "rapidite"},
	"comfort_rating": {"comfort_rating", "confort"},
}

// LoadCSV reads the route table from path. Price must be a positive integer;
// speed and comfort ratings default to neutral when blank.
func LoadCSV(path string) ([]Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open csv: %w", err)
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) ([]Route, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var routes []Route
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read csv: %w", err)
		}
		line++

		price, err := strconv.ParseInt(strings.TrimSpace(record[cols["price"]]), 10, 64)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("dataset: line %d: invalid price %q", line, record[cols["price"]])
		}

		routes = append(routes, Route{
			TransportType: strings.TrimSpace(record[cols["transport_type"]]),
			Departure:     strings.TrimSpace(record[cols["departure"]]),
			Arrival:       strings.TrimSpace(record[cols["arrival"]]),
			Price:         price,
			Speed:         ratingOrNeutral(record[cols["speed_rating"]]),
			Comfort:       ratingOrNeutral(record[cols["comfort_rating"]]),
		})
	}
	return routes, nil
}

func columnIndex(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make(map[string]int, len(columnAliases))
	for canonical, aliases := range columnAliases {
		found := false
		for _, alias := range aliases {
			if i, ok := byName[alias]; ok {
				cols[canonical] = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("dataset: csv header missing column %q", canonical)
		}
	}
	return cols, nil
}

func ratingOrNeutral(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || v < 0 || v > 10 {
		return neutralRating
	}
	return v
}
