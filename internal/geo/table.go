// Package geo maps station names to approximate coordinates using a small
// static reference table of greater Dakar locations. Lookups never fail:
// anything unrecognized resolves to the city centre.
package geo

import (
	"strings"

	"sunuguide/internal/types"
)

// CityCenter is the fallback coordinate when nothing in the table matches.
var CityCenter = types.Point{Lat: 14.6928, Lng: -17.4467}

type entry struct {
	name  string
	point types.Point
}

// Entries are matched in declaration order; the first hit wins, so more
// specific names must come before the generic ones they contain.
var dakarEntries = []entry{
	{"parcelles assainies", types.Point{Lat: 14.7677, Lng: -17.3980}},
	{"golf nord", types.Point{Lat: 14.7589, Lng: -17.3944}},
	{"le plateau", types.Point{Lat: 14.6770, Lng: -17.4370}},
	{"grande mosquee", types.Point{Lat: 14.6828, Lng: -17.4472}},
	{"liberte 5", types.Point{Lat: 14.7214, Lng: -17.4639}},
	{"liberte 6", types.Point{Lat: 14.7261, Lng: -17.4700}},
	{"grand medine", types.Point{Lat: 14.6986, Lng: -17.4689}},
	{"prefecture guediawaye", types.Point{Lat: 14.7833, Lng: -17.4000}},
	{"dalal jam", types.Point{Lat: 14.7750, Lng: -17.4050}},
	{"croisement 22", types.Point{Lat: 14.7400, Lng: -17.4500}},
	{"papa gueye fall (petersen)", types.Point{Lat: 14.7150, Lng: -17.4550}},
	{"place de la nation", types.Point{Lat: 14.7050, Lng: -17.4580}},
	{"grand dakar", types.Point{Lat: 14.7100, Lng: -17.4450}},
	{"dakar", types.Point{Lat: 14.6928, Lng: -17.4467}},
	{"hann maristes", types.Point{Lat: 14.7150, Lng: -17.4250}},
	{"hann", types.Point{Lat: 14.7200, Lng: -17.4200}},
	{"colobane", types.Point{Lat: 14.6900, Lng: -17.4600}},
	{"bountou pikine", types.Point{Lat: 14.7500, Lng: -17.3900}},
	{"thiaroye", types.Point{Lat: 14.7600, Lng: -17.3700}},
	{"yeumbeul", types.Point{Lat: 14.7700, Lng: -17.3500}},
	{"rufisque", types.Point{Lat: 14.7150, Lng: -17.2800}},
	{"bargny", types.Point{Lat: 14.7000, Lng: -17.2300}},
	{"diamniadio", types.Point{Lat: 14.7000, Lng: -17.2000}},
	{"yoff", types.Point{Lat: 14.7500, Lng: -17.4800}},
	{"ouakam", types.Point{Lat: 14.7300, Lng: -17.4900}},
	{"mermoz", types.Point{Lat: 14.7000, Lng: -17.4700}},
	{"fann", types.Point{Lat: 14.6800, Lng: -17.4700}},
	{"point e", types.Point{Lat: 14.6900, Lng: -17.4650}},
	{"sacré coeur", types.Point{Lat: 14.7100, Lng: -17.4750}},
	{"medina", types.Point{Lat: 14.6750, Lng: -17.4400}},
	{"gare routière", types.Point{Lat: 14.6800, Lng: -17.4350}},
	{"terminus liberte 5", types.Point{Lat: 14.7214, Lng: -17.4639}},
	{"terminus guediawaye", types.Point{Lat: 14.7833, Lng: -17.4000}},
	{"terminus keur massar", types.Point{Lat: 14.7700, Lng: -17.3300}},
	{"scat urbam", types.Point{Lat: 14.6700, Lng: -17.4400}},
	{"dieuppeul", types.Point{Lat: 14.6850, Lng: -17.4550}},
	{"centre-ville", types.Point{Lat: 14.6770, Lng: -17.4370}},
}

type Table struct {
	entries []entry
}

// Default returns the built-in greater Dakar reference table.
func Default() *Table {
	return &Table{entries: dakarEntries}
}

// Lookup resolves a station name to a coordinate. Matching is tried in two
// passes over the table: containment in either direction, then a
// word-of-reference-name scan. Entry order decides ties.
func (t *Table) Lookup(name string) types.Point {
	in := strings.ToLower(name)

	for _, e := range t.entries {
		if strings.Contains(in, e.name) || strings.Contains(e.name, in) {
			return e.point
		}
	}

	for _, e := range t.entries {
		for _, word := range strings.Fields(e.name) {
			if strings.Contains(in, word) {
				return e.point
			}
		}
	}

	return CityCenter
}
