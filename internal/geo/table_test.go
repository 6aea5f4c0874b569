package geo

import (
	"testing"

	"sunuguide/internal/types"
)

func TestLookup_Containment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Point
	}{
		{
			name:  "exact reference name",
			input: "le plateau",
			want:  types.Point{Lat: 14.6770, Lng: -17.4370},
		},
		{
			name:  "reference name inside longer input",
			input: "arrêt le plateau centre",
			want:  types.Point{Lat: 14.6770, Lng: -17.4370},
		},
		{
			name:  "input inside reference name",
			input: "parcelles assain",
			want:  types.Point{Lat: 14.7677, Lng: -17.3980},
		},
		{
			name:  "mixed case",
			input: "YOFF",
			want:  types.Point{Lat: 14.7500, Lng: -17.4800},
		},
		{
			name:  "specific entry wins over generic substring",
			input: "hann maristes",
			want:  types.Point{Lat: 14.7150, Lng: -17.4250},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Default().Lookup(tt.input)
			if got != tt.want {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookup_WordFallback(t *testing.T) {
	// No containment match, but "guediawaye" appears as a word of the
	// "prefecture guediawaye" entry.
	got := Default().Lookup("marché guediawaye")
	want := types.Point{Lat: 14.7833, Lng: -17.4000}
	if got != want {
		t.Errorf("Lookup() = %+v, want %+v", got, want)
	}
}

func TestLookup_DefaultsToCityCenter(t *testing.T) {
	got := Default().Lookup("timbuktu")
	if got != CityCenter {
		t.Errorf("Lookup(unknown) = %+v, want city center %+v", got, CityCenter)
	}
}
