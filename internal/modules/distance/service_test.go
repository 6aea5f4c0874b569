package distance

import (
	"context"
	"errors"
	"testing"

	"sunuguide/internal/geo"
	"sunuguide/internal/types"
)

// stubProvider is a test double for the remote routing backend.
type stubProvider struct {
	name string
	est  Estimate
	err  error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Route(_ context.Context, _, _ types.Point) (Estimate, error) {
	return s.est, s.err
}

func TestEstimate_MeasuredAndRounded(t *testing.T) {
	provider := &stubProvider{name: "stub", est: Estimate{DistanceKm: 7.4567, DurationMin: 18.333}}
	e := NewEstimator(geo.Default(), []Provider{provider}, nil)

	got := e.Estimate(context.Background(), "Yoff", "Le Plateau")
	if got.Source != SourceMeasured {
		t.Fatalf("Source = %q, want measured", got.Source)
	}
	if got.DistanceKm != 7.5 {
		t.Errorf("DistanceKm = %f, want 7.5", got.DistanceKm)
	}
	if got.DurationMin != 18.3 {
		t.Errorf("DurationMin = %f, want 18.3", got.DurationMin)
	}
}

func TestEstimate_SecondProviderAfterFailure(t *testing.T) {
	failing := &stubProvider{name: "down", err: errors.New("timeout")}
	working := &stubProvider{name: "up", est: Estimate{DistanceKm: 10, DurationMin: 20}}
	e := NewEstimator(geo.Default(), []Provider{failing, working}, nil)

	got := e.Estimate(context.Background(), "Yoff", "Le Plateau")
	if got.Source != SourceMeasured || got.DistanceKm != 10 {
		t.Errorf("got %+v, want measured 10km from second provider", got)
	}
}

func TestEstimate_HeuristicWhenAllFail(t *testing.T) {
	failing := &stubProvider{name: "down", err: errors.New("status 500")}
	e := NewEstimator(geo.Default(), []Provider{failing}, nil)

	got := e.Estimate(context.Background(), "Parcelles Assainies", "Le Plateau")
	if got.Source != SourceEstimated {
		t.Fatalf("Source = %q, want estimated", got.Source)
	}
	if got.DistanceKm != 12.0 || got.DurationMin != 25 {
		t.Errorf("got %+v, want medium trip (12.0, 25)", got)
	}
}

func TestClassifyTrip(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		arrival   string
		want      Estimate
	}{
		{
			name:      "both peripheral",
			departure: "Yoff",
			arrival:   "Prefecture Guediawaye",
			want:      longTrip,
		},
		{
			name:      "peripheral to central",
			departure: "Parcelles Assainies",
			arrival:   "Le Plateau",
			want:      mediumTrip,
		},
		{
			name:      "central to peripheral",
			departure: "Medina",
			arrival:   "Rufisque",
			want:      mediumTrip,
		},
		{
			name:      "both central",
			departure: "Le Plateau",
			arrival:   "Medina",
			want:      shortTrip,
		},
		{
			name:      "peripheral to unclassified",
			departure: "Yoff",
			arrival:   "Bargny",
			want:      shortTrip,
		},
		{
			name:      "neither classified",
			departure: "Colobane",
			arrival:   "Thiaroye",
			want:      shortTrip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTrip(tt.departure, tt.arrival)
			if got != tt.want {
				t.Errorf("classifyTrip(%q, %q) = %+v, want %+v", tt.departure, tt.arrival, got, tt.want)
			}
		})
	}
}

func TestEstimate_NoProvidersIsDeterministic(t *testing.T) {
	e := NewEstimator(geo.Default(), nil, nil)
	first := e.Estimate(context.Background(), "Yoff", "Bargny")
	second := e.Estimate(context.Background(), "Yoff", "Bargny")
	if first != second {
		t.Errorf("estimates differ: %+v vs %+v", first, second)
	}
	if first.Source != SourceEstimated {
		t.Errorf("Source = %q, want estimated", first.Source)
	}
}
