package fare

import "testing"

func TestPrice(t *testing.T) {
	p := NewPolicy()

	tests := []struct {
		name       string
		distanceKm float64
		wantFare   int64
	}{
		{
			name:       "zero distance is minimum fare",
			distanceKm: 0,
			wantFare:   1200,
		},
		{
			name:       "short trip still hits the floor (1045 -> 1100 -> 1200)",
			distanceKm: 0.1,
			wantFare:   1200,
		},
		{
			name:       "ten kilometres (1000 + 4500)",
			distanceKm: 10,
			wantFare:   5500,
		},
		{
			name:       "heuristic short trip",
			distanceKm: 6.0,
			wantFare:   3700,
		},
		{
			name:       "heuristic medium trip",
			distanceKm: 12.0,
			wantFare:   6400,
		},
		{
			name:       "heuristic long trip",
			distanceKm: 18.0,
			wantFare:   9100,
		},
		{
			name:       "rounds up to next hundred (1000 + 1485 = 2485 -> 2500)",
			distanceKm: 3.3,
			wantFare:   2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Price(tt.distanceKm)
			if got.Amount != tt.wantFare {
				t.Errorf("Price(%f) = %d, want %d", tt.distanceKm, got.Amount, tt.wantFare)
			}
			if got.Currency != "XOF" {
				t.Errorf("Currency = %q, want XOF", got.Currency)
			}
		})
	}
}

func TestPrice_MonotonicAndFloored(t *testing.T) {
	p := NewPolicy()
	prev := int64(0)
	for km := 0.0; km <= 50; km += 0.5 {
		fare := p.Price(km).Amount
		if fare < 1200 {
			t.Fatalf("Price(%f) = %d, below minimum fare", km, fare)
		}
		if fare < prev {
			t.Fatalf("Price(%f) = %d, less than previous %d", km, fare, prev)
		}
		prev = fare
	}
}
