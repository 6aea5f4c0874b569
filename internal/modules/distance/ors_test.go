package distance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sunuguide/internal/types"
)

var (
	yoff    = types.Point{Lat: 14.7500, Lng: -17.4800}
	plateau = types.Point{Lat: 14.6770, Lng: -17.4370}
)

func TestORSClient_Route(t *testing.T) {
	var captured orsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q, want test-key", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatal(err)
		}
		_, _ = w.Write([]byte(`{"routes":[{"summary":{"distance":12345,"duration":1500}}]}`))
	}))
	defer srv.Close()

	c := NewORSClient("test-key", srv.URL, time.Second)
	got, err := c.Route(context.Background(), yoff, plateau)
	if err != nil {
		t.Fatal(err)
	}

	// Wire contract: longitude first.
	wantCoords := [][2]float64{{yoff.Lng, yoff.Lat}, {plateau.Lng, plateau.Lat}}
	if len(captured.Coordinates) != 2 || captured.Coordinates[0] != wantCoords[0] || captured.Coordinates[1] != wantCoords[1] {
		t.Errorf("coordinates = %v, want %v", captured.Coordinates, wantCoords)
	}
	if captured.Instructions {
		t.Error("instructions should be false")
	}
	if captured.Preference != "recommended" {
		t.Errorf("preference = %q, want recommended", captured.Preference)
	}

	if got.DistanceKm != 12.345 {
		t.Errorf("DistanceKm = %f, want 12.345", got.DistanceKm)
	}
	if got.DurationMin != 25 {
		t.Errorf("DurationMin = %f, want 25", got.DurationMin)
	}
}

func TestORSClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"routes": [`))
			},
		},
		{
			name: "empty route list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"routes":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewORSClient("test-key", srv.URL, time.Second)
			if _, err := c.Route(context.Background(), yoff, plateau); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestORSClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewORSClient("test-key", srv.URL, 10*time.Millisecond)
	if _, err := c.Route(context.Background(), yoff, plateau); err == nil {
		t.Error("expected timeout error, got nil")
	}
}
