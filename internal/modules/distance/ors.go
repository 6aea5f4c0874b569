// README: OpenRouteService driving-directions client.
package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sunuguide/internal/types"
)

type ORSClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewORSClient builds a client for the OpenRouteService directions endpoint.
// The credential comes from configuration, never from source.
func NewORSClient(apiKey, baseURL string, timeout time.Duration) *ORSClient {
	return &ORSClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ORSClient) Name() string { return "openrouteservice" }

type orsRequest struct {
	// Coordinates are [longitude, latitude] pairs, per the ORS wire contract.
	Coordinates  [][2]float64 `json:"coordinates"`
	Instructions bool         `json:"instructions"`
	Preference   string       `json:"preference"`
}

type orsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"` // meters
			Duration float64 `json:"duration"` // seconds
		} `json:"summary"`
	} `json:"routes"`
}

func (c *ORSClient) Route(ctx context.Context, from, to types.Point) (Estimate, error) {
	body, err := json.Marshal(orsRequest{
		Coordinates: [][2]float64{
			{from.Lng, from.Lat},
			{to.Lng, to.Lat},
		},
		Instructions: false,
		Preference:   "recommended",
	})
	if err != nil {
		return Estimate{}, fmt.Errorf("openrouteservice: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Estimate{}, fmt.Errorf("openrouteservice: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Estimate{}, fmt.Errorf("openrouteservice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Estimate{}, fmt.Errorf("openrouteservice: unexpected status %d", resp.StatusCode)
	}

	var parsed orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Estimate{}, fmt.Errorf("openrouteservice: decode response: %w", err)
	}
	if len(parsed.Routes) == 0 {
		return Estimate{}, fmt.Errorf("openrouteservice: response carries no routes")
	}

	summary := parsed.Routes[0].Summary
	return Estimate{
		DistanceKm:  summary.Distance / 1000,
		DurationMin: summary.Duration / 60,
	}, nil
}
