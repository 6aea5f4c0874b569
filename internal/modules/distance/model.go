// README: Distance estimate model and the remote-provider contract.
package distance

import (
	"context"

	"sunuguide/internal/types"
)

// Source tags which path produced an estimate, so callers and tests can tell
// a measured remote result from the deterministic heuristic.
type Source string

const (
	SourceMeasured  Source = "measured"
	SourceEstimated Source = "estimated"
)

type Estimate struct {
	DistanceKm  float64
	DurationMin float64
	Source      Source
}

// Provider is a remote routing backend. Implementations must respect ctx and
// carry their own bounded timeout; the estimator never retries a provider.
type Provider interface {
	Name() string
	Route(ctx context.Context, from, to types.Point) (Estimate, error)
}
