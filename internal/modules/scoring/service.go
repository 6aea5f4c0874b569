// README: Multi-criteria scoring model over dataset-wide price averages.
package scoring

import (
	"math"
	"strings"

	"sunuguide/internal/dataset"
)

// Model scores route options on a 0..10 scale. The dataset averages are
// captured once at construction and never change.
type Model struct {
	avgPrice   float64
	avgSpeed   float64
	avgComfort float64
}

func NewModel(agg dataset.Aggregates) *Model {
	return &Model{
		avgPrice:   agg.AvgPrice,
		avgSpeed:   agg.AvgSpeed,
		avgComfort: agg.AvgComfort,
	}
}

// Score computes the weighted score for an option under the named preference
// profile. Total function: every input yields a value in [0, 10].
func (m *Model) Score(opt Option, preference string) float64 {
	w := ProfileFor(preference)

	priceNorm := math.Max(0, 1-opt.Price/(m.avgPrice*3))
	speedNorm := opt.Speed / 10
	comfortNorm := opt.Comfort / 10

	base := priceNorm*w.Price + speedNorm*w.Speed + comfortNorm*w.Comfort

	label := strings.ToUpper(opt.TransportType)
	for _, b := range transportBonus {
		if strings.Contains(label, b.Keyword) {
			base *= b.Factor
			break
		}
	}

	return math.Min(10, round2(base*10))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
