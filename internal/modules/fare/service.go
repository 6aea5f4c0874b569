// README: Taxi fare policy — fixed pickup charge plus a per-kilometre rate.
package fare

import (
	"math"

	"sunuguide/internal/types"
)

// Dakar taxi tariff, in CFA francs.
const (
	basePrice  = 1000 // pickup charge
	pricePerKm = 450
	minPrice   = 1200
)

// Policy converts a trip distance into a fare. The result is rounded up to
// the next hundred and never drops below the minimum fare, so it is
// monotonically non-decreasing in distance.
type Policy struct {
	base  int64
	perKm int64
	min   int64
}

func NewPolicy() *Policy {
	return &Policy{base: basePrice, perKm: pricePerKm, min: minPrice}
}

func (p *Policy) Price(distanceKm float64) types.Money {
	raw := float64(p.base) + distanceKm*float64(p.perKm)
	price := int64(math.Ceil(raw/100)) * 100
	if price < p.min {
		price = p.min
	}
	return types.XOF(price)
}
