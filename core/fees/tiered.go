// Package fees - Tiered fee accumulation
package fees

// Fee computes the tiered fee for a listing price. Each tier takes
// min(remaining, cap) of the price at its rate and passes the rest on;
// an uncapped tier takes everything left.
func (t Tiered) Fee(price float64) float64 {
	return CalculateTieredFee(price, t.Tiers)
}

// CalculateTieredFee is the accumulator behind Tiered.Fee.
func CalculateTieredFee(price float64, tiers []Tier) float64 {
	if price <= 0 || len(tiers) == 0 {
		return 0
	}

	var total float64
	remaining := price

	for _, tier := range tiers {
		if remaining <= 0 {
			break
		}

		if tier.Cap == nil {
			total += remaining * tier.Rate
			remaining = 0
			continue
		}

		inTier := min(remaining, *tier.Cap)
		total += inTier * tier.Rate
		remaining -= inTier
	}

	return total
}
