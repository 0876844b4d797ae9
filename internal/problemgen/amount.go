package problemgen

import "math/rand/v2"

// AmountUnit is the base proration unit. Every generated amount is a
// positive multiple of it, so templates can divide by 12 months (and
// take per-mille fractions) without remainders.
const AmountUnit = 12000

// RoundAmount rounds v down to a multiple of AmountUnit and adds one
// unit, e.g. 1000 -> 12000, 50000 -> 60000.
func RoundAmount(v int64) int64 {
	return v/AmountUnit*AmountUnit + AmountUnit
}

// drawAmount picks base 10^3..10^5 and multiplier 1..50.
func drawAmount(rng *rand.Rand) int64 {
	base := int64(1000)
	for range rng.IntN(3) {
		base *= 10
	}
	mult := int64(1 + rng.IntN(50))
	return RoundAmount(base * mult)
}
