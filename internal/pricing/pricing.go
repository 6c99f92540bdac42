package pricing

import "math"

// Round2 rounds an amount to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Copysign(math.Floor(math.Abs(v)*100+0.5)/100, v)
}

// EffectivePrice applies a percent discount to a base price. The discount
// is clamped to the 0-90 range rather than rejected.
func EffectivePrice(base float64, discountPercent int) float64 {
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 90 {
		discountPercent = 90
	}
	return Round2(base * (1 - float64(discountPercent)/100))
}

// UnitPrice is the discounted base price plus the selected modifier deltas.
func UnitPrice(base float64, discountPercent int, deltaSum float64) float64 {
	return Round2(EffectivePrice(base, discountPercent) + deltaSum)
}
