package report

import (
	"math"

	"app/models"
)

// ComputeTotal computes a sale's total price from the unit price, the number
// of units, and a flat currency discount, floored at zero. This is the
// convention used when recording a sale.
func ComputeTotal(unitPrice float64, quantity int, discount float64) float64 {
	total := unitPrice*float64(quantity) - discount
	if total < 0 {
		return 0
	}
	return total
}

// ComputeDiscountedTotal dispatches on the typed discount: flat amounts are
// subtracted, percentages scale the gross line total. Legacy records created
// by the old flat-sale form carry the percent kind. The result never goes
// below zero.
func ComputeDiscountedTotal(unitPrice float64, quantity int, d models.Discount) float64 {
	if d.Kind == models.DiscountPercent {
		total := unitPrice * float64(quantity) * (1 - d.Value/100)
		if total < 0 {
			return 0
		}
		return total
	}
	return ComputeTotal(unitPrice, quantity, d.Value)
}

// Round2 rounds to two decimal places. Monetary sums stay full-precision
// while folding; rounding happens once, at display time.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place, used for percentage shares.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
