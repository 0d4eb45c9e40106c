package tax

import (
	"math"

	"resto_pos/internal/domain/entities"
)

// IGVRate is the Peruvian value-added tax rate. Menu prices are
// tax-inclusive, so the subtotal is recovered by division, never by
// multiplying the total.
const IGVRate = 0.18

// Compute derives the IGV breakdown of a receipt's line items at the
// standard rate. Empty input yields an all-zero breakdown.
func Compute(items []entities.SaleItem) entities.TaxBreakdown {
	return ComputeWithRate(items, IGVRate)
}

// ComputeWithRate is Compute with an explicit rate.
//
// The breakdown keeps full float precision; rounding happens only at the
// presentation edge (see Round2) so repeated add/remove cycles on the
// receipt never accumulate rounding drift.
func ComputeWithRate(items []entities.SaleItem, rate float64) entities.TaxBreakdown {
	total := 0.0
	for _, it := range items {
		total += it.Quantity * it.Price
	}
	subtotal := total / (1 + rate)
	return entities.TaxBreakdown{
		Subtotal: subtotal,
		Tax:      subtotal * rate,
		Total:    total,
	}
}

// Round2 rounds a monetary amount to 2 decimal places for display. Stored
// and intermediate values must stay unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
