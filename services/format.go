package services

import (
	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// FormatThickness renders a thickness given in metres as millimetres.
// Whole values carry no decimals, others exactly two (12.50 mm).
func FormatThickness(metres float64) string {
	mm := decimal.NewFromFloat(metres).Mul(thousand).Round(2)
	if mm.Equal(mm.Truncate(0)) {
		return mm.StringFixed(0) + " mm"
	}
	return mm.StringFixed(2) + " mm"
}

// FormatRange renders material bounds the way the layer controls label them.
func FormatRange(lo, hi float64) string {
	return "Range: " + FormatThickness(lo) + " - " + FormatThickness(hi)
}
