package graze

import (
	"math/big"
	"strings"
)

// TotalArea returns the exact sum of the sectors' areas, as a multiple of π.
func TotalArea(sectors []Sector) *big.Rat {
	sum := new(big.Rat)
	for _, s := range sectors {
		sum.Add(sum, s.Area())
	}
	return sum
}

// Formula renders the sum of the sectors' areas, in order, as terms of the
// form (S/360)(R)² joined by " + ". The result evaluates to exactly
// TotalArea(sectors); see [EvalFormula].
//
// The formula of an empty list is "0".
func Formula(sectors []Sector) string {
	if len(sectors) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, s := range sectors {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(s.Term())
	}
	return sb.String()
}

// Decimal renders area with prec digits after the decimal point, rounding
// the last digit. It is meant for display; area itself remains the canonical
// value.
func Decimal(area *big.Rat, prec int) string {
	return area.FloatString(prec)
}
