package repo

import (
	"math"
	"strconv"
)

// parseAmount reads a decimal money string. Malformed values count as zero,
// matching how the original rollups treated unparsable totals.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// round2 rounds to two decimal places so summed amounts stay cent-exact.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
