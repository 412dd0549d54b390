package service

import "math"

// HSTRate is the fixed sales tax applied to every sale's subtotal.
const HSTRate = 0.13

// roundCents rounds a dollar amount to the nearest cent. All derived money
// values (tax, totals, change) are stored cent-rounded so persisted records
// never accumulate float drift.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
