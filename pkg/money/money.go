// Package money holds the 2-decimal currency helpers shared by the ledger
// engine and the feature services. All amounts in the application are float64
// with two meaningful fractional digits; anything under one cent is zero.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Epsilon is the smallest amount the application distinguishes from zero.
const Epsilon = 0.01

// Round2 rounds a value to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Negligible reports whether an amount is under one cent in magnitude.
func Negligible(v float64) bool {
	return math.Abs(v) < Epsilon
}

// SumsMatch reports whether two totals agree within one cent.
func SumsMatch(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}
