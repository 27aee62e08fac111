package common

import (
	"math"

	"github.com/shopspring/decimal"
)

// MoneyEpsilon is the tolerance used when comparing computed currency amounts.
const MoneyEpsilon = 1e-6

// ApproxZero reports whether a currency amount is zero within MoneyEpsilon.
func ApproxZero(v float64) bool {
	return math.Abs(v) < MoneyEpsilon
}

// RoundMoney rounds half away from zero to cents. Only for display; stored
// and live amounts never round.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatMoney renders an amount as dollars with two decimals, e.g. "$18.00"
// or "-$1.25".
func FormatMoney(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
