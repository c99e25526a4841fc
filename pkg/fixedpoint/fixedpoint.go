package fixedpoint

import "github.com/shopspring/decimal"

// Monetary amounts are stored as integers scaled by 10^18. All math here
// stays in decimal.Decimal and truncates toward zero, matching integer
// division in the ledger.

// Scale is the number of implied decimal places.
const Scale = 18

// One is 10^18, the scaled representation of 1.0.
var One = decimal.New(1, Scale)

var hundred = decimal.NewFromInt(100)

// FromUnits converts a whole-unit count into its scaled representation,
// e.g. FromUnits(3000) = 3000 * 10^18.
func FromUnits(n int64) decimal.Decimal {
	return decimal.NewFromInt(n).Mul(One)
}

// MulDiv18 computes trunc(a * b / 10^18). This is the product of two
// scaled amounts brought back to scale, e.g. amount * price.
func MulDiv18(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.Mul(b).QuoRem(One, 0)
	return q
}

// PercentOf computes trunc(part * 100 / whole), the integer percentage
// that part represents of whole. whole must be non-zero.
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	q, _ := part.Mul(hundred).QuoRem(whole, 0)
	return q
}

// IsPositive reports whether d > 0.
func IsPositive(d decimal.Decimal) bool { return d.Sign() > 0 }
