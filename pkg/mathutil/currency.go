// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// RoundCurrency rounds a value to two decimals, i.e. to represent real currency.
// Ties go to the even neighbour.
func RoundCurrency(val decimal.Decimal) decimal.Decimal {
	return val.RoundBank(constants.DecimalPlaces)
}

// FormatCurrency renders a value with exactly two fractional digits.
func FormatCurrency(val decimal.Decimal) string {
	return RoundCurrency(val).StringFixed(constants.DecimalPlaces)
}

// PercentToFraction converts a percentage such as 13 into 0.13. The result is exact.
func PercentToFraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Shift(-2)
}

// ApplyPercentage applies a percentage to a value without rounding.
func ApplyPercentage(value, percentage decimal.Decimal) decimal.Decimal {
	return value.Mul(percentage).Shift(-2)
}

// Divide returns a / b rounded to DivisionPrecision fractional digits.
func Divide(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, constants.DivisionPrecision)
}

// WithinLimits reports whether val has at most MaxIntegerDigits digits before
// the decimal point and MaxFractionDigits after it.
func WithinLimits(val decimal.Decimal) bool {
	exp := int(val.Exponent())
	return val.NumDigits()+exp <= constants.MaxIntegerDigits && -exp <= constants.MaxFractionDigits
}

// ContainsInt reports whether val equals one of the allowed integers exactly.
func ContainsInt(val decimal.Decimal, allowed []int64) bool {
	for _, a := range allowed {
		if val.Equal(decimal.NewFromInt(a)) {
			return true
		}
	}
	return false
}
