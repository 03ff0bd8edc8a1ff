// Package money converts between integer minor units (paise) and the decimal
// display representation shown to users.
//
// Balances are always int64 minor units. Display amounts are converted with
// round-half-away-from-zero to the nearest minor unit, so 0.005 becomes 1 and
// -0.005 becomes -1.
package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/shopspring/decimal"
)

// MinorUnitsPerUnit is the number of paise in a rupee.
const MinorUnitsPerUnit = 100

// exponent of MinorUnitsPerUnit
const scale = 2

// CurrencySymbol prefixes amounts rendered by Format.
const CurrencySymbol = "₹"

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// ToMinorUnits converts a display amount to minor units. NaN, infinities and
// values outside the int64 range yield common.ErrInvalidAmount.
func ToMinorUnits(display float64) (int64, error) {
	if math.IsNaN(display) || math.IsInf(display, 0) {
		return 0, common.ErrInvalidAmount
	}
	return fromDecimal(decimal.NewFromFloat(display))
}

// ParseDisplay converts a decimal string such as "40", "40.5" or "40.50"
// to minor units.
func ParseDisplay(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidAmount, s)
	}
	return fromDecimal(d)
}

// ToDisplayUnits renders minor units with exactly two fractional digits,
// e.g. 6000 -> "60.00", -5 -> "-0.05".
func ToDisplayUnits(minor int64) string {
	return decimal.New(minor, -scale).StringFixed(scale)
}

// ToFloat converts minor units back to a display amount, e.g. 4050 -> 40.5.
func ToFloat(minor int64) float64 {
	f, _ := decimal.New(minor, -scale).Float64()
	return f
}

// Format renders minor units with the currency symbol, e.g. "₹60.00".
func Format(minor int64) string {
	return CurrencySymbol + ToDisplayUnits(minor)
}

func fromDecimal(d decimal.Decimal) (int64, error) {
	m := d.Shift(scale).Round(0)
	if m.GreaterThan(maxMinor) || m.LessThan(minMinor) {
		return 0, common.ErrInvalidAmount
	}
	return m.IntPart(), nil
}
