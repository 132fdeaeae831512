// Package money holds peso arithmetic and formatting helpers shared by the
// calculators and the report formatters.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MonthsPerYear converts monthly figures to annual ones.
var MonthsPerYear = decimal.NewFromInt(12)

// Annual converts a monthly amount to annual
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(MonthsPerYear)
}

// Monthly converts an annual amount to monthly
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(MonthsPerYear)
}

// NonNegative clamps d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Round rounds to centavos.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Must parses a constant literal and panics on malformed input.
func Must(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Format renders d as pesos with thousands separators, e.g. ₱1,234.56.
func Format(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "₱" + b.String() + "." + frac
}

// Plain renders d with two decimals and no currency symbol, for CSV cells.
func Plain(d decimal.Decimal) string {
	return d.StringFixed(2)
}
