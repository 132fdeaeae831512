package output

import (
	"strconv"

	"github.com/phtax/tax-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as pesos with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatRate formats a fractional rate as a percentage, e.g. 0.25 -> "25%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
