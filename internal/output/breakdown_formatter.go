package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phtax/tax-calculator/internal/calculation"
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/phtax/tax-calculator/pkg/money"
)

// BreakdownFormatter shows every intermediate figure for each computed regime.
type BreakdownFormatter struct{}

func (b BreakdownFormatter) Name() string { return "breakdown" }

func (b BreakdownFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "INCOME TAX BREAKDOWN")
	fmt.Fprintln(&buf, strings.Repeat("=", reportWidth))
	p := result.Profile
	fmt.Fprintf(&buf, "Civil status:            %s\n", p.CivilStatus)
	fmt.Fprintf(&buf, "Dependents claimed:      %d of %d\n", p.ClaimableDependents(), p.Dependents)
	fmt.Fprintf(&buf, "Monthly salary:          %s\n", FormatCurrency(result.EffectiveMonthlyWages))
	fmt.Fprintf(&buf, "Annual salary:           %s\n", FormatCurrency(money.Annual(result.EffectiveMonthlyWages)))
	fmt.Fprintf(&buf, "13th month & bonuses:    %s\n", FormatCurrency(result.BonusPay))
	e := result.Elections
	fmt.Fprintf(&buf, "SSS / Pag-IBIG / PhilHealth: %s / %s / %s\n", e.Retirement, e.Housing, e.Health)
	fmt.Fprintln(&buf)

	for _, r := range result.Results() {
		fmt.Fprintf(&buf, "%s (%d)\n", strings.ToUpper(r.Regime.Title()), r.Regime.Year())
		fmt.Fprintln(&buf, strings.Repeat("-", reportWidth))
		c := r.Contributions
		fmt.Fprintf(&buf, "  SSS (monthly):           %s\n", FormatCurrency(c.Retirement))
		fmt.Fprintf(&buf, "  Pag-IBIG (monthly):      %s\n", FormatCurrency(c.Housing))
		fmt.Fprintf(&buf, "  PhilHealth (monthly):    %s\n", FormatCurrency(c.Health))
		fmt.Fprintf(&buf, "  Contributions (annual):  %s\n", FormatCurrency(c.Annual()))
		fmt.Fprintf(&buf, "  Personal exemption:      %s\n", FormatCurrency(r.Exemption))
		fmt.Fprintf(&buf, "  Taxable net income:      %s\n", FormatCurrency(r.TaxableIncome))
		fmt.Fprintf(&buf, "  Bracket:                 over %s, %s + %s of excess\n",
			FormatCurrency(r.Bracket.LowerBound), FormatCurrency(r.Bracket.BaseAmount), FormatRate(r.Bracket.MarginalRate))
		fmt.Fprintf(&buf, "  Annual tax due:          %s\n", FormatCurrency(r.Payable()))
		fmt.Fprintln(&buf)
	}
	if !result.TrainApplies {
		fmt.Fprintf(&buf, "TRAIN LAW: annual salary of %s or less is exempt (minimum wage earner)\n\n",
			FormatCurrency(calculation.MinimumWageAnnualCeiling))
	}
	fmt.Fprintf(&buf, "Estimated take-home: %s annually\n", FormatCurrency(result.TakeHome))
	return buf.Bytes(), nil
}
