package calculation

import (
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeTaxDue applies a bracket to taxable income. The result is not clamped:
// income below a TRAIN floor yields a negative figure that callers clamp for display.
func ComputeTaxDue(taxableIncome decimal.Decimal, b domain.TaxBracket) decimal.Decimal {
	return taxableIncome.Sub(b.LowerBound).Mul(b.MarginalRate).Add(b.BaseAmount)
}

// RegimeCalculator runs the full pipeline for a single regime.
type RegimeCalculator struct {
	Regime domain.Regime
	Table  *BracketTable
}

// NewRegimeCalculator creates a calculator using the regime's published schedule.
func NewRegimeCalculator(regime domain.Regime) *RegimeCalculator {
	return &RegimeCalculator{Regime: regime, Table: BracketTableFor(regime)}
}

// Calculate computes contributions, exemption, taxable income, bracket and tax due.
func (rc *RegimeCalculator) Calculate(profile domain.TaxpayerProfile, elections domain.ContributionElection, monthlySalary, bonusPay decimal.Decimal) domain.RegimeResult {
	contributions := ComputeContributions(monthlySalary, elections, rc.Regime)
	exemption := ComputeExemption(profile.ClaimableDependents(), rc.Regime)
	taxable := ComputeTaxableIncome(exemption, contributions.Annual(), monthlySalary, bonusPay, rc.Regime)
	b := rc.Table.Resolve(taxable)

	return domain.RegimeResult{
		Regime:        rc.Regime,
		Computed:      true,
		Contributions: contributions,
		Exemption:     exemption,
		TaxableIncome: taxable,
		Bracket:       b,
		TaxDue:        ComputeTaxDue(taxable, b),
	}
}
