package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one row of an annual income tax table. Tax within the bracket is
// BaseAmount plus MarginalRate applied to the excess over LowerBound.
type TaxBracket struct {
	LowerBound   decimal.Decimal `json:"lower_bound"`
	BaseAmount   decimal.Decimal `json:"base_amount"`
	MarginalRate decimal.Decimal `json:"marginal_rate"`
}

// RegimeResult captures every intermediate figure of one regime's computation.
type RegimeResult struct {
	Regime        Regime               `json:"regime"`
	Computed      bool                 `json:"computed"`
	Contributions MonthlyContributions `json:"contributions"`
	Exemption     decimal.Decimal      `json:"exemption"`
	TaxableIncome decimal.Decimal      `json:"taxable_income"`
	Bracket       TaxBracket           `json:"bracket"`
	TaxDue        decimal.Decimal      `json:"tax_due"` // raw, may be negative
}

// Payable is the tax due as displayed: never below zero.
func (r RegimeResult) Payable() decimal.Decimal {
	if r.TaxDue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return r.TaxDue
}

// Exempt reports whether no tax is owed under this regime.
func (r RegimeResult) Exempt() bool {
	return r.TaxDue.LessThanOrEqual(decimal.Zero)
}

// TaxResult is the outcome of a full run across both regimes.
type TaxResult struct {
	Profile               TaxpayerProfile      `json:"profile"`
	Elections             ContributionElection `json:"elections"`
	EffectiveMonthlyWages decimal.Decimal      `json:"effective_monthly_salary"`
	BonusPay              decimal.Decimal      `json:"bonus_pay"`

	Legacy RegimeResult `json:"legacy"`
	Train  RegimeResult `json:"train"`

	// TrainApplies is false for minimum wage earners (annual salary <= 250,000),
	// in which case Train is left zero-valued.
	TrainApplies bool            `json:"train_applies"`
	TakeHome     decimal.Decimal `json:"take_home"`
}

// Results returns the regime results that were actually computed, in regime order.
func (t *TaxResult) Results() []RegimeResult {
	out := []RegimeResult{t.Legacy}
	if t.TrainApplies {
		out = append(out, t.Train)
	}
	return out
}
