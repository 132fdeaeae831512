package calculation

import (
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/phtax/tax-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	legacyBonusCeiling = decimal.NewFromInt(82000)
	trainBonusCeiling  = decimal.NewFromInt(90000)
)

// NonTaxableBonusCeiling is the 13th-month and other-benefits exclusion for the regime.
func NonTaxableBonusCeiling(regime domain.Regime) decimal.Decimal {
	if regime == domain.TrainLaw {
		return trainBonusCeiling
	}
	return legacyBonusCeiling
}

// ComputeTaxableIncome derives annual taxable net income. Bonus pay up to the
// ceiling is excluded; only the excess is added to taxable income.
func ComputeTaxableIncome(exemption, annualContributions, monthlySalary, bonusPay decimal.Decimal, regime domain.Regime) decimal.Decimal {
	annualSalary := money.Annual(monthlySalary)
	if regime == domain.TrainLaw {
		exemption = decimal.Zero
	}
	ceiling := NonTaxableBonusCeiling(regime)
	if bonusPay.LessThan(ceiling) {
		return annualSalary.Sub(annualContributions).Sub(exemption)
	}
	// salary + ceiling + excess - (contributions + ceiling) - exemption
	return annualSalary.
		Add(ceiling).
		Add(bonusPay.Sub(ceiling)).
		Sub(annualContributions.Add(ceiling)).
		Sub(exemption)
}
