package calculation

import (
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	basicPersonalExemption = decimal.NewFromInt(50000)
	perDependentExemption  = decimal.NewFromInt(25000)
)

// ComputeExemption returns the annual personal exemption. The basic exemption is
// the same for single and married filers. TRAIN removed personal exemptions.
func ComputeExemption(dependents int, regime domain.Regime) decimal.Decimal {
	if regime == domain.TrainLaw {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(dependents)).Mul(perDependentExemption).Add(basicPersonalExemption)
}
