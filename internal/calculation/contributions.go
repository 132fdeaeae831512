package calculation

import (
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/phtax/tax-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// CONTRIBUTION ASSUMPTIONS:
//
// 1. SSS: monthly salary credit in 500-peso steps, ceiling 16,000 (credit 32).
//    Employee share 3.63% of the credit; a voluntary member pays the full 11%.
//
// 2. PhilHealth: employee pays half the premium.
//    - 2017: 2.5% of the monthly base, base 8,000 to 35,000
//    - 2018: 2.75% of the monthly base, base 10,000 to 40,000
//    - voluntary members pay a flat 200 (salary < 25,000) or 300
//
// 3. Pag-IBIG: 1% below 1,500, 2% below 5,000, otherwise capped at 100.
//    A voluntary member pays the declared amount (minimum 200).

var (
	sssCreditStep     = decimal.NewFromInt(500)
	sssRoundingOffset = decimal.NewFromInt(250)
	sssMinSalary      = decimal.NewFromInt(1000)
	sssCeilingSalary  = decimal.NewFromInt(15750)
	sssMaxCredit      = decimal.NewFromInt(32)
	sssEmployeeRate   = money.Must("0.0363")
	sssVoluntaryRate  = money.Must("0.11")

	philHealthVoluntaryThreshold = decimal.NewFromInt(25000)
	philHealthVoluntaryLow       = decimal.NewFromInt(200)
	philHealthVoluntaryHigh      = decimal.NewFromInt(300)
	philHealthEmployeeShare      = decimal.NewFromInt(2)

	philHealth2017Floor    = money.Must("8999.99")
	philHealth2017Ceiling  = decimal.NewFromInt(35000)
	philHealth2017MinBase  = decimal.NewFromInt(8)
	philHealth2017MaxBase  = decimal.NewFromInt(35)
	philHealth2017Thousand = decimal.NewFromInt(1000)
	philHealth2017Rate     = money.Must("0.025")

	philHealth2018MinBase = decimal.NewFromInt(10000)
	philHealth2018MaxBase = decimal.NewFromInt(40000)
	philHealth2018Rate    = money.Must("0.0275")

	pagIbigLowThreshold = decimal.NewFromInt(1500)
	pagIbigCapThreshold = decimal.NewFromInt(5000)
	pagIbigLowRate      = money.Must("0.01")
	pagIbigRate         = money.Must("0.02")
	pagIbigMax          = decimal.NewFromInt(100)
)

// ComputeContributions derives the monthly employee share of each mandatory fund.
// Only the PhilHealth schedule differs between regimes.
func ComputeContributions(monthlySalary decimal.Decimal, elections domain.ContributionElection, regime domain.Regime) domain.MonthlyContributions {
	return domain.MonthlyContributions{
		Retirement: RetirementContribution(monthlySalary, elections.Retirement),
		Housing:    HousingContribution(monthlySalary, elections.Housing, elections.HousingDeclared),
		Health:     HealthContribution(monthlySalary, elections.Health, regime),
	}
}

// SSSMonthlyCredit returns the salary credit bracket (in 500-peso units).
// Salaries round to the nearest bracket, ties rounding up.
func SSSMonthlyCredit(monthlySalary decimal.Decimal) decimal.Decimal {
	if monthlySalary.LessThan(sssMinSalary) {
		return decimal.Zero
	}
	if monthlySalary.GreaterThan(sssCeilingSalary) {
		return sssMaxCredit
	}
	return monthlySalary.Add(sssRoundingOffset).Div(sssCreditStep).Floor()
}

// RetirementContribution computes the monthly SSS contribution.
func RetirementContribution(monthlySalary decimal.Decimal, election domain.Election) decimal.Decimal {
	rate := sssEmployeeRate
	if election == domain.Voluntary {
		rate = sssVoluntaryRate
	}
	return SSSMonthlyCredit(monthlySalary).Mul(sssCreditStep).Mul(rate)
}

// PhilHealthBase returns the regime's monthly premium base. The 2017 base is
// expressed in thousands of pesos and is not rounded; the 2018 base is in pesos.
func PhilHealthBase(monthlySalary decimal.Decimal, regime domain.Regime) decimal.Decimal {
	if regime == domain.TrainLaw {
		switch {
		case monthlySalary.LessThanOrEqual(philHealth2018MinBase):
			return philHealth2018MinBase
		case monthlySalary.GreaterThanOrEqual(philHealth2018MaxBase):
			return philHealth2018MaxBase
		default:
			return monthlySalary
		}
	}
	switch {
	case monthlySalary.LessThanOrEqual(philHealth2017Floor):
		return philHealth2017MinBase
	case monthlySalary.GreaterThanOrEqual(philHealth2017Ceiling):
		return philHealth2017MaxBase
	default:
		return monthlySalary.Div(philHealth2017Thousand)
	}
}

// HealthContribution computes the monthly PhilHealth contribution.
func HealthContribution(monthlySalary decimal.Decimal, election domain.Election, regime domain.Regime) decimal.Decimal {
	if election == domain.Voluntary {
		if monthlySalary.LessThan(philHealthVoluntaryThreshold) {
			return philHealthVoluntaryLow
		}
		return philHealthVoluntaryHigh
	}
	base := PhilHealthBase(monthlySalary, regime)
	if regime == domain.TrainLaw {
		return base.Mul(philHealth2018Rate).Div(philHealthEmployeeShare)
	}
	return base.Mul(philHealth2017Thousand).Mul(philHealth2017Rate).Div(philHealthEmployeeShare)
}

// HousingContribution computes the monthly Pag-IBIG contribution. A voluntary
// declaration below the minimum is ignored and the mandated amount applies.
func HousingContribution(monthlySalary decimal.Decimal, election domain.Election, declared decimal.Decimal) decimal.Decimal {
	if election == domain.Voluntary && declared.GreaterThanOrEqual(domain.MinVoluntaryHousing) {
		return declared
	}
	if monthlySalary.GreaterThanOrEqual(pagIbigCapThreshold) {
		return pagIbigMax
	}
	if monthlySalary.LessThan(pagIbigLowThreshold) {
		return monthlySalary.Mul(pagIbigLowRate)
	}
	return monthlySalary.Mul(pagIbigRate)
}
