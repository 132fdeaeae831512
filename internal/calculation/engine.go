package calculation

import (
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/phtax/tax-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// MinimumWageAnnualCeiling is the annual salary at or below which TRAIN treats
// the employee as a minimum wage earner and levies no income tax.
var MinimumWageAnnualCeiling = decimal.NewFromInt(250000)

// CalculationEngine orchestrates the two regime computations and the take-home estimate
type CalculationEngine struct {
	LegacyCalc *RegimeCalculator
	TrainCalc  *RegimeCalculator
	Logger     Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		LegacyCalc: NewRegimeCalculator(domain.LegacyCode),
		TrainCalc:  NewRegimeCalculator(domain.TrainLaw),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// TrainApplies reports whether the annualized salary exceeds the minimum wage ceiling.
func TrainApplies(monthlySalary decimal.Decimal) bool {
	return money.Annual(monthlySalary).GreaterThan(MinimumWageAnnualCeiling)
}

// TakeHome estimates the annual savings under TRAIN. Both taxes are clamped at
// zero first; for minimum wage earners the whole legacy tax is saved.
func TakeHome(legacy, train domain.RegimeResult, trainApplies bool) decimal.Decimal {
	if !trainApplies {
		return legacy.Payable()
	}
	return money.NonNegative(legacy.Payable().Sub(train.Payable()))
}

// Compute runs the pipeline for both regimes.
func (ce *CalculationEngine) Compute(profile domain.TaxpayerProfile, elections domain.ContributionElection, income domain.IncomeFacts) *domain.TaxResult {
	monthly := income.EffectiveMonthlySalary()
	if other := income.OtherIncomeTotal(); !other.IsZero() {
		ce.Logger.Debugf("folded %s other income into monthly salary %s", other.StringFixed(2), monthly.StringFixed(2))
	}

	result := &domain.TaxResult{
		Profile:               profile,
		Elections:             elections,
		EffectiveMonthlyWages: monthly,
		BonusPay:              income.BonusPay,
	}

	result.Legacy = ce.LegacyCalc.Calculate(profile, elections, monthly, income.BonusPay)
	ce.logRegime(result.Legacy)

	result.TrainApplies = TrainApplies(monthly)
	if result.TrainApplies {
		result.Train = ce.TrainCalc.Calculate(profile, elections, monthly, income.BonusPay)
		ce.logRegime(result.Train)
	} else {
		result.Train = domain.RegimeResult{Regime: domain.TrainLaw}
		ce.Logger.Infof("annual salary %s is within the minimum wage ceiling; TRAIN computation skipped", money.Annual(monthly).StringFixed(2))
	}

	result.TakeHome = TakeHome(result.Legacy, result.Train, result.TrainApplies)
	ce.Logger.Infof("take-home estimate %s", result.TakeHome.StringFixed(2))
	return result
}

// Run computes a loaded configuration.
func (ce *CalculationEngine) Run(config *domain.Configuration) *domain.TaxResult {
	return ce.Compute(config.Taxpayer, config.Contributions, config.Facts())
}

func (ce *CalculationEngine) logRegime(r domain.RegimeResult) {
	ce.Logger.Debugf("%s contributions: sss=%s pagibig=%s philhealth=%s",
		r.Regime, r.Contributions.Retirement.StringFixed(2), r.Contributions.Housing.StringFixed(2), r.Contributions.Health.StringFixed(2))
	ce.Logger.Debugf("%s exemption=%s taxable=%s bracket=%s/%s/%s",
		r.Regime, r.Exemption.StringFixed(2), r.TaxableIncome.StringFixed(2),
		r.Bracket.LowerBound.String(), r.Bracket.BaseAmount.String(), r.Bracket.MarginalRate.String())
	if r.Exempt() {
		ce.Logger.Infof("%s: no tax due (raw %s)", r.Regime, r.TaxDue.StringFixed(2))
		return
	}
	ce.Logger.Infof("%s: tax due %s", r.Regime, r.TaxDue.StringFixed(2))
}
