package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Regime identifies which income tax law a computation follows.
type Regime int

const (
	// LegacyCode is the pre-2018 National Internal Revenue Code (NIRC 1997).
	LegacyCode Regime = iota + 1
	// TrainLaw is the Tax Reform for Acceleration and Inclusion law effective 2018.
	TrainLaw
)

// Regimes lists every supported regime in chronological order.
var Regimes = []Regime{LegacyCode, TrainLaw}

// Year returns the tax year the regime's tables were published for.
func (r Regime) Year() int {
	switch r {
	case LegacyCode:
		return 2017
	case TrainLaw:
		return 2018
	default:
		return 0
	}
}

func (r Regime) String() string {
	switch r {
	case LegacyCode:
		return "legacy"
	case TrainLaw:
		return "train"
	default:
		return fmt.Sprintf("regime(%d)", int(r))
	}
}

// Title is the human readable regime name used in reports.
func (r Regime) Title() string {
	switch r {
	case LegacyCode:
		return "2017 Tax Code"
	case TrainLaw:
		return "TRAIN Law"
	default:
		return r.String()
	}
}

// ParseRegime accepts the text form ("legacy", "train") or the tax year.
func ParseRegime(s string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "old", "nirc", "2017":
		return LegacyCode, nil
	case "train", "new", "2018":
		return TrainLaw, nil
	}
	return 0, fmt.Errorf("unknown regime %q (want legacy or train)", s)
}

func (r Regime) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Regime) UnmarshalText(text []byte) error {
	v, err := ParseRegime(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// CivilStatus of the taxpayer. The numeric values match the interactive menu.
type CivilStatus int

const (
	Single  CivilStatus = 1
	Married CivilStatus = 2
)

func (c CivilStatus) String() string {
	switch c {
	case Single:
		return "single"
	case Married:
		return "married"
	default:
		return fmt.Sprintf("civil_status(%d)", int(c))
	}
}

// Valid reports whether c is one of the declared statuses.
func (c CivilStatus) Valid() bool { return c == Single || c == Married }

func (c CivilStatus) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *CivilStatus) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "single", "1":
		*c = Single
	case "married", "2":
		*c = Married
	default:
		return fmt.Errorf("invalid civil status %q (want single or married)", string(text))
	}
	return nil
}

// Election records whether a fund membership is employer-mandated or voluntary.
// Values follow the menu: 0 involuntary, 1 voluntary.
type Election int

const (
	Involuntary Election = 0
	Voluntary   Election = 1
)

func (e Election) String() string {
	switch e {
	case Involuntary:
		return "involuntary"
	case Voluntary:
		return "voluntary"
	default:
		return fmt.Sprintf("election(%d)", int(e))
	}
}

func (e Election) Valid() bool { return e == Involuntary || e == Voluntary }

func (e Election) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Election) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "involuntary", "0", "":
		*e = Involuntary
	case "voluntary", "1":
		*e = Voluntary
	default:
		return fmt.Errorf("invalid election %q (want involuntary or voluntary)", string(text))
	}
	return nil
}

// MaxDependents is the most qualified dependents a taxpayer may declare.
const MaxDependents = 4

// MinVoluntaryHousing is the smallest monthly amount a voluntary Pag-IBIG member may declare.
var MinVoluntaryHousing = decimal.NewFromInt(200)

// TaxpayerProfile describes the employee being assessed.
type TaxpayerProfile struct {
	MonthlySalary           decimal.Decimal `yaml:"monthly_salary" json:"monthly_salary" toml:"monthly_salary"`
	Dependents              int             `yaml:"dependents" json:"dependents" toml:"dependents"`
	CivilStatus             CivilStatus     `yaml:"civil_status" json:"civil_status" toml:"civil_status"`
	SpouseClaimedDependents bool            `yaml:"spouse_claimed_dependents,omitempty" json:"spouse_claimed_dependents,omitempty" toml:"spouse_claimed_dependents"`
}

// ClaimableDependents is the dependent count used for the personal exemption.
// A married taxpayer whose spouse already declared the dependents claims none.
func (p TaxpayerProfile) ClaimableDependents() int {
	if p.CivilStatus == Married && p.SpouseClaimedDependents {
		return 0
	}
	return p.Dependents
}

// ContributionElection holds the membership election for each mandatory fund.
type ContributionElection struct {
	Retirement Election `yaml:"retirement" json:"retirement" toml:"retirement"`
	Housing    Election `yaml:"housing" json:"housing" toml:"housing"`
	Health     Election `yaml:"health" json:"health" toml:"health"`

	// Monthly Pag-IBIG amount a voluntary member pays (>= 200)
	HousingDeclared decimal.Decimal `yaml:"housing_declared,omitempty" json:"housing_declared,omitempty" toml:"housing_declared"`
}

// MonthlyContributions are the employee shares of the mandatory funds for one month.
type MonthlyContributions struct {
	Retirement decimal.Decimal `json:"retirement"` // SSS
	Housing    decimal.Decimal `json:"housing"`    // Pag-IBIG
	Health     decimal.Decimal `json:"health"`     // PhilHealth
}

// Total returns the monthly sum of all funds.
func (m MonthlyContributions) Total() decimal.Decimal {
	return m.Retirement.Add(m.Housing).Add(m.Health)
}

// Annual returns the yearly sum of all funds.
func (m MonthlyContributions) Annual() decimal.Decimal {
	return m.Total().Mul(decimal.NewFromInt(12))
}

// IncomeFacts are the earnings reported for the year.
type IncomeFacts struct {
	MonthlySalary decimal.Decimal   `yaml:"-" json:"monthly_salary" toml:"-"`
	BonusPay      decimal.Decimal   `yaml:"bonus_pay" json:"bonus_pay" toml:"bonus_pay"`
	OtherIncome   []decimal.Decimal `yaml:"other_income,omitempty" json:"other_income,omitempty" toml:"other_income"`
}

// OtherIncomeTotal sums the additional monthly income entries.
func (f IncomeFacts) OtherIncomeTotal() decimal.Decimal {
	return lo.Reduce(f.OtherIncome, func(acc decimal.Decimal, v decimal.Decimal, _ int) decimal.Decimal {
		return acc.Add(v)
	}, decimal.Zero)
}

// EffectiveMonthlySalary is the salary with other income folded in. Every
// downstream calculator works from this figure.
func (f IncomeFacts) EffectiveMonthlySalary() decimal.Decimal {
	return f.MonthlySalary.Add(f.OtherIncomeTotal())
}
