package calculation

import (
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/phtax/tax-calculator/pkg/money"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// BRACKET TABLE NOTES:
//
// 1. Lower bounds are inclusive: income exactly on a boundary is taxed in the
//    higher bracket. Every table is continuous, so the tax due is the same either way.
//
// 2. Income below the first bracket falls to the table's floor row:
//    - 2017: 5% of the whole amount
//    - TRAIN: the 0% band up to 250,000 is expressed as the 20% row anchored at
//      250,000, which yields a negative raw tax that reports clamp to zero
//
// 3. The TRAIN 800,000 to 2,000,000 band (30%) is part of the published 2018 schedule.

// BracketTable is one regime's annual income tax schedule.
type BracketTable struct {
	Regime   domain.Regime
	Floor    domain.TaxBracket   // applies below the first bracket
	Brackets []domain.TaxBracket // ascending by LowerBound
}

func bracket(lower, base int64, rate string) domain.TaxBracket {
	return domain.TaxBracket{
		LowerBound:   decimal.NewFromInt(lower),
		BaseAmount:   decimal.NewFromInt(base),
		MarginalRate: money.Must(rate),
	}
}

// NewLegacyBracketTable returns the NIRC 1997 schedule in force through 2017.
func NewLegacyBracketTable() *BracketTable {
	return &BracketTable{
		Regime: domain.LegacyCode,
		Floor:  bracket(0, 0, "0.05"),
		Brackets: []domain.TaxBracket{
			bracket(10000, 500, "0.10"),
			bracket(30000, 2500, "0.15"),
			bracket(70000, 8500, "0.20"),
			bracket(140000, 22500, "0.25"),
			bracket(250000, 50000, "0.30"),
			bracket(500000, 125000, "0.32"),
		},
	}
}

// NewTrainBracketTable returns the TRAIN schedule effective 2018.
func NewTrainBracketTable() *BracketTable {
	return &BracketTable{
		Regime: domain.TrainLaw,
		Floor:  bracket(250000, 0, "0.20"),
		Brackets: []domain.TaxBracket{
			bracket(400000, 30000, "0.25"),
			bracket(800000, 130000, "0.30"),
			bracket(2000000, 490000, "0.32"),
			bracket(8000000, 2410000, "0.35"),
		},
	}
}

var (
	legacyTable = NewLegacyBracketTable()
	trainTable  = NewTrainBracketTable()
)

// BracketTableFor returns the schedule for regime.
func BracketTableFor(regime domain.Regime) *BracketTable {
	if regime == domain.TrainLaw {
		return trainTable
	}
	return legacyTable
}

// Rows returns the floor followed by every bracket, in ascending order.
func (bt *BracketTable) Rows() []domain.TaxBracket {
	return append([]domain.TaxBracket{bt.Floor}, bt.Brackets...)
}

// Resolve picks the bracket containing taxableIncome: the highest bracket whose
// lower bound does not exceed it, or the floor when none does.
func (bt *BracketTable) Resolve(taxableIncome decimal.Decimal) domain.TaxBracket {
	b, _, ok := lo.FindLastIndexOf(bt.Brackets, func(b domain.TaxBracket) bool {
		return taxableIncome.GreaterThanOrEqual(b.LowerBound)
	})
	if !ok {
		return bt.Floor
	}
	return b
}

// ResolveBracket maps taxable income to its bracket under regime.
func ResolveBracket(taxableIncome decimal.Decimal, regime domain.Regime) domain.TaxBracket {
	return BracketTableFor(regime).Resolve(taxableIncome)
}
