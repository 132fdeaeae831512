package output

import (
	"bytes"
	"encoding/csv"

	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/phtax/tax-calculator/pkg/money"
)

// CSVSummarizer implements the summary CSV output (one row per computed regime).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.TaxResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Regime", "Year", "SSS", "PagIBIG", "PhilHealth", "AnnualContributions", "Exemption", "TaxableIncome", "BracketLowerBound", "BracketBase", "BracketRate", "TaxDue", "Exempt"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range result.Results() {
		row := []string{
			r.Regime.String(),
			intToString(r.Regime.Year()),
			money.Plain(r.Contributions.Retirement),
			money.Plain(r.Contributions.Housing),
			money.Plain(r.Contributions.Health),
			money.Plain(r.Contributions.Annual()),
			money.Plain(r.Exemption),
			money.Plain(r.TaxableIncome),
			money.Plain(r.Bracket.LowerBound),
			money.Plain(r.Bracket.BaseAmount),
			r.Bracket.MarginalRate.String(),
			money.Plain(r.Payable()),
			boolToString(r.Exempt()),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
