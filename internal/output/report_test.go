package output_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"

	"github.com/phtax/tax-calculator/internal/calculation"
	"github.com/phtax/tax-calculator/internal/config"
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/phtax/tax-calculator/internal/output"
)

func TestFormatCurrency(t *testing.T) {
	if got := output.FormatCurrency(stddec.NewFromFloat(1234.567)); got != "₱1,234.57" {
		t.Fatalf("FormatCurrency = %q", got)
	}
}

func TestGenerateReport(t *testing.T) {
	engine := calculation.NewCalculationEngine()
	result := engine.Run(config.NewInputParser().CreateExampleConfiguration())

	for _, format := range output.AvailableFormatterNames() {
		var buf bytes.Buffer
		if err := output.GenerateReport(&buf, result, format); err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("GenerateReport %s produced no output", format)
		}
	}
}

func TestGenerateReport_Unsupported(t *testing.T) {
	err := output.GenerateReport(&bytes.Buffer{}, &domain.TaxResult{}, "pdf")
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "breakdown, console, csv, json") {
		t.Fatalf("error should list formatters: %v", err)
	}
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	for _, name := range []string{"run.yaml", "run.toml"} {
		path := filepath.Join(t.TempDir(), name)
		if err := output.SaveConfiguration(cfg, path); err != nil {
			t.Fatalf("SaveConfiguration %s error: %v", name, err)
		}
		loaded, err := parser.LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile %s error: %v", name, err)
		}
		if !loaded.Taxpayer.MonthlySalary.Equal(cfg.Taxpayer.MonthlySalary) {
			t.Fatalf("%s salary = %s", name, loaded.Taxpayer.MonthlySalary)
		}
		if loaded.Taxpayer.CivilStatus != domain.Married || loaded.Contributions.Housing != domain.Voluntary {
			t.Fatalf("%s enums not preserved: %+v", name, loaded)
		}
		if len(loaded.Income.OtherIncome) != 1 {
			t.Fatalf("%s other income not preserved", name)
		}
	}
}
