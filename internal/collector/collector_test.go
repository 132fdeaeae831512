package collector

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/phtax/tax-calculator/internal/config"
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answers(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestCollect_SingleNoExtras(t *testing.T) {
	var out bytes.Buffer
	cfg, err := New(answers(
		// salary, single, no dependents
		"20000", "1", "0",
		// SSS, Pag-Ibig, PhilHealth
		"0", "0", "0",
		// 13th month, no other income
		"0", "2",
	), &out).Collect()
	require.NoError(t, err)

	assert.True(t, cfg.Taxpayer.MonthlySalary.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, domain.Single, cfg.Taxpayer.CivilStatus)
	assert.Equal(t, 0, cfg.Taxpayer.Dependents)
	assert.Equal(t, domain.ContributionElection{}, cfg.Contributions)
	assert.Empty(t, cfg.Income.OtherIncome)
	assert.NoError(t, config.NewInputParser().ValidateConfiguration(cfg))
	assert.Contains(t, out.String(), "Enter monthly salary: ")
}

func TestCollect_RetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	cfg, err := New(answers(
		// salary retried twice
		"-5", "abc", "35000",
		// civil status, dependents and spouse question each retried once
		"3", "2",
		"7", "2",
		"0", "1",
		// SSS voluntary, Pag-Ibig voluntary with the declared amount retried
		"1",
		"1", "150", "250",
		// PhilHealth and 13th month retried
		"2", "1",
		"-1", "100000",
		// other income entries until the sentinel
		"1", "1500", "500", "0",
	), &out).Collect()
	require.NoError(t, err)

	assert.True(t, cfg.Taxpayer.MonthlySalary.Equal(decimal.NewFromInt(35000)))
	assert.Equal(t, domain.Married, cfg.Taxpayer.CivilStatus)
	assert.Equal(t, 2, cfg.Taxpayer.Dependents)
	assert.True(t, cfg.Taxpayer.SpouseClaimedDependents)
	assert.Equal(t, 0, cfg.Taxpayer.ClaimableDependents())

	assert.Equal(t, domain.Voluntary, cfg.Contributions.Retirement)
	assert.Equal(t, domain.Voluntary, cfg.Contributions.Housing)
	assert.True(t, cfg.Contributions.HousingDeclared.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, domain.Voluntary, cfg.Contributions.Health)

	assert.True(t, cfg.Income.BonusPay.Equal(decimal.NewFromInt(100000)))
	require.Len(t, cfg.Income.OtherIncome, 2)
	assert.True(t, cfg.Facts().EffectiveMonthlySalary().Equal(decimal.NewFromInt(37000)))
	assert.NoError(t, config.NewInputParser().ValidateConfiguration(cfg))

	transcript := out.String()
	assert.Contains(t, transcript, "Only 0 to 4 dependents can be declared.")
	assert.Contains(t, transcript, "Please enter a value that is 200 and above")
	assert.Contains(t, transcript, "Income 3: ")
}

func TestCollect_SpouseQuestionOnlyForMarriedWithDependents(t *testing.T) {
	var out bytes.Buffer
	cfg, err := New(answers("30000", "2", "0", "0", "0", "0", "0", "2"), &out).Collect()
	require.NoError(t, err)
	assert.False(t, cfg.Taxpayer.SpouseClaimedDependents)
	assert.NotContains(t, out.String(), "Did your spouse declare the dependents?")
}

func TestCollect_NegativeOtherIncomeEndsLoop(t *testing.T) {
	cfg, err := New(answers("30000", "1", "0", "0", "0", "0", "0", "1", "1000", "-3"), &bytes.Buffer{}).Collect()
	require.NoError(t, err)
	require.Len(t, cfg.Income.OtherIncome, 1)
	assert.True(t, cfg.Income.OtherIncomeTotal().Equal(decimal.NewFromInt(1000)))
}

func TestCollect_OtherIncomeIsBounded(t *testing.T) {
	lines := []string{"30000", "1", "0", "0", "0", "0", "0", "1"}
	for i := 0; i < MaxOtherIncomeEntries+5; i++ {
		lines = append(lines, "10")
	}
	cfg, err := New(answers(lines...), &bytes.Buffer{}).Collect()
	require.NoError(t, err)
	assert.Len(t, cfg.Income.OtherIncome, MaxOtherIncomeEntries)
}

func TestCollect_InputClosed(t *testing.T) {
	_, err := New(answers("20000", "1"), &bytes.Buffer{}).Collect()
	assert.True(t, errors.Is(err, ErrInputClosed))
}
