package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	testConfig := "taxpayer:\n" +
		"  monthly_salary: 50000\n" +
		"  civil_status: married\n" +
		"  dependents: 2\n" +
		"  spouse_claimed_dependents: true\n" +
		"contributions:\n" +
		"  retirement: involuntary\n" +
		"  housing: voluntary\n" +
		"  housing_declared: 250\n" +
		"  health: voluntary\n" +
		"income:\n" +
		"  bonus_pay: 95000.50\n" +
		"  other_income: [1500, 500]\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, "run.yaml", testConfig))
	require.NoError(t, err)

	assert.True(t, config.Taxpayer.MonthlySalary.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, domain.Married, config.Taxpayer.CivilStatus)
	assert.Equal(t, 2, config.Taxpayer.Dependents)
	assert.True(t, config.Taxpayer.SpouseClaimedDependents)
	assert.Equal(t, domain.Voluntary, config.Contributions.Housing)
	assert.True(t, config.Contributions.HousingDeclared.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, domain.Voluntary, config.Contributions.Health)
	assert.Equal(t, domain.Involuntary, config.Contributions.Retirement)
	assert.True(t, config.Income.BonusPay.Equal(decimal.RequireFromString("95000.5")))
	require.Len(t, config.Income.OtherIncome, 2)

	facts := config.Facts()
	assert.True(t, facts.EffectiveMonthlySalary().Equal(decimal.NewFromInt(52000)))
}

func TestLoadFromFile_NumericEnums(t *testing.T) {
	testConfig := "taxpayer:\n" +
		"  monthly_salary: 20000\n" +
		"  civil_status: 1\n" +
		"contributions:\n" +
		"  retirement: 1\n" +
		"  housing: 0\n" +
		"  health: 0\n"

	config, err := NewInputParser().LoadFromFile(writeTemp(t, "run.yml", testConfig))
	require.NoError(t, err)
	assert.Equal(t, domain.Single, config.Taxpayer.CivilStatus)
	assert.Equal(t, domain.Voluntary, config.Contributions.Retirement)
}

func TestLoadFromFile_TOML(t *testing.T) {
	testConfig := `
[taxpayer]
monthly_salary = 30000
civil_status = "single"
dependents = 1

[contributions]
retirement = "voluntary"
housing = "involuntary"
health = "involuntary"

[income]
bonus_pay = 100000
other_income = [2500]
`
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "run.toml", testConfig))
	require.NoError(t, err)
	assert.True(t, config.Taxpayer.MonthlySalary.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, domain.Single, config.Taxpayer.CivilStatus)
	assert.Equal(t, 1, config.Taxpayer.Dependents)
	assert.Equal(t, domain.Voluntary, config.Contributions.Retirement)
	assert.True(t, config.Income.BonusPay.Equal(decimal.NewFromInt(100000)))
	require.Len(t, config.Income.OtherIncome, 1)
	assert.True(t, config.Income.OtherIncome[0].Equal(decimal.NewFromInt(2500)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
taxpayer:
	monthly_salary: "not-a-number"
`
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.yaml", testConfig))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.toml", "[taxpayer\nmonthly_salary = "))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	testConfig := "taxpayer:\n  monthly_salary: 20000\n  civil_status: single\n  dependents: 5\n"
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "run.yaml", testConfig))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "only 0 to 4 dependents can be declared")
}

func validConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Taxpayer: domain.TaxpayerProfile{MonthlySalary: decimal.NewFromInt(20000), CivilStatus: domain.Single},
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.Configuration)
		errMsg string
	}{
		{"valid", func(c *domain.Configuration) {}, ""},
		{"zero salary allowed", func(c *domain.Configuration) { c.Taxpayer.MonthlySalary = decimal.Zero }, ""},
		{"negative salary", func(c *domain.Configuration) { c.Taxpayer.MonthlySalary = decimal.NewFromInt(-1) }, "monthly salary cannot be negative"},
		{"missing civil status", func(c *domain.Configuration) { c.Taxpayer.CivilStatus = 0 }, "civil status must be"},
		{"negative dependents", func(c *domain.Configuration) { c.Taxpayer.Dependents = -1 }, "only 0 to 4 dependents"},
		{"too many dependents", func(c *domain.Configuration) { c.Taxpayer.Dependents = 5 }, "only 0 to 4 dependents"},
		{"spouse flag when single", func(c *domain.Configuration) {
			c.Taxpayer.Dependents = 1
			c.Taxpayer.SpouseClaimedDependents = true
		}, "spouse_claimed_dependents only applies"},
		{"spouse flag without dependents", func(c *domain.Configuration) {
			c.Taxpayer.CivilStatus = domain.Married
			c.Taxpayer.SpouseClaimedDependents = true
		}, "spouse_claimed_dependents only applies"},
		{"spouse flag married with dependents", func(c *domain.Configuration) {
			c.Taxpayer.CivilStatus = domain.Married
			c.Taxpayer.Dependents = 3
			c.Taxpayer.SpouseClaimedDependents = true
		}, ""},
		{"invalid election", func(c *domain.Configuration) { c.Contributions.Health = 3 }, "health election must be"},
		{"voluntary housing below minimum", func(c *domain.Configuration) {
			c.Contributions.Housing = domain.Voluntary
			c.Contributions.HousingDeclared = decimal.NewFromInt(199)
		}, "voluntary housing contribution must be 200 and above"},
		{"declared housing while involuntary", func(c *domain.Configuration) {
			c.Contributions.HousingDeclared = decimal.NewFromInt(300)
		}, "housing_declared requires a voluntary housing election"},
		{"negative bonus", func(c *domain.Configuration) { c.Income.BonusPay = decimal.NewFromInt(-5) }, "bonus pay cannot be negative"},
		{"zero other income entry", func(c *domain.Configuration) {
			c.Income.OtherIncome = []decimal.Decimal{decimal.NewFromInt(100), decimal.Zero}
		}, "other income entry 2 must be positive"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfiguration()
			tt.mutate(c)
			err := parser.ValidateConfiguration(c)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateConfiguration_Nil(t *testing.T) {
	err := NewInputParser().ValidateConfiguration(nil)
	assert.Error(t, err)
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	require.NotNil(t, config)
	assert.NoError(t, parser.ValidateConfiguration(config))
}
