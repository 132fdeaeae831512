package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a run from a YAML (.yaml, .yml) or TOML (.toml) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config *domain.Configuration
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		config, err = ip.ParseTOML(data)
	default:
		config, err = ip.ParseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ParseYAML decodes a configuration without validating it.
func (ip *InputParser) ParseYAML(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &config, nil
}

// ParseTOML decodes a configuration without validating it.
func (ip *InputParser) ParseTOML(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration enforces the rules the interactive collector applies
// before anything reaches the calculators.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("no configuration provided")
	}
	if err := ip.validateTaxpayer(&config.Taxpayer); err != nil {
		return fmt.Errorf("taxpayer validation failed: %w", err)
	}
	if err := ip.validateContributions(&config.Contributions); err != nil {
		return fmt.Errorf("contributions validation failed: %w", err)
	}
	if err := ip.validateIncome(&config.Income); err != nil {
		return fmt.Errorf("income validation failed: %w", err)
	}
	return nil
}

// validateTaxpayer validates the taxpayer profile
func (ip *InputParser) validateTaxpayer(p *domain.TaxpayerProfile) error {
	if p.MonthlySalary.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly salary cannot be negative")
	}
	if !p.CivilStatus.Valid() {
		return fmt.Errorf("civil status must be 'single' or 'married'")
	}
	if p.Dependents < 0 || p.Dependents > domain.MaxDependents {
		return fmt.Errorf("only 0 to %d dependents can be declared", domain.MaxDependents)
	}
	if p.SpouseClaimedDependents && (p.CivilStatus != domain.Married || p.Dependents == 0) {
		return fmt.Errorf("spouse_claimed_dependents only applies to married taxpayers with dependents")
	}
	return nil
}

// validateContributions validates the fund elections
func (ip *InputParser) validateContributions(c *domain.ContributionElection) error {
	funds := []struct {
		name string
		e    domain.Election
	}{{"retirement", c.Retirement}, {"housing", c.Housing}, {"health", c.Health}}
	for _, f := range funds {
		if !f.e.Valid() {
			return fmt.Errorf("%s election must be 'involuntary' or 'voluntary'", f.name)
		}
	}
	if c.Housing == domain.Voluntary && c.HousingDeclared.LessThan(domain.MinVoluntaryHousing) {
		return fmt.Errorf("voluntary housing contribution must be %s and above", domain.MinVoluntaryHousing)
	}
	if c.Housing == domain.Involuntary && !c.HousingDeclared.IsZero() {
		return fmt.Errorf("housing_declared requires a voluntary housing election")
	}
	return nil
}

// validateIncome validates bonus pay and other income entries
func (ip *InputParser) validateIncome(f *domain.IncomeFacts) error {
	if f.BonusPay.LessThan(decimal.Zero) {
		return fmt.Errorf("bonus pay cannot be negative")
	}
	for i, v := range f.OtherIncome {
		if v.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("other income entry %d must be positive", i+1)
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Taxpayer: domain.TaxpayerProfile{
			MonthlySalary: decimal.NewFromInt(50000),
			CivilStatus:   domain.Married,
			Dependents:    2,
		},
		Contributions: domain.ContributionElection{
			Retirement:      domain.Involuntary,
			Housing:         domain.Voluntary,
			HousingDeclared: decimal.NewFromInt(200),
			Health:          domain.Involuntary,
		},
		Income: domain.IncomeFacts{
			BonusPay:    decimal.NewFromInt(50000),
			OtherIncome: []decimal.Decimal{decimal.NewFromInt(5000)},
		},
	}
}
