// Package collector gathers a tax run interactively, re-prompting until each
// answer is valid.
package collector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInputClosed is returned when the input ends before every question is answered.
var ErrInputClosed = errors.New("input closed before all answers were collected")

// MaxOtherIncomeEntries bounds the other-income loop when no sentinel is entered.
const MaxOtherIncomeEntries = 50

// Collector asks the questions of a run on out and reads answers from in, one per line.
type Collector struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a collector.
func New(in io.Reader, out io.Writer) *Collector {
	return &Collector{in: bufio.NewScanner(in), out: out}
}

// Collect runs the full questionnaire and returns a configuration that passes
// config validation.
func (c *Collector) Collect() (*domain.Configuration, error) {
	var cfg domain.Configuration
	var err error

	c.banner('#', "TAX CALCULATOR")
	fmt.Fprintln(c.out, "Please enter numbers only.")
	fmt.Fprintln(c.out)

	cfg.Taxpayer.MonthlySalary, err = c.askDecimal("Enter monthly salary: ", "", func(v decimal.Decimal) bool { return !v.IsNegative() })
	if err != nil {
		return nil, err
	}

	if cfg.Taxpayer, err = c.askProfile(cfg.Taxpayer); err != nil {
		return nil, err
	}
	if cfg.Contributions, err = c.askContributions(); err != nil {
		return nil, err
	}

	c.banner('~', "ADDITIONAL EXEMPTION")
	fmt.Fprintln(c.out, "Type [0] if not applicable")
	cfg.Income.BonusPay, err = c.askDecimal("13 Month Pay: ", "", func(v decimal.Decimal) bool { return !v.IsNegative() })
	if err != nil {
		return nil, err
	}

	if cfg.Income.OtherIncome, err = c.askOtherIncome(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Collector) askProfile(p domain.TaxpayerProfile) (domain.TaxpayerProfile, error) {
	c.banner('~', "[1] Single         [2] Married")
	status, err := c.askInt("Civil Status: ", "", int(domain.Single), int(domain.Married))
	if err != nil {
		return p, err
	}
	p.CivilStatus = domain.CivilStatus(status)

	p.Dependents, err = c.askInt("No. of Dependents: ",
		fmt.Sprintf("Only 0 to %d dependents can be declared.", domain.MaxDependents), 0, domain.MaxDependents)
	if err != nil {
		return p, err
	}

	if p.CivilStatus == domain.Married && p.Dependents > 0 {
		c.banner('~', "[1] Yes         [2] No")
		answer, err := c.askInt("Did your spouse declare the dependents?: ", "", 1, 2)
		if err != nil {
			return p, err
		}
		p.SpouseClaimedDependents = answer == 1
	}
	return p, nil
}

func (c *Collector) askContributions() (domain.ContributionElection, error) {
	var e domain.ContributionElection

	c.banner('~', "CONTRIBUTIONS")
	fmt.Fprintln(c.out, "[0] if not voluntary and [1] if voluntary")

	retirement, err := c.askInt("SSS: ", "", 0, 1)
	if err != nil {
		return e, err
	}
	e.Retirement = domain.Election(retirement)

	housing, err := c.askInt("Pag-Ibig: ", "", 0, 1)
	if err != nil {
		return e, err
	}
	e.Housing = domain.Election(housing)
	if e.Housing == domain.Voluntary {
		hint := fmt.Sprintf("Please enter a value that is %s and above", domain.MinVoluntaryHousing)
		fmt.Fprintln(c.out, hint)
		e.HousingDeclared, err = c.askDecimal("Pag-Ibig: ", hint, func(v decimal.Decimal) bool {
			return v.GreaterThanOrEqual(domain.MinVoluntaryHousing)
		})
		if err != nil {
			return e, err
		}
	}

	health, err := c.askInt("PhilHealth: ", "", 0, 1)
	if err != nil {
		return e, err
	}
	e.Health = domain.Election(health)
	return e, nil
}

// askOtherIncome returns the entries typed before the sentinel (any value <= 0).
// The engine folds them into the monthly salary.
func (c *Collector) askOtherIncome() ([]decimal.Decimal, error) {
	c.banner('~', "[1] Yes [2] No")
	answer, err := c.askInt("Do you have other sources of income? ", "", 1, 2)
	if err != nil || answer == 2 {
		return nil, err
	}

	fmt.Fprintln(c.out, "If you've encoded all incomes, type [0] to end loop.")
	var entries []decimal.Decimal
	for i := 1; i <= MaxOtherIncomeEntries; i++ {
		v, err := c.askDecimal(fmt.Sprintf("Income %d: ", i), "", func(decimal.Decimal) bool { return true })
		if err != nil {
			return nil, err
		}
		if !v.IsPositive() {
			break
		}
		entries = append(entries, v)
	}
	return entries, nil
}

func (c *Collector) askInt(prompt, hint string, min, max int) (int, error) {
	for {
		line, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= min && n <= max {
			return n, nil
		}
		if hint != "" {
			fmt.Fprintln(c.out, hint)
		}
	}
}

func (c *Collector) askDecimal(prompt, hint string, valid func(decimal.Decimal) bool) (decimal.Decimal, error) {
	for {
		line, err := c.ask(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		v, err := decimal.NewFromString(line)
		if err == nil && valid(v) {
			return v, nil
		}
		if hint != "" {
			fmt.Fprintln(c.out, hint)
		}
	}
}

func (c *Collector) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Collector) banner(ch rune, title string) {
	fmt.Fprintln(c.out, strings.Repeat(string(ch), 52))
	fmt.Fprintf(c.out, "%s\n\n", title)
}
