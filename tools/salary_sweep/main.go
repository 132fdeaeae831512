package main

import (
	"fmt"
	"os"

	calc "github.com/phtax/tax-calculator/internal/calculation"
	"github.com/phtax/tax-calculator/internal/config"
	"github.com/shopspring/decimal"
)

// Prints legacy tax, TRAIN tax and take-home for a range of monthly salaries,
// holding the rest of the run file fixed.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: salary_sweep <config-file> [from to step]")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	from, to, step := decimal.NewFromInt(10000), decimal.NewFromInt(200000), decimal.NewFromInt(5000)
	if len(os.Args) == 5 {
		from = decimal.RequireFromString(os.Args[2])
		to = decimal.RequireFromString(os.Args[3])
		step = decimal.RequireFromString(os.Args[4])
	}
	if !step.IsPositive() {
		fmt.Println("step must be positive")
		return
	}

	engine := calc.NewCalculationEngine()
	fmt.Println("MonthlySalary,LegacyTax,TrainTax,TrainApplies,TakeHome")

	best, bestAt := decimal.Zero, decimal.Zero
	for s := from; s.LessThanOrEqual(to); s = s.Add(step) {
		cfg.Taxpayer.MonthlySalary = s
		res := engine.Run(cfg)
		fmt.Printf("%s,%s,%s,%t,%s\n", s.StringFixed(2), res.Legacy.Payable().StringFixed(2), res.Train.Payable().StringFixed(2), res.TrainApplies, res.TakeHome.StringFixed(2))
		if res.TakeHome.GreaterThan(best) {
			best, bestAt = res.TakeHome, s
		}
	}
	fmt.Printf("\nLargest take-home in range: %s at %s a month\n", best.StringFixed(2), bestAt.StringFixed(2))
}
