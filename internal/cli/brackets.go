package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/phtax/tax-calculator/internal/calculation"
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/phtax/tax-calculator/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) bracketsCmd() *cobra.Command {
	var regimeName string

	cmd := &cobra.Command{
		Use:   "brackets",
		Short: "Print a regime's annual income tax table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			regimes := domain.Regimes
			if regimeName != "" {
				r, err := domain.ParseRegime(regimeName)
				if err != nil {
					return err
				}
				regimes = []domain.Regime{r}
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, r := range regimes {
				fmt.Fprintf(w, "%s (%d)\n", r.Title(), r.Year())
				fmt.Fprintln(w, "OVER\tBASE TAX\tRATE ON EXCESS")
				for _, b := range calculation.BracketTableFor(r).Rows() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", output.FormatCurrency(b.LowerBound), output.FormatCurrency(b.BaseAmount), output.FormatRate(b.MarginalRate))
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&regimeName, "regime", "r", "", "legacy or train (default both)")
	return cmd
}
