package cli

import (
	"fmt"

	"github.com/phtax/tax-calculator/internal/config"
	"github.com/phtax/tax-calculator/internal/domain"
	"github.com/phtax/tax-calculator/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) computeCmd() *cobra.Command {
	var format, outFile string

	cmd := &cobra.Command{
		Use:   "compute RUN_FILE",
		Short: "Compute tax due from a YAML or TOML run file",
		Long: `Compute the annual tax due under both regimes for the taxpayer described in
RUN_FILE. Use 'phtax example' to write a starter file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			return a.report(cmd, a.engine.Run(cfg), format, outFile)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, breakdown, csv, json)")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

// report writes result to stdout, or to outFile when set.
func (a *app) report(cmd *cobra.Command, result *domain.TaxResult, format, outFile string) error {
	if outFile == "" {
		return output.GenerateReport(cmd.OutOrStdout(), result, format)
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
	}
	name, err := output.WriteFormatted(f, result, outFile, output.Extension(f))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
	return nil
}
