// Package cli implements the phtax command tree.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/phtax/tax-calculator/internal/calculation"
	"github.com/phtax/tax-calculator/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	logLevel string
	engine   *calculation.CalculationEngine
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{engine: calculation.NewCalculationEngine()}

	root := &cobra.Command{
		Use:   "phtax",
		Short: "Compare Philippine income tax under the 2017 code and the TRAIN law",
		Long: `phtax estimates the annual income tax of a private-sector employee under
the pre-2018 National Internal Revenue Code and under the TRAIN law, and how
much of it the employee takes home after the reform.

Inputs come from a YAML or TOML run file (phtax compute) or from an
interactive questionnaire (phtax interactive).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), a.logLevel, "phtax")
			if err != nil {
				return err
			}
			a.engine.SetLogger(logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn",
		"log level ("+strings.Join(logging.LevelNames(), ", ")+")")

	root.AddCommand(a.computeCmd())
	root.AddCommand(a.interactiveCmd())
	root.AddCommand(a.bracketsCmd())
	root.AddCommand(a.exampleCmd())
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
