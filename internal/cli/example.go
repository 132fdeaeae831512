package cli

import (
	"fmt"

	"github.com/phtax/tax-calculator/internal/config"
	"github.com/phtax/tax-calculator/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example RUN_FILE",
		Short: "Write an example run file (.yaml or .toml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}
