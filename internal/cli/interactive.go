package cli

import (
	"github.com/phtax/tax-calculator/internal/collector"
	"github.com/phtax/tax-calculator/internal/config"
	"github.com/phtax/tax-calculator/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) interactiveCmd() *cobra.Command {
	var format, saveFile string

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"ask"},
		Short:   "Answer questions on the terminal and compute tax due",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := collector.New(cmd.InOrStdin(), cmd.OutOrStdout()).Collect()
			if err != nil {
				return err
			}
			if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
				return err
			}
			if saveFile != "" {
				if err := output.SaveConfiguration(cfg, saveFile); err != nil {
					return err
				}
			}
			return a.report(cmd, a.engine.Run(cfg), format, "")
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, breakdown, csv, json)")
	cmd.Flags().StringVar(&saveFile, "save", "", "also save the answers as a run file (.yaml or .toml)")
	return cmd
}
