package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/raygun/internal/domain"
)

func newBaselineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "baseline [paths...] [-- test command...]",
		Short: "Check that the test command passes on unmutated code",
		Long: `Run the test command once against the unmutated sources and report
whether it passes. A run whose baseline fails cannot judge any mutant.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, command := splitTestCommand(cmd, args)

			return workflow.Baseline(cmd.Context(), domain.TestArgs{
				EstimateArgs: estimateArgs(paths),
				Command:      testCommand(command),
			})
		},
	}
}
