package cmd

import (
	"github.com/spf13/cobra"
)

func newOperatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "List the available mutation operators",
		Long: `List every mutation operator raygun knows, with a short description.

Operators are named <family>_<from>_<to>, for example arithmetic_add_sub.
Pass a family name such as "arithmetic" to --operator to select all of its
operators at once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Operators(cmd.Context())
		},
	}
}
