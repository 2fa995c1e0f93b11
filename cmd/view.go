package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/raygun/internal/domain"
	m "gooze.dev/pkg/raygun/internal/model"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously generated mutation report",
		Long: `View the mutation report stored in the reports directory (--output), or
the report file or directory given as argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			if len(args) == 1 {
				reportsPath = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}
}
