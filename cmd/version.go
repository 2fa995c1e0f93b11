package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the raygun build version and the Go version used to build it.",
		Args:  cobra.NoArgs,
		// Skip dependency setup; version needs neither logger nor workflow.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := readBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("raygun version: unknown")
				return
			}

			cmd.Printf("raygun %s\n", info.Main.Version)
			cmd.Printf("built with %s\n", info.GoVersion)
		},
	}
}
