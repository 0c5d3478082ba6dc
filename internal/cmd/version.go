package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createVersionCommand creates the version subcommand
func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the current version of ask.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "ask version ", version, "\n")
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(createVersionCommand())
}
