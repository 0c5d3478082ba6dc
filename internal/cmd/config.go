package cmd

import (
	"fmt"

	"github.com/irl/ask/internal/verbose"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ask configuration",
	Long: `Manage ask configuration settings. This command provides subcommands
to view and modify configuration values.

Examples:
  ask config                  	# Show current configuration status
  ask config set key=value    	# Set a configuration value

      ask config set api-key=<your api key>
      ask config set parameters.temperature=0.7
      ask config set temperature=0.7
  `,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if state.manager == nil {
			return fmt.Errorf("config manager not initialized")
		}

		if path := state.manager.Viper().ConfigFileUsed(); path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: none (defaults in use)\n\n")
		}

		outputCfg := verbose.DefaultOutputConfig(cmd.OutOrStdout())
		outputCfg.EnableColors = isTerminal(cmd.OutOrStdout())
		verbose.PrintLLMParameters(state.manager.Config(), state.manager.APIKey(), outputCfg)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
