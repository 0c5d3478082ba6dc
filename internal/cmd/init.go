package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/irl/ask/internal/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// askOne is swapped out in tests
var askOne = survey.AskOne

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ask config through an interactive process",
	Long: `Initialize your ask configuration:
• Store your OpenAI API key
• Choose the default model
• Set the system prompt sent before every prompt

Your configuration will be saved to ` + defaultConfigPath,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if state.manager == nil {
			return fmt.Errorf("config manager not initialized")
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s\n", cyan("Welcome to ask"))
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s\n", "Let's get you set up, this will only take a minute!")

		current := state.manager.Config()
		schema := config.DefaultConfigSchema()

		// an empty answer keeps whatever key is configured already
		keyHelp := "Leave empty to keep the current key"
		if os.Getenv(config.EnvAPIKey) != "" {
			keyHelp = fmt.Sprintf("%s is set in your environment and takes precedence", config.EnvAPIKey)
		}

		var apiKey string
		apiKeyPrompt := &survey.Password{
			Message: fmt.Sprintf("%s Enter your OpenAI API key:", cyan("🔑")),
			Help:    keyHelp,
		}
		if err := askOne(apiKeyPrompt, &apiKey); err != nil {
			return fmt.Errorf("survey error: %w", err)
		}

		var model string
		modelPrompt := &survey.Input{
			Message: fmt.Sprintf("%s Default model:", cyan("🤖")),
			Default: current.Parameters.Model,
			Help:    "Model identifier sent with every request",
		}
		if err := askOne(modelPrompt, &model, survey.WithValidator(survey.Required)); err != nil {
			return fmt.Errorf("survey error: %w", err)
		}

		var systemPrompt string
		systemPromptPrompt := &survey.Input{
			Message: fmt.Sprintf("%s System prompt:", cyan("💬")),
			Default: current.Parameters.SystemPrompt,
			Help:    "Sent as the system message before your prompt",
		}
		if err := askOne(systemPromptPrompt, &systemPrompt); err != nil {
			return fmt.Errorf("survey error: %w", err)
		}

		model = strings.TrimSpace(model)
		if err := schema.ValidateValue("parameters.model", model); err != nil {
			return fmt.Errorf("validation failed for key %q: %w", "parameters.model", err)
		}

		if apiKey = strings.TrimSpace(apiKey); apiKey != "" {
			state.manager.Set(config.APIKeyPath, apiKey)
		}
		state.manager.Set("parameters.model", model)
		state.manager.Set("parameters.system_prompt", systemPrompt)

		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s Saving your configuration...\n", yellow("💾"))

		if err := state.manager.Save(); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		configPath := state.manager.Viper().ConfigFileUsed()

		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s All set! Your configuration has been saved to %s\n",
			green("🎉"), magenta(configPath))
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s You can now start using ask! Try: %s\n",
			cyan("💡"), magenta(`echo "What is the nature of this life of ours?" | ask`))
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s For more options, run: %s\n\n",
			cyan("📖"), magenta("ask --help"))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
