package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/irl/ask/internal/app"
	"github.com/irl/ask/internal/config"
	"github.com/irl/ask/internal/llm/common"
	"github.com/irl/ask/internal/llm/mock"
	"github.com/irl/ask/internal/llm/openai"
	"github.com/irl/ask/internal/logger"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// current version (hardcoded for now, could be replaced with build flags)
const version = "0.1.0"

// defaultConfigPath is used when --config is not given
const defaultConfigPath = "~/.ask/config.toml"

// rootCmdState holds the config manager and logger for the command
type rootCmdState struct {
	manager *config.Manager
	logger  *slog.Logger
}

// state is the global state instance for the root command
var state = &rootCmdState{}

// flagBindings maps command line flags to their Viper keys
var flagBindings = map[string]string{
	"model":       "parameters.model",
	"system":      "parameters.system_prompt",
	"temperature": "parameters.temperature",
	"max-tokens":  "parameters.max_tokens",
	"timeout":     "parameters.timeout",
	"base-url":    config.BaseURLPath,
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return home, nil
	}

	return filepath.Join(home, path[1:]), nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "ask",
	Version: version,
	Short:   "Send one prompt to the OpenAI chat completions API",
	Long: `Ask reads a single line from standard input, sends it to the OpenAI chat
completions API and prints the first completion.

The API key is read from OPENAI_API_KEY (a .env file in the working
directory is loaded first) or from providers.openai.api_key in the config file.

Examples:
  ask
  echo "What is the capital of France?" | ask
  ask --model gpt-4o --temperature 0.2 < question.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return fmt.Errorf("failed to get debug flag: %w", err)
		}
		state.logger = logger.NewWithWriter(debug, cmd.ErrOrStderr())

		state.manager = config.NewManager().WithLogger(state.logger)

		// .env is loaded before anything reads the environment
		envFile, err := cmd.Flags().GetString("env-file")
		if err != nil {
			return fmt.Errorf("failed to get env-file flag: %w", err)
		}
		if err := state.manager.LoadEnvFile(envFile); err != nil {
			return &common.ConfigurationError{Err: err}
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return fmt.Errorf("failed to get config flag: %w", err)
		}
		if configPath == "" {
			configPath = defaultConfigPath
		}

		configPath, err = expandHomePath(configPath)
		if err != nil {
			return fmt.Errorf("failed to expand home path: %w", err)
		}

		viper := state.manager.Viper()
		for flagName, viperKey := range flagBindings {
			if err := viper.BindPFlag(viperKey, cmd.Root().Flags().Lookup(flagName)); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}

		if err := state.manager.Load(configPath); err != nil {
			return &common.ConfigurationError{Err: fmt.Errorf("failed to load configuration: %w", err)}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrompt(cmd)
	},
}

// Execute runs the root command and exits with a status that reflects the failure kind
// this is called by main.main()
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(app.ExitCode(err))
	}
}

// printError writes err to w, colored only when w is a terminal
func printError(w io.Writer, err error) {
	label := color.New(color.FgRed)
	if isTerminal(w) {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", label.Sprint("Error:"), err)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default "+defaultConfigPath+")")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a .env file to load")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Display request parameters in formatted table")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable detailed debug logging")
	rootCmd.PersistentFlags().Bool("test", false, "Use mock client for testing")

	rootCmd.Flags().String("model", config.DefaultModel, "Model identifier")
	rootCmd.Flags().String("system", config.DefaultSystemPrompt, "The system prompt")
	rootCmd.Flags().Float64("temperature", config.DefaultTemperature, "Sampling temperature (0.0-2.0)")
	rootCmd.Flags().Int("max-tokens", config.DefaultMaxTokens, "Maximum number of tokens in the completion")
	rootCmd.Flags().Int("timeout", config.DefaultTimeout, "Timeout in seconds for the request (0 = no timeout)")
	rootCmd.Flags().String("base-url", config.DefaultBaseURL, "Base URL of the chat completions API")

	if err := rootCmd.PersistentFlags().MarkHidden("test"); err != nil {
		panic(err)
	}

	rootCmd.SetVersionTemplate("ask version {{.Version}}\n")
}

// runPrompt handles the default flow: read a prompt, complete it, print the result
func runPrompt(cmd *cobra.Command) error {
	if state.manager == nil {
		return fmt.Errorf("config manager not initialized")
	}

	cfg := state.manager.Config()

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	useMock, err := cmd.Flags().GetBool("test")
	if err != nil {
		return fmt.Errorf("failed to get test flag: %w", err)
	}

	var client common.Completer
	if useMock {
		state.logger.Info("Using mock client")
		client = mock.New()
	} else {
		openaiClient, err := openai.NewFromConfig(cfg, state.manager.APIKey, state.logger)
		if err != nil {
			return err
		}
		client = openaiClient
	}

	appInstance := app.NewApp(cfg, state.logger, client,
		app.WithVerbose(verbose),
		app.WithKeySource(state.manager.APIKey),
		app.WithIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		app.WithSpinner(isTerminal(cmd.ErrOrStderr())),
	)

	_, err = appInstance.Run(cmd.Context())
	return err
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
