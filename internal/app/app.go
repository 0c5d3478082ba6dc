package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/irl/ask/internal/config"
	askIO "github.com/irl/ask/internal/io"
	"github.com/irl/ask/internal/llm/common"
	"github.com/irl/ask/internal/verbose"

	"github.com/mattn/go-isatty"
)

// App represents the main application and holds its dependencies
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	client  common.Completer
	keys    common.KeySource
	verbose bool
	spinner bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures an App
type Option func(*App)

// WithVerbose prints the request parameter table before the request is sent
func WithVerbose(verbose bool) Option {
	return func(a *App) {
		a.verbose = verbose
	}
}

// WithIO replaces the process streams
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithSpinner forces the progress spinner on or off
func WithSpinner(enabled bool) Option {
	return func(a *App) {
		a.spinner = enabled
	}
}

// WithKeySource lets verbose output show a masked form of the credential
func WithKeySource(keys common.KeySource) Option {
	return func(a *App) {
		a.keys = keys
	}
}

// NewApp creates a new App instance with the provided configuration, logger, and client
func NewApp(cfg *config.Config, logger *slog.Logger, client common.Completer, opts ...Option) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &App{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		spinner: isatty.IsTerminal(os.Stderr.Fd()),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run reads one prompt, sends it, and prints the completion as "Response: <text>"
func (a *App) Run(ctx context.Context) (string, error) {
	if a.cfg == nil {
		return "", fmt.Errorf("configuration is nil")
	}
	if a.client == nil {
		return "", fmt.Errorf("no completion client configured")
	}

	prompt, err := a.readPrompt()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if a.verbose {
		apiKey := ""
		if a.keys != nil {
			apiKey = a.keys()
		}
		verbose.PrintLLMParameters(a.cfg, apiKey, verbose.DefaultOutputConfig(a.stderr))
	}

	a.logger.Info("Preparing LLM request",
		"model", a.cfg.Parameters.Model,
		"temperature", a.cfg.Parameters.Temperature,
		"max_tokens", a.cfg.Parameters.MaxTokens,
		"system_prompt_length", len(a.cfg.Parameters.SystemPrompt),
		"user_prompt_length", len(prompt))
	a.logger.Debug("User prompt", "content", prompt)

	stop := func() {}
	if a.spinner {
		stop = startSpinner(ctx, a.stderr, a.cfg.Parameters.Model)
	}

	response, err := common.RunBlocking(ctx, func(ctx context.Context) (string, error) {
		return a.client.Complete(ctx, prompt)
	})

	// the spinner line is cleared before anything else is printed
	stop()

	if err != nil {
		return "", err
	}

	if _, err := fmt.Fprintf(a.stdout, "Response: %s\n", response); err != nil {
		return "", fmt.Errorf("failed to write response: %w", err)
	}

	return response, nil
}

func (a *App) readPrompt() (string, error) {
	if f, ok := a.stdin.(*os.File); ok {
		return askIO.ReadPromptFrom(f, a.stdout)
	}
	return askIO.ReadPrompt(a.stdin, a.stdout)
}
