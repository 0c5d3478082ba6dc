package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/irl/ask/internal/config"

	"github.com/fatih/color"
)

// OutputConfig contains parameters for verbose output formatting
type OutputConfig struct {
	Writer       io.Writer
	KeyColor     *color.Color
	ValueColor   *color.Color
	HeaderColor  *color.Color
	EnableColors bool
}

// DefaultOutputConfig returns a default configuration for verbose output
func DefaultOutputConfig(writer io.Writer) *OutputConfig {
	return &OutputConfig{
		Writer:       writer,
		KeyColor:     color.New(color.FgCyan, color.Bold),
		ValueColor:   color.New(color.FgMagenta),
		HeaderColor:  color.New(color.FgYellow, color.Bold),
		EnableColors: true,
	}
}

// MaskSecret hides all but the edges of a credential
func MaskSecret(secret string) string {
	secret = strings.TrimSpace(secret)
	switch {
	case secret == "":
		return "(not set)"
	case len(secret) <= 8:
		return "****"
	default:
		return secret[:3] + "..." + secret[len(secret)-4:]
	}
}

// FormatTimeout renders a timeout in seconds; zero means none
func FormatTimeout(seconds int) string {
	if seconds <= 0 {
		return "none"
	}
	return fmt.Sprintf("%ds", seconds)
}

// PrintLLMParameters displays the request parameters in a formatted, multi-column table.
// apiKey is masked before it is printed
func PrintLLMParameters(cfg *config.Config, apiKey string, outputCfg *OutputConfig) {
	if outputCfg == nil {
		outputCfg = DefaultOutputConfig(os.Stderr)
	}
	if cfg == nil {
		cfg = config.NewDefault()
	}

	w := tabwriter.NewWriter(outputCfg.Writer, 0, 0, 3, ' ', 0)

	type param struct {
		Key   string
		Value string
	}

	params := []param{
		{Key: "Model", Value: cfg.Parameters.Model},
		{Key: "Endpoint", Value: cfg.Providers.OpenAI.BaseUrl},
		{Key: "Temperature", Value: fmt.Sprintf("%.2f", cfg.Parameters.Temperature)},
		{Key: "Max Tokens", Value: fmt.Sprintf("%d", cfg.Parameters.MaxTokens)},
		{Key: "Timeout", Value: FormatTimeout(cfg.Parameters.Timeout)},
		{Key: "API Key", Value: MaskSecret(apiKey)},
	}

	// rows hold two parameters each
	for i := 0; i < len(params); i += 2 {
		p1 := params[i]

		if (i + 1) < len(params) {
			p2 := params[i+1]
			printRow(w, outputCfg, p1.Key, p1.Value, p2.Key, p2.Value)
		} else {
			printRow(w, outputCfg, p1.Key, p1.Value, "", "")
		}
	}

	if cfg.Parameters.SystemPrompt != "" {
		printRow(w, outputCfg, "System Prompt", truncate(cfg.Parameters.SystemPrompt, 65), "", "")
	}

	fmt.Fprintf(w, "\n")
	w.Flush()
}

// truncate shortens s to max runes, marking the cut with an ellipsis
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

// printRow prints a multi-column row for one or two key-value pairs
// and handles color formatting and alignment via tabwriter
func printRow(w io.Writer, outputCfg *OutputConfig, key1, value1, key2, value2 string) {
	keySprint := outputCfg.KeyColor.SprintFunc()
	valueSprint := outputCfg.ValueColor.SprintFunc()

	if !outputCfg.EnableColors {
		keySprint = fmt.Sprint
		valueSprint = fmt.Sprint
	}

	if key2 != "" {
		fmt.Fprintf(w, "%s:\t%s\t%s:\t%s\n",
			keySprint(key1),
			valueSprint(value1),
			keySprint(key2),
			valueSprint(value2),
		)
	} else {
		// single pair, e.g. the system prompt
		fmt.Fprintf(w, "%s:\t%s\n",
			keySprint(key1),
			valueSprint(value1),
		)
	}
}
