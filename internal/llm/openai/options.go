package openai

import "github.com/irl/ask/internal/config"

// GenerateOptions holds the request policy applied to every prompt
type GenerateOptions struct {
	Model        string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

// GenerateOption configures the request policy
type GenerateOption func(*GenerateOptions)

// NewGenerateOptions starts from the built-in policy and applies opts
func NewGenerateOptions(opts ...GenerateOption) *GenerateOptions {
	o := &GenerateOptions{
		Model:        config.DefaultModel,
		SystemPrompt: config.DefaultSystemPrompt,
		MaxTokens:    config.DefaultMaxTokens,
		Temperature:  config.DefaultTemperature,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithModel sets the model identifier
func WithModel(model string) GenerateOption {
	return func(o *GenerateOptions) {
		o.Model = model
	}
}

// WithSystemPrompt sets the system message sent ahead of the prompt
func WithSystemPrompt(prompt string) GenerateOption {
	return func(o *GenerateOptions) {
		o.SystemPrompt = prompt
	}
}

// WithMaxTokens sets maximum tokens to generate
func WithMaxTokens(maxTokens int) GenerateOption {
	return func(o *GenerateOptions) {
		o.MaxTokens = maxTokens
	}
}

// WithTemperature sets response randomness (0.0-2.0)
func WithTemperature(temp float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = temp
	}
}

// OptionsFromConfig maps configured parameters onto generate options
func OptionsFromConfig(cfg *config.Config) []GenerateOption {
	p := cfg.Parameters
	return []GenerateOption{
		WithModel(p.Model),
		WithSystemPrompt(p.SystemPrompt),
		WithMaxTokens(p.MaxTokens),
		WithTemperature(p.Temperature),
	}
}
