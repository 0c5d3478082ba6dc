package config

// Config represents the complete configuration structure for ask
type Config struct {
	Parameters Parameters `mapstructure:"parameters"`
	Providers  Providers  `mapstructure:"providers"`
}

// Parameters holds the request policy sent with every completion
type Parameters struct {
	Model        string  `mapstructure:"model"`
	SystemPrompt string  `mapstructure:"system_prompt"`
	MaxTokens    int     `mapstructure:"max_tokens"`
	Temperature  float64 `mapstructure:"temperature"`

	// request timeout in seconds; 0 waits until the transport gives up
	Timeout int `mapstructure:"timeout"`
}

// Providers contains configuration for the completion endpoint
type Providers struct {
	OpenAI OpenAI `mapstructure:"openai"`
}

// BaseProvider contains the connection settings of a provider
type BaseProvider struct {
	APIKey  string `mapstructure:"api_key"`
	BaseUrl string `mapstructure:"base_url"`
}

type OpenAI struct {
	BaseProvider `mapstructure:",squash"`
}
