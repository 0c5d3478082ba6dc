package config

// policy constants applied when nothing else overrides them
const (
	DefaultModel        = "gpt-4o-mini"
	DefaultSystemPrompt = "You are a helpful assistant."
	DefaultMaxTokens    = 1000
	DefaultTemperature  = 0.7
	DefaultTimeout      = 0
	DefaultBaseURL      = "https://api.openai.com/v1"
)

// environment and key names
const (
	EnvAPIKey = "OPENAI_API_KEY"
	EnvPrefix = "ASK"

	APIKeyPath  = "providers.openai.api_key"
	BaseURLPath = "providers.openai.base_url"
)

// defaultValues maps every canonical key to its default
var defaultValues = map[string]interface{}{
	"parameters.model":         DefaultModel,
	"parameters.system_prompt": DefaultSystemPrompt,
	"parameters.max_tokens":    DefaultMaxTokens,
	"parameters.temperature":   DefaultTemperature,
	"parameters.timeout":       DefaultTimeout,
	APIKeyPath:                 "",
	BaseURLPath:                DefaultBaseURL,
}

// NewDefault returns a Config populated with the built-in defaults
func NewDefault() *Config {
	return &Config{
		Parameters: Parameters{
			Model:        DefaultModel,
			SystemPrompt: DefaultSystemPrompt,
			MaxTokens:    DefaultMaxTokens,
			Temperature:  DefaultTemperature,
			Timeout:      DefaultTimeout,
		},
		Providers: Providers{
			OpenAI: OpenAI{
				BaseProvider: BaseProvider{BaseUrl: DefaultBaseURL},
			},
		},
	}
}
