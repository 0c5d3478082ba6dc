package openai

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/irl/ask/internal/config"
	"github.com/irl/ask/internal/llm/common"
)

// NewFromConfig creates a client from validated configuration
// keys is consulted on every request so credential changes are picked up
func NewFromConfig(cfg *config.Config, keys common.KeySource, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, &common.ConfigurationError{Err: fmt.Errorf("configuration is nil")}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &common.ConfigurationError{Err: err}
	}

	clientOpts := []common.ClientOption{
		common.WithBaseURL(cfg.Providers.OpenAI.BaseUrl),
		common.WithTimeout(time.Duration(cfg.Parameters.Timeout) * time.Second),
		common.WithLogger(logger),
	}

	return NewClient(keys, clientOpts, OptionsFromConfig(cfg)...), nil
}
