package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ConfigFieldInfo contains metadata about a configuration field
type ConfigFieldInfo struct {
	Type        reflect.Type
	Description string
	Default     interface{}
	Secret      bool
	Validation  func(interface{}) error
}

// ConfigSchema holds the registry of valid configuration paths and aliases
type ConfigSchema struct {
	ValidPaths map[string]ConfigFieldInfo
	Aliases    map[string]string
}

// validateFloat64Range returns a validation function for float64 values within a range
func validateFloat64Range(min, max float64) func(interface{}) error {
	return func(value interface{}) error {
		if v, ok := value.(float64); ok {
			if v < min || v > max {
				return fmt.Errorf("value must be between %.2f and %.2f", min, max)
			}
			return nil
		}
		return fmt.Errorf("expected float64, got %T", value)
	}
}

// validateIntRange returns a validation function for int values within a range
func validateIntRange(min, max int) func(interface{}) error {
	return func(value interface{}) error {
		if v, ok := value.(int); ok {
			if v < min || v > max {
				return fmt.Errorf("value must be between %d and %d", min, max)
			}
			return nil
		}
		return fmt.Errorf("expected int, got %T", value)
	}
}

func validateNonEmpty(value interface{}) error {
	if v, ok := value.(string); ok {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("value must not be empty")
		}
		return nil
	}
	return fmt.Errorf("expected string, got %T", value)
}

// DefaultConfigSchema returns the default configuration schema
func DefaultConfigSchema() *ConfigSchema {
	return &ConfigSchema{
		ValidPaths: map[string]ConfigFieldInfo{
			"parameters.model": {
				Type:        reflect.TypeOf(""),
				Description: "Model identifier sent with every request",
				Default:     DefaultModel,
				Validation:  validateNonEmpty,
			},
			"parameters.system_prompt": {
				Type:        reflect.TypeOf(""),
				Description: "System message placed before the prompt",
				Default:     DefaultSystemPrompt,
			},
			"parameters.max_tokens": {
				Type:        reflect.TypeOf(int(0)),
				Description: "Maximum number of tokens in the completion",
				Default:     DefaultMaxTokens,
				Validation:  validateIntRange(1, 128000),
			},
			"parameters.temperature": {
				Type:        reflect.TypeOf(float64(0)),
				Description: "Sampling temperature (0.0-2.0)",
				Default:     DefaultTemperature,
				Validation:  validateFloat64Range(0.0, 2.0),
			},
			"parameters.timeout": {
				Type:        reflect.TypeOf(int(0)),
				Description: "Request timeout in seconds (0 = no timeout)",
				Default:     DefaultTimeout,
				Validation:  validateIntRange(0, 3600),
			},
			APIKeyPath: {
				Type:        reflect.TypeOf(""),
				Description: "OpenAI API key (or set OPENAI_API_KEY)",
				Default:     "",
				Secret:      true,
			},
			BaseURLPath: {
				Type:        reflect.TypeOf(""),
				Description: "Base URL of the chat completions API",
				Default:     DefaultBaseURL,
				Validation:  validateNonEmpty,
			},
		},

		Aliases: map[string]string{
			"model":         "parameters.model",
			"system":        "parameters.system_prompt",
			"system-prompt": "parameters.system_prompt",
			"max-tokens":    "parameters.max_tokens",
			"temperature":   "parameters.temperature",
			"temp":          "parameters.temperature",
			"timeout":       "parameters.timeout",
			"openai-key":    APIKeyPath,
			"api-key":       APIKeyPath,
			"base-url":      BaseURLPath,
		},
	}
}

// ResolveKey resolves an alias to its canonical path or returns the path if already canonical
func (s *ConfigSchema) ResolveKey(key string) (string, error) {
	if canonicalPath, exists := s.Aliases[key]; exists {
		return canonicalPath, nil
	}

	if _, exists := s.ValidPaths[key]; exists {
		return key, nil
	}

	suggestions := s.FindSimilarKeys(key)
	if len(suggestions) > 0 {
		return "", fmt.Errorf("invalid config key %q. Did you mean one of: %s", key, strings.Join(suggestions, ", "))
	}

	return "", fmt.Errorf("invalid config key %q. Valid keys: %s", key, strings.Join(s.ListCanonicalKeys(), ", "))
}

// ValidateValue validates a value against the field's type and validation rules
func (s *ConfigSchema) ValidateValue(path string, value interface{}) error {
	fieldInfo, exists := s.ValidPaths[path]
	if !exists {
		return fmt.Errorf("unknown config path: %s", path)
	}

	valueType := reflect.TypeOf(value)
	if valueType != fieldInfo.Type {
		return fmt.Errorf("expected %s, got %v", fieldInfo.Type.String(), valueType)
	}

	if fieldInfo.Validation != nil {
		return fieldInfo.Validation(value)
	}

	return nil
}

// GetFieldInfo returns information about a configuration field
func (s *ConfigSchema) GetFieldInfo(path string) (ConfigFieldInfo, error) {
	fieldInfo, exists := s.ValidPaths[path]
	if !exists {
		return ConfigFieldInfo{}, fmt.Errorf("unknown config path: %s", path)
	}
	return fieldInfo, nil
}

// ListCanonicalKeys returns only the canonical configuration paths
func (s *ConfigSchema) ListCanonicalKeys() []string {
	var keys []string
	for path := range s.ValidPaths {
		keys = append(keys, path)
	}
	sort.Strings(keys)
	return keys
}

// FindSimilarKeys finds keys similar to the input using simple string matching
func (s *ConfigSchema) FindSimilarKeys(key string) []string {
	if key == "" {
		return nil
	}

	var suggestions []string
	lowerKey := strings.ToLower(key)

	for _, path := range s.ListCanonicalKeys() {
		segments := strings.Split(path, ".")
		leaf := segments[len(segments)-1]
		if strings.Contains(strings.ToLower(path), lowerKey) || strings.Contains(lowerKey, leaf) {
			suggestions = append(suggestions, path)
		}
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}

	return suggestions
}
