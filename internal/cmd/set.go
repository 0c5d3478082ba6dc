package cmd

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/irl/ask/internal/config"
	"github.com/irl/ask/internal/verbose"

	"github.com/spf13/cobra"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <key>=<value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

The key should be in dot notation format (e.g., parameters.temperature),
but convenient aliases are also supported:
  model          → parameters.model
  temperature    → parameters.temperature
  max-tokens     → parameters.max_tokens
  api-key        → providers.openai.api_key

Examples:
  ask config set parameters.temperature=0.5772
  ask config set parameters.system_prompt="You are helpful"
  ask config set parameters.max_tokens=1024
  ask config set base-url=http://localhost:8080/v1
  ask config set api-key=sk-65433210`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Parse the key=value argument
		argument := args[0]
		parts := strings.SplitN(argument, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format: expected key=value, got %q", argument)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if key == "" {
			return fmt.Errorf("key cannot be empty")
		}

		// Create schema for validation
		schema := config.DefaultConfigSchema()

		// Resolve key (handle aliases)
		canonicalKey, err := schema.ResolveKey(key)
		if err != nil {
			return err
		}

		// Get field info for type conversion
		fieldInfo, err := schema.GetFieldInfo(canonicalKey)
		if err != nil {
			return err
		}

		// Convert value to the expected type
		convertedValue, err := convertValueToType(value, fieldInfo.Type)
		if err != nil {
			return fmt.Errorf("failed to convert value %q for key %q: %w", value, canonicalKey, err)
		}

		// Validate the converted value
		if err := schema.ValidateValue(canonicalKey, convertedValue); err != nil {
			return fmt.Errorf("validation failed for key %q: %w", canonicalKey, err)
		}

		if state.manager == nil {
			return fmt.Errorf("config manager not initialized")
		}

		state.manager.Set(canonicalKey, convertedValue)

		if err := state.manager.Save(); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		// secrets are never echoed back
		display := fmt.Sprintf("%v", convertedValue)
		if fieldInfo.Secret {
			display = verbose.MaskSecret(display)
		}

		if key != canonicalKey {
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration updated: %s (%s) = %s\n", key, canonicalKey, display)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration updated: %s = %s\n", canonicalKey, display)
		}

		return nil
	},
}

// convertValueToType parses value into the schema type of a key
// quoted values are unquoted first so prompts may carry spaces and quotes
func convertValueToType(value string, targetType reflect.Type) (interface{}, error) {
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'' || value[0] == '`') {
		if unquoted, err := strconv.Unquote(value); err == nil {
			value = unquoted
		}
	}

	switch targetType.Kind() {
	case reflect.String:
		return value, nil

	case reflect.Int:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", value)
		}
		return intVal, nil

	case reflect.Float64:
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", value)
		}
		return floatVal, nil

	default:
		return nil, fmt.Errorf("unsupported type: %s", targetType.String())
	}
}

func init() {
	configCmd.AddCommand(setCmd)
}
