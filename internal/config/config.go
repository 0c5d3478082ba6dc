package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Manager handles configuration loading and management
type Manager struct {
	v       *viper.Viper
	cfg     *Config
	logger  *slog.Logger
	pending map[string]any
}

// NewManager creates a new configuration manager with default settings
func NewManager() *Manager {
	v := viper.New()

	for key, value := range defaultValues {
		v.SetDefault(key, value)
	}

	// ASK_PARAMETERS_MODEL, ASK_PARAMETERS_TEMPERATURE, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// the credential keeps its conventional name
	_ = v.BindEnv(APIKeyPath, EnvAPIKey)

	// the config file may end up holding an API key
	v.SetConfigPermissions(0600)

	return &Manager{
		v:       v,
		cfg:     NewDefault(),
		pending: make(map[string]any),
	}
}

// WithLogger sets the logger for the configuration manager
func (m *Manager) WithLogger(logger *slog.Logger) *Manager {
	m.logger = logger
	return m
}

// LoadEnvFile loads KEY=value pairs from a .env style file into the process
// environment; variables that are already set keep their values
func (m *Manager) LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.debug("Env file not found", "path", path)
			return nil
		}
		return fmt.Errorf("failed to load env file %q: %w", path, err)
	}

	m.debug("Loaded env file", "path", path)
	return nil
}

// Load merges the TOML file at configPath over the defaults
// a missing file is not an error; Save will create it
func (m *Manager) Load(configPath string) error {
	if configPath != "" {
		m.debug("Attempting to load config file", "path", configPath)

		m.v.SetConfigType("toml")
		m.v.SetConfigFile(configPath)

		if err := m.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			m.debug("Config file not found", "path", configPath)
		} else if m.logger != nil {
			m.logger.Info("Configuration loaded successfully", "path", m.v.ConfigFileUsed())
		}
	}

	return m.unmarshal()
}

// Config returns the current configuration
func (m *Manager) Config() *Config {
	return m.cfg
}

// Viper returns the underlying Viper instance for flag binding
func (m *Manager) Viper() *viper.Viper {
	return m.v
}

// APIKey reads the credential; every call consults the environment again
func (m *Manager) APIKey() string {
	return strings.TrimSpace(m.v.GetString(APIKeyPath))
}

// Set records a value in memory and marks it for the next Save
func (m *Manager) Set(key string, value any) {
	m.v.Set(key, value)
	m.pending[key] = value
}

// Save writes the values read from the config file plus those recorded with
// Set back to the config file; flags and environment variables are not persisted
func (m *Manager) Save() error {
	configFile := m.v.ConfigFileUsed()
	if configFile == "" {
		return fmt.Errorf("no config file path set")
	}

	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := viper.New()
	out.SetConfigType("toml")
	out.SetConfigPermissions(0600)

	_, statErr := os.Stat(configFile)
	if statErr == nil {
		out.SetConfigFile(configFile)
		if err := out.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, value := range m.pending {
		out.Set(key, value)
	}

	if os.IsNotExist(statErr) {
		if err := out.SafeWriteConfigAs(configFile); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	} else {
		if err := out.WriteConfigAs(configFile); err != nil {
			return fmt.Errorf("failed to update config file: %w", err)
		}
	}

	m.pending = make(map[string]any)
	m.debug("Configuration saved", "path", configFile)

	return m.unmarshal()
}

func (m *Manager) unmarshal() error {
	cfg := &Config{}
	if err := m.v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	m.cfg = cfg
	return nil
}

func (m *Manager) debug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}

// Validate checks the request policy before anything is sent
func (c *Config) Validate() error {
	p := c.Parameters

	if strings.TrimSpace(p.Model) == "" {
		return fmt.Errorf("parameters.model must not be empty")
	}
	if p.MaxTokens < 1 {
		return fmt.Errorf("parameters.max_tokens must be positive, got %d", p.MaxTokens)
	}
	if p.Temperature < 0 || p.Temperature > 2 {
		return fmt.Errorf("parameters.temperature must be between 0 and 2, got %.2f", p.Temperature)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("parameters.timeout must not be negative, got %d", p.Timeout)
	}
	if strings.TrimSpace(c.Providers.OpenAI.BaseUrl) == "" {
		return fmt.Errorf("%s must not be empty", BaseURLPath)
	}

	return nil
}
