package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Manager reads and persists the configuration file behind the config
// subcommands. Every change is validated before it is written.
type Manager struct {
	v          *viper.Viper
	configPath string
}

// NewManager creates a new configuration manager.
// It initializes with defaults and reads the config file if it exists.
func NewManager(configPath string) (*Manager, error) {
	m := &Manager{configPath: configPath}
	m.v = m.newViper()

	if err := m.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	return m, nil
}

func (m *Manager) newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetConfigFile(m.configPath)
	return v
}

// Get returns the value for a given key.
// Returns nil if the key does not exist.
func (m *Manager) Get(key string) interface{} {
	return m.v.Get(key)
}

// Set validates and persists a configuration value.
func (m *Manager) Set(key string, value interface{}) error {
	if !m.HasKey(key) {
		return fmt.Errorf("unknown config key: %s", key)
	}

	prev := m.v.Get(key)
	m.v.Set(key, value)

	if _, err := m.Config(); err != nil {
		m.v.Set(key, prev)
		return err
	}

	if err := EnsureConfigDir(m.configPath); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.v.AllSettings())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Config decodes and validates the current settings.
func (m *Manager) Config() (*Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Reset removes the config file, effectively resetting to defaults.
func (m *Manager) Reset() error {
	if err := os.Remove(m.configPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config: %w", err)
	}

	m.v = m.newViper()

	return nil
}

// AllSettings returns all configuration values as a map.
// This includes defaults merged with any file-based overrides.
func (m *Manager) AllSettings() map[string]interface{} {
	return m.v.AllSettings()
}

// ConfigPath returns the path to the configuration file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// HasKey returns true if the given key exists in the configuration.
func (m *Manager) HasKey(key string) bool {
	return m.v.IsSet(key)
}

// ParseValue parses a string value from the command line into a boolean
// when it spells one, and leaves it as a string otherwise.
func ParseValue(value string) interface{} {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}
