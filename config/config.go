// Package config provides configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/safedep/bandview/core/bandwidth"
	"github.com/spf13/viper"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	// ColorAuto automatically detects terminal support.
	ColorAuto ColorMode = "auto"
	// ColorAlways always uses colors.
	ColorAlways ColorMode = "always"
	// ColorNever never uses colors.
	ColorNever ColorMode = "never"
)

// MinRefreshInterval is the shortest accepted watch refresh interval.
const MinRefreshInterval = 100 * time.Millisecond

// Config holds all configuration values.
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Header  HeaderConfig  `mapstructure:"header"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	Colors     ColorMode            `mapstructure:"colors"`
	Units      bandwidth.UnitSystem `mapstructure:"units"`
	RateSuffix string               `mapstructure:"rate_suffix"`
}

// HeaderConfig holds the header strip palette. Values are lipgloss colors:
// ANSI indexes ("2") or hex codes ("#6BCB77").
type HeaderConfig struct {
	ActiveColor string `mapstructure:"active_color"`
	PausedColor string `mapstructure:"paused_color"`
}

// WatchConfig holds settings for the live dashboard.
type WatchConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	Cumulative      bool          `mapstructure:"cumulative"`
	Source          string        `mapstructure:"source"`
}

// Paths holds resolved filesystem paths.
type Paths struct {
	ConfigFile string
	ConfigDir  string
}

// Load loads configuration from the given path or default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		paths := ResolvePaths()

		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	v.SetEnvPrefix("BANDVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with all default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// ResolvePaths returns the resolved filesystem paths for the current platform.
func ResolvePaths() *Paths {
	configDir := getConfigDir()

	return &Paths{
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		ConfigDir:  configDir,
	}
}

// ShouldUseColors returns true if colors should be used based on config and terminal.
func (c *Config) ShouldUseColors() bool {
	switch c.Display.Colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		// Auto: check if stdout is a terminal
		fileInfo, err := os.Stdout.Stat()
		if err != nil {
			return false
		}
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
}

// Formatter returns the byte formatter configured by the display settings.
func (c *Config) Formatter() *bandwidth.HumanFormatter {
	return bandwidth.NewHumanFormatter(c.Display.Units, c.Display.RateSuffix)
}
