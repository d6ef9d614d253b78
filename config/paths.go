package config

import (
	"os"
	"path/filepath"
)

// getConfigDir returns the configuration directory for bandview.
func getConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "bandview")
}

// EnsureConfigDir creates the directory holding configFile if it doesn't exist.
func EnsureConfigDir(configFile string) error {
	return os.MkdirAll(filepath.Dir(configFile), 0700)
}
