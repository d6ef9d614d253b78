package config

import (
	"fmt"
	"strings"

	"github.com/safedep/bandview/core/bandwidth"
)

// knownSources lists the snapshot source kinds the watch command can open.
// Must be in sync with the kinds registered in source.DefaultRegistry.
var knownSources = map[string]bool{
	"static": true,
	"jsonl":  true,
}

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	if !bandwidth.IsValidUnitSystem(cfg.Display.Units) {
		return fmt.Errorf("invalid display.units: %s (must be decimal or binary)", cfg.Display.Units)
	}

	if strings.TrimSpace(cfg.Header.ActiveColor) == "" {
		return fmt.Errorf("header.active_color must not be empty")
	}
	if strings.TrimSpace(cfg.Header.PausedColor) == "" {
		return fmt.Errorf("header.paused_color must not be empty")
	}

	if cfg.Watch.RefreshInterval < MinRefreshInterval {
		return fmt.Errorf("watch.refresh_interval must be at least %s", MinRefreshInterval)
	}

	if !knownSources[cfg.Watch.Source] {
		return fmt.Errorf("invalid watch.source: %s (must be jsonl or static)", cfg.Watch.Source)
	}

	return nil
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}
