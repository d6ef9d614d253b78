package config

import (
	"github.com/spf13/viper"
)

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Display defaults
	v.SetDefault("display.colors", "auto")
	v.SetDefault("display.units", "decimal")
	v.SetDefault("display.rate_suffix", "/s")

	// Header defaults: green while running, yellow while paused
	v.SetDefault("header.active_color", "2")
	v.SetDefault("header.paused_color", "3")

	// Watch defaults
	v.SetDefault("watch.refresh_interval", "1s")
	v.SetDefault("watch.cumulative", false)
	v.SetDefault("watch.source", "jsonl")
}
