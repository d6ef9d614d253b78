// Package cli provides the command-line interface for bandview.
package cli

import (
	"os"
	"path/filepath"

	"github.com/safedep/bandview/config"
	"github.com/safedep/bandview/core/bandwidth"
	"github.com/safedep/bandview/internal/version"
	"github.com/safedep/bandview/source"
	"github.com/safedep/bandview/tui"
	"github.com/safedep/bandview/tui/component/header"
	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Sources   *source.Registry
	Presenter tui.Presenter
}

// NewApp creates a new App with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		Config:  cfg,
		Sources: source.DefaultRegistry(),
		Presenter: tui.NewPresenter(tui.FormatTable, tui.PresenterOptions{
			Writer:    os.Stdout,
			UseColors: cfg.ShouldUseColors(),
		}),
	}
}

// Formatter returns the byte formatter for the configured unit system.
func (a *App) Formatter() bandwidth.Formatter {
	return a.Config.Formatter()
}

// Theme returns the header palette from configuration.
func (a *App) Theme() header.Theme {
	return header.NewTheme(
		a.Config.Header.ActiveColor,
		a.Config.Header.PausedColor,
		a.Config.ShouldUseColors(),
	)
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bandview",
		Short: "Live network bandwidth dashboard",
		Long: `Bandview renders a live dashboard of network bandwidth totals.

Traffic counters are produced by an external accounting process and fed to
bandview as a stream of snapshots. The dashboard header shows the total
upload and download, as a rate or cumulatively, and the elapsed time.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle NO_COLOR environment variable
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("BANDVIEW_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger(globalFlags.Verbose)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "write debug logs to bandview.log beside the config file")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		NewHeaderCmd(),
		NewWatchCmd(),
		NewConfigCmd(),
		NewDoctorCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupInternalLogger sets up the DRY logger. Verbose mode enables debug
// logging to a file next to the config file, unless APP_LOG_LEVEL or
// APP_LOG_FILE already say otherwise.
func setupInternalLogger(verbose bool) {
	// The dashboard owns the terminal, log lines must not be written to stdout.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	if verbose {
		if os.Getenv("APP_LOG_LEVEL") == "" {
			_ = os.Setenv("APP_LOG_LEVEL", "debug")
		}
		if os.Getenv("APP_LOG_FILE") == "" {
			_ = os.Setenv("APP_LOG_FILE", logFilePath())
		}
	}

	log.Init("bandview", "cli")
}

// logFilePath returns the verbose log location, beside the config file.
func logFilePath() string {
	return filepath.Join(filepath.Dir(configFilePath()), "bandview.log")
}

// loadApp loads the application with configuration.
func loadApp() (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		return nil, ErrConfig("failed to load configuration", err)
	}

	// Override with flags
	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	return NewApp(cfg), nil
}
