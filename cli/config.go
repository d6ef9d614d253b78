package cli

import (
	"fmt"

	"github.com/safedep/bandview/config"
	"github.com/safedep/bandview/tui"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify configuration",
		Long: `View or modify configuration.

Subcommands allow viewing and modifying configuration values.
Values are validated before they are written.`,
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigResetCmd(),
	)

	return cmd
}

// configFilePath returns the config file named by --config or the default one.
func configFilePath() string {
	if globalFlags.ConfigPath != "" {
		return globalFlags.ConfigPath
	}
	return config.ResolvePaths().ConfigFile
}

// loadManager opens the config file without validating it, so that a broken
// file can still be inspected and repaired.
func loadManager() (*config.Manager, error) {
	mgr, err := config.NewManager(configFilePath())
	if err != nil {
		return nil, ErrConfig("failed to open configuration", err)
	}
	return mgr, nil
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := loadManager()
			if err != nil {
				return err
			}

			presenter := commandPresenter(cmd, format)

			view := &tui.ConfigView{
				Location: mgr.ConfigPath(),
				Values:   mgr.AllSettings(),
			}

			return presenter.RenderConfig(view)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get specific config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			mgr, err := loadManager()
			if err != nil {
				return err
			}

			value := mgr.Get(key)
			if value == nil {
				return fmt.Errorf("key not found: %s", key)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	return cmd
}

// commandPresenter returns a presenter writing to the command's output.
func commandPresenter(cmd *cobra.Command, format string) tui.Presenter {
	return tui.NewPresenter(tui.ParseFormat(format), tui.PresenterOptions{
		Writer:    cmd.OutOrStdout(),
		UseColors: !globalFlags.NoColor && config.Default().ShouldUseColors(),
	})
}

func newConfigSetCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set config value",
		Example: `  bandview config set display.units binary
  bandview config set watch.refresh_interval 500ms
  bandview config set header.paused_color "#F0AD4E"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := config.ParseValue(args[1])

			mgr, err := loadManager()
			if err != nil {
				return err
			}

			if err := mgr.Set(key, value); err != nil {
				return ErrConfig(fmt.Sprintf("failed to set %s", key), err)
			}

			return commandPresenter(cmd, format).RenderMessage(fmt.Sprintf("Set %s = %v", key, value))
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")

	return cmd
}

func newConfigResetCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset to default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := loadManager()
			if err != nil {
				return err
			}

			if err := mgr.Reset(); err != nil {
				return err
			}

			return commandPresenter(cmd, format).RenderMessage("Configuration reset to defaults.")
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")

	return cmd
}
