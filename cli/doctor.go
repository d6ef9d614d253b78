package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/safedep/bandview/config"
	"github.com/safedep/bandview/core/bandwidth"
	"github.com/safedep/bandview/tui"
	"github.com/safedep/bandview/tui/component/header"
	"github.com/spf13/cobra"
)

// widestRequest is the longest header a realistic session produces.
var widestRequest = header.Request{
	Snapshot: bandwidth.Snapshot{
		TotalBytesUploaded:   999_900_000_000,
		TotalBytesDownloaded: 999_900_000_000,
	},
	Elapsed: 99*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second,
	Paused:  true,
}

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the local setup",
		Long: `Diagnose the local setup.

Performs various health checks:
- Config file exists and is valid
- Config directory exists
- Output is an interactive terminal
- Terminal is wide enough to show the elapsed time`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := &tui.DoctorView{AllOK: true}
			add := func(c tui.DoctorCheck) {
				if c.Status == tui.CheckFail {
					v.AllOK = false
				}
				v.Checks = append(v.Checks, c)
			}

			configPath := configFilePath()
			add(checkConfigFile(configPath))
			add(checkConfigDir(configPath))

			cfg, err := config.Load(globalFlags.ConfigPath)
			if err != nil {
				cfg = config.Default()
			}

			isTTY := tui.IsWriterTerminal(cmd.OutOrStdout())
			add(checkTerminal(isTTY))

			width := tui.TerminalWidth(cmd.OutOrStdout())
			add(checkHeaderWidth(cfg.Formatter(), width))

			presenter := tui.NewPresenter(tui.ParseFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: !globalFlags.NoColor && cfg.ShouldUseColors(),
			})

			return presenter.RenderDoctor(v)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")

	return cmd
}

func checkConfigFile(path string) tui.DoctorCheck {
	check := tui.DoctorCheck{Name: "Config file"}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		check.Status = tui.CheckWarn
		check.Message = "Config file not found (using defaults)"
		check.Suggestion = "Run 'bandview config set' to create"
		return check
	} else if err != nil {
		check.Status = tui.CheckFail
		check.Message = "Cannot access config file: " + err.Error()
		return check
	}

	if _, err := config.Load(path); err != nil {
		check.Status = tui.CheckFail
		check.Message = err.Error()
		check.Suggestion = "Fix the value with 'bandview config set' or run 'bandview config reset'"
		return check
	}

	check.Status = tui.CheckOK
	check.Message = path
	return check
}

func checkConfigDir(configPath string) tui.DoctorCheck {
	check := tui.DoctorCheck{Name: "Config directory"}
	dir := filepath.Dir(configPath)

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		check.Status = tui.CheckWarn
		check.Message = "Config directory not found: " + dir
		check.Suggestion = "It is created by the first 'bandview config set'"
	case err != nil:
		check.Status = tui.CheckFail
		check.Message = "Cannot access config directory: " + err.Error()
	case !info.IsDir():
		check.Status = tui.CheckFail
		check.Message = dir + " is not a directory"
	default:
		check.Status = tui.CheckOK
		check.Message = dir
	}

	return check
}

func checkTerminal(isTTY bool) tui.DoctorCheck {
	check := tui.DoctorCheck{Name: "Terminal"}
	if !isTTY {
		check.Status = tui.CheckWarn
		check.Message = "Output is not an interactive terminal"
		check.Suggestion = "'bandview watch' needs a terminal, 'bandview header' works anywhere"
		return check
	}

	check.Status = tui.CheckOK
	check.Message = "Interactive terminal detected"
	return check
}

// checkHeaderWidth reports whether the elapsed time stays visible for the
// widest header at the given terminal width.
func checkHeaderWidth(formatter bandwidth.Formatter, width int) tui.DoctorCheck {
	check := tui.DoctorCheck{Name: "Header width"}

	renderer := header.NewRenderer(formatter)
	needed := len(renderer.BandwidthText(widestRequest)) + len(header.ElapsedText(widestRequest.Elapsed)) + 1

	frags := renderer.Fragments(widestRequest, header.Region{Width: width, Height: 1})
	if len(frags) < 2 {
		check.Status = tui.CheckWarn
		check.Message = fmt.Sprintf("Terminal is %d columns, the elapsed time may be hidden below %d", width, needed)
		check.Suggestion = "Widen the terminal window"
		return check
	}

	check.Status = tui.CheckOK
	check.Message = fmt.Sprintf("%d columns (elapsed time needs at most %d)", width, needed)
	return check
}
