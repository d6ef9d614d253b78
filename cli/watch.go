package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/safedep/bandview/config"
	"github.com/safedep/bandview/core/bandwidth"
	"github.com/safedep/bandview/source"
	"github.com/safedep/bandview/tui/component/header"
	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"
)

type watchParams struct {
	input      string
	source     string
	interval   time.Duration
	cumulative bool
	up         uint64
	down       uint64
}

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	var p watchParams

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Interactive bandwidth dashboard",
		Long: `Launch a fullscreen dashboard fed by a stream of traffic snapshots.

Each line of the input is a JSON object with total_bytes_uploaded,
total_bytes_downloaded and cumulative_mode. The most recent line is shown.

Keys: q quit, space pause, t toggle cumulative totals.`,
		Example: `  traffic-exporter | bandview watch
  bandview watch --input /var/run/traffic.jsonl --interval 500ms
  bandview watch --source static --up 1500 --down 2500000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			kind := p.source
			if kind == "" {
				kind = app.Config.Watch.Source
			}

			interval := app.Config.Watch.RefreshInterval
			if p.interval != 0 {
				if p.interval < config.MinRefreshInterval {
					return ErrInput(fmt.Sprintf("--interval must be at least %s", config.MinRefreshInterval), nil)
				}
				interval = p.interval
			}

			cumulative := app.Config.Watch.Cumulative
			if cmd.Flags().Changed("cumulative") {
				cumulative = p.cumulative
			}

			openOpts := source.OpenOptions{
				Snapshot: bandwidth.Snapshot{
					TotalBytesUploaded:   p.up,
					TotalBytesDownloaded: p.down,
				},
			}

			progOpts := []tea.ProgramOption{tea.WithAltScreen()}
			if kind == source.KindJSONL {
				input, fromStdin, err := openInput(p.input)
				if err != nil {
					return ErrInput("failed to open snapshot input", err)
				}
				openOpts.Input = input

				// Snapshots arrive on stdin, so keys must be read from the terminal.
				if fromStdin {
					progOpts = append(progOpts, tea.WithInputTTY())
				}
			}

			provider, err := openProvider(app.Sources, kind, openOpts)
			if err != nil {
				return ErrInput("failed to open snapshot source", err)
			}

			defer func() {
				if err := provider.Close(); err != nil {
					log.Errorf("failed to close snapshot source: %v", err)
				}
			}()

			opts := header.Options{
				Source:          provider,
				Formatter:       app.Formatter(),
				Theme:           app.Theme(),
				RefreshInterval: interval,
				Cumulative:      cumulative,
			}

			log.Debugf("starting watch session: source=%s interval=%s", kind, interval)

			prog := tea.NewProgram(header.New(opts), progOpts...)
			if _, err := prog.Run(); err != nil {
				return ErrRender("dashboard terminated", err)
			}

			log.Debugf("watch session ended")

			return nil
		},
	}

	cmd.Flags().StringVarP(&p.input, "input", "i", "-", "snapshot stream to read, - for stdin")
	cmd.Flags().StringVar(&p.source, "source", "", "snapshot source: jsonl, static (default from config)")
	cmd.Flags().DurationVar(&p.interval, "interval", 0, "refresh interval (default from config)")
	cmd.Flags().BoolVar(&p.cumulative, "cumulative", false, "start in cumulative mode")
	cmd.Flags().Uint64Var(&p.up, "up", 0, "bytes uploaded, for the static source")
	cmd.Flags().Uint64Var(&p.down, "down", 0, "bytes downloaded, for the static source")

	return cmd
}

// openInput opens the snapshot stream. Stdin is wrapped so closing the
// provider leaves the process's stdin alone.
func openInput(path string) (io.Reader, bool, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	return f, false, nil
}

// openProvider opens a snapshot source. The input stream is closed if the
// source cannot be opened, since no provider will take ownership of it.
func openProvider(reg *source.Registry, kind string, opts source.OpenOptions) (source.Provider, error) {
	provider, err := reg.Open(kind, opts)
	if err != nil {
		if c, ok := opts.Input.(io.Closer); ok {
			if cerr := c.Close(); cerr != nil {
				log.Errorf("failed to close snapshot input: %v", cerr)
			}
		}
		return nil, err
	}
	return provider, nil
}
