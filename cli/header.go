package cli

import (
	"time"

	"github.com/safedep/bandview/core/bandwidth"
	"github.com/safedep/bandview/tui"
	"github.com/safedep/bandview/tui/component/header"
	"github.com/spf13/cobra"
)

type headerParams struct {
	up         uint64
	down       uint64
	cumulative bool
	paused     bool
	elapsed    time.Duration
	width      int
	format     string
}

// NewHeaderCmd creates the header command.
func NewHeaderCmd() *cobra.Command {
	var p headerParams

	cmd := &cobra.Command{
		Use:   "header",
		Short: "Render the dashboard header once",
		Long: `Render the dashboard header strip once and print it.

The strip shows total upload and download on the left and the elapsed time
on the right. The elapsed time is dropped when the width cannot fit both.`,
		Example: `  bandview header --up 1500 --down 2500000 --elapsed 1h2m5s
  bandview header --up 1500 --down 2500000 --cumulative --paused
  bandview header --width 40 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if p.width < 0 {
				return ErrInput("--width must not be negative", nil)
			}
			if p.elapsed < 0 {
				return ErrInput("--elapsed must not be negative", nil)
			}

			app, err := loadApp()
			if err != nil {
				return err
			}

			width := p.width
			if width == 0 {
				width = tui.TerminalWidth(cmd.OutOrStdout())
			}

			app.Presenter = tui.NewPresenter(tui.ParseFormat(p.format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors(),
			})

			req := header.Request{
				Snapshot: bandwidth.Snapshot{
					TotalBytesUploaded:   p.up,
					TotalBytesDownloaded: p.down,
					CumulativeMode:       p.cumulative,
				},
				Elapsed: p.elapsed,
				Paused:  p.paused,
			}

			return app.Presenter.RenderHeader(renderHeaderView(app, req, width))
		},
	}

	cmd.Flags().Uint64Var(&p.up, "up", 0, "total bytes uploaded")
	cmd.Flags().Uint64Var(&p.down, "down", 0, "total bytes downloaded")
	cmd.Flags().BoolVar(&p.cumulative, "cumulative", false, "show cumulative totals instead of rates")
	cmd.Flags().BoolVar(&p.paused, "paused", false, "render the paused state")
	cmd.Flags().DurationVar(&p.elapsed, "elapsed", 0, "elapsed monitoring time")
	cmd.Flags().IntVar(&p.width, "width", 0, "strip width in columns (0 detects the terminal width)")
	cmd.Flags().StringVar(&p.format, "format", "table", "output format: table, json")

	return cmd
}

func renderHeaderView(app *App, req header.Request, width int) *tui.HeaderView {
	renderer := header.NewRenderer(app.Formatter())
	region := header.Region{Width: width, Height: 1}

	line := header.NewLine(width, app.Theme())
	renderer.Render(req, region, line)

	frags := renderer.Fragments(req, region)
	views := make([]tui.FragmentView, 0, len(frags))
	for _, f := range frags {
		views = append(views, tui.FragmentView{
			Text:      f.Text,
			Alignment: f.Alignment.String(),
			Emphasis:  f.Emphasis.String(),
			Color:     f.Color.String(),
		})
	}

	return &tui.HeaderView{
		Line:      line.String(),
		Text:      line.Plain(),
		Width:     width,
		Paused:    req.Paused,
		Fragments: views,
	}
}
