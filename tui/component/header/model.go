package header

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/safedep/bandview/core/bandwidth"
)

// Model is a full-screen dashboard hosting the header strip. It owns the
// pause and cumulative-mode toggles and pulls a fresh snapshot per tick.
type Model struct {
	opts      Options
	formatter bandwidth.Formatter
	renderer  *Renderer
	width     int
	height    int

	footer footerModel

	snapshot   bandwidth.Snapshot
	cumulative bool
	paused     bool
	clock      elapsedClock
	ready      bool
}

func New(opts Options) Model {
	formatter := opts.Formatter
	if formatter == nil {
		formatter = bandwidth.DefaultFormatter()
	}

	return Model{
		opts:       opts,
		formatter:  formatter,
		renderer:   NewRenderer(formatter),
		footer:     newFooterModel(),
		cumulative: opts.Cumulative,
		clock:      newElapsedClock(opts.now()),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetch(),
		scheduleTick(m.opts.refreshInterval()),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case snapshotMsg:
		if !m.paused {
			m.snapshot = msg.snapshot
		}
		m.footer.lastError = ""
		return m, nil

	case snapshotErrorMsg:
		m.footer.lastError = msg.err.Error()
		return m, nil

	case tickMsg:
		if m.paused {
			return m, scheduleTick(m.opts.refreshInterval())
		}
		return m, tea.Batch(
			m.fetch(),
			scheduleTick(m.opts.refreshInterval()),
		)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "p", " ":
		now := m.opts.now()
		m.paused = !m.paused
		if m.paused {
			m.clock.pause(now)
		} else {
			m.clock.resume(now)
		}
		return m, nil

	case "t":
		m.cumulative = !m.cumulative
		return m, nil
	}

	return m, nil
}

func (m Model) fetch() tea.Cmd {
	if m.opts.Source == nil {
		return nil
	}
	return fetchSnapshot(m.opts.Source, m.opts.refreshInterval())
}

// Request returns the renderer input for the current frame.
func (m Model) Request() Request {
	return Request{
		Snapshot: m.snapshot.WithCumulativeMode(m.cumulative),
		Elapsed:  m.clock.elapsed(m.opts.now()),
		Paused:   m.paused,
	}
}

func (m Model) headerView() string {
	region := Region{Width: m.width, Height: 1}
	line := NewLine(m.width, m.opts.Theme)
	m.renderer.Render(m.Request(), region, line)
	return line.String()
}

func (m Model) bodyView(width, height int) string {
	req := m.Request()
	asRate := req.Snapshot.AsRate()

	mode := "rate"
	if !asRate {
		mode = "cumulative"
	}

	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf(" %s %s\n", bodyLabelStyle.Render("Mode:    "), bodyValueStyle.Render(mode)))
	b.WriteString(fmt.Sprintf(" %s %s\n", bodyLabelStyle.Render("Upload:  "),
		bodyValueStyle.Render(m.formatter.Format(float64(req.Snapshot.TotalBytesUploaded), asRate))))
	b.WriteString(fmt.Sprintf(" %s %s\n", bodyLabelStyle.Render("Download:"),
		bodyValueStyle.Render(m.formatter.Format(float64(req.Snapshot.TotalBytesDownloaded), asRate))))

	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(b.String())
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	contentHeight := m.height - 2 // header + footer
	if contentHeight < 0 {
		contentHeight = 0
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.bodyView(m.width, contentHeight),
		m.footer.view(m.width),
	)
}
