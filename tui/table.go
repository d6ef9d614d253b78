package tui

import (
	"fmt"
	"io"
	"sort"
)

// TablePresenter renders output in human-readable form.
type TablePresenter struct {
	w         io.Writer
	color     *Colorizer
	termWidth int
}

// NewTablePresenter creates a new table presenter.
func NewTablePresenter(opts PresenterOptions) *TablePresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = tableWidth(opts.Writer)
	}
	return &TablePresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		termWidth: termWidth,
	}
}

// RenderHeader writes the header strip as a single line.
func (p *TablePresenter) RenderHeader(header *HeaderView) error {
	tw := &tableWriter{w: p.w}

	line := header.Line
	if line == "" {
		line = header.Text
	}
	tw.println(line)

	return tw.Err()
}

// RenderDoctor renders environment check results.
func (p *TablePresenter) RenderDoctor(result *DoctorView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Header("Doctor"))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	for _, check := range result.Checks {
		var statusStr string
		switch check.Status {
		case CheckOK:
			statusStr = p.color.StatusOK()
		case CheckWarn:
			statusStr = p.color.Warning("[!!]")
		case CheckFail:
			statusStr = p.color.StatusFail()
		}

		tw.printf("  %s  %s\n", statusStr, check.Name)
		if check.Message != "" {
			tw.printf("        %s\n", check.Message)
		}
		if check.Suggestion != "" && check.Status != CheckOK {
			tw.printf("        %s\n", p.color.Dim(check.Suggestion))
		}
	}
	tw.println()

	if result.AllOK {
		tw.println(p.color.Success("All checks passed."))
	} else {
		tw.println(p.color.Warning("Some checks failed. See suggestions above."))
	}

	return tw.Err()
}

// RenderConfig renders the configuration.
func (p *TablePresenter) RenderConfig(config *ConfigView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Header("Configuration"))
	tw.printf("%s %s\n", p.color.Dim("Location:"), p.color.Path(config.Location))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	p.renderConfigMap(tw, config.Values, "")

	return tw.Err()
}

func (p *TablePresenter) renderConfigMap(tw *tableWriter, m map[string]interface{}, prefix string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := m[key].(type) {
		case map[string]interface{}:
			p.renderConfigMap(tw, v, fullKey)
		default:
			tw.printf("  %-30s %v\n", fullKey, v)
		}
	}
}

// RenderError renders an error message.
func (p *TablePresenter) RenderError(err error) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s %s\n", p.color.Error("Error:"), err.Error())
	return tw.Err()
}

// RenderMessage renders a simple message.
func (p *TablePresenter) RenderMessage(message string) error {
	tw := &tableWriter{w: p.w}
	tw.println(message)
	return tw.Err()
}

// Ensure TablePresenter implements Presenter
var _ Presenter = (*TablePresenter)(nil)

// tableWriter captures the first write error and skips every write after it.
type tableWriter struct {
	w   io.Writer
	err error
}

func (tw *tableWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *tableWriter) println(args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintln(tw.w, args...)
}

// Err returns the first write error, or nil.
func (tw *tableWriter) Err() error {
	return tw.err
}
