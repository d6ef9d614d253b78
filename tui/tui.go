// Package tui provides the presentation layer for non-interactive terminal output.
package tui

import (
	"io"
	"os"
)

// Format represents the output format.
type Format string

const (
	// FormatTable is the default human-readable format.
	FormatTable Format = "table"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderHeader renders a one-shot header strip.
	RenderHeader(header *HeaderView) error

	// RenderDoctor renders environment check results.
	RenderDoctor(result *DoctorView) error

	// RenderConfig renders the configuration.
	RenderConfig(config *ConfigView) error

	// RenderError renders an error message.
	RenderError(err error) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
	// TerminalWidth is the width of the terminal for table rendering.
	// If 0, the width will be auto-detected.
	TerminalWidth int
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return NewJSONPresenter(opts)
	default:
		return NewTablePresenter(opts)
	}
}

// ParseFormat maps a --format flag value to a Format, defaulting to table.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	default:
		return FormatTable
	}
}
