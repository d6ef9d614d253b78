package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	// DefaultTerminalWidth is used when terminal width cannot be detected.
	DefaultTerminalWidth = 80
	// MinTableWidth is the minimum width used for table rules.
	MinTableWidth = 60
	// MaxTableWidth is the maximum width used for table rules.
	MaxTableWidth = 200
)

// TerminalWidth returns the width of the terminal behind w, or
// DefaultTerminalWidth when w is not a terminal. The header strip is laid
// out to this width exactly, so no clamping is applied.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultTerminalWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

// tableWidth returns the terminal width of w clamped for table rendering.
func tableWidth(w io.Writer) int {
	width := TerminalWidth(w)
	if width < MinTableWidth {
		return MinTableWidth
	}
	if width > MaxTableWidth {
		return MaxTableWidth
	}
	return width
}

// IsWriterTerminal returns true if w is backed by a terminal file descriptor.
func IsWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
