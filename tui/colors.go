package tui

import "strings"

// ANSI color codes
const (
	Reset = "\033[0m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Gray   = "\033[90m"

	// Bold variants
	BoldWhite = "\033[1;37m"
)

// Colorizer wraps text with ANSI color codes if colors are enabled.
type Colorizer struct {
	enabled bool
}

// NewColorizer creates a new Colorizer.
func NewColorizer(enabled bool) *Colorizer {
	return &Colorizer{enabled: enabled}
}

// Apply applies the given color to the text.
func (c *Colorizer) Apply(color, text string) string {
	if !c.enabled {
		return text
	}
	return color + text + Reset
}

// Header formats text as a header.
func (c *Colorizer) Header(text string) string {
	return c.Apply(BoldWhite, text)
}

// Path formats a file path.
func (c *Colorizer) Path(text string) string {
	return c.Apply(Blue, text)
}

// Success formats success text.
func (c *Colorizer) Success(text string) string {
	return c.Apply(Green, text)
}

// Warning formats warning text.
func (c *Colorizer) Warning(text string) string {
	return c.Apply(Yellow, text)
}

// Error formats error text.
func (c *Colorizer) Error(text string) string {
	return c.Apply(Red, text)
}

// Dim formats secondary/dim text.
func (c *Colorizer) Dim(text string) string {
	return c.Apply(Gray, text)
}

// StatusOK formats an OK status indicator.
func (c *Colorizer) StatusOK() string {
	return c.Apply(Green, "[ok]")
}

// StatusFail formats a fail status indicator.
func (c *Colorizer) StatusFail() string {
	return c.Apply(Red, "[!!]")
}

// HorizontalLine returns a horizontal line of the given width.
func HorizontalLine(width int) string {
	if width < 0 {
		width = 0
	}
	return strings.Repeat("─", width)
}
