package header

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorWhite  = lipgloss.Color("#ECF0F1")
	colorDim    = lipgloss.Color("#7F8C8D")
	colorRed    = lipgloss.Color("#E74C3C")
	colorBg     = lipgloss.Color("#1E1E2E")

	bodyLabelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	bodyValueStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorDim).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// Theme maps fragment color tags onto terminal colors.
type Theme struct {
	Active    lipgloss.TerminalColor
	Paused    lipgloss.TerminalColor
	UseColors bool
}

// DefaultTheme renders active fragments green and paused fragments yellow.
func DefaultTheme() Theme {
	return Theme{
		Active:    colorGreen,
		Paused:    colorYellow,
		UseColors: true,
	}
}

// NewTheme builds a theme from color strings as accepted by lipgloss.Color.
// Empty strings keep the default for that tag.
func NewTheme(active, paused string, useColors bool) Theme {
	t := DefaultTheme()
	if active != "" {
		t.Active = lipgloss.Color(active)
	}
	if paused != "" {
		t.Paused = lipgloss.Color(paused)
	}
	t.UseColors = useColors
	return t
}

// Style returns the lipgloss style for a fragment's color tag and emphasis.
func (t Theme) Style(color ColorTag, emphasis Emphasis) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(emphasis == EmphasisBold)
	if !t.UseColors {
		return s
	}

	switch color {
	case ColorPaused:
		return s.Foreground(t.Paused)
	default:
		return s.Foreground(t.Active)
	}
}
