package header

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styleKey struct {
	color    ColorTag
	emphasis Emphasis
}

type cell struct {
	text    string // empty for the trailing half of a wide rune
	painted bool
	style   styleKey
}

// Line is a single-row Painter backed by a cell buffer. Fragments painted
// later overwrite earlier ones where they overlap, and everything beyond
// the line or region width is clipped.
type Line struct {
	theme Theme
	cells []cell
}

// NewLine creates a blank line of the given width in cells.
func NewLine(width int, theme Theme) *Line {
	if width < 0 {
		width = 0
	}
	l := &Line{theme: theme, cells: make([]cell, width)}
	l.Reset()
	return l
}

// Width returns the width of the line in cells.
func (l *Line) Width() int {
	return len(l.cells)
}

// Reset blanks every cell.
func (l *Line) Reset() {
	for i := range l.cells {
		l.cells[i] = cell{text: " "}
	}
}

// Paint implements Painter.
func (l *Line) Paint(f Fragment, r Region) {
	if r.Height <= 0 {
		return
	}

	width := r.width()
	if width > len(l.cells) {
		width = len(l.cells)
	}
	if width == 0 {
		return
	}

	x := 0
	if f.Alignment == AlignRight {
		x = width - runewidth.StringWidth(f.Text)
		if x < 0 {
			x = 0
		}
	}

	key := styleKey{color: f.Color, emphasis: f.Emphasis}
	for _, ch := range f.Text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		l.clearWide(x)
		if w == 2 {
			l.clearWide(x + 1)
			l.cells[x+1] = cell{painted: true, style: key}
		}
		l.cells[x] = cell{text: string(ch), painted: true, style: key}
		x += w
	}
}

// clearWide blanks the other half of a wide rune that is about to be
// partially overwritten at x.
func (l *Line) clearWide(x int) {
	c := l.cells[x]
	if c.text == "" && x > 0 {
		l.cells[x-1] = cell{text: " "}
	}
	if c.text != "" && runewidth.StringWidth(c.text) == 2 && x+1 < len(l.cells) {
		l.cells[x+1] = cell{text: " "}
	}
}

// Plain returns the line content without any styling.
func (l *Line) Plain() string {
	var b strings.Builder
	for _, c := range l.cells {
		b.WriteString(c.text)
	}
	return b.String()
}

// String renders the line with the theme's styles applied to painted runs.
func (l *Line) String() string {
	var (
		b   strings.Builder
		run strings.Builder
		cur cell
	)

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if cur.painted {
			b.WriteString(l.theme.Style(cur.style.color, cur.style.emphasis).Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}

	for i, c := range l.cells {
		if i == 0 || c.painted != cur.painted || c.style != cur.style {
			flush()
			cur = c
		}
		run.WriteString(c.text)
	}
	flush()

	return b.String()
}
