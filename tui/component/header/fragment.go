package header

// Alignment is the horizontal anchoring of a fragment inside its region.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Emphasis is the text weight of a fragment.
type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisBold
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisNormal:
		return "normal"
	case EmphasisBold:
		return "bold"
	default:
		return "unknown"
	}
}

// ColorTag selects the palette entry used for a fragment.
type ColorTag int

const (
	ColorActive ColorTag = iota
	ColorPaused
)

func (c ColorTag) String() string {
	switch c {
	case ColorActive:
		return "active"
	case ColorPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Fragment is a single styled run of text to be painted into a region.
type Fragment struct {
	Text      string
	Alignment Alignment
	Emphasis  Emphasis
	Color     ColorTag
}

// Region is a rectangular character-cell area supplied by the layout.
// Negative dimensions are treated as zero.
type Region struct {
	Width  int
	Height int
}

func (r Region) width() int {
	if r.Width < 0 {
		return 0
	}
	return r.Width
}

// Painter places fragments on screen. Implementations clip to the region
// bounds and never fail on overflow.
type Painter interface {
	Paint(f Fragment, r Region)
}

// PainterFunc adapts a plain function to the Painter interface.
type PainterFunc func(f Fragment, r Region)

// Paint calls p.
func (p PainterFunc) Paint(f Fragment, r Region) {
	p(f, r)
}
