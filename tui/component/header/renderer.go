// Package header renders the dashboard's top status strip: the total
// upload/download summary on the left and, when it fits, the elapsed
// monitoring time on the right.
package header

import (
	"fmt"
	"time"

	"github.com/safedep/bandview/core/bandwidth"
)

const (
	bandwidthLabel = " Total Up / Down: "
	pausedSuffix   = " [PAUSED]"
)

// Request is the per-frame input of the renderer.
type Request struct {
	Snapshot bandwidth.Snapshot
	Elapsed  time.Duration
	Paused   bool
}

// Renderer turns a Request into header fragments. It holds no per-frame
// state and is safe to share.
type Renderer struct {
	formatter bandwidth.Formatter
}

// NewRenderer creates a renderer using the given byte formatter.
// A nil formatter falls back to bandwidth.DefaultFormatter.
func NewRenderer(formatter bandwidth.Formatter) *Renderer {
	if formatter == nil {
		formatter = bandwidth.DefaultFormatter()
	}
	return &Renderer{formatter: formatter}
}

// BandwidthText returns the left-hand summary text.
func (r *Renderer) BandwidthText(req Request) string {
	asRate := req.Snapshot.AsRate()

	suffix := ""
	if req.Paused {
		suffix = pausedSuffix
	}

	return fmt.Sprintf("%s%s / %s%s",
		bandwidthLabel,
		r.formatter.Format(float64(req.Snapshot.TotalBytesUploaded), asRate),
		r.formatter.Format(float64(req.Snapshot.TotalBytesDownloaded), asRate),
		suffix,
	)
}

// Fragments returns the fragments for one frame in paint order. The
// elapsed-time fragment comes first and is present only when both texts
// fit in the region with at least one column between them.
func (r *Renderer) Fragments(req Request, region Region) []Fragment {
	bw := r.BandwidthText(req)
	elapsed := ElapsedText(req.Elapsed)

	color := ColorActive
	if req.Paused {
		color = ColorPaused
	}

	frags := make([]Fragment, 0, 2)
	if fits(bw, elapsed, region) {
		frags = append(frags, Fragment{
			Text:      elapsed,
			Alignment: AlignRight,
			Emphasis:  EmphasisBold,
			Color:     color,
		})
	}

	return append(frags, Fragment{
		Text:      bw,
		Alignment: AlignLeft,
		Emphasis:  EmphasisBold,
		Color:     color,
	})
}

// Render paints the frame's fragments through p.
func (r *Renderer) Render(req Request, region Region, p Painter) {
	for _, f := range r.Fragments(req, region) {
		p.Paint(f, region)
	}
}

func fits(left, right string, region Region) bool {
	return len(left)+len(right)+1 <= region.width()
}
