// Package gtksurface exposes a gotk3 cairo context as a termcanvas
// Surface, for embedding the renderer in a GTK DrawingArea. A Surface is
// constructed inside each "draw" signal handler around the cairo context
// GTK hands out and discarded when the handler returns.
package gtksurface

import (
	"github.com/gotk3/gotk3/cairo"

	"github.com/phroun/termcanvas"
)

// Surface wraps a cairo context for one draw cycle.
type Surface struct {
	cr       *cairo.Context
	pxW, pxH int
	alpha    float64
	scale    float64

	fillColor   termcanvas.Color
	strokeColor termcanvas.Color

	fontSpec termcanvas.FontSpec

	// onResize asks the host widget for a new backing size; cairo contexts
	// cannot resize themselves.
	onResize func(pxW, pxH int)
}

// New wraps cr, reporting the given backing size. onResize may be nil when
// the host manages sizing itself (the usual GTK arrangement, where the
// drawing area allocation drives the terminal dimensions).
func New(cr *cairo.Context, pxWidth, pxHeight int, onResize func(pxW, pxH int)) *Surface {
	return &Surface{
		cr:       cr,
		pxW:      pxWidth,
		pxH:      pxHeight,
		alpha:    1,
		scale:    1,
		onResize: onResize,
	}
}

func (s *Surface) SetSize(pxWidth, pxHeight int) {
	s.pxW, s.pxH = pxWidth, pxHeight
	s.scale = 1
	if s.onResize != nil {
		s.onResize(pxWidth, pxHeight)
	}
}

func (s *Surface) Size() (int, int) {
	return s.pxW, s.pxH
}

func (s *Surface) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	// Reset to identity before applying so repeated calls don't compound.
	s.cr.IdentityMatrix()
	s.cr.Scale(scale, scale)
	s.scale = scale
}

func (s *Surface) SetFillColor(c termcanvas.Color) { s.fillColor = c }
func (s *Surface) SetStrokeColor(c termcanvas.Color) { s.strokeColor = c }
func (s *Surface) SetLineWidth(w float64) { s.cr.SetLineWidth(w) }

func (s *Surface) SetLineCap(c termcanvas.LineCap) {
	switch c {
	case termcanvas.CapSquare:
		s.cr.SetLineCap(cairo.LINE_CAP_SQUARE)
	case termcanvas.CapRound:
		s.cr.SetLineCap(cairo.LINE_CAP_ROUND)
	default:
		s.cr.SetLineCap(cairo.LINE_CAP_BUTT)
	}
}

func (s *Surface) SetGlobalAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	s.alpha = a
}

func (s *Surface) GlobalAlpha() float64 { return s.alpha }

func (s *Surface) source(c termcanvas.Color) {
	s.cr.SetSourceRGBA(
		float64(c.R)/255.0,
		float64(c.G)/255.0,
		float64(c.B)/255.0,
		s.alpha)
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.source(s.fillColor)
	s.cr.Rectangle(x, y, w, h)
	s.cr.Fill()
}

func (s *Surface) BeginPath() { s.cr.NewPath() }

func (s *Surface) MoveTo(x, y float64) { s.cr.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.cr.LineTo(x, y) }

func (s *Surface) Arc(cx, cy, radius, startAngle, endAngle float64, acw bool) {
	if acw {
		s.cr.ArcNegative(cx, cy, radius, startAngle, endAngle)
	} else {
		s.cr.Arc(cx, cy, radius, startAngle, endAngle)
	}
}

func (s *Surface) ClosePath() { s.cr.ClosePath() }

func (s *Surface) Fill() {
	s.source(s.fillColor)
	s.cr.Fill()
}

func (s *Surface) Stroke() {
	s.source(s.strokeColor)
	s.cr.Stroke()
}

func (s *Surface) SetFont(f termcanvas.FontSpec) {
	s.fontSpec = f
	slant := cairo.FONT_SLANT_NORMAL
	if f.Italic {
		slant = cairo.FONT_SLANT_ITALIC
	}
	weight := cairo.FONT_WEIGHT_NORMAL
	if f.Bold {
		weight = cairo.FONT_WEIGHT_BOLD
	}
	s.cr.SelectFontFace(f.Family, slant, weight)
	s.cr.SetFontSize(f.Size)
}

func (s *Surface) FillText(text string, x, y float64) {
	s.source(s.fillColor)
	s.cr.MoveTo(x, y)
	s.cr.ShowText(text)
}

// MeasureText approximates monospace metrics from the font size; the toy
// text API in the bindings exposes no reliable extents. Ascent and descent
// are reported indeterminate so the renderer applies its font-size
// fallback.
func (s *Surface) MeasureText(text string) termcanvas.TextMetrics {
	size := s.fontSpec.Size
	if size <= 0 {
		size = 15
	}
	return termcanvas.TextMetrics{
		Width: float64(len([]rune(text))) * size * 0.6,
	}
}
