package termcanvas

import "math"

const (
	scrollbarWidth   = 8.0
	scrollbarPadding = 4.0
	thumbMinHeight   = 20.0
)

// drawScrollbar paints the scrollback position indicator along the right
// edge. The gutter is cleared first so a fading thumb never ghosts over a
// previous frame's position.
func (r *Renderer) drawScrollbar(cols, rows, scrollbackLen int, viewportY, opacity float64) {
	cw := float64(r.metrics.Width)
	ch := float64(r.metrics.Height)
	canvasW := float64(cols) * cw
	canvasH := float64(rows) * ch
	s := r.surface

	trackX := canvasW - scrollbarWidth - scrollbarPadding
	s.SetFillColor(r.theme.Background)
	s.FillRect(trackX, 0, scrollbarWidth+scrollbarPadding, canvasH)

	if scrollbackLen <= 0 && viewportY == 0 {
		return
	}

	trackTop := scrollbarPadding
	trackH := canvasH - 2*scrollbarPadding
	total := float64(scrollbackLen + rows)
	thumbH := math.Max(thumbMinHeight, float64(rows)/total*trackH)

	frac := 0.0
	if scrollbackLen > 0 {
		frac = viewportY / float64(scrollbackLen)
	}
	thumbY := trackTop + (trackH-thumbH)*(1-frac)

	gray := Color{128, 128, 128}
	prev := s.GlobalAlpha()

	s.SetGlobalAlpha(prev * 0.1 * opacity)
	s.SetFillColor(gray)
	s.FillRect(trackX, trackTop, scrollbarWidth, trackH)

	thumbAlpha := 0.3
	if viewportY > 0 {
		thumbAlpha = 0.5
	}
	s.SetGlobalAlpha(prev * thumbAlpha * opacity)
	s.FillRect(trackX, thumbY, scrollbarWidth, thumbH)

	s.SetGlobalAlpha(prev)
}
