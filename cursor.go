package termcanvas

import (
	"math"
	"time"
)

// blinkInterval is the wall-clock cursor blink period. A timer rather than
// a render-loop counter keeps the blink rate independent of frame rate.
const blinkInterval = 530 * time.Millisecond

// drawCursor paints the cursor at its cell. Block cursors repaint the
// covered glyph in the cursor accent color so it stays legible.
func (r *Renderer) drawCursor(cursor CursorState, cell Cell) {
	cw := float64(r.metrics.Width)
	ch := float64(r.metrics.Height)
	x := float64(cursor.X) * cw
	y := float64(cursor.Y) * ch
	width := cw
	if cell.Width == 2 {
		width = 2 * cw
	}

	s := r.surface
	s.SetFillColor(r.theme.Cursor)
	switch r.cursorStyle {
	case CursorUnderline:
		t := math.Max(2, math.Floor(ch*0.15))
		s.FillRect(x, y+ch-t, width, t)
	case CursorBar:
		t := math.Max(2, math.Floor(cw*0.15))
		s.FillRect(x, y, t, ch)
	default: // block
		s.FillRect(x, y, width, ch)
		if cell.Rune != 0 && cell.Flags&FlagInvisible == 0 {
			accent := r.theme.CursorAccent
			if fam := classifyRune(cell.Rune); fam != familyText {
				s.SetFillColor(accent)
				s.SetStrokeColor(accent)
				drawGlyph(s, fam, cell.Rune, x, y, width, ch)
			} else {
				s.SetFont(FontSpec{
					Family: r.fontFamily,
					Size:   r.fontSize,
					Bold:   cell.Flags&FlagBold != 0,
					Italic: cell.Flags&FlagItalic != 0,
				})
				s.SetFillColor(accent)
				s.FillText(string(cell.Rune), x, y+float64(r.metrics.Baseline))
			}
		}
	}
}

// startBlink launches the blink timer. Callers hold r.mu.
func (r *Renderer) startBlink() {
	if r.blinkStop != nil {
		return
	}
	stop := make(chan struct{})
	r.blinkStop = stop
	go func() {
		ticker := time.NewTicker(blinkInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.mu.Lock()
				r.cursorVisible = !r.cursorVisible
				redraw := r.redraw
				r.mu.Unlock()
				if redraw != nil {
					redraw()
				}
			case <-stop:
				return
			}
		}
	}()
}

// stopBlink halts the blink timer. Callers hold r.mu.
func (r *Renderer) stopBlink() {
	if r.blinkStop != nil {
		close(r.blinkStop)
		r.blinkStop = nil
	}
}
