package termcanvas

import "math"

// glyphContext carries the cell-aligned drawing frame for one procedural
// glyph: origin and size in CSS pixels (wide cells pass a doubled width).
// All family routines derive their geometry from it so adjacent cells tile
// without sub-pixel gaps.
type glyphContext struct {
	s    Surface
	x, y float64
	w, h float64
}

func (g *glyphContext) fillRect(lx, ly, lw, lh float64) {
	if lw <= 0 || lh <= 0 {
		return
	}
	g.s.FillRect(g.x+lx, g.y+ly, lw, lh)
}

func (g *glyphContext) fillTriangle(x0, y0, x1, y1, x2, y2 float64) {
	s := g.s
	s.BeginPath()
	s.MoveTo(g.x+x0, g.y+y0)
	s.LineTo(g.x+x1, g.y+y1)
	s.LineTo(g.x+x2, g.y+y2)
	s.ClosePath()
	s.Fill()
}

// drawGlyph dispatches a classified codepoint to its family routine.
// Returns false when the codepoint must be drawn through the host text API.
func drawGlyph(s Surface, fam glyphFamily, r rune, x, y, w, h float64) bool {
	g := &glyphContext{s: s, x: x, y: y, w: w, h: h}
	switch fam {
	case familyBox:
		drawBoxGlyph(g, r)
	case familyDashed:
		drawDashedGlyph(g, r)
	case familyRounded:
		drawRoundedCorner(g, r)
	case familyBlock:
		drawBlockGlyph(g, r)
	case familyBraille:
		drawBrailleGlyph(g, r)
	case familySextant:
		drawSextantGlyph(g, r)
	case familyOctant:
		drawOctantGlyph(g, r)
	case familyWedge:
		drawWedgeGlyph(g, r)
	case familyMosaic:
		drawMosaicGlyph(g, r)
	case familyCornerTriangle:
		drawCornerTriangle(g, r)
	case familyPowerline:
		drawPowerlineGlyph(g, r)
	default:
		return false
	}
	return true
}

// Line weights scale with the cell height so glyphs stay proportionate
// across font sizes. Doubles use two thin lines around a wider gap.

func lightThickness(h float64) float64 {
	return math.Max(1, math.Round(h/12))
}

func heavyThickness(h float64) float64 {
	return math.Max(2, math.Round(h/6))
}

func doubleLineThickness(h float64) float64 {
	return math.Max(1, math.Round(h/16))
}

func doubleLineGap(h float64) float64 {
	return math.Max(2, math.Round(h/8))
}
