package termcanvas

import "math"

// drawBrailleGlyph renders U+2800–28FF. The low 8 bits of the codepoint
// offset are the dot bitmap: bits 1–6 are the upper 3x2 dots in
// column-major order, bits 7–8 the bottom row. Dots are laid out as a
// 2x4 grid of circles inside an inner rectangle padded 15% horizontally
// and 10% vertically.
func drawBrailleGlyph(g *glyphContext, r rune) {
	bits := uint8(r - 0x2800)
	if bits == 0 {
		return
	}

	innerX := g.w * 0.15
	innerY := g.h * 0.10
	innerW := g.w - 2*innerX
	innerH := g.h - 2*innerY
	radius := 0.9 * math.Min(innerW/4, innerH/8)
	if radius < 0.5 {
		radius = 0.5
	}

	// dot index -> (column, row) per the braille dot numbering
	dotAt := [8][2]int{
		{0, 0}, {0, 1}, {0, 2}, // dots 1-3, left column
		{1, 0}, {1, 1}, {1, 2}, // dots 4-6, right column
		{0, 3}, {1, 3}, // dots 7-8, bottom row
	}
	for i := 0; i < 8; i++ {
		if bits&(1<<i) == 0 {
			continue
		}
		cx := g.x + innerX + float64(dotAt[i][0])*innerW
		cy := g.y + innerY + float64(dotAt[i][1])*innerH/3
		g.s.BeginPath()
		g.s.Arc(cx, cy, radius, 0, 2*math.Pi, false)
		g.s.Fill()
	}
}
