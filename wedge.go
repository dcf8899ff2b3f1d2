package termcanvas

import "math"

// drawCornerTriangle renders U+25E2–25E5: filled right triangles whose
// vertices are three cell corners.
func drawCornerTriangle(g *glyphContext, r rune) {
	switch r {
	case 0x25E2: // ◢ lower right
		g.fillTriangle(g.w, 0, g.w, g.h, 0, g.h)
	case 0x25E3: // ◣ lower left
		g.fillTriangle(0, 0, 0, g.h, g.w, g.h)
	case 0x25E4: // ◤ upper left
		g.fillTriangle(0, 0, g.w, 0, 0, g.h)
	case 0x25E5: // ◥ upper right
		g.fillTriangle(0, 0, g.w, 0, g.w, g.h)
	}
}

// drawPowerlineGlyph renders the powerline separators and the directional
// triangles: two cell corners plus the midpoint of the opposite side. The
// round powerline variants are filled half-discs.
func drawPowerlineGlyph(g *glyphContext, r rune) {
	switch r {
	case 0xE0B0: // right-pointing solid separator
		g.fillTriangle(0, 0, g.w, g.h/2, 0, g.h)
	case 0xE0B2: // left-pointing solid separator
		g.fillTriangle(g.w, 0, 0, g.h/2, g.w, g.h)
	case 0xE0B4: // right half-disc
		radius := math.Min(g.w, g.h/2)
		s := g.s
		s.BeginPath()
		s.MoveTo(g.x, g.y)
		s.Arc(g.x, g.y+g.h/2, radius, 1.5*math.Pi, 0.5*math.Pi, false)
		s.ClosePath()
		s.Fill()
	case 0xE0B6: // left half-disc
		radius := math.Min(g.w, g.h/2)
		s := g.s
		s.BeginPath()
		s.MoveTo(g.x+g.w, g.y)
		s.Arc(g.x+g.w, g.y+g.h/2, radius, 1.5*math.Pi, 0.5*math.Pi, true)
		s.ClosePath()
		s.Fill()
	case 0x25B2: // ▲
		g.fillTriangle(g.w/2, 0, 0, g.h, g.w, g.h)
	case 0x25BC: // ▼
		g.fillTriangle(0, 0, g.w, 0, g.w/2, g.h)
	case 0x25B6, 0x25BA: // ▶ ►
		g.fillTriangle(0, 0, g.w, g.h/2, 0, g.h)
	case 0x25C0, 0x25C4: // ◀ ◄
		g.fillTriangle(g.w, 0, 0, g.h/2, g.w, g.h)
	}
}

// drawWedgeGlyph renders U+1FB3C–1FB8B. The eighth-block sub-ranges
// (U+1FB70 onward) follow the Legacy Computing table; the triangular
// sub-ranges below them use the parametric small/half/large corner-wedge
// approximation.
func drawWedgeGlyph(g *glyphContext, r rune) {
	if r >= 0x1FB70 {
		drawEighthBlock(g, r)
		return
	}
	if r >= 0x1FB68 && r <= 0x1FB6F {
		drawEdgeTriangle(g, int(r-0x1FB68))
		return
	}
	drawCornerWedge(g, int(r-0x1FB3C))
}

// drawCornerWedge approximates U+1FB3C–1FB67: triangular fills anchored at
// one cell corner, cycling through small (1/3), half (1/2) and large (2/3)
// size factors along each sub-range.
func drawCornerWedge(g *glyphContext, idx int) {
	sizes := [3]float64{1.0 / 3, 0.5, 2.0 / 3}
	quadrant := idx / 11 // lower-left, lower-right, upper-left, upper-right
	step := idx % 11
	f := sizes[step%3]
	tall := step >= 6 // later steps rise the full cell height

	fw := g.w * f
	fh := g.h * f
	if tall {
		fh = g.h
	}
	switch quadrant {
	case 0: // anchored lower left
		g.fillTriangle(0, g.h-fh, 0, g.h, fw, g.h)
	case 1: // anchored lower right
		g.fillTriangle(g.w, g.h-fh, g.w, g.h, g.w-fw, g.h)
	case 2: // anchored upper left
		g.fillTriangle(0, fh, 0, 0, fw, 0)
	default: // anchored upper right
		g.fillTriangle(g.w, fh, g.w, 0, g.w-fw, 0)
	}
}

// drawEdgeTriangle renders U+1FB68–1FB6F: triangles from one cell edge to
// the center, in left/up/right/down order with inverse variants.
func drawEdgeTriangle(g *glyphContext, idx int) {
	cx := g.w / 2
	cy := g.h / 2
	switch idx % 4 {
	case 0: // from left edge
		g.fillTriangle(0, 0, cx, cy, 0, g.h)
	case 1: // from top edge
		g.fillTriangle(0, 0, g.w, 0, cx, cy)
	case 2: // from right edge
		g.fillTriangle(g.w, 0, g.w, g.h, cx, cy)
	case 3: // from bottom edge
		g.fillTriangle(0, g.h, cx, cy, g.w, g.h)
	}
	if idx >= 4 {
		// Inverse variants additionally fill the upper-right diagonal half
		// of the cell, the same half for all four directions.
		g.fillTriangle(0, 0, g.w, 0, g.w, g.h)
	}
}

// drawEighthBlock renders the U+1FB70–1FB8B eighth-block variants.
func drawEighthBlock(g *glyphContext, r rune) {
	eighthW := func(n int) float64 { return math.Round(g.w * float64(n) / 8) }
	eighthH := func(n int) float64 { return math.Round(g.h * float64(n) / 8) }
	switch {
	case r >= 0x1FB70 && r <= 0x1FB75: // vertical eighth columns 2..7
		n := int(r-0x1FB70) + 1
		g.fillRect(eighthW(n), 0, eighthW(n+1)-eighthW(n), g.h)
	case r >= 0x1FB76 && r <= 0x1FB7B: // horizontal eighth rows 2..7
		n := int(r-0x1FB76) + 1
		g.fillRect(0, eighthH(n), g.w, eighthH(n+1)-eighthH(n))
	case r >= 0x1FB7C && r <= 0x1FB7F: // corner pairs of edge eighths
		idx := int(r - 0x1FB7C)
		if idx == 0 || idx == 1 { // left edge
			g.fillRect(0, 0, eighthW(1), g.h)
		} else { // right edge
			g.fillRect(g.w-eighthW(1), 0, eighthW(1), g.h)
		}
		if idx == 0 || idx == 3 { // lower edge
			g.fillRect(0, g.h-eighthH(1), g.w, eighthH(1))
		} else { // upper edge
			g.fillRect(0, 0, g.w, eighthH(1))
		}
	case r >= 0x1FB80 && r <= 0x1FB81: // upper+lower eighth combos
		g.fillRect(0, 0, g.w, eighthH(1))
		g.fillRect(0, g.h-eighthH(1), g.w, eighthH(1))
		if r == 0x1FB81 { // plus the third and fifth eighth rows
			g.fillRect(0, eighthH(2), g.w, eighthH(3)-eighthH(2))
			g.fillRect(0, eighthH(4), g.w, eighthH(5)-eighthH(4))
		}
	case r >= 0x1FB82 && r <= 0x1FB86: // upper N/8 blocks: 2,3,5,6,7
		n := [5]int{2, 3, 5, 6, 7}[r-0x1FB82]
		g.fillRect(0, 0, g.w, eighthH(n))
	case r >= 0x1FB87 && r <= 0x1FB8B: // right N/8 blocks: 2,3,5,6,7
		n := [5]int{2, 3, 5, 6, 7}[r-0x1FB87]
		g.fillRect(g.w-eighthW(n), 0, eighthW(n), g.h)
	}
}
