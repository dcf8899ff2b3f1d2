package termcanvas

import "math"

// Sextants (U+1FB00–1FB3B) and octants (U+1CD00–1CDE5) paint bit patterns
// onto 2x3 and 2x4 grids. The Unicode blocks omit patterns already encoded
// elsewhere (empty, full, half blocks, quadrants), so the codepoint offset
// is mapped through a skip list to recover the raw bitmap.

// sextantMask recovers the row-major 6-bit pattern (bit 0 = top left).
// The block skips the all-off, left-half (0b010101), right-half (0b101010)
// and all-on patterns.
func sextantMask(r rune) uint8 {
	m := uint8(r-0x1FB00) + 1
	if m >= 0b010101 {
		m++
	}
	if m >= 0b101010 {
		m++
	}
	return m
}

func drawSextantGlyph(g *glyphContext, r rune) {
	mask := sextantMask(r)
	colW := math.Ceil(g.w / 2)
	rowH := math.Ceil(g.h / 3)
	for row := 0; row < 3; row++ {
		for col := 0; col < 2; col++ {
			if mask&(1<<(row*2+col)) == 0 {
				continue
			}
			x := float64(col) * colW
			y := float64(row) * rowH
			w := colW
			h := rowH
			if col == 1 {
				w = g.w - colW
			}
			if row == 2 {
				h = g.h - 2*rowH
			}
			g.fillRect(x, y, w, h)
		}
	}
}

// octantExcluded holds the 2x4 patterns the supplement encodes elsewhere:
// empty, full, everything expressible as quadrants, the vertical quarter
// and three-quarter blocks, and the four single-corner octants.
// The exact table should be validated against the Symbols for Legacy
// Computing Supplement; the skip mapping below is an ordered approximation.
var octantExcluded = func() map[uint8]bool {
	ex := map[uint8]bool{0x00: true, 0xFF: true}
	quads := []uint8{0x05, 0x0A, 0x50, 0xA0} // tl, tr, bl, br as bit pairs
	for m := 1; m < 16; m++ {
		var p uint8
		for i, q := range quads {
			if m&(1<<i) != 0 {
				p |= q
			}
		}
		ex[p] = true
	}
	for _, p := range []uint8{0x03, 0x3F, 0xC0, 0xFC} { // quarter blocks
		ex[p] = true
	}
	for _, p := range []uint8{0x01, 0x02, 0x40, 0x80} { // corner singles
		ex[p] = true
	}
	return ex
}()

// octantPatterns assigns the remaining patterns to codepoints in order.
var octantPatterns = func() []uint8 {
	var out []uint8
	for p := 1; p < 255; p++ {
		if !octantExcluded[uint8(p)] {
			out = append(out, uint8(p))
		}
	}
	return out
}()

// octantMask recovers the row-major 8-bit pattern (bit 0 = top left).
func octantMask(r rune) uint8 {
	idx := int(r - 0x1CD00)
	if idx < 0 || idx >= len(octantPatterns) {
		return 0
	}
	return octantPatterns[idx]
}

func drawOctantGlyph(g *glyphContext, r rune) {
	mask := octantMask(r)
	colW := math.Ceil(g.w / 2)
	rowH := math.Ceil(g.h / 4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 2; col++ {
			if mask&(1<<(row*2+col)) == 0 {
				continue
			}
			x := float64(col) * colW
			y := float64(row) * rowH
			w := colW
			h := rowH
			if col == 1 {
				w = g.w - colW
			}
			if row == 3 {
				h = g.h - 3*rowH
			}
			g.fillRect(x, y, w, h)
		}
	}
}

// drawMosaicGlyph approximates the smooth mosaics U+1FB90–1FBAF with
// corner-diagonal triangles and half-block pairs chosen by family offset.
// Only the seamless-tiling property is load-bearing here; the precise
// shapes should be verified against the Legacy Computing block.
func drawMosaicGlyph(g *glyphContext, r rune) {
	off := int(r - 0x1FB90)
	switch off % 8 {
	case 0: // lower-left diagonal half
		g.fillTriangle(0, 0, 0, g.h, g.w, g.h)
	case 1: // lower-right diagonal half
		g.fillTriangle(g.w, 0, 0, g.h, g.w, g.h)
	case 2: // upper-left diagonal half
		g.fillTriangle(0, 0, g.w, 0, 0, g.h)
	case 3: // upper-right diagonal half
		g.fillTriangle(0, 0, g.w, 0, g.w, g.h)
	case 4: // upper half
		g.fillRect(0, 0, g.w, math.Round(g.h/2))
	case 5: // lower half
		g.fillRect(0, math.Round(g.h/2), g.w, g.h-math.Round(g.h/2))
	case 6: // left half
		g.fillRect(0, 0, math.Round(g.w/2), g.h)
	case 7: // right half
		g.fillRect(math.Round(g.w/2), 0, g.w-math.Round(g.w/2), g.h)
	}
}
