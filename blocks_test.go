package termcanvas

import "testing"

func TestFullBlockTilesSolid(t *testing.T) {
	s := glyphTestSurface(2)
	drawGlyph(s, familyBlock, 0x2588, 0, 0, 10, 20)
	drawGlyph(s, familyBlock, 0x2588, 10, 0, 10, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if s.at(x, y) != white {
				t.Fatalf("U+2588 tile has hole at (%d,%d)", x, y)
			}
		}
	}
}

func TestUpperHalfBlock(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyBlock, 0x2580, 0, 0, 10, 20) // ▀
	if s.at(5, 0) != white || s.at(5, 9) != white {
		t.Error("upper half not filled")
	}
	if s.at(5, 10) == white || s.at(5, 19) == white {
		t.Error("lower half should stay empty")
	}
}

func TestLowerEighths(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyBlock, 0x2582, 0, 0, 10, 20) // ▂ lower quarter
	// round(20*2/8) = 5: rows 15..19
	if s.at(5, 15) != white || s.at(5, 19) != white {
		t.Error("lower quarter not filled")
	}
	if s.at(5, 14) == white {
		t.Error("lower quarter overfilled")
	}
}

func TestLeftEighth(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyBlock, 0x258F, 0, 0, 10, 20) // ▏ left eighth
	// round(10/8) = 1: column 0 only
	if s.at(0, 10) != white {
		t.Error("left eighth missing")
	}
	if s.at(1, 10) == white {
		t.Error("left eighth too wide")
	}
}

func TestQuadrants(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyBlock, 0x259A, 0, 0, 10, 20) // ▚ tl+br
	if s.at(2, 5) != white || s.at(7, 15) != white {
		t.Error("▚ quadrants missing")
	}
	if s.at(7, 5) == white || s.at(2, 15) == white {
		t.Error("▚ filled the wrong quadrants")
	}
}

func TestQuadrantsAbsorbRemainder(t *testing.T) {
	// Odd cell sizes: the second half takes the extra pixel so the four
	// quadrant glyphs together still cover the cell.
	s := newTestSurface(9, 19)
	s.SetFillColor(white)
	drawGlyph(s, familyBlock, 0x2598, 0, 0, 9, 19) // ▘ tl
	drawGlyph(s, familyBlock, 0x259D, 0, 0, 9, 19) // ▝ tr
	drawGlyph(s, familyBlock, 0x2596, 0, 0, 9, 19) // ▖ bl
	drawGlyph(s, familyBlock, 0x2597, 0, 0, 9, 19) // ▗ br
	for y := 0; y < 19; y++ {
		for x := 0; x < 9; x++ {
			if s.at(x, y) != white {
				t.Fatalf("quadrant union leaves hole at (%d,%d)", x, y)
			}
		}
	}
}

func TestShadesUseGlobalAlpha(t *testing.T) {
	for r, want := range map[rune]float64{
		0x2591: 0.25,
		0x2592: 0.5,
		0x2593: 0.75,
	} {
		s := glyphTestSurface(1)
		drawGlyph(s, familyBlock, r, 0, 0, 10, 20)
		if len(s.rects) != 1 {
			t.Fatalf("shade %U drew %d rects, want 1", r, len(s.rects))
		}
		if s.rects[0].alpha != want {
			t.Errorf("shade %U alpha %v, want %v", r, s.rects[0].alpha, want)
		}
		if s.alpha != 1 {
			t.Errorf("shade %U leaked global alpha %v", r, s.alpha)
		}
	}
}

func TestWidthZeroRectIgnored(t *testing.T) {
	s := glyphTestSurface(1)
	g := &glyphContext{s: s, w: 10, h: 20}
	g.fillRect(0, 0, 0, 5)
	g.fillRect(0, 0, -1, 5)
	if len(s.rects) != 0 {
		t.Errorf("degenerate rects were drawn: %d", len(s.rects))
	}
}
