package termcanvas

import "testing"

var white = Color{255, 255, 255}

// glyphTestSurface returns a surface sized for n adjacent 10x20 cells with
// white fill and stroke preloaded.
func glyphTestSurface(cells int) *testSurface {
	s := newTestSurface(cells*10, 20)
	s.SetFillColor(white)
	s.SetStrokeColor(white)
	return s
}

func TestHorizontalLineSeamlessAcrossCells(t *testing.T) {
	s := glyphTestSurface(2)
	drawGlyph(s, familyBox, 0x2500, 0, 0, 10, 20)
	drawGlyph(s, familyBox, 0x2500, 10, 0, 10, 20)

	// light thickness at h=20 is round(20/12)=2, band rows 9..10
	for _, y := range []int{9, 10} {
		for x := 0; x < 20; x++ {
			if s.at(x, y) != white {
				t.Fatalf("gap at (%d,%d) in tiled U+2500 row", x, y)
			}
		}
	}
}

func TestCornerJoinsFollowingLine(t *testing.T) {
	s := glyphTestSurface(2)
	drawGlyph(s, familyBox, 0x250C, 0, 0, 10, 20) // ┌
	drawGlyph(s, familyBox, 0x2500, 10, 0, 10, 20)

	// No gap on the shared edge: the corner's right stub must meet the
	// neighbor's full-width line at x=10.
	for x := 8; x < 20; x++ {
		if s.at(x, 9) != white {
			t.Fatalf("seam at (%d,9) between corner and line", x)
		}
	}
	// The corner's down stub reaches the cell bottom.
	if s.at(5, 19) != white {
		t.Error("down stub of U+250C missing at cell bottom")
	}
	// Nothing paints left of the corner center beyond the stub reach.
	if s.at(0, 9) == white {
		t.Error("U+250C painted a left stub it does not have")
	}
}

func TestVerticalLineSeamlessAcrossRows(t *testing.T) {
	top := glyphTestSurface(1)
	drawGlyph(top, familyBox, 0x2502, 0, 0, 10, 20)
	// vertical light band columns: round((10-2)/2)=4, cols 4..5
	for y := 0; y < 20; y++ {
		if top.at(4, y) != white {
			t.Fatalf("U+2502 column broken at y=%d", y)
		}
	}
}

func TestHeavyIsThickerThanLight(t *testing.T) {
	count := func(r rune) int {
		s := glyphTestSurface(1)
		drawGlyph(s, familyBox, r, 0, 0, 10, 20)
		n := 0
		for y := 0; y < 20; y++ {
			if s.at(5, y) != white {
				continue
			}
			n++
		}
		return n
	}
	light := count(0x2500)
	heavy := count(0x2501)
	if heavy <= light {
		t.Errorf("heavy line %d rows, light %d rows", heavy, light)
	}
}

func TestDoubleLineTwoBands(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyBox, 0x2550, 0, 0, 10, 20) // ═

	// dt = round(20/16) = 1, gap = round(20/8) = 3 (min 2)
	// bands at round(10-1.5-1)=8 and round(10+1.5)=12
	if s.at(5, 8) != white || s.at(5, 12) != white {
		t.Error("double line bands missing")
	}
	if s.at(5, 10) == white {
		t.Error("double line center gap filled")
	}
}

func TestMixedWeightStubsOverlapCenter(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyBox, 0x257C, 0, 0, 10, 20) // ╼ left light, right heavy

	// Both stubs present with different weights: each overlaps the center
	// by half its own thickness, leaving no hole at x=5.
	if s.at(5, 9) != white {
		t.Error("mixed-weight line has a hole at the cell center")
	}
	if s.at(0, 9) != white || s.at(9, 9) != white {
		t.Error("mixed-weight line does not span the cell")
	}
}

func TestHalfLineStopsAtCenter(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyBox, 0x2574, 0, 0, 10, 20) // ╴ left only

	if s.at(0, 9) != white {
		t.Error("U+2574 missing at left edge")
	}
	// No perpendicular stubs and no opposite stub: never past the center.
	if s.at(7, 9) == white {
		t.Error("U+2574 extended past the cell center")
	}
}

func TestCrossFullCoverageThroughCenter(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyBox, 0x253C, 0, 0, 10, 20) // ┼

	for x := 0; x < 10; x++ {
		if s.at(x, 9) != white {
			t.Fatalf("┼ horizontal broken at x=%d", x)
		}
	}
	for y := 0; y < 20; y++ {
		if s.at(4, y) != white {
			t.Fatalf("┼ vertical broken at y=%d", y)
		}
	}
}

func TestDashedLineDashCount(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyDashed, 0x2504, 0, 0, 10, 20) // ┄ triple dash

	if len(s.rects) != 3 {
		t.Fatalf("triple dash drew %d rects, want 3", len(s.rects))
	}
	// dash width = 10 / (2*3-1) = 2
	for _, r := range s.rects {
		if r.w != 2 {
			t.Errorf("dash width %v, want 2", r.w)
		}
	}
}

func TestDashedVerticalHeavy(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyDashed, 0x250B, 0, 0, 10, 20) // ┋ quadruple heavy

	if len(s.rects) != 4 {
		t.Fatalf("quadruple dash drew %d rects, want 4", len(s.rects))
	}
	want := 20.0 / 7 // axisLen / (2N-1)
	for _, r := range s.rects {
		if r.h < want-0.01 || r.h > want+0.01 {
			t.Errorf("dash height %v, want %v", r.h, want)
		}
		if r.w != 3 { // heavy thickness round(20/6)=3
			t.Errorf("dash thickness %v, want 3", r.w)
		}
	}
}

func TestRoundedCornerStrokesArc(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyRounded, 0x256D, 0, 0, 10, 20) // ╭

	if s.strokes != 1 {
		t.Fatalf("rounded corner strokes = %d, want 1", s.strokes)
	}
	// The stub toward the right edge is painted.
	if s.at(9, 10) != white {
		t.Error("rounded corner missing its right extension")
	}
	// The down stub reaches the cell bottom.
	if s.at(5, 19) != white {
		t.Error("rounded corner missing its bottom extension")
	}
	// The opposite corner stays empty.
	if s.at(0, 0) == white {
		t.Error("rounded corner painted the empty quadrant")
	}
}

func TestDiagonalCross(t *testing.T) {
	s := glyphTestSurface(1)
	drawGlyph(s, familyBox, 0x2573, 0, 0, 10, 20) // ╳

	if s.strokes != 2 {
		t.Errorf("╳ strokes = %d, want 2", s.strokes)
	}
	if s.at(5, 10) != white {
		t.Error("╳ missing at the crossing point")
	}
}
