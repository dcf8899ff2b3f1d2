package termcanvas

import "testing"

func TestClassifyRanges(t *testing.T) {
	cases := []struct {
		r    rune
		want glyphFamily
	}{
		{0x2500, familyBox},
		{0x257F, familyBox},
		{0x2504, familyDashed},
		{0x250B, familyDashed},
		{0x254C, familyDashed},
		{0x254F, familyDashed},
		{0x256D, familyRounded},
		{0x2570, familyRounded},
		{0x2580, familyBlock},
		{0x259F, familyBlock},
		{0x2800, familyBraille},
		{0x28FF, familyBraille},
		{0x1FB00, familySextant},
		{0x1FB3B, familySextant},
		{0x1FB3C, familyWedge},
		{0x1FB8B, familyWedge},
		{0x1FB90, familyMosaic},
		{0x1FBAF, familyMosaic},
		{0x1CD00, familyOctant},
		{0x1CDE5, familyOctant},
		{0x25E2, familyCornerTriangle},
		{0x25E5, familyCornerTriangle},
		{0xE0B0, familyPowerline},
		{0xE0B2, familyPowerline},
		{0xE0B4, familyPowerline},
		{0xE0B6, familyPowerline},
		{0x25B2, familyPowerline},
		{0x25BC, familyPowerline},
	}
	for _, c := range cases {
		if got := classifyRune(c.r); got != c.want {
			t.Errorf("classifyRune(%U) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestClassifyRoundedWinsInsideBoxRange(t *testing.T) {
	for r := rune(0x256D); r <= 0x2570; r++ {
		if got := classifyRune(r); got != familyRounded {
			t.Errorf("classifyRune(%U) = %v, want familyRounded", r, got)
		}
	}
}

func TestClassifyPassthrough(t *testing.T) {
	for _, r := range []rune{'A', 'z', '0', ' ', 0x3042, 0x1F600, 0x25B3, 0x2400} {
		if got := classifyRune(r); got != familyText {
			t.Errorf("classifyRune(%U) = %v, want familyText", r, got)
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	// Every codepoint in the handled blocks classifies without panicking
	// and nothing inside a procedural range falls through to text.
	for r := rune(0x2500); r <= 0x259F; r++ {
		if classifyRune(r) == familyText {
			t.Errorf("classifyRune(%U) fell through to text", r)
		}
	}
	for r := rune(0x1FB00); r <= 0x1FB8B; r++ {
		if classifyRune(r) == familyText {
			t.Errorf("classifyRune(%U) fell through to text", r)
		}
	}
}
