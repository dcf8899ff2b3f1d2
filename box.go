package termcanvas

import "math"

// lineStyle is the weight of one directional stub of a box-drawing glyph.
type lineStyle uint8

const (
	styleNone lineStyle = iota
	styleLight
	styleHeavy
	styleDouble
)

// boxStubs decomposes a box-drawing codepoint into four directional stubs.
type boxStubs struct {
	up, right, down, left lineStyle
}

func stubs(up, right, down, left lineStyle) boxStubs {
	return boxStubs{up: up, right: right, down: down, left: left}
}

// boxSegments covers U+2500–257F except the dashed (U+2504–250B,
// U+254C–254F), rounded (U+256D–2570) and diagonal (U+2571–2573)
// codepoints, which have their own routines.
var boxSegments = map[rune]boxStubs{
	0x2500: stubs(0, 1, 0, 1), // ─
	0x2501: stubs(0, 2, 0, 2), // ━
	0x2502: stubs(1, 0, 1, 0), // │
	0x2503: stubs(2, 0, 2, 0), // ┃
	0x250C: stubs(0, 1, 1, 0), // ┌
	0x250D: stubs(0, 2, 1, 0), // ┍
	0x250E: stubs(0, 1, 2, 0), // ┎
	0x250F: stubs(0, 2, 2, 0), // ┏
	0x2510: stubs(0, 0, 1, 1), // ┐
	0x2511: stubs(0, 0, 1, 2), // ┑
	0x2512: stubs(0, 0, 2, 1), // ┒
	0x2513: stubs(0, 0, 2, 2), // ┓
	0x2514: stubs(1, 1, 0, 0), // └
	0x2515: stubs(1, 2, 0, 0), // ┕
	0x2516: stubs(2, 1, 0, 0), // ┖
	0x2517: stubs(2, 2, 0, 0), // ┗
	0x2518: stubs(1, 0, 0, 1), // ┘
	0x2519: stubs(1, 0, 0, 2), // ┙
	0x251A: stubs(2, 0, 0, 1), // ┚
	0x251B: stubs(2, 0, 0, 2), // ┛
	0x251C: stubs(1, 1, 1, 0), // ├
	0x251D: stubs(1, 2, 1, 0), // ┝
	0x251E: stubs(2, 1, 1, 0), // ┞
	0x251F: stubs(1, 1, 2, 0), // ┟
	0x2520: stubs(2, 1, 2, 0), // ┠
	0x2521: stubs(2, 2, 1, 0), // ┡
	0x2522: stubs(1, 2, 2, 0), // ┢
	0x2523: stubs(2, 2, 2, 0), // ┣
	0x2524: stubs(1, 0, 1, 1), // ┤
	0x2525: stubs(1, 0, 1, 2), // ┥
	0x2526: stubs(2, 0, 1, 1), // ┦
	0x2527: stubs(1, 0, 2, 1), // ┧
	0x2528: stubs(2, 0, 2, 1), // ┨
	0x2529: stubs(2, 0, 1, 2), // ┩
	0x252A: stubs(1, 0, 2, 2), // ┪
	0x252B: stubs(2, 0, 2, 2), // ┫
	0x252C: stubs(0, 1, 1, 1), // ┬
	0x252D: stubs(0, 1, 1, 2), // ┭
	0x252E: stubs(0, 2, 1, 1), // ┮
	0x252F: stubs(0, 2, 1, 2), // ┯
	0x2530: stubs(0, 1, 2, 1), // ┰
	0x2531: stubs(0, 1, 2, 2), // ┱
	0x2532: stubs(0, 2, 2, 1), // ┲
	0x2533: stubs(0, 2, 2, 2), // ┳
	0x2534: stubs(1, 1, 0, 1), // ┴
	0x2535: stubs(1, 1, 0, 2), // ┵
	0x2536: stubs(1, 2, 0, 1), // ┶
	0x2537: stubs(1, 2, 0, 2), // ┷
	0x2538: stubs(2, 1, 0, 1), // ┸
	0x2539: stubs(2, 1, 0, 2), // ┹
	0x253A: stubs(2, 2, 0, 1), // ┺
	0x253B: stubs(2, 2, 0, 2), // ┻
	0x253C: stubs(1, 1, 1, 1), // ┼
	0x253D: stubs(1, 1, 1, 2), // ┽
	0x253E: stubs(1, 2, 1, 1), // ┾
	0x253F: stubs(1, 2, 1, 2), // ┿
	0x2540: stubs(2, 1, 1, 1), // ╀
	0x2541: stubs(1, 1, 2, 1), // ╁
	0x2542: stubs(2, 1, 2, 1), // ╂
	0x2543: stubs(2, 1, 1, 2), // ╃
	0x2544: stubs(2, 2, 1, 1), // ╄
	0x2545: stubs(1, 1, 2, 2), // ╅
	0x2546: stubs(1, 2, 2, 1), // ╆
	0x2547: stubs(2, 2, 1, 2), // ╇
	0x2548: stubs(1, 2, 2, 2), // ╈
	0x2549: stubs(2, 1, 2, 2), // ╉
	0x254A: stubs(2, 2, 2, 1), // ╊
	0x254B: stubs(2, 2, 2, 2), // ╋
	0x2550: stubs(0, 3, 0, 3), // ═
	0x2551: stubs(3, 0, 3, 0), // ║
	0x2552: stubs(0, 3, 1, 0), // ╒
	0x2553: stubs(0, 1, 3, 0), // ╓
	0x2554: stubs(0, 3, 3, 0), // ╔
	0x2555: stubs(0, 0, 1, 3), // ╕
	0x2556: stubs(0, 0, 3, 1), // ╖
	0x2557: stubs(0, 0, 3, 3), // ╗
	0x2558: stubs(1, 3, 0, 0), // ╘
	0x2559: stubs(3, 1, 0, 0), // ╙
	0x255A: stubs(3, 3, 0, 0), // ╚
	0x255B: stubs(1, 0, 0, 3), // ╛
	0x255C: stubs(3, 0, 0, 1), // ╜
	0x255D: stubs(3, 0, 0, 3), // ╝
	0x255E: stubs(1, 3, 1, 0), // ╞
	0x255F: stubs(3, 1, 3, 0), // ╟
	0x2560: stubs(3, 3, 3, 0), // ╠
	0x2561: stubs(1, 0, 1, 3), // ╡
	0x2562: stubs(3, 0, 3, 1), // ╢
	0x2563: stubs(3, 0, 3, 3), // ╣
	0x2564: stubs(0, 3, 1, 3), // ╤
	0x2565: stubs(0, 1, 3, 1), // ╥
	0x2566: stubs(0, 3, 3, 3), // ╦
	0x2567: stubs(1, 3, 0, 3), // ╧
	0x2568: stubs(3, 1, 0, 1), // ╨
	0x2569: stubs(3, 3, 0, 3), // ╩
	0x256A: stubs(1, 3, 1, 3), // ╪
	0x256B: stubs(3, 1, 3, 1), // ╫
	0x256C: stubs(3, 3, 3, 3), // ╬
	0x2574: stubs(0, 0, 0, 1), // ╴
	0x2575: stubs(1, 0, 0, 0), // ╵
	0x2576: stubs(0, 1, 0, 0), // ╶
	0x2577: stubs(0, 0, 1, 0), // ╷
	0x2578: stubs(0, 0, 0, 2), // ╸
	0x2579: stubs(2, 0, 0, 0), // ╹
	0x257A: stubs(0, 2, 0, 0), // ╺
	0x257B: stubs(0, 0, 2, 0), // ╻
	0x257C: stubs(0, 2, 0, 1), // ╼
	0x257D: stubs(1, 0, 2, 0), // ╽
	0x257E: stubs(0, 1, 0, 2), // ╾
	0x257F: stubs(2, 0, 1, 0), // ╿
}

func drawBoxGlyph(g *glyphContext, r rune) {
	if r >= 0x2571 && r <= 0x2573 {
		drawBoxDiagonal(g, r)
		return
	}
	st, ok := boxSegments[r]
	if !ok {
		return
	}
	drawBoxStubs(g, st)
}

// stubThickness is the band thickness a stub paints with. Doubles report
// the thickness of each of their two sub-lines.
func (g *glyphContext) stubThickness(s lineStyle) float64 {
	switch s {
	case styleLight:
		return lightThickness(g.h)
	case styleHeavy:
		return heavyThickness(g.h)
	case styleDouble:
		return doubleLineThickness(g.h)
	}
	return 0
}

// stubHalfExtent is how far a stub's band reaches from the cell's center
// line: half its thickness, or half the gap plus one line width for doubles.
func (g *glyphContext) stubHalfExtent(s lineStyle) float64 {
	switch s {
	case styleLight, styleHeavy:
		return g.stubThickness(s) / 2
	case styleDouble:
		return doubleLineGap(g.h)/2 + doubleLineThickness(g.h)
	}
	return 0
}

// stubReach computes how far past the cell center a stub extends. With an
// opposite stub of a different style, each side overlaps the center by half
// its own thickness so mixed-weight lines join cleanly. With no opposite
// stub the segment stops at the far edge of the perpendicular band (or the
// center exactly when the glyph has no perpendicular stubs), which keeps
// L and T corners free of bumps.
func (g *glyphContext) stubReach(own, opposite lineStyle, perpHalf float64) float64 {
	if opposite != styleNone {
		return g.stubThickness(own) / 2
	}
	return perpHalf
}

func drawBoxStubs(g *glyphContext, st boxStubs) {
	cx := math.Round(g.w / 2)
	cy := math.Round(g.h / 2)
	vertHalf := math.Max(g.stubHalfExtent(st.up), g.stubHalfExtent(st.down))
	horizHalf := math.Max(g.stubHalfExtent(st.left), g.stubHalfExtent(st.right))

	// Horizontal axis. Matching opposite styles collapse into one
	// full-edge band so no seam appears at the cell center.
	if st.left == st.right && st.left != styleNone {
		g.drawHorizSegment(st.left, 0, g.w)
	} else {
		if st.left != styleNone {
			g.drawHorizSegment(st.left, 0, cx+g.stubReach(st.left, st.right, vertHalf))
		}
		if st.right != styleNone {
			g.drawHorizSegment(st.right, cx-g.stubReach(st.right, st.left, vertHalf), g.w)
		}
	}

	// Vertical axis.
	if st.up == st.down && st.up != styleNone {
		g.drawVertSegment(st.up, 0, g.h)
	} else {
		if st.up != styleNone {
			g.drawVertSegment(st.up, 0, cy+g.stubReach(st.up, st.down, horizHalf))
		}
		if st.down != styleNone {
			g.drawVertSegment(st.down, cy-g.stubReach(st.down, st.up, horizHalf), g.h)
		}
	}
}

func (g *glyphContext) drawHorizSegment(s lineStyle, x0, x1 float64) {
	if x1 <= x0 {
		return
	}
	if s == styleDouble {
		dt := doubleLineThickness(g.h)
		gap := doubleLineGap(g.h)
		top := math.Round(g.h/2 - gap/2 - dt)
		bottom := math.Round(g.h/2 + gap/2)
		g.fillRect(x0, top, x1-x0, dt)
		g.fillRect(x0, bottom, x1-x0, dt)
		return
	}
	t := g.stubThickness(s)
	g.fillRect(x0, math.Round((g.h-t)/2), x1-x0, t)
}

func (g *glyphContext) drawVertSegment(s lineStyle, y0, y1 float64) {
	if y1 <= y0 {
		return
	}
	if s == styleDouble {
		dt := doubleLineThickness(g.h)
		gap := doubleLineGap(g.h)
		left := math.Round(g.w/2 - gap/2 - dt)
		right := math.Round(g.w/2 + gap/2)
		g.fillRect(left, y0, dt, y1-y0)
		g.fillRect(right, y0, dt, y1-y0)
		return
	}
	t := g.stubThickness(s)
	g.fillRect(math.Round((g.w-t)/2), y0, t, y1-y0)
}

// drawBoxDiagonal strokes the U+2571–2573 diagonals corner to corner.
func drawBoxDiagonal(g *glyphContext, r rune) {
	s := g.s
	s.SetLineWidth(lightThickness(g.h))
	s.SetLineCap(CapButt)
	if r == 0x2571 || r == 0x2573 { // ╱ and the rising half of ╳
		s.BeginPath()
		s.MoveTo(g.x, g.y+g.h)
		s.LineTo(g.x+g.w, g.y)
		s.Stroke()
	}
	if r == 0x2572 || r == 0x2573 { // ╲ and the falling half of ╳
		s.BeginPath()
		s.MoveTo(g.x, g.y)
		s.LineTo(g.x+g.w, g.y+g.h)
		s.Stroke()
	}
}

// drawDashedGlyph renders the dashed box-drawing variants: N dashes along
// the axis, dash width axisLen/(2N-1), equal interleaved gaps.
func drawDashedGlyph(g *glyphContext, r rune) {
	var n int
	var heavy, vertical bool
	switch r {
	case 0x2504: // ┄
		n = 3
	case 0x2505: // ┅
		n, heavy = 3, true
	case 0x2506: // ┆
		n, vertical = 3, true
	case 0x2507: // ┇
		n, heavy, vertical = 3, true, true
	case 0x2508: // ┈
		n = 4
	case 0x2509: // ┉
		n, heavy = 4, true
	case 0x250A: // ┊
		n, vertical = 4, true
	case 0x250B: // ┋
		n, heavy, vertical = 4, true, true
	case 0x254C: // ╌
		n = 2
	case 0x254D: // ╍
		n, heavy = 2, true
	case 0x254E: // ╎
		n, vertical = 2, true
	case 0x254F: // ╏
		n, heavy, vertical = 2, true, true
	default:
		return
	}

	t := lightThickness(g.h)
	if heavy {
		t = heavyThickness(g.h)
	}
	axis := g.w
	if vertical {
		axis = g.h
	}
	dash := axis / float64(2*n-1)
	for i := 0; i < n; i++ {
		pos := float64(2*i) * dash
		if vertical {
			g.fillRect(math.Round((g.w-t)/2), pos, t, dash)
		} else {
			g.fillRect(pos, math.Round((g.h-t)/2), dash, t)
		}
	}
}

// drawRoundedCorner renders U+256D–2570: a quarter arc joining one
// horizontal and one vertical stub, with straight extensions from the arc
// endpoints to the cell edges.
func drawRoundedCorner(g *glyphContext, r rune) {
	t := lightThickness(g.h)
	radius := math.Min(g.w, g.h)/2 - t/2
	if radius < 1 {
		radius = 1
	}
	cx := g.x + g.w/2
	cy := g.y + g.h/2

	s := g.s
	s.SetLineWidth(t)
	s.SetLineCap(CapSquare)
	s.BeginPath()
	switch r {
	case 0x256D: // ╭ joins down and right
		s.MoveTo(g.x+g.w, cy)
		s.LineTo(cx+radius, cy)
		s.Arc(cx+radius, cy+radius, radius, 1.5*math.Pi, math.Pi, true)
		s.LineTo(cx, g.y+g.h)
	case 0x256E: // ╮ joins down and left
		s.MoveTo(g.x, cy)
		s.LineTo(cx-radius, cy)
		s.Arc(cx-radius, cy+radius, radius, 1.5*math.Pi, 2*math.Pi, false)
		s.LineTo(cx, g.y+g.h)
	case 0x256F: // ╯ joins up and left
		s.MoveTo(g.x, cy)
		s.LineTo(cx-radius, cy)
		s.Arc(cx-radius, cy-radius, radius, 0.5*math.Pi, 0, true)
		s.LineTo(cx, g.y)
	case 0x2570: // ╰ joins up and right
		s.MoveTo(g.x+g.w, cy)
		s.LineTo(cx+radius, cy)
		s.Arc(cx+radius, cy-radius, radius, 0.5*math.Pi, math.Pi, false)
		s.LineTo(cx, g.y)
	}
	s.Stroke()
}
