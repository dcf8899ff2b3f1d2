package termcanvas

import "math"

// testSurface is a deterministic software surface for tests: rectangles and
// filled polygons rasterize into a pixel grid at integer resolution, and
// every operation is also recorded so tests can assert on draw traffic.
type testSurface struct {
	w, h  int
	px    []Color
	scale float64
	alpha float64

	fillColor   Color
	strokeColor Color
	lineWidth   float64
	lineCap     LineCap
	font        FontSpec

	// Metrics handed back by MeasureText.
	measure TextMetrics

	rects   []rectOp
	texts   []textOp
	fills   int
	strokes int

	path [][2]float64
	sub  [][][2]float64
}

type rectOp struct {
	x, y, w, h float64
	color      Color
	alpha      float64
}

type textOp struct {
	s    string
	x, y float64
	font FontSpec
	col  Color
}

func newTestSurface(w, h int) *testSurface {
	s := &testSurface{w: w, h: h, scale: 1, alpha: 1}
	s.px = make([]Color, w*h)
	s.measure = TextMetrics{Width: 8, FontAscent: 12, FontDescent: 3}
	return s
}

func (s *testSurface) at(x, y int) Color {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return Color{}
	}
	return s.px[y*s.w+x]
}

func (s *testSurface) set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	if s.alpha < 1 {
		dst := s.px[y*s.w+x]
		a := s.alpha
		c = Color{
			R: uint8(float64(c.R)*a + float64(dst.R)*(1-a) + 0.5),
			G: uint8(float64(c.G)*a + float64(dst.G)*(1-a) + 0.5),
			B: uint8(float64(c.B)*a + float64(dst.B)*(1-a) + 0.5),
		}
	}
	s.px[y*s.w+x] = c
}

func (s *testSurface) SetSize(w, h int) {
	s.w, s.h = w, h
	s.px = make([]Color, w*h)
	s.scale = 1
}

func (s *testSurface) Size() (int, int) { return s.w, s.h }

func (s *testSurface) SetScale(scale float64) { s.scale = scale }

func (s *testSurface) SetFillColor(c Color) { s.fillColor = c }
func (s *testSurface) SetStrokeColor(c Color) { s.strokeColor = c }
func (s *testSurface) SetLineWidth(w float64) { s.lineWidth = w }
func (s *testSurface) SetLineCap(c LineCap) { s.lineCap = c }
func (s *testSurface) SetGlobalAlpha(a float64) {
	s.alpha = math.Min(1, math.Max(0, a))
}
func (s *testSurface) GlobalAlpha() float64 { return s.alpha }

func (s *testSurface) FillRect(x, y, w, h float64) {
	s.rects = append(s.rects, rectOp{x, y, w, h, s.fillColor, s.alpha})
	x0 := int(math.Round(x * s.scale))
	y0 := int(math.Round(y * s.scale))
	x1 := int(math.Round((x + w) * s.scale))
	y1 := int(math.Round((y + h) * s.scale))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.set(px, py, s.fillColor)
		}
	}
}

func (s *testSurface) BeginPath() {
	s.path = nil
	s.sub = nil
}

func (s *testSurface) MoveTo(x, y float64) {
	if len(s.path) > 0 {
		s.sub = append(s.sub, s.path)
	}
	s.path = [][2]float64{{x, y}}
}

func (s *testSurface) LineTo(x, y float64) {
	s.path = append(s.path, [2]float64{x, y})
}

func (s *testSurface) Arc(cx, cy, radius, a0, a1 float64, acw bool) {
	sweep := a1 - a0
	if acw {
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	} else {
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	const steps = 32
	for i := 0; i <= steps; i++ {
		a := a0 + sweep*float64(i)/steps
		x := cx + radius*math.Cos(a)
		y := cy + radius*math.Sin(a)
		if i == 0 && len(s.path) == 0 {
			s.MoveTo(x, y)
			continue
		}
		s.LineTo(x, y)
	}
}

func (s *testSurface) ClosePath() {
	if len(s.path) > 1 {
		s.path = append(s.path, s.path[0])
	}
}

// Fill rasterizes the collected subpaths with a crossing-number test at
// pixel centers.
func (s *testSurface) Fill() {
	subs := s.sub
	if len(s.path) > 0 {
		subs = append(subs, s.path)
	}
	for _, poly := range subs {
		if len(poly) < 3 {
			continue
		}
		s.fills++
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range poly {
			minX = math.Min(minX, p[0])
			maxX = math.Max(maxX, p[0])
			minY = math.Min(minY, p[1])
			maxY = math.Max(maxY, p[1])
		}
		for py := int(minY); py <= int(maxY); py++ {
			for px := int(minX); px <= int(maxX); px++ {
				if polyContains(poly, float64(px)+0.5, float64(py)+0.5) {
					s.set(px, py, s.fillColor)
				}
			}
		}
	}
	s.path = nil
	s.sub = nil
}

func polyContains(poly [][2]float64, x, y float64) bool {
	in := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i][0], poly[i][1]
		xj, yj := poly[j][0], poly[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
	}
	return in
}

func (s *testSurface) Stroke() {
	s.strokes++
	// Strokes rasterize as thin rectangles along each segment, enough for
	// continuity checks on diagonals and rounded corners.
	subs := s.sub
	if len(s.path) > 0 {
		subs = append(subs, s.path)
	}
	t := math.Max(1, s.lineWidth)
	for _, poly := range subs {
		for i := 0; i+1 < len(poly); i++ {
			drawThickSegment(s, poly[i], poly[i+1], t)
		}
	}
	s.path = nil
	s.sub = nil
}

func drawThickSegment(s *testSurface, a, b [2]float64, t float64) {
	steps := int(math.Hypot(b[0]-a[0], b[1]-a[1])) + 1
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		x := a[0] + (b[0]-a[0])*f
		y := a[1] + (b[1]-a[1])*f
		half := t / 2
		for py := int(y - half); py <= int(y+half); py++ {
			for px := int(x - half); px <= int(x+half); px++ {
				s.set(px, py, s.strokeColor)
			}
		}
	}
}

func (s *testSurface) SetFont(f FontSpec) { s.font = f }

func (s *testSurface) FillText(str string, x, y float64) {
	s.texts = append(s.texts, textOp{s: str, x: x, y: y, font: s.font, col: s.fillColor})
}

func (s *testSurface) MeasureText(string) TextMetrics { return s.measure }

// snapshot copies the pixel grid for frame-to-frame comparisons.
func (s *testSurface) snapshot() []Color {
	out := make([]Color, len(s.px))
	copy(out, s.px)
	return out
}
