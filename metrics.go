package termcanvas

import "math"

// FontMetrics is the sole source of truth for cell geometry, in CSS pixels.
// Every cell position is an integer multiple of Width/Height.
type FontMetrics struct {
	Width    int
	Height   int
	Baseline int
}

// measureFont derives cell geometry from the advance of 'M' and the
// font-declared ascent/descent. Font-declared values are preferred because
// they are stable across content; when the backend cannot supply them the
// 0.8/0.2 fontSize split is used instead.
func measureFont(s Surface, family string, size float64) FontMetrics {
	s.SetFont(FontSpec{Family: family, Size: size})
	m := s.MeasureText("M")

	ascent := m.FontAscent
	descent := m.FontDescent
	if ascent <= 0 || descent < 0 || ascent+descent <= 0 {
		ascent = 0.8 * size
		descent = 0.2 * size
	}

	width := int(math.Ceil(m.Width))
	if width < 1 {
		width = 1
	}
	height := int(math.Ceil(ascent + descent))
	if height < 1 {
		height = 1
	}
	baseline := int(math.Ceil(ascent))
	if baseline > height {
		baseline = height
	}
	return FontMetrics{Width: width, Height: height, Baseline: baseline}
}
