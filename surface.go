package termcanvas

// FontSpec selects the font a Surface draws and measures text with.
// Size is in CSS pixels; the surface applies its own transform scale.
type FontSpec struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// TextMetrics reports a measurement under the current font. FontAscent and
// FontDescent are the font-declared bounding-box values, stable across
// content; a backend that cannot determine them reports zero and the
// renderer falls back to fractions of the font size.
type TextMetrics struct {
	Width       float64
	FontAscent  float64
	FontDescent float64
}

// LineCap selects the stroke cap style.
type LineCap int

const (
	CapButt LineCap = iota
	CapSquare
	CapRound
)

// Surface is the 2D raster drawing context the renderer owns for the
// duration of a frame. Coordinates are CSS pixels; the backend multiplies
// by the transform scale set with SetScale. SetSize resets the transform,
// so the renderer reapplies the scale after every resize.
type Surface interface {
	// SetSize resizes the backing store to the given device-pixel
	// dimensions, discarding contents and resetting the transform scale.
	SetSize(pxWidth, pxHeight int)
	// Size returns the backing store dimensions in device pixels.
	Size() (pxWidth, pxHeight int)
	// SetScale sets the device-pixel-ratio transform applied to all
	// subsequent coordinates.
	SetScale(scale float64)

	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	// SetGlobalAlpha sets the opacity multiplier applied to all drawing.
	SetGlobalAlpha(a float64)
	GlobalAlpha() float64

	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc appends a circular arc around (cx,cy) from startAngle to
	// endAngle in radians, counterclockwise when acw is true.
	Arc(cx, cy, radius, startAngle, endAngle float64, acw bool)
	ClosePath()
	Fill()
	Stroke()

	SetFont(f FontSpec)
	// FillText draws s with its alphabetic baseline at (x,y).
	FillText(s string, x, y float64)
	MeasureText(s string) TextMetrics
}
