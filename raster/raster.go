// Package raster is a software Surface backend for termcanvas, drawing
// into an image.RGBA through the rasterx scanline rasterizer and the
// golang.org/x/image font stack. It is the backend the tests and the
// headless tools render with; GUI hosts can blit its image or use a
// toolkit-native surface instead.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/phroun/termcanvas"
)

type point struct {
	x, y float64
}

// Context implements termcanvas.Surface on an in-memory RGBA image.
// Coordinates arrive in CSS pixels and are scaled to device pixels by the
// transform set with SetScale.
type Context struct {
	img   *image.RGBA
	scale float64
	alpha float64

	fillColor   termcanvas.Color
	strokeColor termcanvas.Color
	lineWidth   float64
	lineCap     termcanvas.LineCap

	fontSpec termcanvas.FontSpec
	fonts    *fontSet

	// Current path as flattened subpaths in device pixels.
	paths [][]point
	cur   []point
}

// New creates a context with a backing store of the given device-pixel size.
func New(pxWidth, pxHeight int) *Context {
	if pxWidth < 1 {
		pxWidth = 1
	}
	if pxHeight < 1 {
		pxHeight = 1
	}
	return &Context{
		img:       image.NewRGBA(image.Rect(0, 0, pxWidth, pxHeight)),
		scale:     1,
		alpha:     1,
		lineWidth: 1,
		fonts:     newFontSet(),
	}
}

// Image exposes the backing store for blitting or encoding.
func (c *Context) Image() *image.RGBA {
	return c.img
}

// WritePNG encodes the current frame.
func (c *Context) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SetSize replaces the backing store, discarding contents and resetting the
// transform scale, matching canvas semantics.
func (c *Context) SetSize(pxWidth, pxHeight int) {
	if pxWidth < 1 {
		pxWidth = 1
	}
	if pxHeight < 1 {
		pxHeight = 1
	}
	c.img = image.NewRGBA(image.Rect(0, 0, pxWidth, pxHeight))
	c.scale = 1
}

// Size returns the backing store size in device pixels.
func (c *Context) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetScale sets the device-pixel-ratio transform.
func (c *Context) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.scale = scale
}

func (c *Context) SetFillColor(col termcanvas.Color) { c.fillColor = col }
func (c *Context) SetStrokeColor(col termcanvas.Color) { c.strokeColor = col }
func (c *Context) SetLineWidth(w float64) { c.lineWidth = w }
func (c *Context) SetLineCap(cap termcanvas.LineCap) { c.lineCap = cap }

func (c *Context) SetGlobalAlpha(a float64) {
	c.alpha = math.Min(1, math.Max(0, a))
}

func (c *Context) GlobalAlpha() float64 { return c.alpha }

func (c *Context) srcColor(col termcanvas.Color) color.Color {
	if c.alpha >= 1 {
		return color.RGBA{R: col.R, G: col.G, B: col.B, A: 0xFF}
	}
	return color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(c.alpha*255 + 0.5)}
}

// FillRect paints an axis-aligned rectangle. Edges snap to device pixels
// after scaling, so rects meeting at cell boundaries share the same edge
// and tile without gaps.
func (c *Context) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Round(x * c.scale))
	y0 := int(math.Round(y * c.scale))
	x1 := int(math.Round((x + w) * c.scale))
	y1 := int(math.Round((y + h) * c.scale))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	rect := image.Rect(x0, y0, x1, y1).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	src := image.NewUniform(c.srcColor(c.fillColor))
	if c.alpha >= 1 {
		draw.Draw(c.img, rect, src, image.Point{}, draw.Src)
	} else {
		draw.Draw(c.img, rect, src, image.Point{}, draw.Over)
	}
}

func (c *Context) BeginPath() {
	c.paths = nil
	c.cur = nil
}

func (c *Context) MoveTo(x, y float64) {
	if len(c.cur) > 0 {
		c.paths = append(c.paths, c.cur)
	}
	c.cur = []point{{x * c.scale, y * c.scale}}
}

func (c *Context) LineTo(x, y float64) {
	p := point{x * c.scale, y * c.scale}
	if len(c.cur) == 0 {
		c.cur = []point{p}
		return
	}
	c.cur = append(c.cur, p)
}

// Arc appends a circular arc, flattened to line segments. The segment count
// grows with the device-pixel radius so curves stay smooth at high DPI.
func (c *Context) Arc(cx, cy, radius, startAngle, endAngle float64, acw bool) {
	if radius <= 0 {
		return
	}
	sweep := endAngle - startAngle
	if acw {
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	} else {
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	steps := int(math.Max(8, math.Abs(sweep)*radius*c.scale/2))
	if steps > 256 {
		steps = 256
	}
	for i := 0; i <= steps; i++ {
		a := startAngle + sweep*float64(i)/float64(steps)
		x := cx + radius*math.Cos(a)
		y := cy + radius*math.Sin(a)
		if i == 0 && len(c.cur) == 0 {
			c.MoveTo(x, y)
			continue
		}
		c.LineTo(x, y)
	}
}

func (c *Context) ClosePath() {
	if len(c.cur) > 1 {
		c.cur = append(c.cur, c.cur[0])
	}
}

func (c *Context) Fill() {
	if len(c.cur) > 0 {
		c.paths = append(c.paths, c.cur)
		c.cur = nil
	}
	if len(c.paths) == 0 {
		return
	}
	b := c.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), c.img, b)
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
	filler.SetColor(c.srcColor(c.fillColor))
	for _, sub := range c.paths {
		if len(sub) < 3 {
			continue
		}
		filler.Start(toFixed(sub[0]))
		for _, p := range sub[1:] {
			filler.Line(toFixed(p))
		}
		filler.Stop(true)
	}
	filler.Draw()
	filler.Clear()
}

func (c *Context) Stroke() {
	if len(c.cur) > 0 {
		c.paths = append(c.paths, c.cur)
		c.cur = nil
	}
	if len(c.paths) == 0 {
		return
	}
	b := c.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), c.img, b)
	dasher := rasterx.NewDasher(b.Dx(), b.Dy(), scanner)
	capFn := rasterx.ButtCap
	switch c.lineCap {
	case termcanvas.CapSquare:
		capFn = rasterx.SquareCap
	case termcanvas.CapRound:
		capFn = rasterx.RoundCap
	}
	width := fixed.Int26_6(math.Round(c.lineWidth * c.scale * 64))
	if width < 64 {
		width = 64
	}
	dasher.SetStroke(width, 0, capFn, capFn, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(c.srcColor(c.strokeColor))
	for _, sub := range c.paths {
		if len(sub) < 2 {
			continue
		}
		dasher.Start(toFixed(sub[0]))
		for _, p := range sub[1:] {
			dasher.Line(toFixed(p))
		}
		dasher.Stop(false)
	}
	dasher.Draw()
	dasher.Clear()
}

func toFixed(p point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.x * 64)),
		Y: fixed.Int26_6(math.Round(p.y * 64)),
	}
}
