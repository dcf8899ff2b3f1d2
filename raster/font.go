package raster

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/phroun/termcanvas"
)

// fontStyle indexes the four monospace style variants.
type fontStyle int

const (
	styleRegular fontStyle = iota
	styleBold
	styleItalic
	styleBoldItalic
)

type faceKey struct {
	style fontStyle
	// size and scale in 1/64 px steps so float jitter never misses the cache
	size64  int
	scale64 int
}

// fontSet holds the parsed style variants and a face cache per size/scale.
// The Go Mono family ships embedded so the context works with no font files
// on disk; SetFontTTF swaps in a user font.
type fontSet struct {
	parsed [4]*sfnt.Font
	faces  map[faceKey]font.Face
}

func newFontSet() *fontSet {
	return &fontSet{faces: make(map[faceKey]font.Face)}
}

func (fs *fontSet) font(style fontStyle) *sfnt.Font {
	if fs.parsed[style] != nil {
		return fs.parsed[style]
	}
	var data []byte
	switch style {
	case styleBold:
		data = gomonobold.TTF
	case styleItalic:
		data = gomonoitalic.TTF
	case styleBoldItalic:
		data = gomonobolditalic.TTF
	default:
		data = gomono.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		// Only embedded faces are parsed here and they always parse; a
		// failure falls back to the regular embedded face.
		f, _ = opentype.Parse(gomono.TTF)
	}
	fs.parsed[style] = f
	return f
}

func (fs *fontSet) face(spec termcanvas.FontSpec, scale float64) font.Face {
	style := styleRegular
	switch {
	case spec.Bold && spec.Italic:
		style = styleBoldItalic
	case spec.Bold:
		style = styleBold
	case spec.Italic:
		style = styleItalic
	}
	size := spec.Size
	if size <= 0 {
		size = 15
	}
	key := faceKey{
		style:   style,
		size64:  int(math.Round(size * 64)),
		scale64: int(math.Round(scale * 64)),
	}
	if f, ok := fs.faces[key]; ok {
		return f
	}
	face, err := opentype.NewFace(fs.font(style), &opentype.FaceOptions{
		Size:    size * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		face = basicFallbackFace(fs, size*scale)
	}
	fs.faces[key] = face
	return face
}

func basicFallbackFace(fs *fontSet, px float64) font.Face {
	face, _ := opentype.NewFace(fs.font(styleRegular), &opentype.FaceOptions{
		Size: px, DPI: 72, Hinting: font.HintingNone,
	})
	return face
}

// SetFontTTF replaces one style variant with a parsed TTF/OTF. Pass the
// same data for several styles to collapse variants. Returns an error when
// the data does not parse; the face already active for that style stays in
// use in that case.
func (c *Context) SetFontTTF(bold, italic bool, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return err
	}
	style := styleRegular
	switch {
	case bold && italic:
		style = styleBoldItalic
	case bold:
		style = styleBold
	case italic:
		style = styleItalic
	}
	c.fonts.parsed[style] = f
	// Faces derived from the replaced font are stale.
	for k := range c.fonts.faces {
		if k.style == style {
			delete(c.fonts.faces, k)
		}
	}
	return nil
}

func (c *Context) SetFont(spec termcanvas.FontSpec) {
	c.fontSpec = spec
}

// FillText draws s with its alphabetic baseline at (x,y) CSS pixels.
func (c *Context) FillText(s string, x, y float64) {
	face := c.fonts.face(c.fontSpec, c.scale)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.srcColor(c.fillColor)),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * c.scale * 64)),
			Y: fixed.Int26_6(math.Round(y * c.scale * 64)),
		},
	}
	d.DrawString(s)
}

// MeasureText reports the advance width plus the font-declared ascent and
// descent, converted back to CSS pixels.
func (c *Context) MeasureText(s string) termcanvas.TextMetrics {
	face := c.fonts.face(c.fontSpec, c.scale)
	adv := font.MeasureString(face, s)
	m := face.Metrics()
	inv := 1 / (64 * c.scale)
	return termcanvas.TextMetrics{
		Width:       float64(adv) * inv,
		FontAscent:  float64(m.Ascent) * inv,
		FontDescent: float64(m.Descent) * inv,
	}
}
