package termcanvas

import "fmt"

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// ToHex returns the color as a hex string like "#RRGGBB"
func (c Color) ToHex() string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

func hexByte(b uint8) string {
	const hex = "0123456789ABCDEF"
	return string([]byte{hex[b>>4], hex[b&0x0F]})
}

// ParseHexColor parses a hex color string in "#RRGGBB" or "#RGB" format
func ParseHexColor(s string) (Color, bool) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, false
	}
	s = s[1:]
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return Color{}, false
		}
	}
	var r, g, b uint8
	switch len(s) {
	case 3:
		r = parseHexNibble(s[0]) * 17
		g = parseHexNibble(s[1]) * 17
		b = parseHexNibble(s[2]) * 17
	case 6:
		r = parseHexNibble(s[0])<<4 | parseHexNibble(s[1])
		g = parseHexNibble(s[2])<<4 | parseHexNibble(s[3])
		b = parseHexNibble(s[4])<<4 | parseHexNibble(s[5])
	default:
		return Color{}, false
	}
	return Color{R: r, G: g, B: b}, true
}

func parseHexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Theme holds the resolved colors the renderer draws with. Selection uses
// solid replacement: selected cells paint SelectionBackground and text in
// SelectionForeground rather than an alpha overlay.
type Theme struct {
	Foreground          Color
	Background          Color
	Cursor              Color
	CursorAccent        Color
	SelectionBackground Color
	SelectionForeground Color
	ANSI                [16]Color
}

// DefaultTheme returns the stock dark theme (VS Code dark palette).
func DefaultTheme() Theme {
	return Theme{
		Foreground:          Color{0xd4, 0xd4, 0xd4},
		Background:          Color{0x1e, 0x1e, 0x1e},
		Cursor:              Color{0xff, 0xff, 0xff},
		CursorAccent:        Color{0x1e, 0x1e, 0x1e},
		SelectionBackground: Color{0xd4, 0xd4, 0xd4},
		SelectionForeground: Color{0x1e, 0x1e, 0x1e},
		ANSI: [16]Color{
			{0x00, 0x00, 0x00}, // black
			{0xcd, 0x31, 0x31}, // red
			{0x0d, 0xbc, 0x79}, // green
			{0xe5, 0xe5, 0x10}, // yellow
			{0x24, 0x72, 0xc8}, // blue
			{0xbc, 0x3f, 0xbc}, // magenta
			{0x11, 0xa8, 0xcd}, // cyan
			{0xe5, 0xe5, 0xe5}, // white
			{0x66, 0x66, 0x66}, // bright black
			{0xf1, 0x4c, 0x4c}, // bright red
			{0x23, 0xd1, 0x8b}, // bright green
			{0xf5, 0xf5, 0x43}, // bright yellow
			{0x3b, 0x8e, 0xea}, // bright blue
			{0xd6, 0x70, 0xd6}, // bright magenta
			{0x29, 0xb8, 0xdb}, // bright cyan
			{0xff, 0xff, 0xff}, // bright white
		},
	}
}

// ThemeSpec is a partial theme override with string hex colors, suitable for
// configuration files. Empty fields keep the default value.
type ThemeSpec struct {
	Foreground          string   `toml:"foreground"`
	Background          string   `toml:"background"`
	Cursor              string   `toml:"cursor"`
	CursorAccent        string   `toml:"cursor_accent"`
	SelectionBackground string   `toml:"selection_background"`
	SelectionForeground string   `toml:"selection_foreground"`
	ANSI                []string `toml:"ansi"`
}

// Theme resolves the spec over the default theme. Unparseable colors are
// reported rather than silently dropped.
func (ts ThemeSpec) Theme() (Theme, error) {
	t := DefaultTheme()
	set := func(dst *Color, s, name string) error {
		if s == "" {
			return nil
		}
		c, ok := ParseHexColor(s)
		if !ok {
			return fmt.Errorf("termcanvas: invalid %s color %q", name, s)
		}
		*dst = c
		return nil
	}
	if err := set(&t.Foreground, ts.Foreground, "foreground"); err != nil {
		return t, err
	}
	if err := set(&t.Background, ts.Background, "background"); err != nil {
		return t, err
	}
	if err := set(&t.Cursor, ts.Cursor, "cursor"); err != nil {
		return t, err
	}
	if err := set(&t.CursorAccent, ts.CursorAccent, "cursor_accent"); err != nil {
		return t, err
	}
	if err := set(&t.SelectionBackground, ts.SelectionBackground, "selection_background"); err != nil {
		return t, err
	}
	if err := set(&t.SelectionForeground, ts.SelectionForeground, "selection_foreground"); err != nil {
		return t, err
	}
	if len(ts.ANSI) > 16 {
		return t, fmt.Errorf("termcanvas: theme lists %d ansi colors, want at most 16", len(ts.ANSI))
	}
	for i, s := range ts.ANSI {
		if err := set(&t.ANSI[i], s, fmt.Sprintf("ansi[%d]", i)); err != nil {
			return t, err
		}
	}
	return t, nil
}
