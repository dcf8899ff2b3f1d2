package termcanvas

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#1e1e1e", Color{0x1e, 0x1e, 0x1e}, true},
		{"#FFFFFF", Color{255, 255, 255}, true},
		{"#fff", Color{255, 255, 255}, true},
		{"#4A90E2", Color{0x4A, 0x90, 0xE2}, true},
		{"1e1e1e", Color{}, false},
		{"#12345", Color{}, false},
		{"", Color{}, false},
	}
	for _, c := range cases {
		got, ok := ParseHexColor(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseHexColor(%q) = %v,%v want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{0x2b, 0x9f, 0x07}
	got, ok := ParseHexColor(c.ToHex())
	if !ok || got != c {
		t.Errorf("round trip %v -> %s -> %v", c, c.ToHex(), got)
	}
}

func TestThemeSpecMergesOverDefaults(t *testing.T) {
	spec := ThemeSpec{
		Background: "#000000",
		ANSI:       []string{"#111111", "#222222"},
	}
	theme, err := spec.Theme()
	if err != nil {
		t.Fatal(err)
	}
	if theme.Background != (Color{}) {
		t.Errorf("background override lost: %v", theme.Background)
	}
	if theme.Foreground != DefaultTheme().Foreground {
		t.Error("unset field did not keep its default")
	}
	if theme.ANSI[0] != (Color{0x11, 0x11, 0x11}) || theme.ANSI[1] != (Color{0x22, 0x22, 0x22}) {
		t.Error("ansi prefix override not applied")
	}
	if theme.ANSI[2] != DefaultTheme().ANSI[2] {
		t.Error("ansi colors past the override lost their defaults")
	}
}

func TestThemeSpecRejectsBadColor(t *testing.T) {
	if _, err := (ThemeSpec{Cursor: "white"}).Theme(); err == nil {
		t.Error("invalid cursor color accepted")
	}
	if _, err := (ThemeSpec{ANSI: make([]string, 17)}).Theme(); err == nil {
		t.Error("oversized ansi list accepted")
	}
}

func TestLoadThemeSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	content := `
foreground = "#c8c8c8"
background = "#101010"
cursor = "#ff8800"
ansi = ["#000000", "#aa0000"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadThemeSpec(path)
	if err != nil {
		t.Fatal(err)
	}
	theme, err := spec.Theme()
	if err != nil {
		t.Fatal(err)
	}
	if theme.Cursor != (Color{0xff, 0x88, 0x00}) {
		t.Errorf("cursor = %v", theme.Cursor)
	}
	if theme.ANSI[1] != (Color{0xaa, 0, 0}) {
		t.Errorf("ansi[1] = %v", theme.ANSI[1])
	}
}

func TestLoadThemeSpecErrors(t *testing.T) {
	if _, err := LoadThemeSpec("/nonexistent/theme.toml"); err == nil {
		t.Error("missing file accepted")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	os.WriteFile(path, []byte(`foreground = "nope"`), 0o644)
	if _, err := LoadThemeSpec(path); err == nil {
		t.Error("unparseable color accepted")
	}
}

func TestLinkRangeContains(t *testing.T) {
	lr := LinkRange{StartCol: 3, StartRow: 1, EndCol: 2, EndRow: 3}
	cases := []struct {
		col, row int
		want     bool
	}{
		{3, 1, true},
		{2, 1, false},
		{9, 1, true},
		{0, 2, true},
		{2, 3, true},
		{3, 3, false},
		{5, 0, false},
		{5, 4, false},
	}
	for _, c := range cases {
		if got := lr.Contains(c.col, c.row); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.col, c.row, got, c.want)
		}
	}
}
