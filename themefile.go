package termcanvas

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadThemeSpec reads a TOML theme file. Colors are hex strings; absent
// keys keep their default values, so theme files may override any subset:
//
//	foreground = "#d4d4d4"
//	background = "#1e1e1e"
//	ansi = ["#000000", "#cd3131"]
func LoadThemeSpec(path string) (ThemeSpec, error) {
	var spec ThemeSpec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return ThemeSpec{}, fmt.Errorf("termcanvas: loading theme %s: %w", path, err)
	}
	// Validate eagerly so a bad file fails at load time, not first use.
	if _, err := spec.Theme(); err != nil {
		return ThemeSpec{}, err
	}
	return spec, nil
}
