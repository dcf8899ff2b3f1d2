// Command termcanvas-demo renders a glyph gallery to a PNG, exercising the
// procedural glyph engine end to end: content is fed through the purfecterm
// parser, adapted to the renderer and rasterized in software.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/phroun/purfecterm"
	"golang.org/x/term"

	"github.com/phroun/termcanvas"
	"github.com/phroun/termcanvas/raster"
	"github.com/phroun/termcanvas/termemu"
)

func main() {
	var (
		out       = flag.String("o", "termcanvas.png", "output PNG path")
		colsFlag  = flag.Int("cols", 0, "grid columns (0 = from terminal, else 80)")
		rowsFlag  = flag.Int("rows", 0, "grid rows (0 = from terminal, else 24)")
		fontSize  = flag.Float64("font-size", 15, "font size in pixels")
		dpr       = flag.Float64("dpr", 1, "device pixel ratio")
		themePath = flag.String("theme", "", "TOML theme file")
	)
	flag.Parse()

	cols, rows := *colsFlag, *rowsFlag
	if cols <= 0 || rows <= 0 {
		tc, tr := 80, 24
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				tc, tr = w, h
			}
		}
		if cols <= 0 {
			cols = tc
		}
		if rows <= 0 {
			rows = tr
		}
	}

	opts := termcanvas.Options{
		FontSize:         *fontSize,
		DevicePixelRatio: *dpr,
	}
	if *themePath != "" {
		spec, err := termcanvas.LoadThemeSpec(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "termcanvas-demo: %v\n", err)
			os.Exit(1)
		}
		opts.Theme = spec
	}

	buffer := purfecterm.NewBuffer(cols, rows, 100)
	parser := purfecterm.NewParser(buffer)
	parser.ParseString(gallery(cols))

	ctx := raster.New(1, 1)
	renderer, err := termcanvas.New(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termcanvas-demo: %v\n", err)
		os.Exit(1)
	}
	defer renderer.Dispose()

	renderer.Render(termemu.New(buffer), true, 0, nil, 0)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termcanvas-demo: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := ctx.WritePNG(f); err != nil {
		fmt.Fprintf(os.Stderr, "termcanvas-demo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%dx%d cells)\n", *out, cols, rows)
}

// gallery builds a showcase of the box, dashed, rounded, block, quadrant,
// braille, triangle and sextant glyphs plus styled text, as ANSI input for
// the parser. Octant, wedge and smooth-mosaic glyphs are not included.
func gallery(cols int) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line("\x1b[1mtermcanvas glyph gallery\x1b[0m")
	line("")
	line("boxes:    ┌─┬─┐  ┏━┳━┓  ╔═╦═╗  ╭─╮")
	line("          ├─┼─┤  ┣━╋━┫  ╠═╬═╣  ╰─╯")
	line("          └─┴─┘  ┗━┻━┛  ╚═╩═╝  ╱╲╳")
	line("dashed:   ┄┄┄ ┅┅┅ ┈┈┈ ╌╌╌  ┆┇┊╎")
	line("blocks:   ▀▁▂▃▄▅▆▇█▉▊▋▌▍▎▏▐░▒▓▔▕")
	line("quads:    ▖▗▘▙▚▛▜▝▞▟")
	line("braille:  ⠁⠃⠇⡇⣿⣾⣽⣻⢿⡿⣟⣯⣷ ⠉⠛⠿⣿")
	line("powerline:      ▲▶▼◀ ◢◣◤◥")
	line("sextants: 🬀🬁🬂🬃🬄🬅🬆🬇🬈🬉🬊")
	line("")
	line("\x1b[31mred\x1b[32m green\x1b[33m yellow\x1b[34m blue\x1b[35m magenta\x1b[36m cyan\x1b[0m")
	line("\x1b[1mbold\x1b[0m \x1b[3mitalic\x1b[0m \x1b[4munderline\x1b[0m \x1b[7minverse\x1b[0m \x1b[9mstruck\x1b[0m \x1b[2mfaint\x1b[0m")
	line("")
	ruler := strings.Repeat("─", cols-1)
	line(ruler)
	return b.String()
}
