// Package termcanvas renders a cell-addressable terminal grid onto a 2D
// raster surface with pixel-exact output.
//
// This package contains:
//   - Font metric derivation with device-pixel-ratio scaling
//   - A two-pass, dirty-tracked frame renderer (backgrounds, then text
//     and decorations) with cursor, selection, link underlines and a
//     scrollback-aware scrollbar
//   - A procedural glyph engine for box-drawing, block-element, braille,
//     sextant, octant, powerline, wedge, mosaic, dashed and rounded-corner
//     codepoints that tile seamlessly across cell boundaries, something
//     font glyphs cannot guarantee
//
// The renderer consumes cells from any emulator implementing Renderable and
// draws through any backend implementing Surface. Backend packages
// (raster, gtksurface) provide the surface implementations; termemu adapts
// the purfecterm emulator; fyneterm wraps everything into a toolkit widget.
package termcanvas
