// Package termemu adapts the purfecterm terminal emulator to the
// termcanvas renderer interfaces: its buffer becomes a Renderable with
// scrollback and selection sources, so hosts can feed PTY output through
// purfecterm's VT100/ANSI parser and paint frames with termcanvas.
package termemu

import (
	"github.com/mattn/go-runewidth"
	"github.com/phroun/purfecterm"

	"github.com/phroun/termcanvas"
)

// Adapter wraps a purfecterm Buffer as a termcanvas cell source. It
// implements Renderable, ScrollbackProvider, SelectionManager,
// FullRedrawHinter and GraphemeProvider.
type Adapter struct {
	buf    *purfecterm.Buffer
	scheme purfecterm.ColorScheme

	// Selection span reported last frame, for dirty-row diffing.
	prevSel    termcanvas.SelectionCoords
	prevHadSel bool
}

// New wraps buf with the default color scheme.
func New(buf *purfecterm.Buffer) *Adapter {
	return &Adapter{buf: buf, scheme: purfecterm.DefaultColorScheme()}
}

// SetColorScheme changes how default and indexed colors resolve to RGB.
func (a *Adapter) SetColorScheme(scheme purfecterm.ColorScheme) {
	a.scheme = scheme
}

// Buffer returns the wrapped emulator buffer.
func (a *Adapter) Buffer() *purfecterm.Buffer {
	return a.buf
}

// Line converts the live screen row y. Wide characters followed by a blank
// cell claim both columns, with the trailing cell becoming a zero-width
// spacer the renderer skips.
func (a *Adapter) Line(y int) []termcanvas.Cell {
	cols, rows := a.buf.GetSize()
	if y < 0 || y >= rows {
		return nil
	}
	line := make([]termcanvas.Cell, cols)
	for x := 0; x < cols; x++ {
		line[x] = a.convertCell(a.buf.GetCell(x, y))
	}
	markWideSpacers(line)
	return line
}

func markWideSpacers(line []termcanvas.Cell) {
	for x := 0; x < len(line)-1; x++ {
		if line[x].Width != 1 || line[x].Rune == 0 {
			continue
		}
		next := line[x+1].Rune
		if runewidth.RuneWidth(line[x].Rune) == 2 && (next == 0 || next == ' ') {
			line[x].Width = 2
			line[x+1].Width = 0
			x++
		}
	}
}

func (a *Adapter) convertCell(pc purfecterm.Cell) termcanvas.Cell {
	dark := a.buf.IsDarkTheme()
	cell := termcanvas.Cell{Width: 1}
	if pc.Char != 0 && pc.Char != ' ' {
		cell.Rune = pc.Char
	}
	if pc.Combining != "" {
		n := len([]rune(pc.Combining))
		if n > 255 {
			n = 255
		}
		cell.GraphemeLen = uint8(n)
	}

	fg := a.scheme.ResolveColor(pc.Foreground, true, dark)
	cell.Foreground = termcanvas.Color{R: fg.R, G: fg.G, B: fg.B}
	if !pc.Background.IsDefault() {
		bg := a.scheme.ResolveColor(pc.Background, false, dark)
		cell.Background = termcanvas.Color{R: bg.R, G: bg.G, B: bg.B}
	}

	if pc.Bold {
		cell.Flags |= termcanvas.FlagBold
	}
	if pc.Italic {
		cell.Flags |= termcanvas.FlagItalic
	}
	if pc.Underline {
		cell.Flags |= termcanvas.FlagUnderline
	}
	if pc.Strikethrough {
		cell.Flags |= termcanvas.FlagStrikethrough
	}
	if pc.Reverse {
		cell.Flags |= termcanvas.FlagInverse
	}
	if pc.Blink {
		cell.Flags |= termcanvas.FlagBlink
	}
	return cell
}

// Cursor reports the emulator cursor, letting the buffer settle any pending
// auto-scroll first so position and cell contents agree within a frame.
func (a *Adapter) Cursor() termcanvas.CursorState {
	a.buf.CheckCursorAutoScroll()
	x, y := a.buf.GetCursor()
	return termcanvas.CursorState{X: x, Y: y, Visible: a.buf.IsCursorVisible()}
}

// Dimensions returns the grid size.
func (a *Adapter) Dimensions() (cols, rows int) {
	return a.buf.GetSize()
}

// RowDirty reports the buffer's coarse dirty flag for every row; purfecterm
// tracks dirtiness per buffer, not per row.
func (a *Adapter) RowDirty(int) bool {
	return a.buf.IsDirty()
}

// NeedsFullRedraw mirrors the coarse dirty flag so any change repaints the
// whole grid.
func (a *Adapter) NeedsFullRedraw() bool {
	return a.buf.IsDirty()
}

// ClearDirty consumes the buffer's dirty flag.
func (a *Adapter) ClearDirty() {
	a.buf.ClearDirty()
}

// GraphemeString rebuilds the full combining sequence for a cell.
func (a *Adapter) GraphemeString(row, col int) string {
	pc := a.buf.GetCell(col, row)
	if pc.Char == 0 {
		return ""
	}
	return string(pc.Char) + pc.Combining
}

// ScrollOffset exposes the emulator's scroll position for use as the
// renderer's viewportY.
func (a *Adapter) ScrollOffset() int {
	return a.buf.GetScrollOffset()
}

// ScrollbackLength reports the number of stored scrollback lines.
func (a *Adapter) ScrollbackLength() int {
	return a.buf.GetScrollbackSize()
}

// ScrollbackLine serves the line at the 0-based offset from the oldest
// stored line. purfecterm exposes scrollback only through its scrolled
// viewport, so offsets outside the currently visible window return nil;
// the renderer only requests visible offsets.
func (a *Adapter) ScrollbackLine(offset int) []termcanvas.Cell {
	off := a.buf.GetScrollOffset()
	size := a.buf.GetScrollbackSize()
	cols, rows := a.buf.GetSize()
	y := offset - (size - off)
	if y < 0 || y >= rows {
		return nil
	}
	line := make([]termcanvas.Cell, cols)
	for x := 0; x < cols; x++ {
		line[x] = a.convertCell(a.buf.GetVisibleCell(x, y))
	}
	markWideSpacers(line)
	return line
}

// HasSelection reports whether a selection is active.
func (a *Adapter) HasSelection() bool {
	return a.buf.HasSelection()
}

// SelectionCoords returns the normalized selection span in screen
// coordinates.
func (a *Adapter) SelectionCoords() (termcanvas.SelectionCoords, bool) {
	sx, sy, ex, ey, active := a.buf.GetSelection()
	if !active {
		return termcanvas.SelectionCoords{}, false
	}
	return termcanvas.SelectionCoords{
		StartCol: sx, StartRow: sy,
		EndCol: ex, EndRow: ey,
	}, true
}

// DirtySelectionRows lists rows whose selection membership changed since
// the last ClearDirtySelectionRows, covering both the old and new spans so
// cleared selections repaint.
func (a *Adapter) DirtySelectionRows() []int {
	cur, has := a.SelectionCoords()
	if !has && !a.prevHadSel {
		return nil
	}
	rows := map[int]bool{}
	if a.prevHadSel {
		for y := a.prevSel.StartRow; y <= a.prevSel.EndRow; y++ {
			rows[y] = true
		}
	}
	if has {
		for y := cur.StartRow; y <= cur.EndRow; y++ {
			rows[y] = true
		}
	}
	out := make([]int, 0, len(rows))
	for y := range rows {
		out = append(out, y)
	}
	return out
}

// ClearDirtySelectionRows snapshots the current span as the new baseline.
func (a *Adapter) ClearDirtySelectionRows() {
	a.prevSel, a.prevHadSel = termcanvas.SelectionCoords{}, false
	if cur, has := a.SelectionCoords(); has {
		a.prevSel, a.prevHadSel = cur, true
	}
}
