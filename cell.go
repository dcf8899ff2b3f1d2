package termcanvas

// CellFlags is the SGR attribute bitfield carried by a Cell.
type CellFlags uint16

const (
	FlagBold CellFlags = 1 << iota
	FlagItalic
	FlagUnderline
	FlagStrikethrough
	FlagInverse
	FlagFaint
	FlagInvisible
	FlagBlink // recognized but not animated
)

// Cell is the atomic unit delivered by the emulator: one character position
// with resolved colors and attributes.
type Cell struct {
	// Rune is the primary codepoint; 0 means empty.
	Rune rune
	// GraphemeLen is nonzero when additional codepoints combine with the
	// base; the full string is then fetched through GraphemeProvider.
	GraphemeLen uint8
	// Width is 0 for the trailing spacer of a double-width glyph (never
	// drawn), 1 for normal cells, 2 for double-width cells.
	Width uint8
	// Foreground and Background are the resolved cell colors. A background
	// of (0,0,0) means default: the theme background shows through.
	Foreground Color
	Background Color
	Flags      CellFlags
	// HyperlinkID identifies an OSC-8 link group for hover underlining;
	// 0 means no link.
	HyperlinkID uint32
}

// CursorState is the emulator's cursor position and DECTCEM visibility.
type CursorState struct {
	X, Y    int
	Visible bool
}

// Renderable is the emulator-side view the renderer consumes: a grid of
// styled cells plus cursor and per-row dirty tracking. Dirty bits persist
// across calls until ClearDirty.
type Renderable interface {
	// Line returns the row of cells at viewport row y, or nil when the row
	// is unavailable (the renderer skips it).
	Line(y int) []Cell
	// Cursor reports the cursor position. Implementations must refresh any
	// internal emulator state here so the position is consistent with cell
	// contents returned in the same frame.
	Cursor() CursorState
	Dimensions() (cols, rows int)
	RowDirty(y int) bool
	ClearDirty()
}

// FullRedrawHinter is optionally implemented by a Renderable whose state
// changes (palette swap, resize) invalidate every row at once.
type FullRedrawHinter interface {
	NeedsFullRedraw() bool
}

// GraphemeProvider is optionally implemented by a Renderable that stores
// combining sequences out of band. The renderer calls it for cells with a
// nonzero GraphemeLen.
type GraphemeProvider interface {
	GraphemeString(row, col int) string
}

// ScrollbackProvider serves historical lines above the live screen.
// Offsets are 0-based from the oldest stored line.
type ScrollbackProvider interface {
	ScrollbackLine(offset int) []Cell
	ScrollbackLength() int
}

// SelectionCoords is an inclusive, viewport-relative stream selection span:
// it starts at (StartCol,StartRow), ends at (EndCol,EndRow) and covers the
// full rows in between.
type SelectionCoords struct {
	StartCol, StartRow int
	EndCol, EndRow     int
}

// SelectionManager supplies the active selection and the rows whose
// selection state changed since the last frame (so cleared selections are
// repainted). The renderer calls ClearDirtySelectionRows once per frame.
type SelectionManager interface {
	HasSelection() bool
	SelectionCoords() (SelectionCoords, bool)
	DirtySelectionRows() []int
	ClearDirtySelectionRows()
}

// LinkRange is an inclusive span of cells covered by a regex-matched link.
type LinkRange struct {
	StartCol, StartRow int
	EndCol, EndRow     int
}

// Contains reports whether the cell at (col,row) lies inside the range.
func (lr LinkRange) Contains(col, row int) bool {
	if row < lr.StartRow || row > lr.EndRow {
		return false
	}
	if row == lr.StartRow && col < lr.StartCol {
		return false
	}
	if row == lr.EndRow && col > lr.EndCol {
		return false
	}
	return true
}
