package termcanvas

import (
	"errors"
	"math"
	"sync"
)

// CursorStyle selects the cursor shape.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// Options configures a Renderer. Zero values take the documented defaults.
type Options struct {
	FontSize   float64 // default 15
	FontFamily string  // default "monospace"

	CursorStyle CursorStyle
	CursorBlink bool

	// Theme partially overrides the default palette.
	Theme ThemeSpec

	// DevicePixelRatio scales the drawing transform; default 1.
	DevicePixelRatio float64
}

// Renderer draws a terminal grid onto a Surface at frame rate. It owns the
// surface for the duration of each Render call and the blink timer for its
// whole lifetime; Dispose releases the timer.
type Renderer struct {
	mu      sync.Mutex
	surface Surface

	fontSize    float64
	fontFamily  string
	cursorStyle CursorStyle
	cursorBlink bool
	dpr         float64

	theme   Theme
	metrics FontMetrics

	selection SelectionManager
	redraw    func()

	// Frame state carried across frames.
	lastCursor       CursorState
	lastViewportY    float64
	cursorVisible    bool
	cursorSuppressed bool

	hoveredHyperlinkID     uint32
	prevHoveredHyperlinkID uint32
	hoveredLinkRange       *LinkRange
	prevHoveredLinkRange   *LinkRange

	// Frame-local caches, reset at the start of every Render.
	curSelection *SelectionCoords
	curBuffer    Renderable

	blinkStop chan struct{}
}

// New creates a renderer drawing onto surface. The surface is required;
// there is no recovery from a missing drawing context.
func New(surface Surface, opts Options) (*Renderer, error) {
	if surface == nil {
		return nil, errors.New("termcanvas: surface initialization failed: no drawing context")
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 15
	}
	if opts.FontFamily == "" {
		opts.FontFamily = "monospace"
	}
	if opts.DevicePixelRatio <= 0 {
		opts.DevicePixelRatio = 1
	}
	theme, err := opts.Theme.Theme()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		surface:       surface,
		fontSize:      opts.FontSize,
		fontFamily:    opts.FontFamily,
		cursorStyle:   opts.CursorStyle,
		cursorBlink:   opts.CursorBlink,
		dpr:           opts.DevicePixelRatio,
		theme:         theme,
		cursorVisible: true,
	}
	r.metrics = measureFont(surface, r.fontFamily, r.fontSize)
	if opts.CursorBlink {
		r.startBlink()
	}
	return r, nil
}

// SetRedrawCallback registers a host callback invoked when renderer-owned
// state (the cursor blink) changes outside a frame and a repaint is needed.
func (r *Renderer) SetRedrawCallback(fn func()) {
	r.mu.Lock()
	r.redraw = fn
	r.mu.Unlock()
}

// Render draws one frame. forceAll repaints every row; viewportY scrolls
// into scrollback (0 = live view, may be fractional for smooth scrolling);
// sb may be nil when no scrollback exists; scrollbarOpacity fades the
// scrollbar, 0 hiding it entirely. Dirty state on the buffer and the
// selection manager is consumed and cleared regardless of the redraw mode.
func (r *Renderer) Render(buf Renderable, forceAll bool, viewportY float64, sb ScrollbackProvider, scrollbarOpacity float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if buf == nil {
		return
	}
	cols, rows := buf.Dimensions()
	if cols <= 0 || rows <= 0 {
		return
	}

	r.curBuffer = buf
	r.curSelection = nil
	defer func() {
		r.curBuffer = nil
		r.curSelection = nil
	}()

	if h, ok := buf.(FullRedrawHinter); ok && h.NeedsFullRedraw() {
		forceAll = true
	}

	// Resizing resets the surface transform, so the scale is reapplied.
	wantW := int(math.Round(float64(cols*r.metrics.Width) * r.dpr))
	wantH := int(math.Round(float64(rows*r.metrics.Height) * r.dpr))
	if pw, ph := r.surface.Size(); pw != wantW || ph != wantH {
		r.surface.SetSize(wantW, wantH)
		r.surface.SetScale(r.dpr)
		forceAll = true
	}

	if viewportY != r.lastViewportY {
		forceAll = true
	}

	cursor := buf.Cursor()

	todo := make(map[int]bool)

	// Cursor rows: the current row always repaints while blinking, and the
	// previously occupied row repaints when the cursor changed lines.
	if cursor.X != r.lastCursor.X || cursor.Y != r.lastCursor.Y || r.cursorBlink {
		todo[cursor.Y] = true
		if r.lastCursor.Y != cursor.Y {
			todo[r.lastCursor.Y] = true
		}
	}

	// Selection rows, cached once per frame so the inner cell loop never
	// recomputes coordinates, plus the manager's dirty rows (cleared here).
	if r.selection != nil {
		if coords, ok := r.selection.SelectionCoords(); ok && r.selection.HasSelection() {
			c := coords
			r.curSelection = &c
			for y := c.StartRow; y <= c.EndRow; y++ {
				todo[y] = true
			}
		}
		for _, y := range r.selection.DirtySelectionRows() {
			todo[y] = true
		}
		r.selection.ClearDirtySelectionRows()
	}

	vfloor := int(math.Floor(viewportY))
	fetch := func(y int) (line []Cell, srcRow int, fromBuffer bool) {
		if vfloor <= 0 {
			return buf.Line(y), y, true
		}
		if sb != nil && y < vfloor {
			return sb.ScrollbackLine(sb.ScrollbackLength() - vfloor + y), 0, false
		}
		return buf.Line(y - vfloor), y - vfloor, true
	}

	// Link-change rows: when the hovered hyperlink id changes, any visible
	// row containing the old or new id repaints; a changed regex-link range
	// repaints the union of old and new spans.
	if r.hoveredHyperlinkID != r.prevHoveredHyperlinkID {
		for y := 0; y < rows; y++ {
			line, _, _ := fetch(y)
			if line == nil {
				continue
			}
			for _, c := range line {
				if c.HyperlinkID != 0 &&
					(c.HyperlinkID == r.hoveredHyperlinkID || c.HyperlinkID == r.prevHoveredHyperlinkID) {
					todo[y] = true
					break
				}
			}
		}
		r.prevHoveredHyperlinkID = r.hoveredHyperlinkID
	}
	if !linkRangeEqual(r.hoveredLinkRange, r.prevHoveredLinkRange) {
		for _, lr := range [2]*LinkRange{r.prevHoveredLinkRange, r.hoveredLinkRange} {
			if lr == nil {
				continue
			}
			for y := lr.StartRow; y <= lr.EndRow; y++ {
				todo[y] = true
			}
		}
		r.prevHoveredLinkRange = r.hoveredLinkRange
	}

	for y := 0; y < rows; y++ {
		if buf.RowDirty(y) {
			todo[y] = true
		}
	}

	if forceAll || viewportY > 0 {
		for y := 0; y < rows; y++ {
			todo[y] = true
		}
	} else {
		// Neighbor expansion absorbs glyph overflow from tall diacritics.
		marked := make([]int, 0, len(todo))
		for y := range todo {
			marked = append(marked, y)
		}
		for _, y := range marked {
			todo[y-1] = true
			todo[y+1] = true
		}
	}

	for y := 0; y < rows; y++ {
		if !todo[y] {
			continue
		}
		line, srcRow, fromBuffer := fetch(y)
		if line == nil {
			continue
		}
		r.renderRow(line, y, srcRow, fromBuffer)
	}

	if viewportY == 0 && cursor.Visible && r.cursorVisible && !r.cursorSuppressed {
		var cell Cell
		if line := buf.Line(cursor.Y); line != nil && cursor.X >= 0 && cursor.X < len(line) {
			cell = line[cursor.X]
		}
		r.drawCursor(cursor, cell)
	}

	if sb != nil && scrollbarOpacity > 0 {
		r.drawScrollbar(cols, rows, sb.ScrollbackLength(), viewportY, scrollbarOpacity)
	}

	r.lastCursor = cursor
	r.lastViewportY = viewportY
	// Dirty state is always consumed, even on partial redraws.
	buf.ClearDirty()
}

func linkRangeEqual(a, b *LinkRange) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// SetTheme replaces the palette. Readers within a frame observe a single
// snapshot; the change takes effect on the next Render.
func (r *Renderer) SetTheme(spec ThemeSpec) error {
	theme, err := spec.Theme()
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.theme = theme
	r.mu.Unlock()
	return nil
}

// SetFontSize changes the font size and rederives the cell geometry.
func (r *Renderer) SetFontSize(size float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if size <= 0 {
		size = 15
	}
	r.fontSize = size
	r.metrics = measureFont(r.surface, r.fontFamily, r.fontSize)
}

// SetFontFamily changes the font family and rederives the cell geometry.
func (r *Renderer) SetFontFamily(family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if family == "" {
		family = "monospace"
	}
	r.fontFamily = family
	r.metrics = measureFont(r.surface, r.fontFamily, r.fontSize)
}

// RemeasureFont rederives cell geometry, for hosts whose font loading
// completes after construction.
func (r *Renderer) RemeasureFont() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = measureFont(r.surface, r.fontFamily, r.fontSize)
}

// SetCursorStyle changes the cursor shape.
func (r *Renderer) SetCursorStyle(style CursorStyle) {
	r.mu.Lock()
	r.cursorStyle = style
	r.mu.Unlock()
}

// SetCursorBlink enables or disables the blink timer.
func (r *Renderer) SetCursorBlink(blink bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if blink == r.cursorBlink {
		return
	}
	r.cursorBlink = blink
	if blink {
		r.startBlink()
	} else {
		r.stopBlink()
		r.cursorVisible = true
	}
}

// SuppressCursor hides the cursor regardless of emulator visibility, for
// hosts that draw their own focus indication.
func (r *Renderer) SuppressCursor(suppress bool) {
	r.mu.Lock()
	r.cursorSuppressed = suppress
	r.mu.Unlock()
}

// SetSelectionManager attaches the selection source; nil detaches it.
func (r *Renderer) SetSelectionManager(sel SelectionManager) {
	r.mu.Lock()
	r.selection = sel
	r.mu.Unlock()
}

// SetHoveredHyperlinkID marks an OSC-8 link group as hovered; 0 clears the
// hover. Rows containing the old and new groups repaint on the next frame.
func (r *Renderer) SetHoveredHyperlinkID(id uint32) {
	r.mu.Lock()
	r.hoveredHyperlinkID = id
	r.mu.Unlock()
}

// SetHoveredLinkRange marks a regex-matched link span as hovered; nil
// clears it.
func (r *Renderer) SetHoveredLinkRange(lr *LinkRange) {
	r.mu.Lock()
	if lr != nil {
		c := *lr
		r.hoveredLinkRange = &c
	} else {
		r.hoveredLinkRange = nil
	}
	r.mu.Unlock()
}

// Resize sizes the surface for a cols x rows grid and reapplies the
// device-pixel-ratio transform.
func (r *Renderer) Resize(cols, rows int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cols <= 0 || rows <= 0 {
		return
	}
	r.surface.SetSize(
		int(math.Round(float64(cols*r.metrics.Width)*r.dpr)),
		int(math.Round(float64(rows*r.metrics.Height)*r.dpr)),
	)
	r.surface.SetScale(r.dpr)
}

// Clear fills the whole surface with the theme background.
func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	pw, ph := r.surface.Size()
	r.surface.SetFillColor(r.theme.Background)
	r.surface.FillRect(0, 0, float64(pw)/r.dpr, float64(ph)/r.dpr)
}

// Metrics returns the derived font metrics.
func (r *Renderer) Metrics() FontMetrics {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.metrics
}

// CharWidth returns the cell width in CSS pixels.
func (r *Renderer) CharWidth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.metrics.Width
}

// CharHeight returns the cell height in CSS pixels.
func (r *Renderer) CharHeight() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.metrics.Height
}

// Dispose releases the blink timer. The renderer must not be used after.
func (r *Renderer) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopBlink()
}
