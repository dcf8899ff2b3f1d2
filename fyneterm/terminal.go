// Package fyneterm provides a fyne widget that hosts a purfecterm emulator
// rendered through termcanvas onto a software raster. It plays the role the
// GTK and Qt purfecterm widgets play for their toolkits: feed PTY output in,
// get a live terminal view out.
package fyneterm

import (
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/phroun/purfecterm"

	"github.com/phroun/termcanvas"
	"github.com/phroun/termcanvas/raster"
	"github.com/phroun/termcanvas/termemu"
)

// frameInterval drives the 60 Hz repaint loop.
const frameInterval = 16 * time.Millisecond

// Terminal is a fyne terminal emulator widget.
type Terminal struct {
	widget.BaseWidget

	mu       sync.Mutex
	buffer   *purfecterm.Buffer
	parser   *purfecterm.Parser
	adapter  *termemu.Adapter
	ctx      *raster.Context
	renderer *termcanvas.Renderer
	display  *canvas.Raster

	onInput func([]byte)

	// Scrollbar fade: fully visible while scrolled, fading after return.
	lastScrolled time.Time

	stop chan struct{}
}

// New creates a terminal widget with the given grid size and scrollback
// depth.
func New(cols, rows, scrollbackSize int, opts termcanvas.Options) (*Terminal, error) {
	t := &Terminal{
		buffer: purfecterm.NewBuffer(cols, rows, scrollbackSize),
		ctx:    raster.New(1, 1),
		stop:   make(chan struct{}),
	}
	t.parser = purfecterm.NewParser(t.buffer)
	t.adapter = termemu.New(t.buffer)

	r, err := termcanvas.New(t.ctx, opts)
	if err != nil {
		return nil, err
	}
	t.renderer = r
	t.renderer.SetSelectionManager(t.adapter)

	t.display = canvas.NewRaster(t.frame)
	t.ExtendBaseWidget(t)

	r.SetRedrawCallback(func() {
		t.display.Refresh()
	})

	go t.frameLoop()
	return t, nil
}

// CreateRenderer implements fyne.Widget.
func (t *Terminal) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.display)
}

// MinSize reports a small fixed minimum so layouts stay flexible, matching
// the purfecterm widget convention.
func (t *Terminal) MinSize() fyne.Size {
	return fyne.NewSize(100, 50)
}

// frame is the raster generator: it resizes the grid to the allocation,
// renders a frame and hands fyne the backing image.
func (t *Terminal) frame(w, h int) image.Image {
	t.mu.Lock()
	defer t.mu.Unlock()

	cw := t.renderer.CharWidth()
	ch := t.renderer.CharHeight()
	cols := w / cw
	rows := h / ch
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if bc, br := t.buffer.GetSize(); bc != cols || br != rows {
		t.buffer.Resize(cols, rows)
	}

	viewportY := float64(t.adapter.ScrollOffset())
	if viewportY > 0 {
		t.lastScrolled = time.Now()
	}
	t.renderer.Render(t.adapter, false, viewportY, t.adapter, t.scrollbarOpacity())
	return t.ctx.Image()
}

// scrollbarOpacity fades the scrollbar out over a second once the view
// returns to the live screen.
func (t *Terminal) scrollbarOpacity() float64 {
	since := time.Since(t.lastScrolled)
	if since < 0 || t.lastScrolled.IsZero() {
		return 0
	}
	const fade = time.Second
	if since >= fade {
		return 0
	}
	return 1 - float64(since)/float64(fade)
}

func (t *Terminal) frameLoop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if t.buffer.IsDirty() || t.adapter.ScrollOffset() > 0 {
				t.display.Refresh()
			}
		case <-t.stop:
			return
		}
	}
}

// Feed writes PTY output into the emulator.
func (t *Terminal) Feed(data []byte) {
	t.parser.Parse(data)
}

// FeedString writes a string into the emulator.
func (t *Terminal) FeedString(data string) {
	t.parser.ParseString(data)
}

// SetInputCallback registers the sink for keyboard input bound for the PTY.
func (t *Terminal) SetInputCallback(fn func([]byte)) {
	t.mu.Lock()
	t.onInput = fn
	t.mu.Unlock()
}

// Buffer returns the underlying emulator buffer.
func (t *Terminal) Buffer() *purfecterm.Buffer {
	return t.buffer
}

// Renderer returns the frame renderer, for theme and cursor configuration.
func (t *Terminal) Renderer() *termcanvas.Renderer {
	return t.renderer
}

// Screenshot returns a copy of the most recently rendered frame.
func (t *Terminal) Screenshot() image.Image {
	t.mu.Lock()
	defer t.mu.Unlock()
	src := t.ctx.Image()
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

// Scroll moves the view into scrollback by delta lines (positive = older).
func (t *Terminal) Scroll(delta int) {
	off := t.buffer.GetScrollOffset() + delta
	if off < 0 {
		off = 0
	}
	if max := t.buffer.GetScrollbackSize(); off > max {
		off = max
	}
	t.buffer.SetScrollOffset(off)
	t.mu.Lock()
	t.lastScrolled = time.Now()
	t.mu.Unlock()
	t.display.Refresh()
}

// FocusGained implements fyne.Focusable.
func (t *Terminal) FocusGained() {
	t.renderer.SuppressCursor(false)
	t.display.Refresh()
}

// FocusLost implements fyne.Focusable.
func (t *Terminal) FocusLost() {
	t.renderer.SuppressCursor(true)
	t.display.Refresh()
}

// TypedRune implements fyne.Focusable.
func (t *Terminal) TypedRune(r rune) {
	t.mu.Lock()
	fn := t.onInput
	t.mu.Unlock()
	if fn != nil {
		fn([]byte(string(r)))
	}
}

// TypedKey implements fyne.Focusable for the control keys a shell needs;
// full keyboard translation stays with the host application.
func (t *Terminal) TypedKey(ev *fyne.KeyEvent) {
	t.mu.Lock()
	fn := t.onInput
	t.mu.Unlock()
	if fn == nil {
		return
	}
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		fn([]byte{'\r'})
	case fyne.KeyBackspace:
		fn([]byte{0x7f})
	case fyne.KeyTab:
		fn([]byte{'\t'})
	case fyne.KeyEscape:
		fn([]byte{0x1b})
	case fyne.KeyUp:
		fn([]byte{0x1b, '[', 'A'})
	case fyne.KeyDown:
		fn([]byte{0x1b, '[', 'B'})
	case fyne.KeyRight:
		fn([]byte{0x1b, '[', 'C'})
	case fyne.KeyLeft:
		fn([]byte{0x1b, '[', 'D'})
	case fyne.KeyPageUp:
		t.Scroll(5)
	case fyne.KeyPageDown:
		t.Scroll(-5)
	}
}

// Close stops the frame loop and releases the renderer's timer.
func (t *Terminal) Close() {
	close(t.stop)
	t.renderer.Dispose()
}
