package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/slimy/pkg/editing"
	"github.com/go-drift/slimy/pkg/errors"
	"github.com/go-drift/slimy/pkg/graphics"
	"github.com/go-drift/slimy/pkg/progress"
	"github.com/go-drift/slimy/pkg/theme"
	"github.com/go-drift/slimy/pkg/widgets"
)

// Options configures a Host.
type Options struct {
	// Theme supplies colors. Nil means theme.Default(). Padding is always
	// one cell, which holds the input border.
	Theme *theme.ThemeData

	// Clipboard is shared by text inputs. Nil means an in-memory clipboard.
	Clipboard editing.Clipboard

	// EastAsianAmbiguousWide measures ambiguous-width characters as two
	// cells.
	EastAsianAmbiguousWide bool
}

// Host adapts a tcell screen to a widgets.Registry. All methods must be
// called from the goroutine that polls the screen.
type Host struct {
	screen   tcell.Screen
	reg      *widgets.Registry
	measurer graphics.CellMeasurer

	events     []editing.Event
	inPaste    bool
	buttonDown bool
}

// NewScreen creates the terminal screen.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &errors.WidgetError{Op: "termhost.NewScreen", Kind: errors.KindHost, Err: err}
	}
	return s, nil
}

// New creates a host drawing to screen with its own registry.
func New(screen tcell.Screen, opts Options) *Host {
	th := theme.Default()
	if opts.Theme != nil {
		copied := *opts.Theme
		th = &copied
	}
	th.TextInput.Padding = 1
	m := graphics.CellMeasurer{EastAsianAmbiguousWide: opts.EastAsianAmbiguousWide}
	reg := widgets.NewRegistry(widgets.Options{
		Theme:     th,
		Measurer:  m,
		Clipboard: opts.Clipboard,
	})
	return &Host{screen: screen, reg: reg, measurer: m}
}

// Init initializes the screen and enables mouse, paste and focus reporting.
func (h *Host) Init() error {
	if err := h.screen.Init(); err != nil {
		return &errors.WidgetError{Op: "termhost.Init", Kind: errors.KindHost, Err: err}
	}
	h.screen.EnableMouse()
	h.screen.EnablePaste()
	h.screen.EnableFocus()
	return nil
}

// Fini restores the terminal.
func (h *Host) Fini() {
	h.screen.Fini()
}

// Screen returns the tcell screen.
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Registry returns the registry driven by the host.
func (h *Host) Registry() *widgets.Registry {
	return h.reg
}

// Handle runs one registry frame for a tcell event. Events that carry no
// widget input still run a frame, which advances caret blinking and
// delivers queued signals.
func (h *Host) Handle(ev tcell.Event) []widgets.Signal {
	h.events = h.convert(h.events[:0], ev)
	return h.reg.Frame(widgets.FrameInput{Events: h.events})
}

// Draw paints every widget and shows the screen. The terminal cursor is
// placed at the caret of the focused input while it is visible.
func (h *Host) Draw() {
	h.screen.HideCursor()
	for _, w := range h.reg.Widgets() {
		switch w := w.(type) {
		case *widgets.TextInput:
			h.drawTextInput(w)
		case *widgets.ProgressBar:
			h.drawProgressBar(w)
		}
	}
	h.screen.Show()
}

func convertColor(c graphics.Color) tcell.Color {
	if c.Alpha() == 0 {
		return tcell.ColorDefault
	}
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// cells converts a rectangle to whole cells, rounding edges to the nearest
// cell boundary.
func cells(r graphics.Rect) (x, y, w, h int) {
	x, y = int(math.Round(r.Left)), int(math.Round(r.Top))
	return x, y, int(math.Round(r.Right)) - x, int(math.Round(r.Bottom)) - y
}

func (h *Host) fill(x, y, w, ht int, r rune, style tcell.Style) {
	for row := y; row < y+ht; row++ {
		for col := x; col < x+w; col++ {
			h.screen.SetContent(col, row, r, nil, style)
		}
	}
}

// partialBlocks are left-aligned eighth blocks, from one eighth to seven.
var partialBlocks = []rune("▏▎▍▌▋▊▉")

func (h *Host) drawProgressBar(p *widgets.ProgressBar) {
	style := p.Style()
	x, y, w, ht := cells(p.Bounds())
	track := tcell.StyleDefault.Background(convertColor(style.TrackColor))
	h.fill(x, y, w, ht, ' ', track)

	fill := p.FillRect()
	fx, fy, _, fh := cells(fill)
	full := int(fill.Width())
	h.fill(fx, fy, full, fh, ' ', track.Background(convertColor(style.FillColor)))

	// Sub-cell progress along the width is drawn with an eighth block.
	if p.SizeAnimation() != progress.SizeAnimationWidth || full >= w {
		return
	}
	if eighths := int((fill.Width() - float64(full)) * 8); eighths > 0 {
		partial := track.Foreground(convertColor(style.FillColor))
		for row := fy; row < fy+fh; row++ {
			h.screen.SetContent(fx+full, row, partialBlocks[eighths-1], nil, partial)
		}
	}
}

func (h *Host) drawTextInput(in *widgets.TextInput) {
	style := in.Style()
	x, y, w, ht := cells(in.Bounds())
	if w <= 0 || ht <= 0 {
		return
	}
	bg := tcell.StyleDefault.Background(convertColor(style.BackgroundColor))
	h.fill(x, y, w, ht, ' ', bg)

	border := style.BorderColor
	if in.Focused() {
		border = style.FocusColor
	}
	if w >= 2 && ht >= 2 {
		h.drawBox(x, y, w, ht, bg.Foreground(convertColor(border)))
	}

	cx, cy, cw, ch := cells(in.ContentRect())
	if cw <= 0 || ch <= 0 {
		return
	}
	row := cy + (ch-1)/2

	label, fg := in.Visible(), style.TextColor
	if in.ShowsPlaceholder() {
		label, fg = in.Placeholder(), style.PlaceholderColor
	}
	textStyle := bg.Foreground(convertColor(fg))
	selStyle := textStyle.Background(convertColor(style.SelectionColor))
	selLeft, selRight, hasSel := in.SelectionX()

	col := 0
	for _, r := range label {
		rw := int(h.measurer.Advance(r))
		if rw == 0 {
			continue
		}
		if col+rw > cw {
			break
		}
		st := textStyle
		if hasSel && float64(col) >= selLeft && float64(col) < selRight {
			st = selStyle
		}
		h.screen.SetContent(cx+col, row, r, nil, st)
		col += rw
	}

	if in.CursorVisible() {
		h.screen.ShowCursor(cx+int(in.CaretX()), row)
	}
}

func (h *Host) drawBox(x, y, w, ht int, style tcell.Style) {
	right, bottom := x+w-1, y+ht-1
	for col := x + 1; col < right; col++ {
		h.screen.SetContent(col, y, tcell.RuneHLine, nil, style)
		h.screen.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < bottom; row++ {
		h.screen.SetContent(x, row, tcell.RuneVLine, nil, style)
		h.screen.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	h.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	h.screen.SetContent(right, y, tcell.RuneURCorner, nil, style)
	h.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, style)
	h.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
