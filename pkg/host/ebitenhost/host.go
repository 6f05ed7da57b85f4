package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/slimy/pkg/editing"
	"github.com/go-drift/slimy/pkg/graphics"
	"github.com/go-drift/slimy/pkg/theme"
	"github.com/go-drift/slimy/pkg/widgets"
)

// Options configures a Host.
type Options struct {
	// Face is used to draw and measure text. Nil means basicfont.Face7x13.
	Face text.Face

	// Theme supplies style defaults. Nil means theme.Default().
	Theme *theme.ThemeData

	// Clipboard is shared by text inputs. Nil means an in-memory clipboard.
	Clipboard editing.Clipboard
}

// Host adapts ebiten input and drawing to a widgets.Registry.
type Host struct {
	reg  *widgets.Registry
	face text.Face

	windowFocused bool
	events        []editing.Event
	keys          []ebiten.Key
	chars         []rune
}

// New creates a host with its own registry.
func New(opts Options) *Host {
	face := opts.Face
	if face == nil {
		face = DefaultFace()
	}
	reg := widgets.NewRegistry(widgets.Options{
		Theme:     opts.Theme,
		Measurer:  Measurer{Face: face},
		Clipboard: opts.Clipboard,
	})
	return &Host{
		reg:           reg,
		face:          face,
		windowFocused: true,
	}
}

// DefaultFace returns the built-in 7x13 bitmap face.
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// Registry returns the registry driven by the host.
func (h *Host) Registry() *widgets.Registry {
	return h.reg
}

// Face returns the text face.
func (h *Host) Face() text.Face {
	return h.face
}

// LineHeight returns the height of one line of text in the host face.
func (h *Host) LineHeight() float64 {
	m := h.face.Metrics()
	return m.HAscent + m.HDescent
}

// Update polls ebiten input for this tick and runs one registry frame.
func (h *Host) Update() []widgets.Signal {
	h.events = h.pollInput(h.events[:0])
	return h.reg.Frame(widgets.FrameInput{Events: h.events})
}

// Draw paints every widget in spawn order.
func (h *Host) Draw(screen *ebiten.Image) {
	for _, w := range h.reg.Widgets() {
		switch w := w.(type) {
		case *widgets.TextInput:
			h.drawTextInput(screen, w)
		case *widgets.ProgressBar:
			drawProgressBar(screen, w)
		}
	}
}

func drawProgressBar(screen *ebiten.Image, p *widgets.ProgressBar) {
	style := p.Style()
	fillRect(screen, p.Bounds(), style.TrackColor)
	fillRect(screen, p.FillRect(), style.FillColor)
}

func (h *Host) drawTextInput(screen *ebiten.Image, in *widgets.TextInput) {
	style := in.Style()
	bounds := in.Bounds()
	if bounds.IsEmpty() {
		return
	}
	fillRect(screen, bounds, style.BackgroundColor)
	border := style.BorderColor
	if in.Focused() {
		border = style.FocusColor
	}
	vector.StrokeRect(screen,
		float32(bounds.Left), float32(bounds.Top),
		float32(bounds.Width()), float32(bounds.Height()),
		1, border.NRGBA(), false)

	content := in.ContentRect()
	top := content.Top + (content.Height()-h.LineHeight())/2

	if left, right, ok := in.SelectionX(); ok && right > left {
		fillRect(screen, graphics.Rect{
			Left:   content.Left + left,
			Top:    top,
			Right:  content.Left + right,
			Bottom: top + h.LineHeight(),
		}, style.SelectionColor)
	}

	label, color := in.Visible(), style.TextColor
	if in.ShowsPlaceholder() {
		label, color = in.Placeholder(), style.PlaceholderColor
	}
	if label != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(content.Left, top)
		op.ColorScale.ScaleWithColor(color.NRGBA())
		text.Draw(screen, label, h.face, op)
	}

	if in.CursorVisible() {
		x := content.Left + in.CaretX()
		fillRect(screen, graphics.Rect{Left: x, Top: top, Right: x + 1, Bottom: top + h.LineHeight()}, style.CaretColor)
	}
}

func fillRect(screen *ebiten.Image, r graphics.Rect, c graphics.Color) {
	if r.IsEmpty() || c.Alpha() == 0 {
		return
	}
	vector.DrawFilledRect(screen,
		float32(r.Left), float32(r.Top),
		float32(r.Width()), float32(r.Height()),
		c.NRGBA(), false)
}
