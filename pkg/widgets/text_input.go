package widgets

import (
	"time"

	"github.com/go-drift/slimy/pkg/editing"
	"github.com/go-drift/slimy/pkg/focus"
	"github.com/go-drift/slimy/pkg/graphics"
	"github.com/go-drift/slimy/pkg/theme"
)

// TextInputConfig describes a text input at spawn time.
type TextInputConfig struct {
	// Text is the initial contents, truncated to MaxLength.
	Text string

	// Placeholder is shown while the input is empty.
	Placeholder string

	// MaxLength bounds the number of characters. Zero means unbounded.
	MaxLength int

	// Constraints filter edits. Nil means editing.DefaultConstraints().
	Constraints []editing.Constraint

	// SubmitPolicy decides whether Enter keeps focus. The zero value
	// retains it.
	SubmitPolicy editing.SubmitPolicy

	// BlinkInterval is the caret blink period. Zero takes the theme value;
	// negative disables blinking.
	BlinkInterval time.Duration

	// Style overrides theme colors and padding. Zero fields take the theme
	// value.
	Style TextInputStyle

	// Disabled inputs ignore events and cannot take focus.
	Disabled bool

	// DebugLabel names the input's focus node.
	DebugLabel string

	// OnChanged is called when the text changes.
	OnChanged func(string)

	// OnSubmitted is called when the user presses Enter.
	OnSubmitted func(string)

	// OnFocusChange is called when focus changes.
	OnFocusChange func(bool)
}

// TextInputStyle holds the visual parameters of a text input.
type TextInputStyle struct {
	TextColor        graphics.Color
	BackgroundColor  graphics.Color
	BorderColor      graphics.Color
	FocusColor       graphics.Color
	PlaceholderColor graphics.Color
	CaretColor       graphics.Color
	SelectionColor   graphics.Color
	Padding          float64
}

// resolve fills zero fields from the theme.
func (s TextInputStyle) resolve(t theme.TextInputTheme) TextInputStyle {
	pick := func(c, def graphics.Color) graphics.Color {
		if c == 0 {
			return def
		}
		return c
	}
	out := TextInputStyle{
		TextColor:        pick(s.TextColor, t.Text),
		BackgroundColor:  pick(s.BackgroundColor, t.Background),
		BorderColor:      pick(s.BorderColor, t.Border),
		FocusColor:       pick(s.FocusColor, t.Focus),
		PlaceholderColor: pick(s.PlaceholderColor, t.Placeholder),
		CaretColor:       pick(s.CaretColor, t.Caret),
		SelectionColor:   pick(s.SelectionColor, t.Selection),
		Padding:          s.Padding,
	}
	if out.Padding <= 0 {
		out.Padding = t.Padding
	}
	return out
}

// TextInput is a single-line editable text field.
type TextInput struct {
	id       ID
	reg      *Registry
	cfg      TextInputConfig
	style    TextInputStyle
	state    *editing.State
	blink    *editing.Blink
	node     *focus.Node
	bounds   graphics.Rect
	disabled bool
	removed  bool
}

func newTextInput(reg *Registry, id ID, cfg TextInputConfig) *TextInput {
	state := editing.New(editing.Config{
		Text:         cfg.Text,
		MaxLength:    cfg.MaxLength,
		Constraints:  cfg.Constraints,
		SubmitPolicy: cfg.SubmitPolicy,
		Clipboard:    reg.clipboard,
	})
	t := &TextInput{
		id:       id,
		reg:      reg,
		cfg:      cfg,
		style:    cfg.Style.resolve(reg.theme.TextInput),
		state:    state,
		disabled: cfg.Disabled,
	}
	interval := cfg.BlinkInterval
	if interval == 0 {
		interval = reg.theme.TextInput.BlinkInterval
	}
	if interval > 0 {
		t.blink = editing.NewBlink(interval)
	}
	label := cfg.DebugLabel
	if label == "" {
		label = "TextInput"
	}
	t.node = &focus.Node{
		CanRequestFocus: !cfg.Disabled,
		DebugLabel:      label,
		OnFocusChange:   t.focusChanged,
	}
	return t
}

func (t *TextInput) ID() ID                { return t.id }
func (t *TextInput) Kind() Kind            { return KindTextInput }
func (t *TextInput) Bounds() graphics.Rect { return t.bounds }

// State exposes the editing state machine for reading. Mutating it directly
// bypasses signals and focus bookkeeping.
func (t *TextInput) State() *editing.State { return t.state }

// Style returns the resolved style.
func (t *TextInput) Style() TextInputStyle { return t.style }

func (t *TextInput) Text() string                 { return t.state.Text() }
func (t *TextInput) Caret() int                   { return t.state.Caret() }
func (t *TextInput) Selection() editing.Selection { return t.state.Selection() }
func (t *TextInput) Focused() bool                { return t.state.Focused() }
func (t *TextInput) Placeholder() string          { return t.cfg.Placeholder }
func (t *TextInput) Disabled() bool               { return t.disabled }

// ShowsPlaceholder reports whether the placeholder should be drawn instead
// of the text.
func (t *TextInput) ShowsPlaceholder() bool {
	return t.state.Len() == 0 && t.cfg.Placeholder != ""
}

// ContentRect returns the text area inside the padding.
func (t *TextInput) ContentRect() graphics.Rect {
	return t.bounds.Deflate(t.style.Padding)
}

// Visible returns the portion of the text that fits the content width.
func (t *TextInput) Visible() string {
	return t.state.Visible(t.ContentRect().Width(), t.reg.measurer)
}

// CaretX returns the caret position relative to ContentRect's left edge.
func (t *TextInput) CaretX() float64 {
	return t.state.CaretX(t.reg.measurer)
}

// SelectionX returns the selection extent relative to ContentRect's left
// edge. ok is false without a selection.
func (t *TextInput) SelectionX() (left, right float64, ok bool) {
	left, right, ok = t.state.SelectionX(t.reg.measurer)
	if ok {
		right = min(right, t.ContentRect().Width())
	}
	return left, right, ok
}

// CursorVisible reports whether the caret should be drawn this frame.
func (t *TextInput) CursorVisible() bool {
	if !t.state.Focused() {
		return false
	}
	return t.blink == nil || t.blink.Visible()
}

// SetText replaces the contents programmatically. No signals are emitted.
func (t *TextInput) SetText(text string) {
	if t.state.SetText(text) != 0 {
		t.afterEdit()
	}
}

// SetDisabled enables or disables the input. Disabling drops focus.
func (t *TextInput) SetDisabled(disabled bool) {
	t.disabled = disabled
	t.node.CanRequestFocus = !disabled
	if disabled {
		t.node.Unfocus()
	}
}

// Update applies events in order. Pointer events use host coordinates: a
// press inside the bounds focuses the input with the caret at the nearest
// character boundary, a press outside removes focus.
func (t *TextInput) Update(events []editing.Event) []Signal {
	if t.removed {
		return nil
	}
	return t.reg.dispatch(func() {
		for _, ev := range events {
			t.apply(ev)
		}
	})
}

func (t *TextInput) apply(ev editing.Event) {
	if t.disabled {
		return
	}
	switch e := ev.(type) {
	case editing.PointerEvent:
		p := graphics.Offset{X: e.X, Y: e.Y}
		if !t.bounds.Contains(p) {
			t.node.Unfocus()
			return
		}
		local := t.ContentRect().Local(p)
		eff := t.state.ActivateAt(local.X, t.reg.measurer)
		t.node.RequestFocus()
		t.handle(eff)
	case editing.FocusEvent:
		if e.Focused {
			t.node.RequestFocus()
		} else {
			t.node.Unfocus()
		}
	default:
		t.handle(t.state.Apply(ev))
	}
}

// focusChanged keeps the editing state in line with the focus manager.
func (t *TextInput) focusChanged(focused bool) {
	if focused == t.state.Focused() {
		return
	}
	t.handle(t.state.Apply(editing.FocusEvent{Focused: focused}))
}

func (t *TextInput) handle(eff editing.Effect) {
	if eff == 0 {
		return
	}
	if eff.Has(editing.EffectFocusChanged) && !t.state.Focused() && t.node.HasFocus() {
		t.node.Unfocus()
	}
	t.afterEdit()

	if eff.Has(editing.EffectTextChanged) {
		t.reg.emit(Signal{Kind: SignalTextChanged, Widget: t.id, Text: t.state.Text()})
	}
	if eff.Has(editing.EffectSubmitted) {
		t.reg.emit(Signal{Kind: SignalSubmitted, Widget: t.id, Text: t.state.Text()})
	}
	if eff.Has(editing.EffectFocusChanged) {
		t.reg.emit(Signal{Kind: SignalFocusChanged, Widget: t.id, Focused: t.state.Focused()})
	}
}

// afterEdit restarts the blink cycle and scrolls the caret into view.
func (t *TextInput) afterEdit() {
	if t.blink != nil {
		t.blink.Reset()
	}
	t.state.ScrollToCaret(t.ContentRect().Width(), t.reg.measurer)
}

func (t *TextInput) tick() {
	if t.blink != nil && t.state.Focused() {
		t.blink.Tick()
	}
}

func (t *TextInput) setBounds(r graphics.Rect) {
	t.bounds = r
	t.state.ScrollToCaret(t.ContentRect().Width(), t.reg.measurer)
}

func (t *TextInput) notify(s Signal) {
	switch s.Kind {
	case SignalTextChanged:
		if cb := t.cfg.OnChanged; cb != nil {
			invoke("widgets.TextInput.OnChanged", func() { cb(s.Text) })
		}
	case SignalSubmitted:
		if cb := t.cfg.OnSubmitted; cb != nil {
			invoke("widgets.TextInput.OnSubmitted", func() { cb(s.Text) })
		}
	case SignalFocusChanged:
		if cb := t.cfg.OnFocusChange; cb != nil {
			invoke("widgets.TextInput.OnFocusChange", func() { cb(s.Focused) })
		}
	}
}
