package widgets

import (
	"fmt"

	"github.com/go-drift/slimy/pkg/editing"
	"github.com/go-drift/slimy/pkg/errors"
	"github.com/go-drift/slimy/pkg/graphics"
)

// ID identifies a widget instance within a Registry. IDs are never reused;
// the zero ID refers to no widget.
type ID int64

// Kind identifies a widget variant.
type Kind int

const (
	KindTextInput Kind = iota + 1
	KindProgressBar
)

func (k Kind) String() string {
	switch k {
	case KindTextInput:
		return "text_input"
	case KindProgressBar:
		return "progress_bar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Widget is implemented by *TextInput and *ProgressBar only.
type Widget interface {
	// ID returns the widget's arena ID.
	ID() ID
	// Kind returns the widget variant.
	Kind() Kind
	// Bounds returns the layout rectangle last set by the host.
	Bounds() graphics.Rect
	// Update applies events in order and returns the resulting signals.
	// Callbacks configured on the widget run before Update returns.
	Update(events []editing.Event) []Signal

	notify(s Signal)
}

// SignalKind identifies what a Signal reports.
type SignalKind int

const (
	// SignalValueChanged reports a new progress value in Signal.Value.
	SignalValueChanged SignalKind = iota + 1
	// SignalTextChanged reports the new contents of a text input in
	// Signal.Text.
	SignalTextChanged
	// SignalSubmitted reports that Enter was pressed; Signal.Text holds the
	// submitted contents.
	SignalSubmitted
	// SignalFocusChanged reports a focus gain or loss in Signal.Focused.
	SignalFocusChanged
)

func (k SignalKind) String() string {
	switch k {
	case SignalValueChanged:
		return "value_changed"
	case SignalTextChanged:
		return "text_changed"
	case SignalSubmitted:
		return "submitted"
	case SignalFocusChanged:
		return "focus_changed"
	default:
		return fmt.Sprintf("SignalKind(%d)", int(k))
	}
}

// Signal is a notification from a widget to application code.
type Signal struct {
	Kind   SignalKind
	Widget ID

	Text    string
	Value   float64
	Focused bool
}

func (s Signal) String() string {
	switch s.Kind {
	case SignalValueChanged:
		return fmt.Sprintf("%s widget=%d value=%g", s.Kind, s.Widget, s.Value)
	case SignalFocusChanged:
		return fmt.Sprintf("%s widget=%d focused=%t", s.Kind, s.Widget, s.Focused)
	default:
		return fmt.Sprintf("%s widget=%d text=%q", s.Kind, s.Widget, s.Text)
	}
}

// invoke runs an application callback, reporting a panic instead of
// propagating it.
func invoke(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}
