package widgets

import (
	"slices"

	"github.com/go-drift/slimy/pkg/editing"
	"github.com/go-drift/slimy/pkg/focus"
	"github.com/go-drift/slimy/pkg/graphics"
	"github.com/go-drift/slimy/pkg/theme"
)

// Options configures a Registry. Zero fields take defaults.
type Options struct {
	// Theme supplies style defaults. Nil means theme.Default().
	Theme *theme.ThemeData

	// Measurer measures text for caret placement and scrolling. Nil means
	// graphics.DefaultFaceMeasurer().
	Measurer graphics.TextMeasurer

	// Clipboard is shared by all text inputs. Nil means an in-memory
	// clipboard.
	Clipboard editing.Clipboard
}

// FrameInput is the input gathered by a host for one frame.
type FrameInput struct {
	// Events in arrival order.
	Events []editing.Event
}

// Registry is the arena that owns widget instances. It is not safe for
// concurrent use; hosts call it from their update loop.
type Registry struct {
	theme     *theme.ThemeData
	measurer  graphics.TextMeasurer
	clipboard editing.Clipboard
	focus     *focus.Manager

	widgets map[ID]Widget
	order   []ID
	inputs  map[*focus.Node]*TextInput
	lastID  ID

	depth  int
	sink   []Signal
	queued []Signal
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		theme:     opts.Theme,
		measurer:  opts.Measurer,
		clipboard: opts.Clipboard,
		focus:     focus.NewManager(),
		widgets:   make(map[ID]Widget),
		inputs:    make(map[*focus.Node]*TextInput),
	}
	if r.theme == nil {
		r.theme = theme.Default()
	}
	if r.measurer == nil {
		r.measurer = graphics.DefaultFaceMeasurer()
	}
	if r.clipboard == nil {
		r.clipboard = &editing.MemoryClipboard{}
	}
	return r
}

// Theme returns the theme used for style defaults.
func (r *Registry) Theme() *theme.ThemeData { return r.theme }

// Measurer returns the text measurer.
func (r *Registry) Measurer() graphics.TextMeasurer { return r.measurer }

// Clipboard returns the shared clipboard.
func (r *Registry) Clipboard() editing.Clipboard { return r.clipboard }

// SpawnTextInput creates a text input and appends it to the tab order.
func (r *Registry) SpawnTextInput(cfg TextInputConfig) ID {
	id := r.nextID()
	t := newTextInput(r, id, cfg)
	r.insert(t)
	r.inputs[t.node] = t
	r.focus.Add(t.node)
	return id
}

// SpawnProgressBar creates a progress bar.
func (r *Registry) SpawnProgressBar(cfg ProgressBarConfig) ID {
	id := r.nextID()
	r.insert(newProgressBar(r, id, cfg))
	return id
}

func (r *Registry) nextID() ID {
	r.lastID++
	return r.lastID
}

func (r *Registry) insert(w Widget) {
	r.widgets[w.ID()] = w
	r.order = append(r.order, w.ID())
}

// Despawn removes a widget. Queued signals for it are dropped and no focus
// signal is emitted. It reports whether the widget existed.
func (r *Registry) Despawn(id ID) bool {
	w, ok := r.widgets[id]
	if !ok {
		return false
	}
	delete(r.widgets, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	r.queued = slices.DeleteFunc(r.queued, func(s Signal) bool { return s.Widget == id })

	switch w := w.(type) {
	case *TextInput:
		w.removed = true
		r.focus.Remove(w.node)
		delete(r.inputs, w.node)
	case *ProgressBar:
		w.removed = true
	}
	return true
}

// Len returns the number of live widgets.
func (r *Registry) Len() int {
	return len(r.order)
}

// Widget returns the widget with the given ID.
func (r *Registry) Widget(id ID) (Widget, bool) {
	w, ok := r.widgets[id]
	return w, ok
}

// Widgets returns live widgets in spawn order, which is also paint order.
func (r *Registry) Widgets() []Widget {
	out := make([]Widget, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.widgets[id])
	}
	return out
}

// TextInput returns the text input with the given ID.
func (r *Registry) TextInput(id ID) (*TextInput, bool) {
	t, ok := r.widgets[id].(*TextInput)
	return t, ok
}

// ProgressBar returns the progress bar with the given ID.
func (r *Registry) ProgressBar(id ID) (*ProgressBar, bool) {
	p, ok := r.widgets[id].(*ProgressBar)
	return p, ok
}

// SetBounds sets the layout rectangle of a widget in host coordinates.
func (r *Registry) SetBounds(id ID, bounds graphics.Rect) bool {
	switch w := r.widgets[id].(type) {
	case *TextInput:
		w.setBounds(bounds)
	case *ProgressBar:
		w.setBounds(bounds)
	default:
		return false
	}
	return true
}

// Focused returns the ID of the focused text input, if any.
func (r *Registry) Focused() (ID, bool) {
	if t, ok := r.inputs[r.focus.Primary()]; ok {
		return t.id, true
	}
	return 0, false
}

// Focus gives focus to a text input. Resulting signals are delivered at
// the end of the next frame.
func (r *Registry) Focus(id ID) bool {
	t, ok := r.TextInput(id)
	if !ok || t.disabled {
		return false
	}
	t.node.RequestFocus()
	return true
}

// ClearFocus removes focus from every text input. Resulting signals are
// delivered at the end of the next frame.
func (r *Registry) ClearFocus() {
	r.focus.Clear()
}

// Frame processes one frame of input. Pointer presses are hit-tested
// against text input bounds, the topmost input under the pointer taking
// focus and the others losing it. Tab and Shift+Tab move focus in spawn
// order. Character and key events go to the focused input. Events are
// handled in arrival order; afterwards queued signals, such as those of
// ProgressBar.SetValue, are delivered. The returned signals are in
// emission order and their callbacks have already run.
func (r *Registry) Frame(in FrameInput) []Signal {
	for _, id := range r.order {
		if t, ok := r.widgets[id].(*TextInput); ok {
			t.tick()
		}
	}

	var out []Signal
	for _, ev := range in.Events {
		out = append(out, r.route(ev)...)
	}
	return append(out, r.flush()...)
}

func (r *Registry) route(ev editing.Event) []Signal {
	switch e := ev.(type) {
	case editing.PointerEvent:
		if t := r.inputAt(graphics.Offset{X: e.X, Y: e.Y}); t != nil {
			return t.Update([]editing.Event{e})
		}
		return r.dispatch(r.focus.Clear)
	case editing.KeyEvent:
		if e.Key == editing.KeyTab && e.Mods&^editing.ModShift == 0 {
			delta := 1
			if e.Mods.Has(editing.ModShift) {
				delta = -1
			}
			return r.dispatch(func() { r.focus.MoveFocus(delta) })
		}
	case editing.FocusEvent:
		// Window focus changes only ever remove focus; there is no target
		// to give it to.
		if !e.Focused {
			return r.dispatch(r.focus.Clear)
		}
		return nil
	}
	if t, ok := r.inputs[r.focus.Primary()]; ok {
		return t.Update([]editing.Event{ev})
	}
	return nil
}

// inputAt returns the topmost enabled text input containing p.
func (r *Registry) inputAt(p graphics.Offset) *TextInput {
	for i := len(r.order) - 1; i >= 0; i-- {
		t, ok := r.widgets[r.order[i]].(*TextInput)
		if ok && !t.disabled && t.bounds.Contains(p) {
			return t
		}
	}
	return nil
}

// dispatch runs fn, collecting the signals widgets emit meanwhile, and
// delivers them to callbacks.
func (r *Registry) dispatch(fn func()) []Signal {
	out := r.collect(fn)
	r.deliver(out)
	return out
}

func (r *Registry) collect(fn func()) []Signal {
	saved := r.sink
	r.sink = nil
	r.depth++
	defer func() {
		r.depth--
		r.sink = saved
	}()
	fn()
	return r.sink
}

// emit records a signal for the enclosing dispatch, or queues it for the
// next frame flush when there is none.
func (r *Registry) emit(s Signal) {
	if r.depth > 0 {
		r.sink = append(r.sink, s)
		return
	}
	r.queue(s)
}

func (r *Registry) queue(s Signal) {
	r.queued = append(r.queued, s)
}

// flush delivers the signals queued so far. Signals queued by the
// callbacks it runs wait for the next frame.
func (r *Registry) flush() []Signal {
	out := r.queued
	r.queued = nil
	r.deliver(out)
	return out
}

// takeQueued removes and delivers the queued signals of one widget.
func (r *Registry) takeQueued(id ID) []Signal {
	var out, rest []Signal
	for _, s := range r.queued {
		if s.Widget == id {
			out = append(out, s)
		} else {
			rest = append(rest, s)
		}
	}
	r.queued = rest
	r.deliver(out)
	return out
}

func (r *Registry) deliver(signals []Signal) {
	for _, s := range signals {
		if w, ok := r.widgets[s.Widget]; ok {
			w.notify(s)
		}
	}
}
