// Package editing implements single-line text editing: a rune buffer, a
// caret, an optional selection anchor and a focus flag, mutated by key and
// character events.
//
// # State machine
//
// A State starts unfocused. [State.Activate] (a click or tab focus) focuses
// it and places the caret; [State.Deactivate] drops focus but keeps the
// buffer and caret. While focused, [State.Apply] performs exactly one
// atomic operation per event:
//
//	s := editing.New(editing.Config{Text: "hello", MaxLength: 16})
//	s.Activate()
//	for _, ev := range editing.Type("!") {
//	    s.Apply(ev)
//	}
//	s.Text() // "hello!"
//
// Nothing here returns an error. Indices are clamped to [0, Len()], and
// edits that would break the length limit or a [Constraint] are dropped.
// The returned [Effect] tells the caller what changed so it can emit
// signals and schedule a redraw.
//
// # Selection
//
// The selection is the half-open range between the anchor and the caret.
// Shift-modified movement sets the anchor to the caret position before the
// first extending move and keeps it until a non-extending move or an edit.
//
// # Geometry
//
// Pointer mapping and view scrolling use a [graphics.TextMeasurer] for
// per-character advances. No shaping, kerning or wrapping is performed.
package editing
