package editing

import (
	"slices"
	"unicode"

	"github.com/go-drift/slimy/pkg/graphics"
)

// Effect is a set of changes produced by one operation.
type Effect uint8

const (
	// EffectTextChanged means the buffer contents changed.
	EffectTextChanged Effect = 1 << iota
	// EffectCaretMoved means the caret offset changed.
	EffectCaretMoved
	// EffectSelectionChanged means the anchor was set, moved or cleared.
	EffectSelectionChanged
	// EffectFocusChanged means the state gained or lost focus.
	EffectFocusChanged
	// EffectSubmitted means the user submitted the text (Enter).
	EffectSubmitted
)

// Has reports whether all effects in e are present.
func (e Effect) Has(effect Effect) bool {
	return e&effect == effect
}

// SubmitPolicy controls what Submit does to focus.
type SubmitPolicy int

const (
	// SubmitRetainFocus keeps the input focused after Enter.
	SubmitRetainFocus SubmitPolicy = iota
	// SubmitClearFocus unfocuses the input after Enter.
	SubmitClearFocus
)

// Direction is a caret movement direction.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// Unit is the granularity of a caret movement.
type Unit int

const (
	// UnitCharacter moves by one character.
	UnitCharacter Unit = iota
	// UnitWord moves to the previous word start or next word end.
	UnitWord
	// UnitLine moves to the start or end of the line, which for a
	// single-line input is the whole buffer.
	UnitLine
)

// Config configures a new State.
type Config struct {
	// Text is the initial buffer. It is truncated to MaxLength.
	Text string

	// MaxLength bounds the buffer length in characters. Zero means unbounded.
	MaxLength int

	// Constraints must all accept an edit for it to apply.
	// Nil selects DefaultConstraints; use an empty slice to disable them.
	Constraints []Constraint

	// SubmitPolicy selects what Enter does to focus.
	SubmitPolicy SubmitPolicy

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard
}

// State is the editing state of one text input. It is not safe for
// concurrent use; hosts drive it from their frame loop.
type State struct {
	buffer    []rune
	caret     int
	anchor    int
	hasAnchor bool
	focused   bool
	scroll    int

	maxLength   int
	constraints []Constraint
	policy      SubmitPolicy
	clipboard   Clipboard
}

// New creates an unfocused State with the caret at the end of the text.
func New(cfg Config) *State {
	buf := []rune(cfg.Text)
	maxLength := max(cfg.MaxLength, 0)
	if maxLength > 0 && len(buf) > maxLength {
		buf = buf[:maxLength]
	}
	constraints := cfg.Constraints
	if constraints == nil {
		constraints = DefaultConstraints()
	}
	return &State{
		buffer:      buf,
		caret:       len(buf),
		maxLength:   maxLength,
		constraints: constraints,
		policy:      cfg.SubmitPolicy,
		clipboard:   cfg.Clipboard,
	}
}

// Text returns the buffer contents.
func (s *State) Text() string {
	return string(s.buffer)
}

// Runes returns a copy of the buffer.
func (s *State) Runes() []rune {
	return slices.Clone(s.buffer)
}

// Len returns the buffer length in characters.
func (s *State) Len() int {
	return len(s.buffer)
}

// MaxLength returns the length limit, or zero if unbounded.
func (s *State) MaxLength() int {
	return s.maxLength
}

// Caret returns the caret offset.
func (s *State) Caret() int {
	return s.caret
}

// Anchor returns the selection anchor and whether one is set.
func (s *State) Anchor() (int, bool) {
	return s.anchor, s.hasAnchor
}

// Selection returns the anchor and caret as a Selection.
func (s *State) Selection() Selection {
	if !s.hasAnchor {
		return Collapsed(s.caret)
	}
	return Selection{Base: s.anchor, Extent: s.caret}
}

// HasSelection reports whether a non-empty range is selected.
func (s *State) HasSelection() bool {
	return s.hasAnchor && s.anchor != s.caret
}

// SelectedText returns the selected characters.
func (s *State) SelectedText() string {
	sel := s.Selection()
	return string(s.buffer[sel.Start():sel.End()])
}

// Focused reports whether the state receives key and character events.
func (s *State) Focused() bool {
	return s.focused
}

// Apply performs the operation an event maps to and reports its effects.
// Key and character events are ignored while unfocused. Pointer events
// need geometry and are handled by ActivateAt instead.
func (s *State) Apply(ev Event) Effect {
	switch e := ev.(type) {
	case FocusEvent:
		if e.Focused {
			return s.Activate()
		}
		return s.Deactivate()
	case CharEvent:
		if !s.focused {
			return 0
		}
		return s.Insert(e.Char)
	case KeyEvent:
		if !s.focused {
			return 0
		}
		return s.applyKey(e)
	default:
		return 0
	}
}

func (s *State) applyKey(e KeyEvent) Effect {
	extend := e.Mods.Has(ModShift)
	wordMod := e.Mods&(ModCtrl|ModAlt) != 0
	switch e.Key {
	case KeyLeft, KeyRight:
		dir := Backward
		if e.Key == KeyRight {
			dir = Forward
		}
		unit := UnitCharacter
		switch {
		case e.Mods.Has(ModMeta):
			unit = UnitLine
		case wordMod:
			unit = UnitWord
		}
		return s.Move(dir, unit, extend)
	case KeyHome, KeyUp:
		return s.Move(Backward, UnitLine, extend)
	case KeyEnd, KeyDown:
		return s.Move(Forward, UnitLine, extend)
	case KeyBackspace:
		if wordMod {
			return s.DeleteWordBackward()
		}
		return s.DeleteBackward()
	case KeyDelete:
		if wordMod {
			return s.DeleteWordForward()
		}
		return s.DeleteForward()
	case KeyEnter:
		return s.Submit()
	case KeyEscape:
		return s.ClearSelection()
	case KeyA:
		if e.Mods.shortcut() {
			return s.SelectAll()
		}
	case KeyC:
		if e.Mods.shortcut() {
			return s.Copy()
		}
	case KeyX:
		if e.Mods.shortcut() {
			return s.Cut()
		}
	case KeyV:
		if e.Mods.shortcut() {
			return s.Paste()
		}
	}
	return 0
}

// Activate focuses the state with the caret at the end of the buffer and
// no selection.
func (s *State) Activate() Effect {
	return s.activateAt(len(s.buffer))
}

// ActivateAt focuses the state with the caret at the character boundary
// closest to x. x is relative to the left edge of the displayed text, so
// the current scroll offset is taken into account.
func (s *State) ActivateAt(x float64, m graphics.TextMeasurer) Effect {
	if m == nil {
		return s.Activate()
	}
	return s.activateAt(s.scroll + CaretAt(s.buffer[s.scroll:], x, m))
}

func (s *State) activateAt(caret int) Effect {
	var eff Effect
	if !s.focused {
		s.focused = true
		eff |= EffectFocusChanged
	}
	eff |= s.setCaret(caret, false)
	return eff
}

// Deactivate drops focus. The buffer, caret and selection are preserved.
func (s *State) Deactivate() Effect {
	if !s.focused {
		return 0
	}
	s.focused = false
	return EffectFocusChanged
}

// Insert inserts r at the caret, replacing the selection if there is one.
// Control characters are dropped, as are insertions that would exceed the
// length limit or that a constraint rejects.
func (s *State) Insert(r rune) Effect {
	if !acceptsRune(r) {
		return 0
	}
	return s.replaceSelection([]rune{r})
}

// InsertText inserts s at the caret as one edit, replacing the selection.
// Control characters are removed first; the remaining text is inserted
// whole or not at all.
func (s *State) InsertText(text string) Effect {
	rs := make([]rune, 0, len(text))
	for _, r := range text {
		if acceptsRune(r) {
			rs = append(rs, r)
		}
	}
	if len(rs) == 0 {
		return 0
	}
	return s.replaceSelection(rs)
}

// DeleteBackward deletes the selection, or else the character before the
// caret.
func (s *State) DeleteBackward() Effect {
	if s.HasSelection() {
		return s.deleteSelection()
	}
	if s.caret == 0 {
		return s.clearAnchor()
	}
	return s.deleteRange(s.caret-1, s.caret)
}

// DeleteForward deletes the selection, or else the character after the
// caret.
func (s *State) DeleteForward() Effect {
	if s.HasSelection() {
		return s.deleteSelection()
	}
	if s.caret >= len(s.buffer) {
		return s.clearAnchor()
	}
	return s.deleteRange(s.caret, s.caret+1)
}

// DeleteWordBackward deletes the selection, or else back to the start of
// the previous word.
func (s *State) DeleteWordBackward() Effect {
	if s.HasSelection() {
		return s.deleteSelection()
	}
	return s.deleteRange(previousWordStart(s.buffer, s.caret), s.caret)
}

// DeleteWordForward deletes the selection, or else up to the end of the
// next word.
func (s *State) DeleteWordForward() Effect {
	if s.HasSelection() {
		return s.deleteSelection()
	}
	return s.deleteRange(s.caret, nextWordEnd(s.buffer, s.caret))
}

// Move moves the caret. With extend the anchor is set to the caret
// position before the move, unless an anchor is already set; without it
// the anchor is cleared.
func (s *State) Move(dir Direction, unit Unit, extend bool) Effect {
	target := s.caret
	switch unit {
	case UnitCharacter:
		if dir == Backward {
			target--
		} else {
			target++
		}
	case UnitWord:
		if dir == Backward {
			target = previousWordStart(s.buffer, s.caret)
		} else {
			target = nextWordEnd(s.buffer, s.caret)
		}
	case UnitLine:
		if dir == Backward {
			target = 0
		} else {
			target = len(s.buffer)
		}
	}
	return s.setCaret(target, extend)
}

// SetCaret moves the caret to offset, clamped to the buffer, clearing the
// selection.
func (s *State) SetCaret(offset int) Effect {
	return s.setCaret(offset, false)
}

// SetSelection sets the anchor and caret, both clamped to the buffer.
func (s *State) SetSelection(sel Selection) Effect {
	n := len(s.buffer)
	anchor, caret := clampIndex(sel.Base, n), clampIndex(sel.Extent, n)
	var eff Effect
	if !s.hasAnchor || s.anchor != anchor {
		eff |= EffectSelectionChanged
	}
	if caret != s.caret {
		eff |= EffectCaretMoved
	}
	s.anchor, s.hasAnchor, s.caret = anchor, true, caret
	return eff
}

// SelectAll selects the whole buffer: anchor 0, caret at the end.
func (s *State) SelectAll() Effect {
	return s.SetSelection(Selection{Base: 0, Extent: len(s.buffer)})
}

// ClearSelection drops the anchor without moving the caret.
func (s *State) ClearSelection() Effect {
	return s.clearAnchor()
}

// Copy writes the selected text to the clipboard.
func (s *State) Copy() Effect {
	if s.clipboard != nil && s.HasSelection() {
		s.clipboard.WriteText(s.SelectedText())
	}
	return 0
}

// Cut copies the selected text to the clipboard and deletes it.
func (s *State) Cut() Effect {
	if s.clipboard == nil || !s.HasSelection() {
		return 0
	}
	text := s.SelectedText()
	eff := s.deleteSelection()
	if eff.Has(EffectTextChanged) {
		s.clipboard.WriteText(text)
	}
	return eff
}

// Paste inserts the clipboard text as with InsertText.
func (s *State) Paste() Effect {
	if s.clipboard == nil {
		return 0
	}
	text, ok := s.clipboard.ReadText()
	if !ok {
		return 0
	}
	return s.InsertText(text)
}

// Submit reports EffectSubmitted and, under SubmitClearFocus, drops focus.
func (s *State) Submit() Effect {
	eff := EffectSubmitted
	if s.policy == SubmitClearFocus {
		eff |= s.Deactivate()
	}
	return eff
}

// SetText replaces the buffer programmatically, truncating it to the
// length limit. Constraints are not consulted. The caret moves to the end
// and the selection is cleared.
func (s *State) SetText(text string) Effect {
	buf := []rune(text)
	if s.maxLength > 0 && len(buf) > s.maxLength {
		buf = buf[:s.maxLength]
	}
	var eff Effect
	if !slices.Equal(buf, s.buffer) {
		eff |= EffectTextChanged
	}
	s.buffer = buf
	s.scroll = clampIndex(s.scroll, len(buf))
	eff |= s.setCaret(len(buf), false)
	return eff
}

// ScrollOffset returns the index of the first displayed character.
func (s *State) ScrollOffset() int {
	return s.scroll
}

// ScrollToCaret adjusts the scroll offset so that the caret lies within a
// view of the given width, and so that no space is wasted on the right
// when the tail of the text fits.
func (s *State) ScrollToCaret(width float64, m graphics.TextMeasurer) {
	if m == nil || width <= 0 {
		s.scroll = 0
		return
	}
	s.scroll = clampIndex(s.scroll, len(s.buffer))
	for s.scroll > 0 && graphics.MeasureRunes(m, s.buffer[s.scroll-1:]) <= width {
		s.scroll--
	}
	if s.caret < s.scroll {
		s.scroll = s.caret
	}
	for s.scroll < s.caret && graphics.MeasureRunes(m, s.buffer[s.scroll:s.caret]) > width {
		s.scroll++
	}
}

// Visible returns the displayed substring for a view of the given width,
// starting at the scroll offset.
func (s *State) Visible(width float64, m graphics.TextMeasurer) string {
	rs := s.buffer[s.scroll:]
	if m == nil {
		return string(rs)
	}
	var w float64
	for i, r := range rs {
		w += m.Advance(r)
		if w > width {
			return string(rs[:i])
		}
	}
	return string(rs)
}

// CaretX returns the caret position relative to the left edge of the
// displayed text.
func (s *State) CaretX(m graphics.TextMeasurer) float64 {
	if s.caret < s.scroll {
		return 0
	}
	return graphics.MeasureRunes(m, s.buffer[s.scroll:s.caret])
}

// SelectionX returns the horizontal extent of the selection relative to
// the left edge of the displayed text. ok is false without a selection.
func (s *State) SelectionX(m graphics.TextMeasurer) (left, right float64, ok bool) {
	if !s.HasSelection() {
		return 0, 0, false
	}
	sel := s.Selection()
	start := max(sel.Start(), s.scroll)
	end := max(sel.End(), s.scroll)
	left = graphics.MeasureRunes(m, s.buffer[s.scroll:start])
	right = left + graphics.MeasureRunes(m, s.buffer[start:end])
	return left, right, true
}

func (s *State) setCaret(target int, extend bool) Effect {
	target = clampIndex(target, len(s.buffer))
	var eff Effect
	if extend {
		if !s.hasAnchor {
			s.anchor, s.hasAnchor = s.caret, true
			eff |= EffectSelectionChanged
		}
	} else {
		eff |= s.clearAnchor()
	}
	if target != s.caret {
		s.caret = target
		eff |= EffectCaretMoved
	}
	return eff
}

func (s *State) clearAnchor() Effect {
	if !s.hasAnchor {
		return 0
	}
	s.hasAnchor = false
	return EffectSelectionChanged
}

func (s *State) selectionRange() (int, int) {
	if !s.hasAnchor {
		return s.caret, s.caret
	}
	sel := s.Selection()
	return sel.Start(), sel.End()
}

func (s *State) deleteSelection() Effect {
	start, end := s.selectionRange()
	return s.deleteRange(start, end)
}

func (s *State) deleteRange(start, end int) Effect {
	return s.splice(start, end, nil)
}

func (s *State) replaceSelection(ins []rune) Effect {
	start, end := s.selectionRange()
	return s.splice(start, end, ins)
}

// splice replaces buffer[start:end] with ins as one atomic edit, leaving
// the caret after the inserted text and the selection cleared. The edit is
// dropped if it breaks the length limit or a constraint.
func (s *State) splice(start, end int, ins []rune) Effect {
	n := len(s.buffer)
	start, end = clampIndex(start, n), clampIndex(end, n)
	if start > end {
		start, end = end, start
	}
	if start == end && len(ins) == 0 {
		return s.clearAnchor()
	}
	newLen := n - (end - start) + len(ins)
	if s.maxLength > 0 && newLen > s.maxLength {
		return 0
	}
	next := make([]rune, 0, newLen)
	next = append(next, s.buffer[:start]...)
	next = append(next, ins...)
	next = append(next, s.buffer[end:]...)
	if !s.allows(next) {
		return 0
	}

	var eff Effect
	if !slices.Equal(next, s.buffer) {
		eff |= EffectTextChanged
	}
	s.buffer = next
	s.scroll = clampIndex(s.scroll, len(next))
	caret := start + len(ins)
	if caret != s.caret {
		eff |= EffectCaretMoved
	}
	s.caret = caret
	eff |= s.clearAnchor()
	return eff
}

func (s *State) allows(next []rune) bool {
	if len(s.constraints) == 0 {
		return true
	}
	old, candidate := string(s.buffer), string(next)
	for _, c := range s.constraints {
		if !c.Allow(old, candidate) {
			return false
		}
	}
	return true
}

// acceptsRune reports whether r may be typed into a single-line input.
// Tabs, newlines and other control characters are not supported.
func acceptsRune(r rune) bool {
	return !unicode.IsControl(r)
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n)
}
