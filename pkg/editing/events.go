package editing

import "fmt"

// Key identifies a non-character key relevant to text editing.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyTab
	// KeyA, KeyC, KeyV and KeyX carry the select-all and clipboard
	// shortcuts when combined with ModCtrl or ModMeta.
	KeyA
	KeyC
	KeyV
	KeyX
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyA:         "a",
	KeyC:         "c",
	KeyV:         "v",
	KeyX:         "x",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether all modifiers in m are held.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// shortcut reports whether the platform shortcut modifier (Ctrl or Cmd) is held.
func (m Modifiers) shortcut() bool {
	return m&(ModCtrl|ModMeta) != 0
}

// Event is an input event delivered by a host. The set of event types is
// closed: CharEvent, KeyEvent, PointerEvent and FocusEvent.
type Event interface {
	isEvent()
}

// CharEvent is a typed character, after keyboard layout and IME processing.
type CharEvent struct {
	Char rune
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key  Key
	Mods Modifiers
}

// PointerEvent is a primary-button press at a position in host coordinates.
type PointerEvent struct {
	X, Y float64
}

// FocusEvent reports that the host gave or took keyboard focus without a
// pointer, e.g. window focus loss.
type FocusEvent struct {
	Focused bool
}

func (CharEvent) isEvent()    {}
func (KeyEvent) isEvent()     {}
func (PointerEvent) isEvent() {}
func (FocusEvent) isEvent()   {}

// Type returns one CharEvent per rune of s.
func Type(s string) []Event {
	events := make([]Event, 0, len(s))
	for _, r := range s {
		events = append(events, CharEvent{Char: r})
	}
	return events
}

// Press returns a KeyEvent for key with the given modifiers.
func Press(key Key, mods ...Modifiers) KeyEvent {
	var m Modifiers
	for _, mod := range mods {
		m |= mod
	}
	return KeyEvent{Key: key, Mods: m}
}
