// Package termhost drives a widget registry from a tcell terminal screen.
//
// Bounds are in cells and text is measured with go-runewidth, so wide
// characters take two columns.
package termhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/slimy/pkg/editing"
)

var editingKeys = map[tcell.Key]editing.Key{
	tcell.KeyLeft:       editing.KeyLeft,
	tcell.KeyRight:      editing.KeyRight,
	tcell.KeyUp:         editing.KeyUp,
	tcell.KeyDown:       editing.KeyDown,
	tcell.KeyHome:       editing.KeyHome,
	tcell.KeyEnd:        editing.KeyEnd,
	tcell.KeyBackspace:  editing.KeyBackspace,
	tcell.KeyBackspace2: editing.KeyBackspace,
	tcell.KeyDelete:     editing.KeyDelete,
	tcell.KeyEnter:      editing.KeyEnter,
	tcell.KeyEscape:     editing.KeyEscape,
	tcell.KeyTab:        editing.KeyTab,
}

// Terminals deliver Ctrl+letter as a control key.
var ctrlKeys = map[tcell.Key]editing.Key{
	tcell.KeyCtrlA: editing.KeyA,
	tcell.KeyCtrlC: editing.KeyC,
	tcell.KeyCtrlV: editing.KeyV,
	tcell.KeyCtrlX: editing.KeyX,
}

func convertMods(m tcell.ModMask) editing.Modifiers {
	var mods editing.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= editing.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= editing.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= editing.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= editing.ModMeta
	}
	return mods
}

// convertKey converts a tcell key event. Runes typed with Alt held are
// dropped, since terminals use Alt as a prefix for shortcuts.
func convertKey(e *tcell.EventKey) (editing.Event, bool) {
	mods := convertMods(e.Modifiers())
	switch k := e.Key(); k {
	case tcell.KeyRune:
		if mods.Has(editing.ModAlt) {
			return nil, false
		}
		return editing.CharEvent{Char: e.Rune()}, true
	case tcell.KeyBacktab:
		return editing.KeyEvent{Key: editing.KeyTab, Mods: mods | editing.ModShift}, true
	default:
		if key, ok := ctrlKeys[k]; ok {
			return editing.KeyEvent{Key: key, Mods: mods | editing.ModCtrl}, true
		}
		if key, ok := editingKeys[k]; ok {
			return editing.KeyEvent{Key: key, Mods: mods}, true
		}
	}
	return nil, false
}

// convert appends the editing events for one tcell event to dst. Pasted
// text arrives as characters, so the usual insert rules apply to it.
func (h *Host) convert(dst []editing.Event, ev tcell.Event) []editing.Event {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		h.inPaste = e.Start()
	case *tcell.EventKey:
		if h.inPaste {
			if e.Key() == tcell.KeyRune {
				dst = append(dst, editing.CharEvent{Char: e.Rune()})
			}
			return dst
		}
		if out, ok := convertKey(e); ok {
			dst = append(dst, out)
		}
	case *tcell.EventMouse:
		pressed := e.Buttons()&tcell.Button1 != 0
		if pressed && !h.buttonDown {
			x, y := e.Position()
			dst = append(dst, editing.PointerEvent{X: float64(x), Y: float64(y)})
		}
		h.buttonDown = pressed
	case *tcell.EventFocus:
		if !e.Focused {
			dst = append(dst, editing.FocusEvent{Focused: false})
		}
	}
	return dst
}
