// Package ebitenhost drives a widget registry from an ebiten game loop.
//
// Call Host.Update from the game's Update method and Host.Draw from its
// Draw method. Layout is left to the game: set bounds on the registry.
package ebitenhost

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/slimy/pkg/editing"
)

// editingKeys maps ebiten keys to editing keys. Letter keys are only
// forwarded with a shortcut modifier held; plain typing arrives as input
// characters.
var editingKeys = map[ebiten.Key]editing.Key{
	ebiten.KeyArrowLeft:   editing.KeyLeft,
	ebiten.KeyArrowRight:  editing.KeyRight,
	ebiten.KeyArrowUp:     editing.KeyUp,
	ebiten.KeyArrowDown:   editing.KeyDown,
	ebiten.KeyHome:        editing.KeyHome,
	ebiten.KeyEnd:         editing.KeyEnd,
	ebiten.KeyBackspace:   editing.KeyBackspace,
	ebiten.KeyDelete:      editing.KeyDelete,
	ebiten.KeyEnter:       editing.KeyEnter,
	ebiten.KeyNumpadEnter: editing.KeyEnter,
	ebiten.KeyEscape:      editing.KeyEscape,
	ebiten.KeyTab:         editing.KeyTab,
}

var shortcutKeys = map[ebiten.Key]editing.Key{
	ebiten.KeyA: editing.KeyA,
	ebiten.KeyC: editing.KeyC,
	ebiten.KeyV: editing.KeyV,
	ebiten.KeyX: editing.KeyX,
}

// repeatDelay and repeatInterval are in ticks at ebiten's default 60 TPS.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// repeatable keys fire again while held.
var repeatable = []ebiten.Key{
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyBackspace,
	ebiten.KeyDelete,
}

func modifiers() editing.Modifiers {
	var mods editing.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= editing.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= editing.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= editing.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= editing.ModMeta
	}
	return mods
}

// translateKey converts a pressed ebiten key under the given modifiers.
func translateKey(k ebiten.Key, mods editing.Modifiers) (editing.KeyEvent, bool) {
	if key, ok := editingKeys[k]; ok {
		return editing.KeyEvent{Key: key, Mods: mods}, true
	}
	if mods&(editing.ModCtrl|editing.ModMeta) != 0 {
		if key, ok := shortcutKeys[k]; ok {
			return editing.KeyEvent{Key: key, Mods: mods}, true
		}
	}
	return editing.KeyEvent{}, false
}

// pollInput appends this tick's input events to dst: pointer presses, then
// key presses, then typed characters.
func (h *Host) pollInput(dst []editing.Event) []editing.Event {
	focused := ebiten.IsFocused()
	if h.windowFocused && !focused {
		dst = append(dst, editing.FocusEvent{Focused: false})
	}
	h.windowFocused = focused

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		dst = append(dst, editing.PointerEvent{X: float64(mx), Y: float64(my)})
	}

	mods := modifiers()
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range repeatable {
		d := inpututil.KeyPressDuration(k)
		if d > repeatDelay && (d-repeatDelay)%repeatInterval == 0 {
			h.keys = append(h.keys, k)
		}
	}
	for _, k := range h.keys {
		if ev, ok := translateKey(k, mods); ok {
			dst = append(dst, ev)
		}
	}

	if mods&(editing.ModCtrl|editing.ModMeta) == 0 {
		h.chars = ebiten.AppendInputChars(h.chars[:0])
		for _, r := range h.chars {
			if !unicode.IsControl(r) {
				dst = append(dst, editing.CharEvent{Char: r})
			}
		}
	}
	return dst
}
