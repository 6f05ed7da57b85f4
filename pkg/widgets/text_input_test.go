package widgets

import (
	"testing"
	"time"

	"github.com/go-drift/slimy/pkg/animation"
	"github.com/go-drift/slimy/pkg/editing"
	"github.com/go-drift/slimy/pkg/graphics"
	slimytest "github.com/go-drift/slimy/pkg/testing"
	"github.com/go-drift/slimy/pkg/theme"
)

func TestTextInputStyleDefaults(t *testing.T) {
	th := theme.Default()
	r := NewRegistry(Options{Theme: th})
	id := r.SpawnTextInput(TextInputConfig{
		Style: TextInputStyle{TextColor: graphics.ColorRed, Padding: 2},
	})
	in, _ := r.TextInput(id)
	style := in.Style()

	if style.TextColor != graphics.ColorRed {
		t.Errorf("TextColor = %s, want override", style.TextColor.Hex())
	}
	if style.BackgroundColor != th.TextInput.Background {
		t.Errorf("BackgroundColor = %s, want theme %s", style.BackgroundColor.Hex(), th.TextInput.Background.Hex())
	}
	if style.FocusColor != th.TextInput.Focus {
		t.Errorf("FocusColor = %s, want theme %s", style.FocusColor.Hex(), th.TextInput.Focus.Hex())
	}
	if style.Padding != 2 {
		t.Errorf("Padding = %v, want 2", style.Padding)
	}
}

func TestTextInputPlaceholder(t *testing.T) {
	r := newTestRegistry()
	id := r.SpawnTextInput(TextInputConfig{Placeholder: "Search"})
	in, _ := r.TextInput(id)
	if !in.ShowsPlaceholder() || in.Placeholder() != "Search" {
		t.Errorf("ShowsPlaceholder() = %v, Placeholder() = %q", in.ShowsPlaceholder(), in.Placeholder())
	}
	in.SetText("x")
	if in.ShowsPlaceholder() {
		t.Error("placeholder shown over text")
	}
}

func TestTextInputMaxLength(t *testing.T) {
	r := newTestRegistry()
	id := r.SpawnTextInput(TextInputConfig{Text: "toolong", MaxLength: 3})
	in, _ := r.TextInput(id)
	if in.Text() != "too" {
		t.Fatalf("Text() = %q, want truncated to too", in.Text())
	}
	r.Focus(id)
	got := frame(r, editing.Type("abc")...)
	for _, s := range got {
		if s.Kind == SignalTextChanged {
			t.Errorf("unexpected %v at max length", s)
		}
	}
	if in.Text() != "too" {
		t.Errorf("Text() = %q, want too", in.Text())
	}
}

func TestTextInputScrollsToCaret(t *testing.T) {
	r := newTestRegistry()
	id := r.SpawnTextInput(TextInputConfig{})
	// 58 wide minus 4px padding on each side leaves room for 5 characters.
	r.SetBounds(id, graphics.RectFromLTWH(0, 0, 58, 20))
	r.Focus(id)
	frame(r, editing.Type("abcdefgh")...)

	in, _ := r.TextInput(id)
	if got := in.Visible(); got != "defgh" {
		t.Errorf("Visible() = %q, want defgh", got)
	}
	if got := in.CaretX(); got != 50 {
		t.Errorf("CaretX() = %v, want 50", got)
	}

	frame(r, editing.Press(editing.KeyHome))
	if got := in.Visible(); got != "abcde" {
		t.Errorf("Visible() after Home = %q, want abcde", got)
	}
	if got := in.CaretX(); got != 0 {
		t.Errorf("CaretX() after Home = %v, want 0", got)
	}
}

func TestTextInputClickAccountsForScroll(t *testing.T) {
	r := newTestRegistry()
	id := r.SpawnTextInput(TextInputConfig{Text: "abcdefgh"})
	r.SetBounds(id, graphics.RectFromLTWH(0, 0, 58, 20))
	in, _ := r.TextInput(id)
	// The caret starts at the end, so "defgh" is displayed.
	frame(r, click(4+12, 10))
	if in.Caret() != 4 {
		t.Errorf("Caret() = %d, want 4", in.Caret())
	}
}

func TestTextInputSelectionX(t *testing.T) {
	r := newTestRegistry()
	id := r.SpawnTextInput(TextInputConfig{Text: "hello"})
	r.SetBounds(id, graphics.RectFromLTWH(0, 0, 200, 20))
	r.Focus(id)
	frame(r, editing.Press(editing.KeyLeft, editing.ModShift), editing.Press(editing.KeyLeft, editing.ModShift))

	in, _ := r.TextInput(id)
	left, right, ok := in.SelectionX()
	if !ok || left != 30 || right != 50 {
		t.Errorf("SelectionX() = %v, %v, %v, want 30, 50, true", left, right, ok)
	}
	if sel := in.Selection(); sel.Start() != 3 || sel.End() != 5 {
		t.Errorf("Selection() = [%d,%d), want [3,5)", sel.Start(), sel.End())
	}
}

func TestTextInputClipboardShared(t *testing.T) {
	r := newTestRegistry()
	ids := spawnRow(r, 2)
	src, _ := r.TextInput(ids[0])
	dst, _ := r.TextInput(ids[1])
	src.SetText("copy me")

	frame(r, click(10, 10), editing.Press(editing.KeyA, editing.ModCtrl), editing.Press(editing.KeyC, editing.ModCtrl))
	frame(r, click(10, 40), editing.Press(editing.KeyV, editing.ModCtrl))
	if dst.Text() != "copy me" {
		t.Errorf("pasted text = %q, want copy me", dst.Text())
	}
	if text, _ := r.Clipboard().ReadText(); text != "copy me" {
		t.Errorf("clipboard = %q", text)
	}
}

func TestTextInputDisabled(t *testing.T) {
	r := newTestRegistry()
	id := r.SpawnTextInput(TextInputConfig{Disabled: true})
	r.SetBounds(id, graphics.RectFromLTWH(0, 0, 100, 20))
	in, _ := r.TextInput(id)

	if got := frame(r, click(5, 5)); len(got) != 0 || in.Focused() {
		t.Errorf("disabled input reacted to a click: %v", got)
	}
	if r.Focus(id) {
		t.Error("Focus() on a disabled input should fail")
	}

	in.SetDisabled(false)
	frame(r, click(5, 5))
	if !in.Focused() {
		t.Fatal("re-enabled input should take focus")
	}
	in.SetDisabled(true)
	if got := frame(r); len(got) != 1 || got[0].Focused {
		t.Errorf("disabling should drop focus, signals = %v", got)
	}
}

func TestTextInputDirectUpdate(t *testing.T) {
	r := newTestRegistry()
	id := r.SpawnTextInput(TextInputConfig{})
	r.SetBounds(id, graphics.RectFromLTWH(0, 0, 100, 20))
	in, _ := r.TextInput(id)
	var changed string
	in.cfg.OnChanged = func(s string) { changed = s }

	events := append([]editing.Event{editing.FocusEvent{Focused: true}}, editing.Type("ok")...)
	got := in.Update(events)
	want := []SignalKind{SignalFocusChanged, SignalTextChanged, SignalTextChanged}
	if !equalKinds(kinds(got), want) {
		t.Errorf("signals = %v, want %v", kinds(got), want)
	}
	if changed != "ok" {
		t.Errorf("OnChanged got %q before Update returned", changed)
	}
	if focused, _ := r.Focused(); focused != id {
		t.Errorf("registry focus = %d, want %d", focused, id)
	}

	// A press outside the bounds unfocuses.
	got = in.Update([]editing.Event{click(500, 5)})
	if len(got) != 1 || got[0].Focused {
		t.Errorf("signals = %v", got)
	}

	r.Despawn(id)
	if got := in.Update(editing.Type("x")); got != nil {
		t.Errorf("despawned input produced %v", got)
	}
}

func TestTextInputCursorBlink(t *testing.T) {
	clock := slimytest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	r := newTestRegistry()
	id := r.SpawnTextInput(TextInputConfig{BlinkInterval: 500 * time.Millisecond})
	in, _ := r.TextInput(id)
	if in.CursorVisible() {
		t.Error("unfocused input should not show a caret")
	}

	r.Focus(id)
	frame(r)
	if !in.CursorVisible() {
		t.Fatal("caret should be visible right after focus")
	}

	clock.Advance(500 * time.Millisecond)
	frame(r)
	if in.CursorVisible() {
		t.Error("caret should be hidden after one interval")
	}

	clock.Advance(100 * time.Millisecond)
	frame(r, editing.CharEvent{Char: 'a'})
	if !in.CursorVisible() {
		t.Error("editing should make the caret visible again")
	}

	clock.Advance(400 * time.Millisecond)
	frame(r)
	if !in.CursorVisible() {
		t.Error("blink period should restart on edit")
	}
}

func TestTextInputBlinkDisabled(t *testing.T) {
	clock := slimytest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	r := newTestRegistry()
	id := r.SpawnTextInput(TextInputConfig{BlinkInterval: -1})
	r.Focus(id)
	frame(r)
	clock.Advance(10 * time.Second)
	frame(r)
	in, _ := r.TextInput(id)
	if !in.CursorVisible() {
		t.Error("caret should stay visible with blinking disabled")
	}
}
