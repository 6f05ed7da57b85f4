package editing

import (
	"testing"

	"github.com/go-drift/slimy/pkg/graphics"
)

func TestCaretAtVariableAdvances(t *testing.T) {
	// '世' is two cells wide, the rest one.
	m := graphics.CellMeasurer{}
	rs := []rune("a世b")
	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{0.5, 0}, // tie between 0 and 1
		{0.6, 1},
		{2, 1}, // tie between 1 (x=1) and 2 (x=3)
		{2.1, 2},
		{3.4, 2},
		{3.6, 3},
		{10, 3},
	}
	for _, tt := range tests {
		if got := CaretAt(rs, tt.x, m); got != tt.want {
			t.Errorf("CaretAt(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestCaretAtEmpty(t *testing.T) {
	if got := CaretAt(nil, 25, graphics.Monospace(10)); got != 0 {
		t.Errorf("CaretAt on empty text = %d, want 0", got)
	}
}

func TestOffsetOf(t *testing.T) {
	rs := []rune("hello")
	m := graphics.Monospace(7)
	if got := OffsetOf(rs, 3, m); got != 21 {
		t.Errorf("OffsetOf(3) = %v, want 21", got)
	}
	if got := OffsetOf(rs, 42, m); got != 35 {
		t.Errorf("OffsetOf(42) = %v, want 35 (clamped)", got)
	}
}

func TestWordSegments(t *testing.T) {
	segs := wordSegments([]rune("héllo, wörld 42"))
	var words []string
	rs := []rune("héllo, wörld 42")
	for _, s := range segs {
		if s.word {
			words = append(words, string(rs[s.start:s.end]))
		}
	}
	want := []string{"héllo", "wörld", "42"}
	if len(words) != len(want) {
		t.Fatalf("words = %q, want %q", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
	if last := segs[len(segs)-1]; last.end != len(rs) {
		t.Errorf("segments end at %d, want %d", last.end, len(rs))
	}
}
