package progress

import (
	"math"
	"testing"

	"github.com/go-drift/slimy/pkg/graphics"
)

func TestSetClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{1.5, 1.0},
		{-0.2, 0.0},
		{0, 0},
		{1, 1},
		{math.Inf(1), 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		var p Progress
		p.Set(tt.in)
		if got := p.Value(); got != tt.want {
			t.Errorf("Set(%v); Value() = %v, want %v", tt.in, got, tt.want)
		}
		// Clamping is idempotent.
		p.Set(p.Value())
		if got := p.Value(); got != tt.want {
			t.Errorf("Set(Value()) after Set(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetReportsChange(t *testing.T) {
	p := New(0.3)
	if !p.Set(0.4) {
		t.Error("Set to a new value should report a change")
	}
	if p.Set(0.4) {
		t.Error("Set to the same value should not report a change")
	}
	p.Set(1)
	if p.Set(2) {
		t.Error("Set above 1 when already full should not report a change")
	}
}

func TestAdd(t *testing.T) {
	p := New(0.25)
	p.Add(0.5)
	if got := p.Value(); got != 0.75 {
		t.Errorf("Value() = %v, want 0.75", got)
	}
	p.Add(10)
	if !p.IsDone() {
		t.Errorf("IsDone() = false after overflow, value %v", p.Value())
	}
	p.Add(-5)
	if got := p.Value(); got != 0 {
		t.Errorf("Value() = %v, want 0", got)
	}
}

func TestEmptyAndNew(t *testing.T) {
	if got := Empty().Value(); got != 0 {
		t.Errorf("Empty().Value() = %v, want 0", got)
	}
	if got := New(3).Value(); got != 1 {
		t.Errorf("New(3).Value() = %v, want 1", got)
	}
	if New(0.5).IsDone() {
		t.Error("half-full progress should not be done")
	}
}

func TestFillWidth(t *testing.T) {
	p := New(0.25)
	if got := p.FillWidth(200); got != 50 {
		t.Errorf("FillWidth(200) = %v, want 50", got)
	}
	if got := p.FillWidth(-10); got != 0 {
		t.Errorf("FillWidth(-10) = %v, want 0", got)
	}
}

func TestFillAxis(t *testing.T) {
	p := New(0.5)
	track := graphics.Size{Width: 100, Height: 20}
	tests := []struct {
		axis SizeAnimation
		want graphics.Size
	}{
		{SizeAnimationWidth, graphics.Size{Width: 50, Height: 20}},
		{SizeAnimationHeight, graphics.Size{Width: 100, Height: 10}},
		{SizeAnimationBoth, graphics.Size{Width: 50, Height: 10}},
	}
	for _, tt := range tests {
		if got := p.Fill(track, tt.axis); got != tt.want {
			t.Errorf("Fill(%s) = %v, want %v", tt.axis, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := New(0.425).String(); got != "42.5%" {
		t.Errorf("String() = %q, want %q", got, "42.5%")
	}
	if got := SizeAnimation(9).String(); got != "SizeAnimation(9)" {
		t.Errorf("String() = %q", got)
	}
}
