package editing

import (
	"testing"
	"time"

	"github.com/go-drift/slimy/pkg/animation"
	slimytest "github.com/go-drift/slimy/pkg/testing"
)

func TestBlinkToggles(t *testing.T) {
	clock := slimytest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	b := NewBlink(0)
	if b.Interval() != DefaultBlinkInterval {
		t.Fatalf("Interval() = %v, want %v", b.Interval(), DefaultBlinkInterval)
	}
	if !b.Visible() {
		t.Fatal("new blink should be visible")
	}

	clock.Advance(700 * time.Millisecond)
	if b.Tick() {
		t.Error("Tick before the interval should not toggle")
	}

	clock.Advance(50 * time.Millisecond)
	if !b.Tick() || b.Visible() {
		t.Errorf("Tick at the interval should hide the caret, Visible() = %v", b.Visible())
	}

	// Two whole periods toggle twice, leaving visibility unchanged.
	clock.Advance(1500 * time.Millisecond)
	if b.Tick() {
		t.Error("an even number of periods should not change visibility")
	}
	if b.Visible() {
		t.Error("caret should still be hidden")
	}
}

func TestBlinkReset(t *testing.T) {
	clock := slimytest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	b := NewBlink(100 * time.Millisecond)
	clock.Advance(100 * time.Millisecond)
	b.Tick()
	if b.Visible() {
		t.Fatal("caret should be hidden after one period")
	}

	clock.Advance(60 * time.Millisecond)
	b.Reset()
	if !b.Visible() {
		t.Error("Reset should show the caret")
	}
	clock.Advance(60 * time.Millisecond)
	if b.Tick() {
		t.Error("Reset should restart the period")
	}
}
