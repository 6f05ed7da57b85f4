package editing

import (
	"time"

	"github.com/go-drift/slimy/pkg/animation"
)

// DefaultBlinkInterval is the caret blink half-period.
const DefaultBlinkInterval = 750 * time.Millisecond

// Blink tracks caret visibility for a focused text input. Time comes from
// the animation package clock.
type Blink struct {
	interval time.Duration
	visible  bool
	last     time.Time
}

// NewBlink creates a visible blink timer. A non-positive interval selects
// DefaultBlinkInterval.
func NewBlink(interval time.Duration) *Blink {
	if interval <= 0 {
		interval = DefaultBlinkInterval
	}
	return &Blink{interval: interval, visible: true, last: animation.Now()}
}

// Interval returns the blink half-period.
func (b *Blink) Interval() time.Duration {
	return b.interval
}

// Visible reports whether the caret should currently be drawn.
func (b *Blink) Visible() bool {
	return b.visible
}

// Reset makes the caret visible and restarts the period. Call it after
// every edit or caret move so the caret stays solid while typing.
func (b *Blink) Reset() {
	b.visible = true
	b.last = animation.Now()
}

// Tick advances the timer to the current time and reports whether the
// visibility changed. Several elapsed periods in one tick toggle once per
// period.
func (b *Blink) Tick() bool {
	elapsed := animation.Now().Sub(b.last)
	if elapsed < b.interval {
		return false
	}
	periods := int64(elapsed / b.interval)
	b.last = b.last.Add(time.Duration(periods) * b.interval)
	if periods%2 == 0 {
		return false
	}
	b.visible = !b.visible
	return true
}
