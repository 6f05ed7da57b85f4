// Package progress implements the state of a determinate progress bar.
//
// A Progress holds a fraction in [0, 1]. Every write is clamped, so callers
// may pass raw ratios (downloaded/total, elapsed/duration) without checking
// them first:
//
//	p := progress.New(0.25)
//	p.Add(0.5)
//	width := p.FillWidth(trackWidth) // 0.75 * trackWidth
package progress

import (
	"fmt"
	"math"

	"github.com/go-drift/slimy/pkg/graphics"
)

// doneEpsilon is the tolerance used by IsDone.
const doneEpsilon = 1e-9

// Progress is a clamped completion fraction. The zero value is empty.
type Progress struct {
	value float64
}

// New creates a Progress with the given value, clamped to [0, 1].
func New(value float64) Progress {
	return Progress{value: graphics.Clamp01(value)}
}

// Empty returns a Progress at 0%.
func Empty() Progress {
	return Progress{}
}

// Value returns the current fraction.
func (p Progress) Value() float64 {
	return p.value
}

// Set stores value clamped to [0, 1]. NaN stores 0.
// It reports whether the stored value changed.
func (p *Progress) Set(value float64) bool {
	v := graphics.Clamp01(value)
	if v == p.value {
		return false
	}
	p.value = v
	return true
}

// Add adjusts the value by delta, clamping the result.
// It reports whether the stored value changed.
func (p *Progress) Add(delta float64) bool {
	return p.Set(p.value + delta)
}

// IsDone reports whether progress has reached 100%.
func (p Progress) IsDone() bool {
	return math.Abs(p.value-1) < doneEpsilon
}

// Percent returns the value scaled to [0, 100].
func (p Progress) Percent() float64 {
	return p.value * 100
}

// FillWidth returns the width of the filled region for a track of the given
// width. Negative track widths are treated as zero.
func (p Progress) FillWidth(trackWidth float64) float64 {
	return p.value * math.Max(0, trackWidth)
}

// Fill returns the size of the filled region inside a track, growing along
// the given axis. The other dimension keeps the track's extent.
func (p Progress) Fill(track graphics.Size, axis SizeAnimation) graphics.Size {
	out := graphics.Size{Width: math.Max(0, track.Width), Height: math.Max(0, track.Height)}
	if axis.resizesWidth() {
		out.Width = p.FillWidth(track.Width)
	}
	if axis.resizesHeight() {
		out.Height = p.FillWidth(track.Height)
	}
	return out
}

func (p Progress) String() string {
	return fmt.Sprintf("%.1f%%", p.Percent())
}

// SizeAnimation selects which dimension of the fill follows the value.
type SizeAnimation int

const (
	// SizeAnimationWidth grows the fill horizontally.
	SizeAnimationWidth SizeAnimation = iota
	// SizeAnimationHeight grows the fill vertically.
	SizeAnimationHeight
	// SizeAnimationBoth scales both dimensions.
	SizeAnimationBoth
)

func (a SizeAnimation) resizesWidth() bool {
	return a == SizeAnimationWidth || a == SizeAnimationBoth
}

func (a SizeAnimation) resizesHeight() bool {
	return a == SizeAnimationHeight || a == SizeAnimationBoth
}

// String returns a human-readable representation of the axis.
func (a SizeAnimation) String() string {
	switch a {
	case SizeAnimationWidth:
		return "width"
	case SizeAnimationHeight:
		return "height"
	case SizeAnimationBoth:
		return "both"
	default:
		return fmt.Sprintf("SizeAnimation(%d)", int(a))
	}
}
