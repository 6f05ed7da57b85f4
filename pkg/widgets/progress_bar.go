package widgets

import (
	"github.com/go-drift/slimy/pkg/editing"
	"github.com/go-drift/slimy/pkg/graphics"
	"github.com/go-drift/slimy/pkg/progress"
	"github.com/go-drift/slimy/pkg/theme"
)

// ProgressBarConfig describes a progress bar at spawn time.
type ProgressBarConfig struct {
	// Value is the initial fraction, clamped to [0, 1].
	Value float64

	// SizeAnimation is the axis the fill grows along. The zero value grows
	// the width.
	SizeAnimation progress.SizeAnimation

	// Style overrides theme colors and height. Zero fields take the theme
	// value.
	Style ProgressBarStyle

	// OnValueChanged is called when the value changes.
	OnValueChanged func(float64)
}

// ProgressBarStyle holds the visual parameters of a progress bar.
type ProgressBarStyle struct {
	FillColor  graphics.Color
	TrackColor graphics.Color
	// Height is the preferred height hosts use when laying the bar out.
	Height float64
}

func (s ProgressBarStyle) resolve(t theme.ProgressBarTheme) ProgressBarStyle {
	if s.FillColor == 0 {
		s.FillColor = t.Fill
	}
	if s.TrackColor == 0 {
		s.TrackColor = t.Track
	}
	if s.Height <= 0 {
		s.Height = t.Height
	}
	return s
}

// ProgressBar displays a completion fraction.
type ProgressBar struct {
	id      ID
	reg     *Registry
	cfg     ProgressBarConfig
	style   ProgressBarStyle
	value   progress.Progress
	bounds  graphics.Rect
	removed bool
}

func newProgressBar(reg *Registry, id ID, cfg ProgressBarConfig) *ProgressBar {
	return &ProgressBar{
		id:    id,
		reg:   reg,
		cfg:   cfg,
		style: cfg.Style.resolve(reg.theme.ProgressBar),
		value: progress.New(cfg.Value),
	}
}

func (p *ProgressBar) ID() ID                { return p.id }
func (p *ProgressBar) Kind() Kind            { return KindProgressBar }
func (p *ProgressBar) Bounds() graphics.Rect { return p.bounds }

// Style returns the resolved style.
func (p *ProgressBar) Style() ProgressBarStyle { return p.style }

// SizeAnimation returns the fill axis.
func (p *ProgressBar) SizeAnimation() progress.SizeAnimation { return p.cfg.SizeAnimation }

// Value returns the current fraction.
func (p *ProgressBar) Value() float64 { return p.value.Value() }

// Progress returns the underlying value.
func (p *ProgressBar) Progress() progress.Progress { return p.value }

// SetValue stores v clamped to [0, 1]. If the stored value changes, a
// SignalValueChanged is queued and delivered at the end of the next frame.
func (p *ProgressBar) SetValue(v float64) {
	if p.value.Set(v) {
		p.queueChanged()
	}
}

// Add moves the value by delta, clamped to [0, 1].
func (p *ProgressBar) Add(delta float64) {
	if p.value.Add(delta) {
		p.queueChanged()
	}
}

func (p *ProgressBar) queueChanged() {
	if p.removed {
		return
	}
	p.reg.queue(Signal{Kind: SignalValueChanged, Widget: p.id, Value: p.value.Value()})
}

// FillWidth returns value times the bounds width.
func (p *ProgressBar) FillWidth() float64 {
	return p.value.FillWidth(p.bounds.Width())
}

// FillRect returns the filled region, anchored at the top-left corner of
// the bounds.
func (p *ProgressBar) FillRect() graphics.Rect {
	size := p.value.Fill(p.bounds.Size(), p.cfg.SizeAnimation)
	return graphics.RectFromLTWH(p.bounds.Left, p.bounds.Top, size.Width, size.Height)
}

// Update ignores input events. It delivers and returns this bar's queued
// value signals, so a host driving widgets one at a time does not have to
// wait for the frame flush.
func (p *ProgressBar) Update([]editing.Event) []Signal {
	if p.removed {
		return nil
	}
	return p.reg.takeQueued(p.id)
}

func (p *ProgressBar) setBounds(r graphics.Rect) {
	p.bounds = r
}

func (p *ProgressBar) notify(s Signal) {
	if s.Kind != SignalValueChanged {
		return
	}
	if cb := p.cfg.OnValueChanged; cb != nil {
		invoke("widgets.ProgressBar.OnValueChanged", func() { cb(s.Value) })
	}
}
