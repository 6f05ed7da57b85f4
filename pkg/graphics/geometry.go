// Package graphics provides the colors, geometry and text measurement shared
// by the widgets and their hosts.
package graphics

// Offset is a position in host coordinates.
type Offset struct {
	X, Y float64
}

// Size is a width and height.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromLTWH creates a rectangle from its top-left corner and size.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size returns the rectangle's size.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Local converts p to coordinates relative to the rectangle's origin.
func (r Rect) Local(p Offset) Offset {
	return Offset{X: p.X - r.Left, Y: p.Y - r.Top}
}

// Deflate shrinks the rectangle by d on every side. The result never has
// negative size.
func (r Rect) Deflate(d float64) Rect {
	out := Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
	if out.Right < out.Left {
		out.Right = out.Left
	}
	if out.Bottom < out.Top {
		out.Bottom = out.Top
	}
	return out
}
