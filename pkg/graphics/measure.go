package graphics

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMeasurer reports the horizontal advance of single characters.
// Widgets use it to map pointer positions to caret offsets and to keep the
// caret inside the visible region; no shaping or kerning is applied.
type TextMeasurer interface {
	Advance(r rune) float64
}

// FaceMeasurer measures with a golang.org/x/image font face.
type FaceMeasurer struct {
	Face font.Face
}

// DefaultFaceMeasurer measures with basicfont.Face7x13, the face the ebiten
// host draws with.
func DefaultFaceMeasurer() FaceMeasurer {
	return FaceMeasurer{Face: basicfont.Face7x13}
}

// Advance returns the glyph advance in pixels. Glyphs missing from the face
// measure as the face's replacement glyph, or zero.
func (m FaceMeasurer) Advance(r rune) float64 {
	if m.Face == nil {
		return 0
	}
	adv, ok := m.Face.GlyphAdvance(r)
	if !ok {
		adv, _ = m.Face.GlyphAdvance('�')
	}
	return float64(adv) / 64
}

// CellMeasurer measures in terminal cells using East Asian width rules.
type CellMeasurer struct {
	// EastAsianAmbiguousWide treats ambiguous-width characters as two cells.
	EastAsianAmbiguousWide bool
}

// Advance returns the number of cells r occupies.
func (m CellMeasurer) Advance(r rune) float64 {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = m.EastAsianAmbiguousWide
	return float64(cond.RuneWidth(r))
}

// Monospace measures every character with the same advance.
type Monospace float64

// Advance returns the fixed advance.
func (m Monospace) Advance(rune) float64 { return float64(m) }

// MeasureRunes returns the total advance of rs.
func MeasureRunes(m TextMeasurer, rs []rune) float64 {
	if m == nil {
		return 0
	}
	var w float64
	for _, r := range rs {
		w += m.Advance(r)
	}
	return w
}
