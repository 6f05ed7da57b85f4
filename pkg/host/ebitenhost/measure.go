package ebitenhost

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// Measurer measures rune advances with an ebiten text face, so caret
// placement matches what Draw renders.
type Measurer struct {
	Face text.Face
}

// Advance returns the horizontal advance of r.
func (m Measurer) Advance(r rune) float64 {
	return text.Advance(string(r), m.Face)
}
