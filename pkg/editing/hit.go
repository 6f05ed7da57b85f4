package editing

import (
	"math"

	"github.com/go-drift/slimy/pkg/graphics"
)

// CaretAt maps a horizontal position, relative to the left edge of rs, to
// the character boundary closest to it. Ties resolve to the earlier
// boundary. Positions left of the text map to 0 and positions past its end
// map to len(rs). A nil measurer maps everything to len(rs).
func CaretAt(rs []rune, x float64, m graphics.TextMeasurer) int {
	if m == nil {
		return len(rs)
	}
	if x <= 0 || math.IsNaN(x) {
		return 0
	}
	best, bestDist := 0, x
	pos := 0.0
	for i, r := range rs {
		pos += m.Advance(r)
		if d := math.Abs(x - pos); d < bestDist {
			best, bestDist = i+1, d
		}
		if pos > x {
			break
		}
	}
	return best
}

// OffsetOf returns the horizontal position of boundary i within rs.
func OffsetOf(rs []rune, i int, m graphics.TextMeasurer) float64 {
	i = clampIndex(i, len(rs))
	return graphics.MeasureRunes(m, rs[:i])
}
