package walker

import (
	"github.com/tanema/gween/ease"
	"github.com/zucenko/trailgrid/model"
)

// Point is a position in continuous grid space.
type Point struct {
	X, Y float32
}

// Ease is quadratic ease-in-ease-out over [0,1]: 2t² below one half,
// -1+(4-2t)t above.
func Ease(t float32) float32 {
	return ease.InOutQuad(t, 0, 1, 1)
}

// Interpolate places a token between its committed and planned cells.
func Interpolate(from, to model.Coord, t float32) Point {
	f := Ease(t)
	return Point{
		X: float32(from.I) + float32(to.I-from.I)*f,
		Y: float32(from.J) + float32(to.J-from.J)*f,
	}
}
