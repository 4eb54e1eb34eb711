package walker

import "github.com/zucenko/trailgrid/model"

// ccw reports whether a, b, c turn counter-clockwise. Collinear points are not.
func ccw(a, b, c model.Coord) bool {
	return (c.J-a.J)*(b.I-a.I) > (b.J-a.J)*(c.I-a.I)
}

// Crosses reports a proper intersection of segments a-a2 and b-b2.
// Collinear overlaps do not count: two tokens sliding along the same line
// through each other are not reported.
func Crosses(a, a2, b, b2 model.Coord) bool {
	return ccw(a, b, b2) != ccw(a2, b, b2) && ccw(a, a2, b) != ccw(a, a2, b2)
}

// Collided reports whether two simultaneous moves land on the same cell or cross.
func Collided(a, a2, b, b2 model.Coord) bool {
	return a2 == b2 || Crosses(a, a2, b, b2)
}
