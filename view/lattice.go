// Package view maps grid space onto drawing surfaces.
package view

import (
	"fmt"

	"github.com/zucenko/trailgrid/model"
)

// Lattice spreads grid cells evenly over a surface of Width x Height.
// The surface is cut into Size+1 spacings per axis so the outer cells sit
// one spacing in from the edges. J grows upwards while surface y grows
// downwards.
type Lattice struct {
	Width, Height float64
	Size          int
}

func (l Lattice) Spacing() (float64, float64) {
	n := float64(l.Size + 1)
	return l.Width / n, l.Height / n
}

func (l Lattice) Point(i, j float64) (x, y float64) {
	sx, sy := l.Spacing()
	return sx * i, l.Height - sy*j
}

func (l Lattice) Cell(c model.Coord) (x, y float64) {
	return l.Point(float64(c.I), float64(c.J))
}

// Caption is the HUD text for a grid.
func Caption(size int) string {
	return fmt.Sprintf("%d × %d", size, size)
}
