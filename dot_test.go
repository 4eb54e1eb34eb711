package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDisc(t *testing.T) {
	img := newDisc()
	assert.Equal(t, dotSize, img.Bounds().Dx())

	alpha := func(x, y int) int { return int(img.RGBAAt(x, y).A) }
	assert.Equal(t, 255, alpha(dotSize/2, dotSize/2))
	assert.Equal(t, 0, alpha(0, 0))
	assert.Equal(t, 0, alpha(dotSize-1, dotSize-1))

	var covered float64
	for y := 0; y < dotSize; y++ {
		for x := 0; x < dotSize; x++ {
			covered += float64(alpha(x, y)) / 255
			assert.InDelta(t, alpha(x, y), alpha(dotSize-1-x, y), 2, "mirror of %d,%d", x, y)
			// white everywhere it is painted
			c := img.RGBAAt(x, y)
			assert.Equal(t, c.A, c.R)
		}
	}
	r := dotSize / 2.0
	assert.InEpsilon(t, math.Pi*r*r, covered, 0.01)
}
