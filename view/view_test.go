package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zucenko/trailgrid/model"
)

func TestLatticeIsEvenAndInset(t *testing.T) {
	l := Lattice{Width: 750, Height: 750, Size: 2}

	x, y := l.Cell(model.Coord{I: 1, J: 1})
	assert.InDelta(t, 250, x, 1e-9)
	assert.InDelta(t, 500, y, 1e-9)

	x, y = l.Cell(model.Coord{I: 2, J: 2})
	assert.InDelta(t, 500, x, 1e-9)
	assert.InDelta(t, 250, y, 1e-9)
}

func TestLatticeSpacing(t *testing.T) {
	l := Lattice{Width: 400, Height: 200, Size: 3}
	sx, sy := l.Spacing()
	assert.Equal(t, 100.0, sx)
	assert.Equal(t, 50.0, sy)

	for i := 1; i < l.Size; i++ {
		x0, y0 := l.Cell(model.Coord{I: i, J: i})
		x1, y1 := l.Cell(model.Coord{I: i + 1, J: i + 1})
		assert.InDelta(t, sx, x1-x0, 1e-9)
		assert.InDelta(t, -sy, y1-y0, 1e-9)
		assert.True(t, x0 > 0 && x1 < l.Width)
		assert.True(t, y1 > 0 && y0 < l.Height)
	}
}

func TestLatticeAcceptsFractions(t *testing.T) {
	l := Lattice{Width: 300, Height: 300, Size: 2}
	x, y := l.Point(1.5, 1.5)
	assert.InDelta(t, 150, x, 1e-9)
	assert.InDelta(t, 150, y, 1e-9)
}

func TestComposite(t *testing.T) {
	under := model.Background

	assert.Equal(t, under, Composite(model.Color{R: 255, A: 0}, under))
	assert.Equal(t, model.Color{R: 255, G: 0, B: 0, A: 255}, Composite(model.Color{R: 255, A: 255}, under))

	faint := Composite(model.Color{R: 255, G: 255, B: 255, A: model.TrailAlpha}, under)
	assert.Equal(t, uint8(255), faint.A)
	assert.True(t, faint.R > under.R && faint.R < 80, "got %v", faint)
	assert.Equal(t, faint.R, faint.G)
}

func TestBoost(t *testing.T) {
	c := model.Color{R: 1, G: 2, B: 3, A: model.TrailAlpha}
	assert.Equal(t, uint8(60), Boost(c, 4).A)
	assert.Equal(t, uint8(255), Boost(c, 100).A)
	assert.Equal(t, c, Boost(c, 1))
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "2 × 2", Caption(2))
	assert.Equal(t, "17 × 17", Caption(17))
}
