package model

import "image/color"

// Color is an RGB triple with alpha. Opaque colors mark moving tokens,
// TrailAlpha colors mark cells a token has occupied.
type Color = color.NRGBA

const TrailAlpha = 15

var (
	Background = Color{R: 47, G: 47, B: 47, A: 255}
	Backdrop   = Color{R: 21, G: 21, B: 21, A: 255}
)

// Coord is a one-based cell address.
type Coord struct {
	I, J int
}

type Direction struct {
	DI, DJ int
}

// Directions holds the eight neighbor offsets.
var Directions = [8]Direction{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

type Token struct {
	Position Coord
	Next     Coord
	Color    Color
	Trail    Color
}

// Grid is the square trail buffer. Cells are stored column-major.
type Grid struct {
	size  int
	cells []Color
}
