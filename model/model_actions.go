package model

import "fmt"

const MinGridSize = 2

func (c Coord) Add(d Direction) Coord {
	return Coord{I: c.I + d.DI, J: c.J + d.DJ}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

func NewGrid(size int) *Grid {
	if size < MinGridSize {
		panic(fmt.Sprintf("grid size %d below minimum %d", size, MinGridSize))
	}
	cells := make([]Color, size*size)
	for i := range cells {
		cells[i] = Background
	}
	return &Grid{size: size, cells: cells}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) Contains(c Coord) bool {
	return c.I >= 1 && c.I <= g.size && c.J >= 1 && c.J <= g.size
}

func (g *Grid) index(c Coord) int {
	if !g.Contains(c) {
		panic(fmt.Sprintf("cell %v outside grid of size %d", c, g.size))
	}
	return (c.I-1)*g.size + (c.J - 1)
}

func (g *Grid) At(c Coord) Color {
	return g.cells[g.index(c)]
}

// Paint marks a cell with a trail color. Out-of-bounds cells panic.
func (g *Grid) Paint(c Coord, trail Color) {
	g.cells[g.index(c)] = trail
}

// Grow returns a fresh grid one larger with every trail discarded.
func (g *Grid) Grow() *Grid {
	return NewGrid(g.size + 1)
}

// Each visits every cell, columns first.
func (g *Grid) Each(fn func(Coord, Color)) {
	for i := 1; i <= g.size; i++ {
		for j := 1; j <= g.size; j++ {
			c := Coord{I: i, J: j}
			fn(c, g.cells[(i-1)*g.size+(j-1)])
		}
	}
}
