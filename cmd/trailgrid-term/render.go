package main

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/zucenko/trailgrid/model"
	"github.com/zucenko/trailgrid/view"
	"github.com/zucenko/trailgrid/walker"
)

const (
	cellRune  = '·'
	trailRune = '•'
	tokenRune = '●'

	// trailGain lifts the faint trail alpha so marks show on a terminal.
	trailGain = 6
)

// surface is the part of tcell.Screen the renderer draws on.
type surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
	Clear()
}

func rgb(c model.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// render paints one frame of w at elapsed onto s.
func render(s surface, w *walker.Walk, elapsed time.Duration) {
	s.Clear()
	width, height := s.Size()
	lattice := view.Lattice{Width: float64(width), Height: float64(height), Size: w.Size()}
	base := tcell.StyleDefault.Background(rgb(model.Backdrop))

	w.Grid.Each(func(c model.Coord, col model.Color) {
		x, y := lattice.Cell(c)
		r := cellRune
		if col != model.Background {
			col = view.Composite(view.Boost(col, trailGain), model.Background)
			r = trailRune
		}
		s.SetContent(round(x), round(y), r, nil, base.Foreground(rgb(col)))
	})

	for i, p := range w.Positions(elapsed) {
		x, y := lattice.Point(float64(p.X), float64(p.Y))
		s.SetContent(round(x), round(y), tokenRune, nil, base.Foreground(rgb(w.Tokens[i].Color)))
	}
}
