package walker

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/trailgrid/model"
)

// New builds the first generation: a grid of cfg.InitialSize, two tokens at
// random cells with their trails painted, and one planned move each.
func New(cfg Config, rnd *Random) *Walk {
	w := &Walk{
		Grid:    model.NewGrid(cfg.InitialSize),
		Period:  cfg.Period,
		rnd:     rnd,
		palette: NewPalette(rnd),
	}
	if w.Period <= 0 {
		w.Period = DefaultPeriod
	}
	w.place()
	if cfg.ClassicColors {
		w.recolor(ClassicRed, ClassicBlue)
	} else {
		w.recolor(w.palette.InitialColors())
	}
	w.paintPositions()
	w.plan()
	log.WithFields(log.Fields{
		"size":   w.Grid.Size(),
		"token1": w.Tokens[0].Position,
		"token2": w.Tokens[1].Position,
	}).Info("walk started")
	return w
}

func (w *Walk) AddOnGrow(f func(Growth)) {
	w.onGrow = append(w.onGrow, f)
}

func (w *Walk) Size() int {
	return w.Grid.Size()
}

// Due reports whether a full period has passed since the last tick.
func (w *Walk) Due(elapsed time.Duration) bool {
	return elapsed-w.LastTick >= w.Period
}

// Advance commits at most one tick per call, and only once it is due.
func (w *Walk) Advance(elapsed time.Duration) (Outcome, bool) {
	if !w.Due(elapsed) {
		return Outcome{Size: w.Grid.Size()}, false
	}
	return w.Step(elapsed), true
}

// Step commits the planned moves, paints trails, grows the grid when the
// moves collided or crossed, then plans the next moves.
func (w *Walk) Step(now time.Duration) Outcome {
	a, b := w.Tokens[0].Position, w.Tokens[1].Position

	for i := range w.Tokens {
		t := &w.Tokens[i]
		t.Position = t.Next
		w.Grid.Paint(t.Position, t.Trail)
	}
	a2, b2 := w.Tokens[0].Position, w.Tokens[1].Position

	grew := Collided(a, a2, b, b2)
	var g Growth
	if grew {
		g = w.grow()
	}

	w.plan()
	w.LastTick = now
	w.Ticks++

	// listeners only ever see a fully committed tick
	if grew {
		for _, f := range w.onGrow {
			f(g)
		}
	}

	log.WithFields(log.Fields{
		"tick": w.Ticks,
		"size": w.Grid.Size(),
		"grew": grew,
	}).Debug("tick")

	return Outcome{Grew: grew, Size: w.Grid.Size()}
}

func (w *Walk) grow() Growth {
	w.Grid = w.Grid.Grow()
	w.Generation++
	w.place()
	w.recolor(w.palette.RandomOpaque(), w.palette.RandomOpaque())
	w.paintPositions()

	g := Growth{
		Generation: w.Generation,
		Size:       w.Grid.Size(),
		Colors:     [2]model.Color{w.Tokens[0].Color, w.Tokens[1].Color},
	}
	log.WithFields(log.Fields{
		"generation": g.Generation,
		"size":       g.Size,
		"token1":     w.Tokens[0].Position,
		"token2":     w.Tokens[1].Position,
	}).Info("grid grown")
	return g
}

// place drops both tokens on independent uniform cells. They may coincide.
func (w *Walk) place() {
	size := w.Grid.Size()
	for i := range w.Tokens {
		w.Tokens[i].Position = model.Coord{
			I: w.rnd.UniformInt(1, size),
			J: w.rnd.UniformInt(1, size),
		}
	}
}

func (w *Walk) recolor(first, second model.Color) {
	for i, c := range [2]model.Color{first, second} {
		w.Tokens[i].Color = c
		w.Tokens[i].Trail = TrailVariant(c)
	}
}

func (w *Walk) paintPositions() {
	for _, t := range w.Tokens {
		w.Grid.Paint(t.Position, t.Trail)
	}
}

func (w *Walk) plan() {
	size := w.Grid.Size()
	for i := range w.Tokens {
		w.Tokens[i].Next = PlanNext(w.rnd, w.Tokens[i].Position, size)
	}
}

// Fraction is the share of the current period already elapsed, in [0,1).
func (w *Walk) Fraction(elapsed time.Duration) float32 {
	f := float32(float64(elapsed-w.LastTick) / float64(w.Period))
	switch {
	case f < 0:
		return 0
	case f >= 1:
		return nextBelowOne
	}
	return f
}

const nextBelowOne = float32(1 - 1.0/(1<<24))

// Positions returns both tokens' eased positions at elapsed. It only reads.
func (w *Walk) Positions(elapsed time.Duration) [2]Point {
	t := w.Fraction(elapsed)
	return [2]Point{
		Interpolate(w.Tokens[0].Position, w.Tokens[0].Next, t),
		Interpolate(w.Tokens[1].Position, w.Tokens[1].Next, t),
	}
}
