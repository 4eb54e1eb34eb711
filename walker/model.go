package walker

import (
	"time"

	"github.com/zucenko/trailgrid/model"
)

// Walk is the whole simulation: the trail grid, both tokens and the tick
// clock. It is owned by a single driver and is not safe for concurrent use.
type Walk struct {
	Grid     *model.Grid
	Tokens   [2]model.Token
	LastTick time.Duration
	Period   time.Duration

	// Ticks counts committed ticks, Generation counts growths.
	Ticks      int
	Generation int

	rnd     *Random
	palette Palette
	onGrow  []func(Growth)
}

// Outcome describes one committed tick.
type Outcome struct {
	Grew bool
	Size int
}

// Growth is passed to listeners after the grid grows.
type Growth struct {
	Generation int
	Size       int
	Colors     [2]model.Color
}
