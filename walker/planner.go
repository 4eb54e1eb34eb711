package walker

import (
	"fmt"

	"github.com/zucenko/trailgrid/model"
)

func inBounds(c model.Coord, size int) bool {
	return c.I >= 1 && c.I <= size && c.J >= 1 && c.J <= size
}

// LegalMoves lists the directions that keep pos inside [1,size]².
func LegalMoves(pos model.Coord, size int) []model.Direction {
	moves := make([]model.Direction, 0, len(model.Directions))
	for _, d := range model.Directions {
		if inBounds(pos.Add(d), size) {
			moves = append(moves, d)
		}
	}
	return moves
}

// PlanNext picks the destination for the upcoming tick.
func PlanNext(r *Random, pos model.Coord, size int) model.Coord {
	if !inBounds(pos, size) {
		panic(fmt.Sprintf("planning from %v outside grid of size %d", pos, size))
	}
	moves := LegalMoves(pos, size)
	if len(moves) == 0 {
		panic(fmt.Sprintf("no legal move from %v on grid of size %d", pos, size))
	}
	return pos.Add(Choose(r, moves))
}
