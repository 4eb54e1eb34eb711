package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/trailgrid/model"
)

func TestLegalMovesNeverEmptyAndInBounds(t *testing.T) {
	for size := 2; size <= 9; size++ {
		for i := 1; i <= size; i++ {
			for j := 1; j <= size; j++ {
				pos := model.Coord{I: i, J: j}
				moves := LegalMoves(pos, size)
				require.NotEmpty(t, moves, "pos %v size %d", pos, size)
				for _, d := range moves {
					dst := pos.Add(d)
					assert.True(t, inBounds(dst, size), "%v + %v on %d", pos, d, size)
				}
			}
		}
	}
}

func TestLegalMovesCounts(t *testing.T) {
	assert.Equal(t, []model.Direction{{DI: 0, DJ: 1}, {DI: 1, DJ: 1}, {DI: 1, DJ: 0}}, LegalMoves(model.Coord{I: 1, J: 1}, 2))
	assert.Len(t, LegalMoves(model.Coord{I: 2, J: 2}, 3), 8)
	assert.Len(t, LegalMoves(model.Coord{I: 2, J: 1}, 3), 5)
	assert.Len(t, LegalMoves(model.Coord{I: 3, J: 3}, 3), 3)
}

func TestPlanNext(t *testing.T) {
	r := NewRandom(&scriptSource{vals: []int{2, 0}})
	assert.Equal(t, model.Coord{I: 2, J: 1}, PlanNext(r, model.Coord{I: 1, J: 1}, 2))
	assert.Equal(t, model.Coord{I: 1, J: 2}, PlanNext(r, model.Coord{I: 1, J: 1}, 2))
}

func TestPlanNextRandomStaysAdjacent(t *testing.T) {
	r := NewSeeded(3)
	pos := model.Coord{I: 1, J: 1}
	for n := 0; n < 500; n++ {
		next := PlanNext(r, pos, 4)
		di, dj := next.I-pos.I, next.J-pos.J
		require.True(t, inBounds(next, 4))
		require.False(t, di == 0 && dj == 0)
		require.True(t, di >= -1 && di <= 1 && dj >= -1 && dj <= 1)
		pos = next
	}
}

func TestPlanNextOutOfBoundsPanics(t *testing.T) {
	r := NewSeeded(1)
	assert.Panics(t, func() { PlanNext(r, model.Coord{I: 0, J: 1}, 2) })
	assert.Panics(t, func() { PlanNext(r, model.Coord{I: 3, J: 3}, 2) })
	// a one-cell grid has no legal move at all
	assert.Panics(t, func() { PlanNext(r, model.Coord{I: 1, J: 1}, 1) })
}
