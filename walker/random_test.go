package walker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptSource replays fixed values, then yields zeros.
type scriptSource struct {
	vals []int
}

func (s *scriptSource) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted value %d outside [0,%d)", v, n))
	}
	return v
}

func TestUniformInt(t *testing.T) {
	r := NewRandom(&scriptSource{vals: []int{0, 4, 2}})
	assert.Equal(t, 1, r.UniformInt(1, 5))
	assert.Equal(t, 5, r.UniformInt(1, 5))
	assert.Equal(t, 7, r.UniformInt(5, 7))
	assert.Panics(t, func() { r.UniformInt(3, 2) })
}

func TestUniformIntStaysInRange(t *testing.T) {
	r := NewSeeded(42)
	for i := 0; i < 1000; i++ {
		v := r.UniformInt(1, 3)
		assert.True(t, v >= 1 && v <= 3, "got %d", v)
	}
}

func TestChoose(t *testing.T) {
	r := NewRandom(&scriptSource{vals: []int{2, 0}})
	items := []string{"a", "b", "c"}
	assert.Equal(t, "c", Choose(r, items))
	assert.Equal(t, "a", Choose(r, items))
}

func TestChooseEmptyPanics(t *testing.T) {
	r := NewSeeded(1)
	assert.Panics(t, func() { Choose(r, []int{}) })
	assert.Panics(t, func() { Choose[int](r, nil) })
}

func TestSeededIsRepeatable(t *testing.T) {
	a, b := NewSeeded(7), NewSeeded(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.UniformInt(0, 255), b.UniformInt(0, 255))
	}
}

func TestPalette(t *testing.T) {
	p := NewPalette(NewRandom(&scriptSource{vals: []int{1, 2, 3, 255, 0, 128}}))
	first, second := p.InitialColors()
	assert.Equal(t, ClassicRed.A, first.A)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{first.R, first.G, first.B})
	assert.Equal(t, [3]uint8{255, 0, 128}, [3]uint8{second.R, second.G, second.B})
	assert.Equal(t, uint8(255), second.A)

	trail := TrailVariant(first)
	assert.Equal(t, uint8(15), trail.A)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{trail.R, trail.G, trail.B})
}
