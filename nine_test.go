package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNineLines(t *testing.T) {
	n := NewDiscNine(nil, 0.5)
	n.Place(10, 20, 100, 40)

	// corners keep 31 source pixels at half scale
	assert.Equal(t, [4]float64{10, 25.5, 94.5, 110}, n.lines(n.bounds.Min.X, n.bounds.Max.X))
	assert.Equal(t, [4]float64{20, 35.5, 44.5, 60}, n.lines(n.bounds.Min.Y, n.bounds.Max.Y))
}
