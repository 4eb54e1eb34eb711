package view

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/zucenko/trailgrid/model"
)

// Composite lays a translucent color over an opaque one and returns the
// opaque result, for surfaces without an alpha channel.
func Composite(over, under model.Color) model.Color {
	top := colorful.Color{R: float64(over.R) / 255, G: float64(over.G) / 255, B: float64(over.B) / 255}
	bottom := colorful.Color{R: float64(under.R) / 255, G: float64(under.G) / 255, B: float64(under.B) / 255}
	r, g, b := bottom.BlendRgb(top, float64(over.A)/255).RGB255()
	return model.Color{R: r, G: g, B: b, A: 255}
}

// Boost pushes a faint color towards its opaque version so that it stays
// visible on coarse surfaces. gain 1 leaves alpha unchanged.
func Boost(c model.Color, gain float64) model.Color {
	a := float64(c.A) * gain
	if a > 255 {
		a = 255
	}
	c.A = uint8(a)
	return c
}
