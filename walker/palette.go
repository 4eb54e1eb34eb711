package walker

import "github.com/zucenko/trailgrid/model"

var (
	ClassicRed  = model.Color{R: 235, G: 65, B: 55, A: 255}
	ClassicBlue = model.Color{R: 0, G: 155, B: 240, A: 255}
)

// Palette hands out random token colors.
type Palette struct {
	rnd *Random
}

func NewPalette(rnd *Random) Palette {
	return Palette{rnd: rnd}
}

func (p Palette) RandomOpaque() model.Color {
	return model.Color{
		R: uint8(p.rnd.UniformInt(0, 255)),
		G: uint8(p.rnd.UniformInt(0, 255)),
		B: uint8(p.rnd.UniformInt(0, 255)),
		A: 255,
	}
}

func (p Palette) InitialColors() (model.Color, model.Color) {
	first := p.RandomOpaque()
	return first, p.RandomOpaque()
}

func TrailVariant(c model.Color) model.Color {
	c.A = model.TrailAlpha
	return c
}
