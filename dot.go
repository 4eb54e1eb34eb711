package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/zucenko/trailgrid/model"
	"golang.org/x/image/vector"
)

// dotSize is the pixel diameter of the source disc; dots are scaled from it.
const dotSize = 64

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847

// newDisc rasterizes a white anti-aliased disc of diameter dotSize.
func newDisc() *image.RGBA {
	const r = dotSize / 2
	z := vector.NewRasterizer(dotSize, dotSize)
	z.MoveTo(2*r, r)
	z.CubeTo(2*r, r+kappa*r, r+kappa*r, 2*r, r, 2*r)
	z.CubeTo(r-kappa*r, 2*r, 0, r+kappa*r, 0, r)
	z.CubeTo(0, r-kappa*r, r-kappa*r, 0, r, 0)
	z.CubeTo(r+kappa*r, 0, 2*r, r-kappa*r, 2*r, r)
	z.ClosePath()

	img := image.NewRGBA(image.Rect(0, 0, dotSize, dotSize))
	z.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{})
	return img
}

// Sprite draws tinted discs centered on surface points.
type Sprite struct {
	image  *ebiten.Image
	radius float64
}

func NewSprite(radius float64) (*Sprite, error) {
	img, err := ebiten.NewImageFromImage(newDisc(), ebiten.FilterLinear)
	if err != nil {
		return nil, err
	}
	return &Sprite{image: img, radius: radius}, nil
}

func (s *Sprite) Draw(screen *ebiten.Image, x, y float64, c model.Color) {
	scale := 2 * s.radius / dotSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-s.radius, y-s.radius)
	op.ColorM.Scale(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	screen.DrawImage(s.image, op)
}
