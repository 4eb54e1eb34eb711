package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

// discSlices are the slice lines of the dot disc on both axes: two rounded
// corner bands and a two pixel core that gets stretched.
var discSlices = [4]float64{0, dotSize/2 - 1, dotSize/2 + 1, dotSize}

// Nine draws the dot disc as a rounded panel. Corners keep the disc's
// curvature at the given scale, the core stretches to fill the rest.
type Nine struct {
	disc       *ebiten.Image
	scale      float64
	r, g, b, a float64
	bounds     image.Rectangle
}

func NewDiscNine(disc *ebiten.Image, scale float64) *Nine {
	return &Nine{disc: disc, scale: scale, r: 1, g: 1, b: 1, a: 1}
}

func (n *Nine) SetColor(r, g, b, alpha float64) {
	n.r, n.g, n.b, n.a = r, g, b, alpha
}

// Place sets the panel's top left corner and size.
func (n *Nine) Place(x, y, width, height int) {
	n.bounds = image.Rect(x, y, x+width, y+height)
}

// lines maps the disc slice lines onto one panel axis from lo to hi.
func (n *Nine) lines(lo, hi int) [4]float64 {
	corner := n.scale * discSlices[1]
	return [4]float64{float64(lo), float64(lo) + corner, float64(hi) - corner, float64(hi)}
}

func (n *Nine) Draw(screen *ebiten.Image) {
	xs := n.lines(n.bounds.Min.X, n.bounds.Max.X)
	ys := n.lines(n.bounds.Min.Y, n.bounds.Max.Y)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(
				int(discSlices[col]), int(discSlices[row]),
				int(discSlices[col+1]), int(discSlices[row+1]))

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(
				(xs[col+1]-xs[col])/(discSlices[col+1]-discSlices[col]),
				(ys[row+1]-ys[row])/(discSlices[row+1]-discSlices[row]))
			op.GeoM.Translate(xs[col], ys[row])
			op.ColorM.Scale(n.r, n.g, n.b, n.a)
			screen.DrawImage(n.disc.SubImage(src).(*ebiten.Image), op)
		}
	}
}
