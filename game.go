package main

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/trailgrid/chime"
	"github.com/zucenko/trailgrid/config"
	"github.com/zucenko/trailgrid/model"
	"github.com/zucenko/trailgrid/view"
	"github.com/zucenko/trailgrid/walker"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var errQuit = errors.New("quit")

const (
	labelWidth  = 160
	labelHeight = 48
	labelDim    = 0.35
)

type Game struct {
	Walk   *walker.Walk
	Window config.WindowConfig
	Tweens map[*gween.Tween]*Action

	start      time.Time
	dot        *Sprite
	panel      *Nine
	font       font.Face
	label      *ebiten.Image
	labelAlpha float64
	chime      *chime.Player
	debug      bool
}

func newFace() (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    28,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

func NewGame(cfg *config.Config, player *chime.Player) (*Game, error) {
	dot, err := NewSprite(cfg.Window.Radius)
	if err != nil {
		return nil, err
	}
	face, err := newFace()
	if err != nil {
		return nil, err
	}
	panel := NewDiscNine(dot.image, 0.3)
	panel.SetColor(1, 1, 1, 0.08)
	panel.Place(12, 12, labelWidth, labelHeight)

	g := &Game{
		Walk:       walker.New(cfg.Walk, walker.NewSeeded(cfg.Walk.Seed)),
		Window:     cfg.Window,
		Tweens:     make(map[*gween.Tween]*Action),
		start:      time.Now(),
		dot:        dot,
		panel:      panel,
		font:       face,
		labelAlpha: labelDim,
		chime:      player,
		debug:      log.IsLevelEnabled(log.DebugLevel),
	}
	if err := g.prepareLabel(g.Walk.Size()); err != nil {
		return nil, err
	}
	g.Walk.AddOnGrow(g.onGrow)
	return g, nil
}

func (g *Game) prepareLabel(size int) error {
	image, err := ebiten.NewImage(labelWidth, labelHeight, ebiten.FilterLinear)
	if err != nil {
		return err
	}
	text.Draw(image, view.Caption(size), g.font, 14, 34, color.White)
	if g.label != nil {
		g.label.Dispose()
	}
	g.label = image
	return nil
}

// onGrow swaps the caption and flashes it: a quick fade in, then a slow
// settle back to dim.
func (g *Game) onGrow(gr walker.Growth) {
	if err := g.prepareLabel(gr.Size); err != nil {
		log.WithError(err).Warn("caption")
	}
	g.chime.Grow(gr.Size)

	setAlpha := func(v float32) { g.labelAlpha = float64(v) }
	flash := gween.New(labelDim, 1, 0.25, ease.OutQuad)
	settle := gween.New(1, labelDim, 1.5, ease.InOutQuad)
	action := &Action{onChange: setAlpha}
	action.next(settle, setAlpha).addOnFinish(func() {
		log.WithField("size", gr.Size).Debug("caption settled")
	})
	g.Tweens[flash] = action
}

func (g *Game) update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	elapsed := time.Since(g.start)
	g.Walk.Advance(elapsed)
	g.updateTweens()

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if err := screen.Fill(model.Backdrop); err != nil {
		log.Printf("%v", err)
	}

	lattice := view.Lattice{
		Width:  float64(g.Window.Width),
		Height: float64(g.Window.Height),
		Size:   g.Walk.Size(),
	}
	g.Walk.Grid.Each(func(c model.Coord, col model.Color) {
		x, y := lattice.Cell(c)
		g.dot.Draw(screen, x, y, col)
	})
	for i, p := range g.Walk.Positions(elapsed) {
		x, y := lattice.Point(float64(p.X), float64(p.Y))
		g.dot.Draw(screen, x, y, g.Walk.Tokens[i].Color)
	}

	if g.Window.HUD {
		g.drawHUD(screen)
	}
	return nil
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.panel.Draw(screen)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(12, 12)
	op.ColorM.Scale(1, 1, 1, g.labelAlpha)
	screen.DrawImage(g.label, op)

	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("tick %d  gen %d", g.Walk.Ticks, g.Walk.Generation), 14, 64)
	}
}
