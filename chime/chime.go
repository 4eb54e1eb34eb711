// Package chime plays a short tone whenever the grid grows.
package chime

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/trailgrid/config"
)

// maxFreq keeps tones audible on very large grids.
const maxFreq = 1760

// Player is safe to use when nil: every method is then a no-op.
type Player struct {
	rate   beep.SampleRate
	length time.Duration
	base   float64
}

// New initializes the speaker. A disabled chime yields a nil Player.
func New(cfg config.ChimeConfig) (*Player, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "speaker init")
	}
	return &Player{rate: rate, length: cfg.Length, base: cfg.BaseFreq}, nil
}

// Frequency rises a semitone per grid size step above the minimum.
func Frequency(base float64, size int) float64 {
	f := base * math.Pow(2, float64(size-2)/12)
	if f > maxFreq {
		return maxFreq
	}
	return f
}

// Grow plays the tone for a grid that just reached size.
func (p *Player) Grow(size int) {
	if p == nil {
		return
	}
	tone, err := generators.SineTone(p.rate, Frequency(p.base, size))
	if err != nil {
		log.WithError(err).Warn("chime tone")
		return
	}
	speaker.Play(beep.Take(p.rate.N(p.length), tone))
}

func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}
