package walker

import (
	"time"

	"github.com/pkg/errors"
	"github.com/zucenko/trailgrid/model"
)

const (
	DefaultPeriod = time.Second
	DefaultSize   = model.MinGridSize
)

// Config tunes a Walk. The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Period is the real time between ticks.
	Period time.Duration `yaml:"period"`

	// InitialSize is the grid size of the first generation.
	InitialSize int `yaml:"initial_size"`

	// Seed fixes the random sequence. 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	// ClassicColors starts the first generation red and blue instead of random.
	ClassicColors bool `yaml:"classic_colors"`
}

func DefaultConfig() Config {
	return Config{
		Period:      DefaultPeriod,
		InitialSize: DefaultSize,
	}
}

func (c Config) Validate() error {
	if c.Period <= 0 {
		return errors.Errorf("tick period must be positive, got %v", c.Period)
	}
	if c.InitialSize < model.MinGridSize {
		return errors.Errorf("initial grid size must be at least %d, got %d", model.MinGridSize, c.InitialSize)
	}
	return nil
}
