// Package config loads trailgrid settings from YAML files and the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/trailgrid/walker"
	"gopkg.in/yaml.v3"
)

const envPrefix = "TRAILGRID_"

// Config contains every trailgrid setting.
type Config struct {
	Walk    walker.Config `yaml:"walk"`
	Window  WindowConfig  `yaml:"window"`
	Chime   ChimeConfig   `yaml:"chime"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig sizes the desktop window and its dots.
type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Radius float64 `yaml:"radius"`
	Title  string  `yaml:"title"`
	// HUD shows the grid size panel.
	HUD bool `yaml:"hud"`
}

// ChimeConfig controls the growth tone.
type ChimeConfig struct {
	Enabled    bool          `yaml:"enabled"`
	SampleRate int           `yaml:"sample_rate"`
	Length     time.Duration `yaml:"length"`
	BaseFreq   float64       `yaml:"base_freq"`
}

// LoggingConfig sets the log verbosity and, optionally, a log file.
type LoggingConfig struct {
	// Level is a logrus level name: "debug", "info", "warn" ...
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with the stock settings.
func Default() *Config {
	return &Config{
		Walk: walker.DefaultConfig(),
		Window: WindowConfig{
			Width:  750,
			Height: 750,
			Radius: 7.5,
			Title:  "trailgrid",
			HUD:    true,
		},
		Chime: ChimeConfig{
			Enabled:    false,
			SampleRate: 44100,
			Length:     120 * time.Millisecond,
			BaseFreq:   220,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds a Config. Order: defaults -> YAML file at path (skipped when
// path is empty or missing) -> TRAILGRID_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, errors.Wrap(err, "environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debugf("config file %s not found, using defaults", path)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(envPrefix + "TICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "%sTICK", envPrefix)
		}
		c.Walk.Period = d
	}
	if v := getenv(envPrefix + "SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%sSIZE", envPrefix)
		}
		c.Walk.InitialSize = n
	}
	if v := getenv(envPrefix + "SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%sSEED", envPrefix)
		}
		c.Walk.Seed = n
	}
	if v := getenv(envPrefix + "CHIME"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%sCHIME", envPrefix)
		}
		c.Chime.Enabled = b
	}
	if v := getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Walk.Validate(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window must have a positive size, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Radius <= 0 {
		return errors.Errorf("dot radius must be positive, got %v", c.Window.Radius)
	}
	if c.Chime.Enabled && (c.Chime.SampleRate <= 0 || c.Chime.Length <= 0 || c.Chime.BaseFreq <= 0) {
		return errors.New("chime needs a positive sample rate, length and base frequency")
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "logging level")
	}
	return nil
}
