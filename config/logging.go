package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging applies the logging section to the standard logrus logger.
// With no file configured, output goes to fallback. The returned closer
// releases the log file, if one was opened.
func (c *Config) SetupLogging(fallback io.Writer) (io.Closer, error) {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, errors.Wrap(err, "logging level")
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if c.Logging.File == "" {
		log.SetOutput(fallback)
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(c.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", c.Logging.File)
	}
	log.SetOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
