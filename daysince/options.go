package daysince

import (
	"log/slog"
	"time"

	"github.com/0xRadioAc7iv/daysince/internal"
)

type Option func(*internal.Config)

// WithPath stores entries in path instead of ~/.daysince.json.
func WithPath(path string) Option {
	return func(c *internal.Config) {
		c.FilePath = path
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *internal.Config) {
		c.Clock = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *internal.Config) {
		c.Logger = logger
	}
}
