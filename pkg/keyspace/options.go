package keyspace

import (
	"crypto/rand"
	"io"

	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	random io.Reader
	mode   Mode
}

// Option configures a Generator or Enumerator.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		random: rand.Reader,
		mode:   ModeCombinations,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithRandom replaces the entropy source of a Generator. The reader must be a
// cryptographically secure source; it exists so tests can inject failures.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.random = r
		}
	}
}

// WithMode selects what an Enumerator produces.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}
