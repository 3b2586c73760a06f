package keyspace

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/edgeflare/keyspace/pkg/charset"
	"github.com/edgeflare/keyspace/pkg/metrics"
	"go.uber.org/zap"
)

// DefaultPasswordLength is the length used when callers do not pick one.
const DefaultPasswordLength = 40

// Generator draws passwords from a cryptographically secure source.
type Generator struct {
	random io.Reader
	logger *zap.Logger
}

// NewGenerator returns a Generator reading from crypto/rand unless
// WithRandom is given.
func NewGenerator(opts ...Option) *Generator {
	o := applyOptions(opts)
	return &Generator{random: o.random, logger: o.logger}
}

var defaultGenerator = NewGenerator()

// NewPassword returns a password of exactly length characters, each drawn
// independently and uniformly from cs using crypto/rand.
func NewPassword(length int, cs charset.Charset) (string, error) {
	return defaultGenerator.Generate(length, cs)
}

// Generate returns a password of exactly length characters drawn from cs.
// Characters are chosen with replacement; duplicates in cs weight the draw.
// A read failure of the entropy source yields ErrEntropyUnavailable and no
// password.
func (g *Generator) Generate(length int, cs charset.Charset) (string, error) {
	if err := Validate(length, length, cs); err != nil {
		metrics.ValidationErrors.WithLabelValues("generate").Inc()
		return "", err
	}

	// rand.Int uses rejection sampling, so the draw has no modulo bias.
	bound := big.NewInt(int64(len(cs)))
	pw := make([]rune, length)
	for i := range pw {
		n, err := rand.Int(g.random, bound)
		if err != nil {
			metrics.EntropyErrors.Inc()
			g.logger.Error("entropy source read failed", zap.Error(err))
			return "", fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
		}
		pw[i] = cs[n.Int64()]
	}

	metrics.PasswordsGenerated.Inc()
	g.logger.Debug("generated password", zap.Int("length", length), zap.Int("charset_size", len(cs)))
	return string(pw), nil
}
