package keyspace

import (
	"fmt"
	"iter"
	"math/big"

	"github.com/edgeflare/keyspace/pkg/charset"
	"github.com/edgeflare/keyspace/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Mode selects the candidates an Enumerator produces for each length.
type Mode int

const (
	// ModeCombinations yields each multiset of k characters once, as its
	// non-decreasing index serialization ("ab" but not "ba").
	ModeCombinations Mode = iota
	// ModeProduct yields every ordered k-tuple, so the item count equals Size.
	ModeProduct
)

func (m Mode) String() string {
	switch m {
	case ModeCombinations:
		return "combinations"
	case ModeProduct:
		return "product"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "combinations", "combination":
		return ModeCombinations, nil
	case "product":
		return ModeProduct, nil
	default:
		return 0, invalidValue("mode", fmt.Sprintf("unknown enumeration mode %q", s))
	}
}

// Enumerator describes a validated enumeration. It holds no iteration state;
// every call to Cursor or All starts from the first candidate.
type Enumerator struct {
	minLen, maxLen int
	cs             charset.Charset
	mode           Mode
	logger         *zap.Logger
}

// Enumerate validates its arguments and returns an Enumerator over every
// length k with minLen <= k < maxLen. Shorter candidates come first; within a
// length, index tuples are in lexicographic order.
func Enumerate(minLen, maxLen int, cs charset.Charset, opts ...Option) (*Enumerator, error) {
	if err := Validate(minLen, maxLen, cs); err != nil {
		metrics.ValidationErrors.WithLabelValues("enumerate").Inc()
		return nil, err
	}
	o := applyOptions(opts)
	if o.mode != ModeCombinations && o.mode != ModeProduct {
		return nil, invalidValue("mode", fmt.Sprintf("unknown enumeration mode %d", int(o.mode)))
	}

	// callers may reuse their slice
	own := make(charset.Charset, len(cs))
	copy(own, cs)

	return &Enumerator{
		minLen: minLen,
		maxLen: maxLen,
		cs:     own,
		mode:   o.mode,
		logger: o.logger,
	}, nil
}

// Mode returns the enumeration mode.
func (e *Enumerator) Mode() Mode { return e.mode }

// Count returns the exact number of candidates the Enumerator yields.
func (e *Enumerator) Count() *big.Int {
	if e.mode == ModeProduct {
		return sizeOf(e.minLen, e.maxLen, len(e.cs))
	}
	return combinationCountOf(e.minLen, e.maxLen, len(e.cs))
}

// Cursor returns a new cursor positioned before the first candidate.
func (e *Enumerator) Cursor() *Cursor {
	e.logger.Debug("starting enumeration",
		zap.Int("min_len", e.minLen),
		zap.Int("max_len", e.maxLen),
		zap.Int("charset_size", len(e.cs)),
		zap.Stringer("mode", e.mode),
	)
	return &Cursor{
		e:       e,
		k:       e.minLen,
		counter: metrics.CandidatesEnumerated.WithLabelValues(e.mode.String()),
	}
}

// All returns a single-use sequence over a fresh Cursor. Breaking out of the
// loop stops enumeration; nothing beyond the consumed candidates is computed.
func (e *Enumerator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		c := e.Cursor()
		for c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// takeHint bounds the capacity preallocated by Take.
const takeHint = 1024

// Take returns at most n candidates from the start of the enumeration.
func (e *Enumerator) Take(n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, 0, min(n, takeHint))
	for v := range e.All() {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Cursor is a forward-only position in an enumeration. It must be used by a
// single goroutine; concurrent calls to Next have undefined results.
type Cursor struct {
	e       *Enumerator
	k       int
	idx     []int
	buf     []rune
	started bool
	done    bool
	counter prometheus.Counter
}

// Next advances to the next candidate and reports whether there is one.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		if !c.reset() {
			return false
		}
	} else if !c.advance() {
		c.k++
		if !c.reset() {
			return false
		}
	}

	for i, x := range c.idx {
		c.buf[i] = c.e.cs[x]
	}
	c.counter.Inc()
	return true
}

// Value returns the current candidate. It is only valid after Next returned
// true.
func (c *Cursor) Value() string {
	return string(c.buf)
}

// Len returns the length of the current candidate.
func (c *Cursor) Len() int { return c.k }

// reset positions the cursor on the first tuple of length c.k.
func (c *Cursor) reset() bool {
	if c.k >= c.e.maxLen {
		c.done = true
		c.idx, c.buf = nil, nil
		return false
	}
	c.idx = make([]int, c.k)
	c.buf = make([]rune, c.k)
	return true
}

// advance moves to the next tuple of the current length.
func (c *Cursor) advance() bool {
	last := len(c.e.cs) - 1
	i := len(c.idx) - 1
	for i >= 0 && c.idx[i] == last {
		i--
	}
	if i < 0 {
		return false
	}
	c.idx[i]++
	for j := i + 1; j < len(c.idx); j++ {
		if c.e.mode == ModeCombinations {
			c.idx[j] = c.idx[i]
		} else {
			c.idx[j] = 0
		}
	}
	return true
}
