// Package wordlist streams candidate passwords from a word list file, one
// per line, for dictionary attacks.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"os"
	"strings"
	"sync"

	"github.com/edgeflare/keyspace/pkg/metrics"
	"go.uber.org/zap"
)

const (
	initialBufSize = 64 * 1024
	// MaxLineSize is the longest line accepted; longer lines fail the read.
	MaxLineSize = 1024 * 1024
	// MaxStreamBuffer caps the read-ahead of Stream.
	MaxStreamBuffer = 64 * 1024
)

// Reader reads a word list lazily. Each call to All or Stream reopens the
// file and starts from the first line.
type Reader struct {
	path   string
	logger *zap.Logger

	mu  sync.Mutex
	err error
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used to report read failures.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a Reader for path. The file is not opened until iteration.
func New(path string, opts ...Option) *Reader {
	r := &Reader{path: path, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the word list path.
func (r *Reader) Path() string { return r.path }

// Err returns the error that ended the most recent iteration, if any.
func (r *Reader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Reader) setErr(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
	if err != nil {
		metrics.WordlistErrors.Inc()
		r.logger.Error("word list read failed", zap.String("path", r.path), zap.Error(err))
	}
}

// All yields the trimmed, non-empty lines of the file. When the file cannot
// be opened or read, iteration stops and Err reports the failure.
func (r *Reader) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		r.setErr(nil)

		f, err := os.Open(r.path)
		if err != nil {
			r.setErr(fmt.Errorf("failed to open word list: %w", err))
			return
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, initialBufSize), MaxLineSize)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			metrics.WordlistLines.Inc()
			if !yield(line) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			r.setErr(fmt.Errorf("failed to read word list: %w", err))
		}
	}
}

// Stream sends the lines yielded by All on the returned channel, which is
// closed when the file is exhausted, a read fails or ctx is done. Check Err
// after the channel is closed. buffer is clamped to [0, MaxStreamBuffer].
func (r *Reader) Stream(ctx context.Context, buffer int) <-chan string {
	ch := make(chan string, min(max(buffer, 0), MaxStreamBuffer))

	go func() {
		defer close(ch)
		for line := range r.All() {
			select {
			case <-ctx.Done():
				return
			case ch <- line:
			}
		}
	}()

	return ch
}
