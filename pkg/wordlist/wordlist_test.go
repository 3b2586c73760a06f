package wordlist

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edgeflare/keyspace/internal/testutil"
	"github.com/edgeflare/keyspace/pkg/metrics"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func collect(r *Reader) []string {
	var out []string
	for line := range r.All() {
		out = append(out, line)
	}
	return out
}

func TestAll(t *testing.T) {
	r := New(testutil.Path("words.txt"), WithLogger(zaptest.NewLogger(t)))
	got := collect(r)
	require.NoError(t, r.Err())
	assert.Equal(t, []string{"password", "123456", "letmein", "qwerty", "dragon"}, got)

	raw, err := testutil.LoadLines("words.txt")
	require.NoError(t, err)
	assert.Greater(t, len(raw), len(got), "blank lines must be skipped")
}

func TestAllRestarts(t *testing.T) {
	r := New(testutil.Path("words.txt"))
	for line := range r.All() {
		assert.Equal(t, "password", line)
		break
	}
	assert.Len(t, collect(r), 5)
}

func TestAllMissingFile(t *testing.T) {
	before := promtestutil.ToFloat64(metrics.WordlistErrors)

	r := New(filepath.Join(t.TempDir(), "nope.txt"), WithLogger(zaptest.NewLogger(t)))
	assert.Empty(t, collect(r))
	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), fs.ErrNotExist))
	assert.Equal(t, before+1, promtestutil.ToFloat64(metrics.WordlistErrors))
}

func TestAllLineTooLong(t *testing.T) {
	path := testutil.WriteFile(t, "long.txt", "first\n"+strings.Repeat("x", MaxLineSize+1)+"\nlast\n")

	r := New(path)
	assert.Equal(t, []string{"first"}, collect(r))
	assert.Error(t, r.Err())
}

func TestStream(t *testing.T) {
	r := New(testutil.Path("words.txt"))

	var got []string
	for line := range r.Stream(context.Background(), 2) {
		got = append(got, line)
	}
	require.NoError(t, r.Err())
	assert.Equal(t, []string{"password", "123456", "letmein", "qwerty", "dragon"}, got)
}

func TestStreamCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(testutil.Path("words.txt"))

	ch := r.Stream(ctx, 0)
	first := <-ch
	assert.Equal(t, "password", first)
	cancel()

	// the channel must be closed eventually
	for range ch {
	}
	assert.NoError(t, r.Err())
}

func TestStreamBufferClamped(t *testing.T) {
	r := New(testutil.Path("words.txt"))

	for _, buffer := range []int{-5, 1 << 62} {
		var got []string
		assert.NotPanics(t, func() {
			for line := range r.Stream(context.Background(), buffer) {
				got = append(got, line)
			}
		})
		assert.Len(t, got, 5, "buffer %d", buffer)
	}
}
