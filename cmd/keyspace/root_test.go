package keyspace

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/edgeflare/keyspace/internal/testutil"
	"github.com/edgeflare/keyspace/pkg/charset"
	"github.com/edgeflare/keyspace/pkg/config"
	"github.com/edgeflare/keyspace/pkg/keyspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := runWith(t, &out, args...)
	return out.String(), err
}

func runWith(t *testing.T, out io.Writer, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-level", "none"}, args...))
	return cmd.Execute()
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, config.Version+"\n", out)
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, demo(&out, zap.NewNop()))

	got := lines(out.String())
	require.Len(t, got, 14)
	assert.Equal(t, 32, utf8.RuneCountInString(got[0]))
	assert.Empty(t, got[1])
	assert.Equal(t, []string{"aa", "ab", "ac", "ad", "ae", "af", "ag", "ah", "ai", "aj"}, got[2:12])
	assert.Empty(t, got[12])
	assert.Equal(t, "117", got[13])
}

func TestGenerateCmd(t *testing.T) {
	out, err := run(t, "generate", "-l", "16", "-n", "3", "-c", "digits")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 3)
	digits := charset.New(charset.Digits)
	for _, pw := range got {
		assert.Len(t, pw, 16)
		for _, r := range pw {
			assert.True(t, digits.Contains(r))
		}
	}
}

func TestGenerateCmdDefaults(t *testing.T) {
	out, err := run(t, "generate")
	require.NoError(t, err)
	assert.Equal(t, keyspace.DefaultPasswordLength, utf8.RuneCountInString(strings.TrimSpace(out)))
}

func TestGenerateCmdInvalid(t *testing.T) {
	_, err := run(t, "generate", "-l", "0")
	assert.ErrorIs(t, err, keyspace.ErrInvalidValue)

	_, err = run(t, "generate", "-n", "0")
	assert.ErrorIs(t, err, keyspace.ErrInvalidValue)

	_, err = run(t, "generate", "-l", "ten")
	assert.ErrorIs(t, err, keyspace.ErrInvalidType)

	_, err = run(t, "enumerate", "-m", "2.5")
	assert.ErrorIs(t, err, keyspace.ErrInvalidType)
}

func TestGenerateCmdHugeCount(t *testing.T) {
	const count = "4611686018427387904"

	assert.NotPanics(t, func() {
		err := runWith(t, failingWriter{}, "generate", "-l", "4", "-n", count)
		assert.ErrorContains(t, err, "stdout closed")
	})

	_, err := run(t, "generate", "-l", "0", "-n", count)
	assert.ErrorIs(t, err, keyspace.ErrInvalidValue)
}

func TestLogLevelFlag(t *testing.T) {
	_, err := run(t, "size", "-m", "1", "-M", "2", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")

	out, err := run(t, "size", "-m", "1", "-M", "2", "-c", "ab", "-L", "error")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEnumerateCmd(t *testing.T) {
	out, err := run(t, "enumerate", "-m", "2", "-M", "3", "-c", "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "ab", "ac", "bb", "bc", "cc"}, lines(out))

	out, err = run(t, "enumerate", "-m", "2", "-M", "3", "-c", "abc", "--enumerate.mode", "product", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "ab", "ac", "ba"}, lines(out))
}

func TestEnumerateCmdInvalid(t *testing.T) {
	_, err := run(t, "enumerate", "-m", "3", "-M", "2", "-c", "abc")
	assert.ErrorIs(t, err, keyspace.ErrInvalidValue)

	_, err = run(t, "enumerate", "--enumerate.mode", "permutations")
	assert.ErrorIs(t, err, keyspace.ErrInvalidValue)
}

func TestSizeCmd(t *testing.T) {
	out, err := run(t, "size", "-m", "2", "-M", "5", "-c", "abc")
	require.NoError(t, err)
	assert.Equal(t, "117\n", out)

	out, err = run(t, "size", "-m", "2", "-M", "3", "-c", "abc", "--combinations")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	_, err = run(t, "size", "-m", "0")
	assert.ErrorIs(t, err, keyspace.ErrInvalidValue)
}

func TestSizeCmdFromConfig(t *testing.T) {
	cfgFile := testutil.WriteFile(t, "keyspace.yaml", "enumerate:\n  minLen: 2\n  maxLen: 3\n  charset: [\"a\", \"b\", \"c\"]\n")
	out, err := run(t, "size", "--config", cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestWordlistCmd(t *testing.T) {
	out, err := run(t, "wordlist", testutil.Path("words.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"password", "123456", "letmein", "qwerty", "dragon"}, lines(out))

	_, err = run(t, "wordlist", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "wordlist")
	assert.Error(t, err)
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyspace.prom")
	_, err := run(t, "generate", "-l", "8", "--metricsFile", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "keyspace_passwords_generated_total")
}
