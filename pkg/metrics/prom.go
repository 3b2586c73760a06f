package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PasswordsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keyspace_passwords_generated_total",
			Help: "Total number of random passwords generated",
		},
	)

	EntropyErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keyspace_entropy_errors_total",
			Help: "Total number of failed reads from the secure random source",
		},
	)

	CandidatesEnumerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyspace_candidates_enumerated_total",
			Help: "Total number of enumerated candidates by mode",
		},
		[]string{"mode"},
	)

	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyspace_validation_errors_total",
			Help: "Total number of rejected arguments by operation",
		},
		[]string{"operation"},
	)

	WordlistLines = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keyspace_wordlist_lines_total",
			Help: "Total number of candidate lines read from word lists",
		},
	)

	WordlistErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keyspace_wordlist_errors_total",
			Help: "Total number of word list read failures",
		},
	)
)

// WriteTextfile writes the default registry in the text exposition format to
// path, for the node exporter textfile collector. The file is replaced
// atomically.
func WriteTextfile(path string) error {
	return WriteTextfileFrom(path, prometheus.DefaultGatherer)
}

// WriteTextfileFrom is like WriteTextfile for an arbitrary gatherer.
func WriteTextfileFrom(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
