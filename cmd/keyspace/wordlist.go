package keyspace

import (
	"bufio"
	"fmt"

	"github.com/edgeflare/keyspace/pkg/wordlist"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWordlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wordlist [path]",
		Aliases: []string{"wl"},
		Short:   "Stream candidate passwords from a word list",
		Long:    `Prints the trimmed, non-empty lines of a word list file.`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    a.runWordlist,
	}

	cmd.Flags().StringP("wordlist.path", "f", "", "word list file")
	cmd.Flags().Int("wordlist.buffer", 1000, "number of lines read ahead")
	return cmd
}

func (a *app) runWordlist(cmd *cobra.Command, args []string) error {
	path := a.cfg.Wordlist.Path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("word list path required")
	}

	r := wordlist.New(path, wordlist.WithLogger(a.logger))
	w := bufio.NewWriter(cmd.OutOrStdout())
	n := 0
	for line := range r.Stream(cmd.Context(), a.cfg.Wordlist.Buffer) {
		fmt.Fprintln(w, line)
		n++
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write candidates: %w", err)
	}
	if err := r.Err(); err != nil {
		return err
	}

	a.logger.Info("word list streamed", zap.String("path", path), zap.Int("lines", n))
	return nil
}
