package keyspace

import (
	"bufio"
	"fmt"

	"github.com/edgeflare/keyspace/pkg/charset"
	"github.com/edgeflare/keyspace/pkg/keyspace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func addRangeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("enumerate.minLen", "m", 4, "minimum candidate length")
	f.IntP("enumerate.maxLen", "M", 5, "maximum candidate length (exclusive)")
	f.StringP("enumerate.charset", "c", charset.Default, "charset preset or literal characters")
}

func newEnumerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enumerate",
		Aliases: []string{"enum", "e"},
		Short:   "Enumerate candidate passwords",
		Long: `Prints every candidate of length minLen up to but excluding maxLen.
The default mode prints combinations with repetition ("ab" but not "ba");
--enumerate.mode=product prints every ordered candidate.`,
		Args: cobra.NoArgs,
		RunE: a.runEnumerate,
	}

	addRangeFlags(cmd)
	f := cmd.Flags()
	f.String("enumerate.mode", keyspace.ModeCombinations.String(), "enumeration mode (combinations, product)")
	f.IntP("enumerate.limit", "n", 0, "stop after this many candidates (0 for all)")
	return cmd
}

func (a *app) runEnumerate(cmd *cobra.Command, args []string) error {
	ec := a.cfg.Enumerate
	mode, err := keyspace.ParseMode(ec.Mode)
	if err != nil {
		return err
	}

	e, err := keyspace.Enumerate(ec.MinLen, ec.MaxLen, ec.Charset,
		keyspace.WithMode(mode),
		keyspace.WithLogger(a.logger),
	)
	if err != nil {
		a.logger.Error("invalid enumeration", zap.Error(err))
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	n := 0
	for c := range e.All() {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return fmt.Errorf("failed to write candidate: %w", err)
		}
		n++
		if ec.Limit > 0 && n == ec.Limit {
			break
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write candidates: %w", err)
	}

	a.logger.Info("enumeration finished",
		zap.Int("printed", n),
		zap.Stringer("total", e.Count()),
		zap.Stringer("mode", mode),
	)
	return nil
}
