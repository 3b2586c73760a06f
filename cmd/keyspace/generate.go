package keyspace

import (
	"bufio"
	"fmt"

	"github.com/edgeflare/keyspace/pkg/charset"
	"github.com/edgeflare/keyspace/pkg/keyspace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Generate random passwords",
		Long:    `Generates passwords from the operating system's cryptographically secure random source.`,
		Args:    cobra.NoArgs,
		RunE:    a.runGenerate,
	}

	f := cmd.Flags()
	f.IntP("generate.length", "l", keyspace.DefaultPasswordLength, "password length")
	f.IntP("generate.count", "n", 1, "number of passwords to generate")
	f.StringP("generate.charset", "c", charset.Default, "charset preset (letters, digits, punctuation, ...) or literal characters")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	gc := a.cfg.Generate
	if gc.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", keyspace.ErrInvalidValue, gc.Count)
	}

	// a bad length or charset fails before anything is printed
	if err := keyspace.Validate(gc.Length, gc.Length, gc.Charset); err != nil {
		return err
	}

	g := keyspace.NewGenerator(keyspace.WithLogger(a.logger))
	w := bufio.NewWriter(cmd.OutOrStdout())
	for i := 0; i < gc.Count; i++ {
		pw, err := g.Generate(gc.Length, gc.Charset)
		if err != nil {
			a.logger.Error("failed to generate password", zap.Error(err))
			return err
		}
		if _, err := fmt.Fprintln(w, pw); err != nil {
			return fmt.Errorf("failed to write password: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write passwords: %w", err)
	}
	a.logger.Info("generated passwords", zap.Int("count", gc.Count), zap.Int("length", gc.Length))
	return nil
}
