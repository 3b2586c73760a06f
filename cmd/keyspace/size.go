package keyspace

import (
	"fmt"
	"math/big"

	"github.com/edgeflare/keyspace/pkg/keyspace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute the keyspace size",
		Long: `Prints the sum of |charset|^k for minLen <= k < maxLen without enumerating it.
With --combinations, prints the number of combinations the enumerate command yields instead.`,
		Args: cobra.NoArgs,
		RunE: a.runSize,
	}

	addRangeFlags(cmd)
	cmd.Flags().Bool("combinations", false, "count combinations with repetition instead of ordered candidates")
	return cmd
}

func (a *app) runSize(cmd *cobra.Command, args []string) error {
	ec := a.cfg.Enumerate
	combinations, _ := cmd.Flags().GetBool("combinations")

	var (
		n   *big.Int
		err error
	)
	if combinations {
		n, err = keyspace.CombinationCount(ec.MinLen, ec.MaxLen, ec.Charset)
	} else {
		n, err = keyspace.Size(ec.MinLen, ec.MaxLen, ec.Charset)
	}
	if err != nil {
		a.logger.Error("invalid keyspace", zap.Error(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), n)
	a.logger.Debug("computed keyspace size", zap.Stringer("size", n), zap.Bool("combinations", combinations))
	return nil
}
