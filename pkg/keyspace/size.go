package keyspace

import (
	"math/big"

	"github.com/edgeflare/keyspace/pkg/charset"
	"github.com/edgeflare/keyspace/pkg/metrics"
)

// Size returns the keyspace size, the sum of len(cs)^k for minLen <= k < maxLen,
// without enumerating it. This is the number of ordered candidates; see
// CombinationCount for what the default Enumerator yields.
func Size(minLen, maxLen int, cs charset.Charset) (*big.Int, error) {
	if err := Validate(minLen, maxLen, cs); err != nil {
		metrics.ValidationErrors.WithLabelValues("size").Inc()
		return nil, err
	}
	return sizeOf(minLen, maxLen, len(cs)), nil
}

// CombinationCount returns the number of combinations with repetition, the
// sum of C(n+k-1, k) for minLen <= k < maxLen where n is len(cs).
func CombinationCount(minLen, maxLen int, cs charset.Charset) (*big.Int, error) {
	if err := Validate(minLen, maxLen, cs); err != nil {
		metrics.ValidationErrors.WithLabelValues("combination_count").Inc()
		return nil, err
	}
	return combinationCountOf(minLen, maxLen, len(cs)), nil
}

func sizeOf(minLen, maxLen, n int) *big.Int {
	total := new(big.Int)
	if minLen >= maxLen {
		return total
	}
	base := big.NewInt(int64(n))
	term := new(big.Int).Exp(base, big.NewInt(int64(minLen)), nil)
	for k := minLen; k < maxLen; k++ {
		total.Add(total, term)
		term.Mul(term, base)
	}
	return total
}

func combinationCountOf(minLen, maxLen, n int) *big.Int {
	total := new(big.Int)
	term := new(big.Int)
	for k := minLen; k < maxLen; k++ {
		total.Add(total, term.Binomial(int64(n+k-1), int64(k)))
	}
	return total
}
