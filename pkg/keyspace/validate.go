package keyspace

import (
	"fmt"
	"unicode/utf8"

	"github.com/edgeflare/keyspace/pkg/charset"
)

// Validate checks a length range and character set before any work is done.
// It returns nil when minLen >= 1, cs is non-empty, every element of cs is a
// valid character and minLen <= maxLen.
func Validate(minLen, maxLen int, cs charset.Charset) error {
	for i, r := range cs {
		if !utf8.ValidRune(r) {
			return invalidType("charset", fmt.Sprintf("element %d (%U) is not a valid character", i, r), nil)
		}
	}

	if minLen < 1 {
		return invalidValue("min length", fmt.Sprintf("must be at least 1, got %d", minLen))
	}
	if len(cs) == 0 {
		return invalidValue("charset", "must not be empty")
	}
	if minLen > maxLen {
		return invalidValue("min length", fmt.Sprintf("%d is greater than max length %d", minLen, maxLen))
	}
	return nil
}

// ParseCharset resolves s as a preset name or literal character list and
// reports malformed input as ErrInvalidType.
func ParseCharset(s string) (charset.Charset, error) {
	cs, err := charset.Resolve(s)
	if err != nil {
		return nil, invalidType("charset", "not a character sequence", err)
	}
	return cs, nil
}

// CharsetFromStrings builds a charset from single-character strings and
// reports any other element as ErrInvalidType.
func CharsetFromStrings(elems []string) (charset.Charset, error) {
	cs, err := charset.FromStrings(elems)
	if err != nil {
		return nil, invalidType("charset", "elements must be single characters", err)
	}
	return cs, nil
}
