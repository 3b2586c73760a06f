// Package charset defines the ordered character sets used for password
// generation and keyspace enumeration.
package charset

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	Lower       = "abcdefghijklmnopqrstuvwxyz"
	Upper       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters     = Lower + Upper
	Digits      = "0123456789"
	HexDigits   = "0123456789abcdef"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	// Default is letters, digits and punctuation.
	Default = Letters + Digits + Punctuation
)

var presets = map[string]string{
	"lower":       Lower,
	"upper":       Upper,
	"letters":     Letters,
	"digits":      Digits,
	"hex":         HexDigits,
	"punctuation": Punctuation,
	"default":     Default,
}

// Charset is an ordered sequence of candidate characters. Duplicates are kept
// as given. A Charset must not be modified after construction.
type Charset []rune

// InvalidCharError is returned when an element of a character set is not
// exactly one valid character.
type InvalidCharError struct {
	Index   int
	Element string
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("charset element %d (%q) is not a single character", e.Index, e.Element)
}

// New returns the characters of s in order. s must be valid UTF-8; use Parse
// for untrusted input.
func New(s string) Charset {
	return Charset([]rune(s))
}

// Parse is like New but rejects invalid UTF-8.
func Parse(s string) (Charset, error) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, &InvalidCharError{Index: i, Element: s[i : i+1]}
		}
		i += size
	}
	return New(s), nil
}

// FromStrings builds a Charset from a list whose elements must each hold
// exactly one character.
func FromStrings(elems []string) (Charset, error) {
	cs := make(Charset, 0, len(elems))
	for i, e := range elems {
		r, size := utf8.DecodeRuneInString(e)
		if size == 0 || size != len(e) || (r == utf8.RuneError && size == 1) {
			return nil, &InvalidCharError{Index: i, Element: e}
		}
		cs = append(cs, r)
	}
	return cs, nil
}

// Lookup resolves a preset name such as "letters" or "digits". Names may be
// joined with "+" ("letters+digits").
func Lookup(name string) (Charset, bool) {
	var b strings.Builder
	for _, part := range strings.Split(name, "+") {
		s, ok := presets[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, false
		}
		b.WriteString(s)
	}
	return New(b.String()), true
}

// LiteralPrefix marks the rest of a Resolve argument as literal characters,
// so "literal:hex" is the set h, e, x rather than the hex preset.
const LiteralPrefix = "literal:"

// Resolve returns the preset named by s if there is one, otherwise the
// literal characters of s. Preset names take precedence; prefix s with
// LiteralPrefix to use its characters as given. An empty s resolves to
// Default.
func Resolve(s string) (Charset, error) {
	if rest, ok := strings.CutPrefix(s, LiteralPrefix); ok {
		return Parse(rest)
	}
	if s == "" {
		return New(Default), nil
	}
	if cs, ok := Lookup(s); ok {
		return cs, nil
	}
	return Parse(s)
}

// Len returns the number of characters, duplicates included.
func (c Charset) Len() int { return len(c) }

// Contains reports whether r is a member of c.
func (c Charset) Contains(r rune) bool {
	for _, x := range c {
		if x == r {
			return true
		}
	}
	return false
}

func (c Charset) String() string { return string(c) }
