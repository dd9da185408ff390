package syntax

import (
	"fmt"
	"slices"
	"strings"
)

// Building blocks of the supported alphabet.
const (
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Whitespace  = " \t\n\r\v\f"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Alphabet is every character a complement class or '.' can draw from.
var Alphabet = NewCharSet(Lowercase + Uppercase + Digits + Whitespace + Punctuation)

// CharSet is a sorted set of distinct candidate runes.
type CharSet []rune

// NewCharSet builds a set from the runes of s.
func NewCharSet(s string) CharSet {
	return setOf([]rune(s))
}

func setOf(runes []rune) CharSet {
	out := slices.Clone(runes)
	slices.Sort(out)
	return CharSet(slices.Compact(out))
}

// Len returns the number of candidates.
func (s CharSet) Len() int {
	return len(s)
}

// At returns the i-th candidate in code point order.
func (s CharSet) At(i int) rune {
	return s[i]
}

// Contains reports whether r is a candidate.
func (s CharSet) Contains(r rune) bool {
	_, ok := slices.BinarySearch(s, r)
	return ok
}

// Union returns the candidates of s and other.
func (s CharSet) Union(other CharSet) CharSet {
	merged := make([]rune, 0, len(s)+len(other))
	merged = append(merged, s...)
	merged = append(merged, other...)
	return setOf(merged)
}

// Minus returns the candidates of s not present in other.
func (s CharSet) Minus(other CharSet) CharSet {
	out := make(CharSet, 0, len(s))
	for _, r := range s {
		if !other.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// Regexp renders the set as an RE2 bracket expression listing every candidate.
func (s CharSet) Regexp() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, `\x{%x}`, r)
		}
	}
	b.WriteByte(']')
	return b.String()
}
