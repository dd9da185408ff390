package syntax

import "strings"

// escapeClasses maps escape letters to their candidate sets.
var escapeClasses = map[rune]CharSet{
	'd': NewCharSet(Digits),
	'D': NewCharSet(Lowercase + Uppercase + Whitespace + Punctuation),
	'w': NewCharSet(Lowercase + Uppercase + Digits + "_"),
	'W': NewCharSet(strings.ReplaceAll(Punctuation, "_", "") + Whitespace),
	's': NewCharSet(Whitespace),
	'S': NewCharSet(Lowercase + Uppercase + Digits + Punctuation),
}

// dotClass is what '.' draws from: the alphabet without newline.
var dotClass = Alphabet.Minus(NewCharSet("\n"))

// controlEscapes are the escapes that stand for a control character.
var controlEscapes = map[rune]rune{
	'n': '\n',
	't': '\t',
	'r': '\r',
	'f': '\f',
	'v': '\v',
}

// EscapeClass returns the candidate set for \c when c names a class
// (d, D, w, W, s, S).
func EscapeClass(c rune) (CharSet, bool) {
	set, ok := escapeClasses[c]
	return set, ok
}

// EscapeLiteral returns the literal character produced by \c for every c that
// does not name a class. Escaped metacharacters stand for themselves.
func EscapeLiteral(c rune) rune {
	if r, ok := controlEscapes[c]; ok {
		return r
	}
	return c
}

// escapeSet expands \c into a set, for use inside bracket expressions.
func escapeSet(c rune) CharSet {
	if set, ok := EscapeClass(c); ok {
		return set
	}
	return CharSet{EscapeLiteral(c)}
}
