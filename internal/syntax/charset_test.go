package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharSet(t *testing.T) {
	s := NewCharSet("cabca")
	assert.Equal(t, CharSet{'a', 'b', 'c'}, s)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 'b', s.At(1))
	assert.True(t, s.Contains('c'))
	assert.False(t, s.Contains('d'))

	assert.Equal(t, CharSet{'a', 'b', 'c', 'x'}, s.Union(NewCharSet("xa")))
	assert.Equal(t, CharSet{'b'}, s.Minus(NewCharSet("ac")))
	assert.Empty(t, s.Minus(s))
}

func TestAlphabet(t *testing.T) {
	assert.Equal(t, 26+26+10+6+32, Alphabet.Len())
	for _, r := range "aZ9 \n~\\" {
		assert.True(t, Alphabet.Contains(r), "%q", r)
	}
	assert.False(t, Alphabet.Contains('é'))
}

func TestCharSetRegexp(t *testing.T) {
	tests := []struct {
		name     string
		set      CharSet
		expected string
	}{
		{"alphanumeric", NewCharSet("b1A"), "[1Ab]"},
		{"punctuation", NewCharSet("-]"), `[\x{2d}\x{5d}]`},
		{"control", NewCharSet("\n"), `[\x{a}]`},
		{"empty", CharSet{}, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.set.Regexp())
		})
	}
}
