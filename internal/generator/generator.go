// Package generator draws random strings from a parsed pattern tree.
//
// Generation is a stateless walk: every call owns its output buffer and the
// only external state is the random source passed in, so concurrent calls
// with distinct sources are safe.
package generator

import (
	"math/rand/v2"
	"strings"

	"github.com/KromDaniel/rexgen/internal/syntax"
)

// Rand is the source of randomness. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewRand returns a deterministic source for the given seed and stream.
func NewRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// Generate returns one string produced by root.
func Generate(root syntax.Node, r Rand) string {
	var b strings.Builder
	emit(&b, root, r)
	return b.String()
}

func emit(b *strings.Builder, n syntax.Node, r Rand) {
	switch n := n.(type) {
	case *syntax.Literal:
		for range repeatCount(n.Quant, r) {
			b.WriteRune(n.Char)
		}
	case *syntax.Class:
		for range repeatCount(n.Quant, r) {
			b.WriteRune(draw(n.Set, r))
		}
	case *syntax.Anchor:
		// zero-width
	case *syntax.Group:
		if n.Kind.ZeroWidth() {
			return
		}
		// Each repetition draws independently, alternatives included.
		for range repeatCount(n.Quant, r) {
			emit(b, n.Body, r)
		}
	case *syntax.Sequence:
		for _, item := range n.Items {
			emit(b, item, r)
		}
	case *syntax.Alternation:
		emit(b, SelectAlternative(n, r), r)
	}
}

// SelectAlternative picks one option uniformly.
func SelectAlternative(n *syntax.Alternation, r Rand) syntax.Node {
	return n.Options[r.IntN(len(n.Options))]
}

// repeatCount draws uniformly from [q.Min, q.Max].
func repeatCount(q syntax.Quantifier, r Rand) int {
	if q.Min == q.Max {
		return q.Min
	}
	return q.Min + r.IntN(q.Max-q.Min+1)
}

// draw picks one candidate uniformly. Sets are never empty after parsing.
func draw(set syntax.CharSet, r Rand) rune {
	return set.At(r.IntN(set.Len()))
}
