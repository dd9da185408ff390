package syntax

import (
	"math"
	"strconv"
	"strings"
)

// MaxRepeat is the largest repeat bound a quantifier or ceiling may carry.
const MaxRepeat = math.MaxInt32

// resolveQuantifier reads an optional repetition suffix starting at i.
// Anything that is not a quantifier, including the end of the segment,
// yields exactly one occurrence with nothing consumed.
func (p *parser) resolveQuantifier(i, hi int) (Quantifier, error) {
	if i >= hi {
		return One, nil
	}

	switch p.src[i] {
	case '*':
		return p.bounded(i, 0, p.ceiling, 1)
	case '+':
		return p.bounded(i, 1, p.ceiling, 1)
	case '?':
		return Quantifier{Min: 0, Max: 1, Consumed: 1}, nil
	case '{':
		end := -1
		for j := i + 1; j < hi; j++ {
			if p.src[j] == '}' {
				end = j
				break
			}
		}
		if end < 0 {
			return Quantifier{}, malformed(i, "missing '}' for quantifier")
		}
		return p.quantifierBlock(i, string(p.src[i+1:end]), end-i+1)
	default:
		return One, nil
	}
}

// quantifierBlock parses the text between braces. With a comma the parts are
// min and max, an absent min defaults to 0 and an absent max to the ceiling.
// Without a comma the single value is both bounds.
func (p *parser) quantifierBlock(offset int, block string, consumed int) (Quantifier, error) {
	minText, maxText, hasComma := strings.Cut(block, ",")
	if !hasComma {
		n, err := parseBound(minText)
		if err != nil {
			return Quantifier{}, invalidQuantifier(offset, "bad repeat count %q: %v", block, err)
		}
		return p.bounded(offset, n, n, consumed)
	}

	lo, hi := 0, p.ceiling
	if minText != "" {
		n, err := parseBound(minText)
		if err != nil {
			return Quantifier{}, invalidQuantifier(offset, "bad minimum %q", minText)
		}
		lo = n
	}
	if maxText != "" {
		n, err := parseBound(maxText)
		if err != nil {
			return Quantifier{}, invalidQuantifier(offset, "bad maximum %q", maxText)
		}
		hi = n
	}
	return p.bounded(offset, lo, hi, consumed)
}

func (p *parser) bounded(offset, lo, hi, consumed int) (Quantifier, error) {
	if lo > hi {
		return Quantifier{}, invalidQuantifier(offset, "minimum %d exceeds maximum %d", lo, hi)
	}
	if hi > MaxRepeat {
		return Quantifier{}, invalidQuantifier(offset, "repeat bound %d exceeds %d", hi, MaxRepeat)
	}
	return Quantifier{Min: lo, Max: hi, Consumed: consumed}, nil
}

// parseBound accepts only unsigned decimal digits.
func parseBound(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
