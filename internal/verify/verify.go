// Package verify checks generated samples with an independent regex engine.
//
// The expression checked against is the RE2 rendering of the parsed tree, so
// a mismatch means the generator produced a string outside its own language.
package verify

import (
	"errors"
	"fmt"

	"github.com/coregx/coregex"
)

// ErrMismatch is returned when a sample does not match the expression.
var ErrMismatch = errors.New("sample does not match pattern")

// Verifier holds a compiled, fully anchored expression.
type Verifier struct {
	expr string
	re   *coregex.Regex
}

// New compiles expr anchored at both ends.
func New(expr string) (*Verifier, error) {
	re, err := coregex.Compile(Anchored(expr))
	if err != nil {
		return nil, fmt.Errorf("failed to compile verification expression: %w", err)
	}
	return &Verifier{expr: expr, re: re}, nil
}

// Anchored wraps expr so it must match the whole input.
func Anchored(expr string) string {
	return "^(?:" + expr + ")$"
}

// Expr returns the unanchored expression.
func (v *Verifier) Expr() string {
	return v.expr
}

// Check returns ErrMismatch when sample is not in the expression's language.
func (v *Verifier) Check(sample string) error {
	if !v.re.MatchString(sample) {
		return fmt.Errorf("%w: %q against %s", ErrMismatch, sample, v.expr)
	}
	return nil
}
