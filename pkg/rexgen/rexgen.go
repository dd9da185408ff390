// Package rexgen generates random strings that satisfy a regular expression.
// It is the inverse of matching: a pattern goes in, a string the pattern
// would accept comes out. It is meant for producing test data for code that
// consumes pattern-validated input.
//
// Example:
//
//	s, err := rexgen.Generate(`/[A-Z]{3}-\d{4}/`, rexgen.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s) // e.g. "QTX-0381"
package rexgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/KromDaniel/rexgen/internal/generator"
	"github.com/KromDaniel/rexgen/internal/syntax"
	"github.com/KromDaniel/rexgen/internal/verify"
)

// DefaultCeiling bounds *, + and {n,} when no ceiling is configured.
const DefaultCeiling = 100

// MaxRepeat is the largest ceiling or explicit repeat bound accepted.
const MaxRepeat = syntax.MaxRepeat

// Error kinds, matchable with errors.Is.
var (
	ErrMalformedPattern  = syntax.ErrMalformedPattern
	ErrEmptyClass        = syntax.ErrEmptyClass
	ErrInvalidQuantifier = syntax.ErrInvalidQuantifier
)

// ErrMismatch is returned by Verify when a sample is outside the pattern's language.
var ErrMismatch = verify.ErrMismatch

// Error carries the kind and the rune offset of a pattern problem.
type Error = syntax.Error

// Rand is the injectable random source. *rand.Rand from math/rand/v2 satisfies it.
type Rand = generator.Rand

// NewRand returns a deterministic PCG source for seed and stream.
func NewRand(seed, stream uint64) *rand.Rand {
	return generator.NewRand(seed, stream)
}

// Options configures a single generation.
type Options struct {
	// Ceiling replaces the missing upper bound of *, + and {n,}.
	// Zero means DefaultCeiling.
	Ceiling int

	// Rand is the random source. Nil means a fresh randomly seeded source per call.
	Rand Rand
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	return validateCeiling(o.Ceiling)
}

func validateCeiling(ceiling int) error {
	if ceiling < 0 {
		return fmt.Errorf("ceiling cannot be negative, got %d", ceiling)
	}
	if ceiling > MaxRepeat {
		return fmt.Errorf("ceiling cannot exceed %d, got %d", MaxRepeat, ceiling)
	}
	return nil
}

func ceilingOrDefault(ceiling int) int {
	if ceiling == 0 {
		return DefaultCeiling
	}
	return ceiling
}

// Pattern is a parsed pattern, safe for concurrent use.
type Pattern struct {
	source  string
	ceiling int
	root    syntax.Node

	verifyOnce sync.Once
	verifier   *verify.Verifier
	verifyErr  error
}

// Compile parses pattern, stripping optional /.../ delimiters. Every error a
// pattern can cause is reported here.
func Compile(pattern string, ceiling int) (*Pattern, error) {
	if err := validateCeiling(ceiling); err != nil {
		return nil, err
	}
	ceiling = ceilingOrDefault(ceiling)

	root, err := syntax.Parse(pattern, ceiling)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pattern: %w", err)
	}
	return &Pattern{source: pattern, ceiling: ceiling, root: root}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string, ceiling int) *Pattern {
	p, err := Compile(pattern, ceiling)
	if err != nil {
		panic("rexgen: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// Ceiling returns the repeat ceiling in effect.
func (p *Pattern) Ceiling() int {
	return p.ceiling
}

// Generate draws one string. A nil r uses a fresh randomly seeded source.
func (p *Pattern) Generate(r Rand) string {
	if r == nil {
		r = NewRand(rand.Uint64(), rand.Uint64())
	}
	return generator.Generate(p.root, r)
}

// Regexp returns an RE2 expression matching exactly the strings Generate
// can return. Zero-width constructs are dropped from it.
func (p *Pattern) Regexp() string {
	return p.root.Regexp()
}

// Verify checks sample against Regexp with an independent regex engine.
// The expression is compiled on first use. Patterns whose rendering the
// engine rejects, such as repeats above 1000, always return that error.
func (p *Pattern) Verify(sample string) error {
	p.verifyOnce.Do(func() {
		p.verifier, p.verifyErr = verify.New(p.Regexp())
	})
	if p.verifyErr != nil {
		return p.verifyErr
	}
	return p.verifier.Check(sample)
}

// Generate compiles pattern and draws one string from it.
func Generate(pattern string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("invalid options: %w", err)
	}
	p, err := Compile(pattern, opts.Ceiling)
	if err != nil {
		return "", err
	}
	return p.Generate(opts.Rand), nil
}

// IsPatternError reports whether err was caused by the pattern itself rather
// than by options or I/O.
func IsPatternError(err error) bool {
	var perr *Error
	return errors.As(err, &perr)
}
