package rexgen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the worker count used when BatchOptions.Workers is zero.
const DefaultWorkers = 4

// BatchOptions configures GenerateN.
type BatchOptions struct {
	// Ceiling replaces the missing upper bound of *, + and {n,}.
	// Zero means DefaultCeiling.
	Ceiling int

	// Seed makes the batch reproducible. Sample i is drawn from NewRand(Seed, i),
	// so the output does not depend on the worker count.
	Seed uint64

	// Workers bounds parallelism. Zero means DefaultWorkers.
	Workers int
}

// Validate checks if the options are valid.
func (o BatchOptions) Validate() error {
	if err := validateCeiling(o.Ceiling); err != nil {
		return err
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", o.Workers)
	}
	return nil
}

// GenerateN compiles pattern once and draws n strings in parallel.
func GenerateN(ctx context.Context, pattern string, n int, opts BatchOptions) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	p, err := Compile(pattern, opts.Ceiling)
	if err != nil {
		return nil, err
	}
	return p.GenerateN(ctx, n, opts.Seed, opts.Workers)
}

// Sample returns the i-th sample of the reproducible sequence for seed. It
// equals GenerateN(ctx, n, seed, w)[i] for any n > i and any w.
func (p *Pattern) Sample(seed uint64, i int) string {
	return p.Generate(NewRand(seed, uint64(i)))
}

// GenerateN draws n strings using up to workers goroutines. Cancelling ctx
// stops the batch and returns the context error.
func (p *Pattern) GenerateN(ctx context.Context, n int, seed uint64, workers int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample count cannot be negative, got %d", n)
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > n {
		workers = n
	}

	out := make([]string, n)
	g, gCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < n; i += workers {
				if err := gCtx.Err(); err != nil {
					return err
				}
				out[i] = p.Sample(seed, i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
