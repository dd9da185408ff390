// Command rexgen prints random strings matching regular expressions.
//
// Usage:
//
//	rexgen -re '[A-Z]{3}-\d{4}' -n 5
//	rexgen -re '/\w+@\w+\.com/' -n 100 -out fixtures/email_samples.go -name email -package fixtures -test
//	rexgen -i
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KromDaniel/rexgen/internal/compiler"
	"github.com/KromDaniel/rexgen/internal/config"
	"github.com/KromDaniel/rexgen/internal/log"
	"github.com/KromDaniel/rexgen/pkg/rexgen"
	"github.com/KromDaniel/rexgen/stream"
)

const version = "0.1.0"

const prompt = "From what regex would you like the string to be generated?"

// arrayFlags collects every occurrence of a repeatable flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

type options struct {
	patterns    arrayFlags
	count       int
	ceiling     int
	seed        uint64
	workers     int
	configDir   string
	delimiter   string
	verify      bool
	outputFile  string
	name        string
	pkg         string
	testFile    bool
	interactive bool
	verbose     bool
	showVersion bool
}

var errNoPattern = errors.New("no pattern given, use -re or -i")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "rexgen: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("rexgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Var(&opts.patterns, "re", "pattern to generate from, optionally /delimited/ (repeatable)")
	fs.IntVar(&opts.count, "n", 0, "number of strings per pattern (default from config: 1)")
	fs.IntVar(&opts.ceiling, "ceiling", 0, "upper bound for *, + and {n,} (default from config: 100)")
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible output, 0 picks a random seed")
	fs.IntVar(&opts.workers, "workers", 0, "parallel workers for fixture generation (default from config: 4)")
	fs.StringVar(&opts.configDir, "config", "", "directory containing rexgen.yaml")
	fs.StringVar(&opts.delimiter, "delimiter", "\n", "written after every generated string")
	fs.BoolVar(&opts.verify, "verify", false, "check every string against the pattern with an independent regex engine")
	fs.StringVar(&opts.outputFile, "out", "", "write a Go fixture file instead of printing")
	fs.StringVar(&opts.name, "name", "", "identifier prefix for the fixture file")
	fs.StringVar(&opts.pkg, "package", "fixtures", "package name for the fixture file")
	fs.BoolVar(&opts.testFile, "test", false, "also write a test checking every fixture sample")
	fs.BoolVar(&opts.interactive, "i", false, "prompt for patterns on stdin")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	fs.BoolVar(&opts.showVersion, "version", false, "print version information")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	opts.patterns = append(opts.patterns, fs.Args()...)
	return opts, fs, nil
}

// applyFlags overrides configuration values with flags given on the command line.
func applyFlags(fs *flag.FlagSet, opts *options, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Generator.Count = opts.count
		case "ceiling":
			cfg.Generator.Ceiling = opts.ceiling
		case "seed":
			cfg.Generator.Seed = opts.seed
		case "workers":
			cfg.Generator.Workers = opts.workers
		case "v":
			if opts.verbose {
				cfg.Log.Level = "debug"
			}
		}
	})
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "rexgen %s\n", version)
		return nil
	}

	cfg, err := config.Load(opts.configDir, "rexgen")
	if err != nil {
		return err
	}
	applyFlags(fs, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger := log.NewWithWriter(cfg.Log, stderr)

	if opts.interactive {
		return interactive(ctx, stdin, stdout, cfg.Generator.Ceiling)
	}
	if len(opts.patterns) == 0 {
		fs.Usage()
		return errNoPattern
	}
	if opts.outputFile != "" && len(opts.patterns) != 1 {
		return fmt.Errorf("-out needs exactly one pattern, got %d", len(opts.patterns))
	}

	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Debug().Uint64(log.FieldSeed, seed).Int(log.FieldCount, cfg.Generator.Count).Msg("generating")

	for _, pattern := range opts.patterns {
		p, err := rexgen.Compile(pattern, cfg.Generator.Ceiling)
		if err != nil {
			logPatternError(logger, pattern, err)
			return err
		}

		if opts.outputFile != "" {
			if err := writeFixture(ctx, p, opts, cfg, seed, logger); err != nil {
				return err
			}
			continue
		}

		if err := printSamples(ctx, stdout, p, opts, cfg, seed, logger); err != nil {
			return err
		}
	}
	return nil
}

func printSamples(ctx context.Context, w io.Writer, p *rexgen.Pattern, opts *options, cfg *config.Config, seed uint64, logger zerolog.Logger) error {
	src := func(i int) string {
		s := p.Sample(seed, i)
		if opts.verify {
			if err := p.Verify(s); err != nil {
				logger.Warn().Err(err).Str(log.FieldPattern, p.String()).Msg("verification failed")
			}
		}
		return s
	}

	_, err := stream.Write(ctx, w, src, stream.Config{
		Count:     cfg.Generator.Count,
		Delimiter: opts.delimiter,
	})
	return err
}

func writeFixture(ctx context.Context, p *rexgen.Pattern, opts *options, cfg *config.Config, seed uint64, logger zerolog.Logger) error {
	samples, err := p.GenerateN(ctx, cfg.Generator.Count, seed, cfg.Generator.Workers)
	if err != nil {
		return err
	}

	if opts.verify {
		for i, s := range samples {
			if err := p.Verify(s); err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
		}
	}

	name := opts.name
	if name == "" {
		name = "generated"
	}

	c := compiler.New(compiler.Config{
		Pattern:          p.String(),
		Regexp:           p.Regexp(),
		Name:             name,
		OutputFile:       opts.outputFile,
		Package:          opts.pkg,
		Samples:          samples,
		Seed:             seed,
		GenerateTestFile: opts.testFile,
		Verbose:          opts.verbose,
	})
	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate fixture: %w", err)
	}

	logger.Info().
		Str(log.FieldPattern, p.String()).
		Str(log.FieldOutput, opts.outputFile).
		Int(log.FieldCount, len(samples)).
		Msg("fixture written")
	return nil
}

// interactive reads one pattern per line and prints one result for each
// until stdin is exhausted. Errors are printed and the loop continues.
func interactive(ctx context.Context, stdin io.Reader, stdout io.Writer, ceiling int) error {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprintln(stdout, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := rexgen.Generate(scanner.Text(), rexgen.Options{Ceiling: ceiling})
		if err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(stdout, "The result is: %s\n", result)
	}
}

func logPatternError(logger zerolog.Logger, pattern string, err error) {
	event := logger.Error().Err(err).Str(log.FieldPattern, pattern)
	var perr *rexgen.Error
	if errors.As(err, &perr) {
		event = event.Int(log.FieldOffset, perr.Offset)
	}
	event.Msg("invalid pattern")
}
