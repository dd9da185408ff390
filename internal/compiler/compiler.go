// Package compiler emits Go fixture files holding generated samples.
package compiler

import (
	"fmt"
	"go/format"
	"os"
	"regexp"
	"strings"

	"github.com/KromDaniel/rexgen/internal/codegen"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for fixture generation.
type Config struct {
	Pattern          string   // Pattern the samples were drawn from, as given by the user
	Regexp           string   // RE2 rendering of the pattern, used by the generated test
	Name             string   // Prefix for generated identifiers
	OutputFile       string   // Path of the generated .go file
	Package          string   // Package clause of the generated file
	Samples          []string // Samples to embed
	Seed             uint64   // Seed the samples were drawn with, recorded in the header
	GenerateTestFile bool     // Also write <output>_test.go checking every sample
	Verbose          bool     // Enable verbose logging
}

// Validate checks if the configuration can produce a file.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if c.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if len(c.Samples) == 0 {
		return fmt.Errorf("at least one sample is required")
	}
	if c.GenerateTestFile {
		if c.Regexp == "" {
			return fmt.Errorf("regexp is required to generate a test file")
		}
		// The generated test compiles the rendering with regexp.MustCompile,
		// which rejects repeat counts above 1000.
		if _, err := regexp.Compile(anchored(c.Regexp)); err != nil {
			return fmt.Errorf("regexp cannot be used in a test file: %w", err)
		}
	}
	return nil
}

// Compiler writes the fixture and its optional test file.
type Compiler struct {
	config Config
	file   *jen.File
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: NewLogger(config.Verbose),
	}
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// Logger returns the compiler's verbose logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// TestFilePath returns where the generated test file is written.
func (c *Compiler) TestFilePath() string {
	return strings.TrimSuffix(c.config.OutputFile, ".go") + "_test.go"
}

func (c *Compiler) ident(suffix string) string {
	return codegen.Identifier(c.config.Name, suffix)
}

// Generate builds the fixture file and writes it to the output file.
func (c *Compiler) Generate() error {
	if err := c.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.logger.Section("Fixture")
	c.logger.Log("Pattern: %s", c.config.Pattern)
	c.logger.Log("Samples: %d", len(c.config.Samples))
	c.logger.Log("Output: %s", c.config.OutputFile)

	c.file.HeaderComment(fmt.Sprintf("Code generated by rexgen for pattern: %s", c.config.Pattern))
	c.file.HeaderComment(fmt.Sprintf("Seed: %d", c.config.Seed))
	c.file.HeaderComment("DO NOT EDIT.")

	patternName := c.ident(codegen.PatternSuffix)
	samplesName := c.ident(codegen.SamplesSuffix)

	c.file.Commentf("%s is the pattern the samples were generated from.", patternName)
	c.file.Const().Id(patternName).Op("=").Lit(c.config.Pattern)
	c.file.Line()

	if c.config.Regexp != "" {
		regexpName := c.ident(codegen.RegexpSuffix)
		c.file.Commentf("%s is an RE2 expression matching every generated sample.", regexpName)
		c.file.Const().Id(regexpName).Op("=").Lit(c.config.Regexp)
		c.file.Line()
	}

	values := make([]jen.Code, len(c.config.Samples))
	for i, s := range c.config.Samples {
		values[i] = jen.Lit(s)
	}
	c.file.Commentf("%s holds strings generated from %s.", samplesName, patternName)
	c.file.Var().Id(samplesName).Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, v := range values {
			g.Line().Add(v)
		}
		g.Line()
	})
	c.file.Line()

	c.generateSampleFunc(samplesName)

	if err := c.save(c.file, c.config.OutputFile); err != nil {
		return err
	}

	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}
	return nil
}

// generateSampleFunc emits an accessor that cycles through the samples.
func (c *Compiler) generateSampleFunc(samplesName string) {
	funcName := c.ident(codegen.SampleSuffix)
	idx := jen.Id(codegen.IndexName)

	c.file.Commentf("%s returns sample i, wrapping around when i exceeds the sample count.", funcName)
	c.file.Func().Id(funcName).Params(idx.Clone().Int()).String().Block(
		jen.Id("n").Op(":=").Len(jen.Id(samplesName)),
		jen.Return(jen.Id(samplesName).Index(
			jen.Parens(jen.Id(codegen.IndexName).Op("%").Id("n").Op("+").Id("n")).Op("%").Id("n"),
		)),
	)
}

// generateTestFile writes a test asserting each sample matches the RE2 rendering.
func (c *Compiler) generateTestFile() error {
	f := jen.NewFile(c.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by rexgen for pattern: %s", c.config.Pattern))
	f.HeaderComment("DO NOT EDIT.")

	t := jen.Id(codegen.TestingName)
	f.Func().Id(codegen.TestName(c.config.Name)).Params(t.Clone().Op("*").Qual("testing", "T")).Block(
		jen.Id(codegen.RegexpName).Op(":=").Qual("regexp", "MustCompile").Call(
			jen.Lit("^(?:").Op("+").Id(c.ident(codegen.RegexpSuffix)).Op("+").Lit(")$"),
		),
		jen.For(jen.List(jen.Id(codegen.IndexName), jen.Id(codegen.SampleName)).Op(":=").Range().Id(c.ident(codegen.SamplesSuffix))).Block(
			jen.If(jen.Op("!").Id(codegen.RegexpName).Dot("MatchString").Call(jen.Id(codegen.SampleName))).Block(
				jen.Id(codegen.TestingName).Dot("Errorf").Call(
					jen.Lit("sample %d (%q) does not match %s"),
					jen.Id(codegen.IndexName),
					jen.Id(codegen.SampleName),
					jen.Id(c.ident(codegen.PatternSuffix)),
				),
			),
		),
	)

	c.logger.Log("Test file: %s", c.TestFilePath())
	return c.save(f, c.TestFilePath())
}

func anchored(expr string) string {
	return "^(?:" + expr + ")$"
}

func (c *Compiler) save(f *jen.File, path string) error {
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if err := formatFile(path); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}
	return nil
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
