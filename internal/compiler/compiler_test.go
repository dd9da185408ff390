package compiler

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilerGenerate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		regexp  string
		samples []string
	}{
		{"simple", "test", "test", []string{"test"}},
		{"digit", `\d{2}`, `[0123456789]{2}`, []string{"07", "42"}},
		{"quotes", `"[a-z]"`, `"[a-z]"`, []string{`"q"`, `"x"`}},
		{"newline", `a\n`, "a\n", []string{"a\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			outputFile := filepath.Join(tmpDir, "fixture.go")

			c := New(Config{
				Pattern:          tt.pattern,
				Regexp:           tt.regexp,
				Name:             "zip",
				OutputFile:       outputFile,
				Package:          "fixtures",
				Samples:          tt.samples,
				Seed:             3,
				GenerateTestFile: true,
			})

			require.NoError(t, c.Generate())

			src, err := os.ReadFile(outputFile)
			require.NoError(t, err)
			content := string(src)

			assert.True(t, strings.HasPrefix(content, "// Code generated by rexgen for pattern: "))
			assert.Contains(t, content, "package fixtures")
			assert.Contains(t, content, "const ZipPattern =")
			assert.Contains(t, content, "const ZipRegexp =")
			assert.Contains(t, content, "var ZipSamples = []string{")
			assert.Contains(t, content, "func ZipSample(i int) string")
			assert.Contains(t, content, "// Seed: 3")

			testSrc, err := os.ReadFile(c.TestFilePath())
			require.NoError(t, err)
			assert.Contains(t, string(testSrc), "func TestZipSamples(t *testing.T)")
			assert.Contains(t, string(testSrc), "regexp.MustCompile")
		})
	}
}

func TestCompilerWithoutTestFile(t *testing.T) {
	tmpDir := t.TempDir()
	c := New(Config{
		Pattern:    "a",
		Name:       "letter",
		OutputFile: filepath.Join(tmpDir, "letter.go"),
		Package:    "fixtures",
		Samples:    []string{"a"},
	})
	require.NoError(t, c.Generate())

	_, err := os.Stat(c.TestFilePath())
	assert.True(t, os.IsNotExist(err))
}

func TestCompilerRejectsRegexpTooLargeForTest(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "wide.go")

	c := New(Config{
		Pattern:          "a*",
		Regexp:           "a{0,2000}",
		Name:             "wide",
		OutputFile:       outputFile,
		Package:          "fixtures",
		Samples:          []string{"aaa"},
		GenerateTestFile: true,
	})
	err := c.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid repeat count")

	_, statErr := os.Stat(outputFile)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(c.TestFilePath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Name: "n", Package: "p", OutputFile: "o.go", Samples: []string{"x"}}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty name", func(c *Config) { c.Name = "" }, true},
		{"empty package", func(c *Config) { c.Package = "" }, true},
		{"empty output", func(c *Config) { c.OutputFile = "" }, true},
		{"no samples", func(c *Config) { c.Samples = nil }, true},
		{"test file without regexp", func(c *Config) { c.GenerateTestFile = true }, true},
		{"test file with regexp", func(c *Config) { c.GenerateTestFile = true; c.Regexp = "x" }, false},
		{"test file with repeat over 1000", func(c *Config) { c.GenerateTestFile = true; c.Regexp = "a{0,2000}" }, true},
		{"repeat over 1000 without test file", func(c *Config) { c.Regexp = "a{0,2000}" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTestFilePath(t *testing.T) {
	c := New(Config{OutputFile: "/tmp/zip_samples.go"})
	assert.Equal(t, "/tmp/zip_samples_test.go", c.TestFilePath())

	c.SetOutputFile("/tmp/other.go")
	assert.Equal(t, "/tmp/other_test.go", c.TestFilePath())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewLogger(false)
	quiet.SetOutput(&buf)
	quiet.Log("hidden %d", 1)
	assert.Empty(t, buf.String())
	assert.False(t, quiet.Enabled())

	loud := NewLogger(true)
	loud.SetOutput(&buf)
	loud.Section("Fixture")
	loud.Log("Samples: %d", 4)
	assert.Contains(t, buf.String(), "Samples: 4")
	assert.Contains(t, buf.String(), `"component":"compiler"`)
}
