package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/rexgen/pkg/rexgen"
)

func TestArrayFlagsString(t *testing.T) {
	tests := []struct {
		name     string
		flags    arrayFlags
		expected string
	}{
		{
			name:     "empty",
			flags:    arrayFlags{},
			expected: "",
		},
		{
			name:     "single",
			flags:    arrayFlags{`\d{3}`},
			expected: `\d{3}`,
		},
		{
			name:     "multiple",
			flags:    arrayFlags{`\d{3}`, "[a-z]+", "/cat|dog/"},
			expected: `\d{3}, [a-z]+, /cat|dog/`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.flags.String())
		})
	}
}

func TestArrayFlagsSet(t *testing.T) {
	var flags arrayFlags

	require.NoError(t, flags.Set(`\d{3}`))
	assert.Equal(t, arrayFlags{`\d{3}`}, flags)

	require.NoError(t, flags.Set("[a-z]+"))
	assert.Equal(t, arrayFlags{`\d{3}`, "[a-z]+"}, flags)
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunPrintsSamples(t *testing.T) {
	out, _, err := runCLI(t, "", "-re", "abc", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "abc\nabc\nabc\n", out)
}

func TestRunPositionalPatterns(t *testing.T) {
	out, _, err := runCLI(t, "", "-n", "2", "-delimiter", ",", "x", "/y{2}/")
	require.NoError(t, err)
	assert.Equal(t, "x,x,yy,yy,", out)
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	first, _, err := runCLI(t, "", "-re", `[a-z]{6}\d`, "-n", "10", "-seed", "77", "-verify")
	require.NoError(t, err)
	second, _, err := runCLI(t, "", "-re", `[a-z]{6}\d`, "-n", "10", "-seed", "77")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	p := rexgen.MustCompile(`[a-z]{6}\d`, 0)
	lines := strings.Split(strings.TrimSuffix(first, "\n"), "\n")
	require.Len(t, lines, 10)
	for i, line := range lines {
		assert.Equal(t, p.Sample(77, i), line)
	}
}

func TestRunInvalidPattern(t *testing.T) {
	out, logs, err := runCLI(t, "", "-re", "a{5,2}")
	require.Error(t, err)
	assert.ErrorIs(t, err, rexgen.ErrInvalidQuantifier)
	assert.Empty(t, out)
	assert.Contains(t, logs, "invalid pattern")
}

func TestRunRequiresPattern(t *testing.T) {
	_, _, err := runCLI(t, "")
	assert.ErrorIs(t, err, errNoPattern)
}

func TestRunRejectsBadFlags(t *testing.T) {
	_, _, err := runCLI(t, "", "-re", "a", "-ceiling", "-4")
	assert.Error(t, err)

	_, _, err = runCLI(t, "", "-re", "a", "-re", "b", "-out", "x.go")
	assert.Error(t, err)
}

func TestRunWritesFixture(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "zip_samples.go")

	_, _, err := runCLI(t, "",
		"-re", `\d{5}`,
		"-n", "4",
		"-seed", "3",
		"-out", output,
		"-name", "zip",
		"-package", "fixtures",
		"-test",
		"-verify",
	)
	require.NoError(t, err)

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	content := string(src)
	assert.Contains(t, content, "package fixtures")
	assert.Contains(t, content, "ZipSamples")
	assert.Contains(t, content, "func ZipSample(i int) string")

	p := rexgen.MustCompile(`\d{5}`, 0)
	for i := range 4 {
		assert.Contains(t, content, `"`+p.Sample(3, i)+`"`)
	}

	test, err := os.ReadFile(filepath.Join(dir, "zip_samples_test.go"))
	require.NoError(t, err)
	assert.Contains(t, string(test), "func TestZipSamples(t *testing.T)")
}

func TestRunInteractive(t *testing.T) {
	out, _, err := runCLI(t, "abc\n(\n", "-i")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, prompt))
	assert.Contains(t, out, "The result is: abc\n")
	assert.Contains(t, out, "Error: ")
}

func TestRunVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "-version")
	require.NoError(t, err)
	assert.Equal(t, "rexgen "+version+"\n", out)
}

func TestRunZeroCountPrintsNothing(t *testing.T) {
	out, _, err := runCLI(t, "", "-re", "abc", "-n", "0")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunHugeRepeatBound(t *testing.T) {
	_, _, err := runCLI(t, "", "-re", "a{0,9223372036854775807}")
	assert.ErrorIs(t, err, rexgen.ErrInvalidQuantifier)
}

func TestRunFixtureTestNeedsCompilableRegexp(t *testing.T) {
	output := filepath.Join(t.TempDir(), "wide.go")
	_, _, err := runCLI(t, "", "-re", "a*", "-ceiling", "2000", "-n", "2", "-out", output, "-name", "wide", "-test")
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}
