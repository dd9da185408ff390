// Package codegen provides code generation helpers and constants.
package codegen

import "fmt"

// Identifier suffixes used in generated fixture files
const (
	PatternSuffix = "Pattern"
	SamplesSuffix = "Samples"
	SampleSuffix  = "Sample"
	RegexpSuffix  = "Regexp"
)

// Variable names used in generated code
const (
	IndexName   = "i"
	SampleName  = "s"
	RegexpName  = "re"
	TestingName = "t"
)

// Identifier joins an exported name with a suffix, e.g. ("zip", "Samples") -> "ZipSamples".
func Identifier(name, suffix string) string {
	return UpperFirst(name) + suffix
}

// TestName returns the name of the generated test for name.
func TestName(name string) string {
	return fmt.Sprintf("Test%s%s", UpperFirst(name), SamplesSuffix)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
