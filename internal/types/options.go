package types

import "fmt"

// OutputFormat selects the HTML layout.
type OutputFormat string

const (
	LineByLine OutputFormat = "line-by-line"
	SideBySide OutputFormat = "side-by-side"
)

// ParseOutputFormat validates s as an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case LineByLine, SideBySide:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected line-by-line or side-by-side)", s)
}

// LineMatchingType selects how changed lines are paired for inline highlighting.
type LineMatchingType string

const (
	MatchLines LineMatchingType = "lines"
	MatchWords LineMatchingType = "words"
	MatchNone  LineMatchingType = "none"
)

// ParseLineMatchingType validates s as a LineMatchingType.
func ParseLineMatchingType(s string) (LineMatchingType, error) {
	switch m := LineMatchingType(s); m {
	case MatchLines, MatchWords, MatchNone:
		return m, nil
	}
	return "", fmt.Errorf("unknown matching type %q (expected lines, words or none)", s)
}

// DiffStyle selects the granularity of inline highlighting.
type DiffStyle string

const (
	StyleWord DiffStyle = "word"
	StyleChar DiffStyle = "char"
)

// ParseDiffStyle validates s as a DiffStyle.
func ParseDiffStyle(s string) (DiffStyle, error) {
	switch d := DiffStyle(s); d {
	case StyleWord, StyleChar:
		return d, nil
	}
	return "", fmt.Errorf("unknown diff style %q (expected word or char)", s)
}

// ColorScheme selects the palette of the rendered page.
type ColorScheme string

const (
	SchemeAuto  ColorScheme = "auto"
	SchemeDark  ColorScheme = "dark"
	SchemeLight ColorScheme = "light"
)

// ParseColorScheme validates s as a ColorScheme.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch c := ColorScheme(s); c {
	case SchemeAuto, SchemeDark, SchemeLight:
		return c, nil
	}
	return "", fmt.Errorf("unknown color scheme %q (expected auto, dark or light)", s)
}
