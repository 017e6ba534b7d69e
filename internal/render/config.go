package render

import "github.com/agusespa/diff2html/internal/types"

// RenderConfig holds the options shared by every diff renderer.
type RenderConfig struct {
	Matching               types.LineMatchingType
	MatchWordsThreshold    float64
	MaxLineLengthHighlight int
	DiffStyle              types.DiffStyle
	ColorScheme            types.ColorScheme
	// HighlightCode enables server-side syntax highlighting of unchanged and unpaired lines.
	HighlightCode bool
}

// DefaultRenderConfig returns the library defaults.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Matching:               types.MatchNone,
		MatchWordsThreshold:    0.25,
		MaxLineLengthHighlight: 10000,
		DiffStyle:              types.StyleWord,
		ColorScheme:            types.SchemeLight,
	}
}

// RendererConfig configures the line-by-line and side-by-side renderers.
type RendererConfig struct {
	RenderConfig
	RenderNothingWhenEmpty          bool
	MatchingMaxComparisons          int
	MaxLineSizeInBlockForComparison int
}

// DefaultRendererConfig returns the library defaults.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		RenderConfig:                    DefaultRenderConfig(),
		MatchingMaxComparisons:          2500,
		MaxLineSizeInBlockForComparison: 200,
	}
}

// FileListConfig configures the file summary renderer.
type FileListConfig struct {
	ColorScheme types.ColorScheme
}

// DefaultFileListConfig returns the library defaults.
func DefaultFileListConfig() FileListConfig {
	return FileListConfig{ColorScheme: types.SchemeLight}
}
