package render

import (
	"testing"

	"github.com/agusespa/diff2html/internal/types"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffHighlight(t *testing.T) {
	withStyle := func(style types.DiffStyle) RenderConfig {
		cfg := DefaultRenderConfig()
		cfg.DiffStyle = style
		return cfg
	}
	shortLines := DefaultRenderConfig()
	shortLines.MaxLineLengthHighlight = 3

	tests := []struct {
		name     string
		oldLine  string
		newLine  string
		cfg      RenderConfig
		expected HighlightedLines
	}{
		{
			name:    "word",
			oldLine: "-var a = 1",
			newLine: "+var a = 2",
			cfg:     withStyle(types.StyleWord),
			expected: HighlightedLines{
				OldLine: types.LineParts{Prefix: "-", Content: "var a = <del>1</del>"},
				NewLine: types.LineParts{Prefix: "+", Content: "var a = <ins>2</ins>"},
			},
		},
		{
			name:    "char",
			oldLine: "-abc",
			newLine: "+abd",
			cfg:     withStyle(types.StyleChar),
			expected: HighlightedLines{
				OldLine: types.LineParts{Prefix: "-", Content: "ab<del>c</del>"},
				NewLine: types.LineParts{Prefix: "+", Content: "ab<ins>d</ins>"},
			},
		},
		{
			name:    "escapes markup",
			oldLine: "-<a>",
			newLine: "+<b>",
			cfg:     withStyle(types.StyleWord),
			expected: HighlightedLines{
				OldLine: types.LineParts{Prefix: "-", Content: "&lt;<del>a</del>&gt;"},
				NewLine: types.LineParts{Prefix: "+", Content: "&lt;<ins>b</ins>&gt;"},
			},
		},
		{
			name:    "too long to highlight",
			oldLine: "-a<cdef",
			newLine: "+a<cdeg",
			cfg:     shortLines,
			expected: HighlightedLines{
				OldLine: types.LineParts{Prefix: "-", Content: "a&lt;cdef"},
				NewLine: types.LineParts{Prefix: "+", Content: "a&lt;cdeg"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DiffHighlight(tt.oldLine, tt.newLine, false, tt.cfg))
		})
	}
}

func TestDiffHighlightCombined(t *testing.T) {
	got := DiffHighlight("--x", "++y", true, DefaultRenderConfig())
	assert.Equal(t, "--", got.OldLine.Prefix)
	assert.Equal(t, "++", got.NewLine.Prefix)
	assert.Equal(t, "<del>x</del>", got.OldLine.Content)
	assert.Equal(t, "<ins>y</ins>", got.NewLine.Content)
}

func TestDiffHighlightWordMatching(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Matching = types.MatchWords

	got := DiffHighlight("-const foo", "+const fob", false, cfg)
	assert.Equal(t, `const <del class="d2h-change">foo</del>`, got.OldLine.Content)
	assert.Equal(t, `const <ins class="d2h-change">fob</ins>`, got.NewLine.Content)

	cfg.MatchWordsThreshold = 0.1
	got = DiffHighlight("-const foo", "+const fob", false, cfg)
	assert.Equal(t, "const <del>foo</del>", got.OldLine.Content)
	assert.Equal(t, "const <ins>fob</ins>", got.NewLine.Content)
}

func TestWordDiffRoundTrip(t *testing.T) {
	diffs := wordDiff("hello brave world", "hello new world")
	var oldText, newText string
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldText += d.Text
			newText += d.Text
		case diffmatchpatch.DiffDelete:
			oldText += d.Text
		case diffmatchpatch.DiffInsert:
			newText += d.Text
		}
	}
	assert.Equal(t, "hello brave world", oldText)
	assert.Equal(t, "hello new world", newText)
}

func TestHighlightSyntax(t *testing.T) {
	lexer := lexers.Get("go")
	require.NotNil(t, lexer)

	got := highlightSyntax(lexer, "func main() {}")
	assert.Contains(t, got, `<span class="kd">func</span>`)
	assert.NotContains(t, got, "\n")
	assert.Empty(t, highlightSyntax(lexer, ""))
}

func TestSyntaxLexer(t *testing.T) {
	assert.Equal(t, "Go", syntaxLexer(types.DiffFile{NewName: "main.go"}).Config().Name)
	assert.Equal(t, "Go", syntaxLexer(types.DiffFile{OldName: "main.go", NewName: "/dev/null"}).Config().Name)
	assert.NotNil(t, syntaxLexer(types.DiffFile{NewName: "no-extension"}))
}

func TestSyntaxCSS(t *testing.T) {
	light, err := SyntaxCSS(types.SchemeLight)
	require.NoError(t, err)
	assert.Contains(t, light, ".chroma")
	assert.NotContains(t, light, "@media")

	auto, err := SyntaxCSS(types.SchemeAuto)
	require.NoError(t, err)
	assert.Contains(t, auto, "@media (prefers-color-scheme: dark)")

	dark, err := SyntaxCSS(types.SchemeDark)
	require.NoError(t, err)
	assert.NotEqual(t, light, dark)
}
