package render

import (
	"fmt"
	"strings"

	"github.com/agusespa/diff2html/internal/types"
	"github.com/agusespa/diff2html/internal/utils"
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	lightSyntaxStyle = "github"
	darkSyntaxStyle  = "github-dark"
)

var syntaxFormatter = chromahtml.New(
	chromahtml.WithClasses(true),
	chromahtml.PreventSurroundingPre(true),
)

// syntaxLexer picks a lexer from the file name first, then from the
// detected language, falling back to plain text.
func syntaxLexer(file types.DiffFile) chroma.Lexer {
	name := file.NewName
	if isDevNull(name) || name == "" {
		name = file.OldName
	}

	lexer := lexers.Match(name)
	if lexer == nil {
		if lang := utils.DetectLanguageFromFilePath(name); lang != "" {
			lexer = lexers.Get(lang)
		}
	}
	if lexer == nil && file.Language != "" {
		lexer = lexers.Get(file.Language)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// highlightSyntax returns content as chroma class-annotated HTML. On any
// tokenizer or formatter error it falls back to plain escaping.
func highlightSyntax(lexer chroma.Lexer, content string) string {
	if content == "" {
		return ""
	}
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return EscapeForHTML(content)
	}

	tokens := iterator.Tokens()
	if n := len(tokens); n > 0 && !strings.HasSuffix(content, "\n") {
		tokens[n-1].Value = strings.TrimSuffix(tokens[n-1].Value, "\n")
	}

	var b strings.Builder
	style := styles.Get(lightSyntaxStyle)
	if err := syntaxFormatter.Format(&b, style, chroma.Literator(tokens...)); err != nil {
		return EscapeForHTML(content)
	}
	return b.String()
}

// SyntaxCSS returns the stylesheet for highlighted code in the given scheme.
// Rules are scoped under the "chroma" class set on the diff wrapper.
func SyntaxCSS(scheme types.ColorScheme) (string, error) {
	var b strings.Builder
	switch scheme {
	case types.SchemeDark:
		if err := syntaxFormatter.WriteCSS(&b, styles.Get(darkSyntaxStyle)); err != nil {
			return "", fmt.Errorf("failed to write syntax css: %w", err)
		}
	case types.SchemeAuto:
		if err := syntaxFormatter.WriteCSS(&b, styles.Get(lightSyntaxStyle)); err != nil {
			return "", fmt.Errorf("failed to write syntax css: %w", err)
		}
		b.WriteString("@media (prefers-color-scheme: dark) {\n")
		if err := syntaxFormatter.WriteCSS(&b, styles.Get(darkSyntaxStyle)); err != nil {
			return "", fmt.Errorf("failed to write syntax css: %w", err)
		}
		b.WriteString("}\n")
	default:
		if err := syntaxFormatter.WriteCSS(&b, styles.Get(lightSyntaxStyle)); err != nil {
			return "", fmt.Errorf("failed to write syntax css: %w", err)
		}
	}
	return b.String(), nil
}
