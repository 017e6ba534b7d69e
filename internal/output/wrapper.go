// Package output wraps rendered diffs into pages and delivers them.
package output

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/agusespa/diff2html/internal/render"
	"github.com/agusespa/diff2html/internal/types"
)

//go:embed wrapper.html
var defaultWrapper string

const diff2htmlUIScript = `<script src="https://cdnjs.cloudflare.com/ajax/libs/diff2html/3.4.48/diff2html-ui.min.js"></script>`

const lightBaseStyle = `<style>
body {
  background-color: var(--d2h-bg-color);
}
h1 {
  color: var(--d2h-light-color);
}
</style>`

const darkBaseStyle = `<style>
body {
  background-color: rgb(13, 17, 23);
}
h1 {
  color: var(--d2h-dark-color);
}
</style>`

const autoBaseStyle = `<style>
@media screen and (prefers-color-scheme: light) {
  body {
    background-color: var(--d2h-bg-color);
  }
  h1 {
    color: var(--d2h-light-color);
  }
}
@media screen and (prefers-color-scheme: dark) {
  body {
    background-color: rgb(13, 17, 23);
  }
  h1 {
    color: var(--d2h-dark-color);
  }
}
</style>`

// PageOptions controls the page around the rendered diff.
type PageOptions struct {
	Title  string
	Header string
	// WrapperTemplate is the path of a custom page template. Empty uses the
	// built-in one.
	WrapperTemplate    string
	ColorScheme        types.ColorScheme
	FileListOpen       bool
	FileContentToggle  bool
	SynchronisedScroll bool
	HighlightCode      bool
}

// PrepareHTML fills the page template placeholders with the diff markup,
// stylesheets and UI script calls.
func PrepareHTML(diffHTML string, opts PageOptions) (string, error) {
	page, err := loadWrapper(opts.WrapperTemplate)
	if err != nil {
		return "", err
	}

	css, err := pageCSS(opts)
	if err != nil {
		return "", err
	}

	var fileContentToggle, synchronisedScroll string
	if opts.FileContentToggle {
		fileContentToggle = "diff2htmlUi.fileContentToggle();"
	}
	if opts.SynchronisedScroll {
		synchronisedScroll = "diff2htmlUi.synchronisedScroll();"
	}

	replacer := strings.NewReplacer(
		"<!--diff2html-title-->", render.EscapeForHTML(opts.Title),
		"<!--diff2html-css-->", css,
		"<!--diff2html-js-ui-->", diff2htmlUIScript,
		"//diff2html-fileListToggle", fmt.Sprintf("diff2htmlUi.fileListToggle(%t);", opts.FileListOpen),
		"//diff2html-fileContentToggle", fileContentToggle,
		"//diff2html-synchronisedScroll", synchronisedScroll,
		// Highlighting happens while rendering, the UI has nothing to do.
		"//diff2html-highlightCode", "",
		"<!--diff2html-header-->", render.EscapeForHTML(opts.Header),
		"<!--diff2html-diff-->", diffHTML,
	)
	return replacer.Replace(page), nil
}

func loadWrapper(path string) (string, error) {
	if path == "" {
		return defaultWrapper, nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("template ('%s') not found", path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(content), nil
}

func pageCSS(opts PageOptions) (string, error) {
	var b strings.Builder
	switch opts.ColorScheme {
	case types.SchemeDark:
		b.WriteString(darkBaseStyle)
	case types.SchemeLight:
		b.WriteString(lightBaseStyle)
	default:
		b.WriteString(autoBaseStyle)
	}

	b.WriteString("\n<style>\n")
	b.WriteString(render.CSS)
	b.WriteString("\n</style>")

	if opts.HighlightCode {
		syntax, err := render.SyntaxCSS(opts.ColorScheme)
		if err != nil {
			return "", err
		}
		b.WriteString("\n<style>\n")
		b.WriteString(syntax)
		b.WriteString("</style>")
	}
	return b.String(), nil
}
