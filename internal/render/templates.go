package render

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// CSS is the stylesheet for every class the renderers emit.
//
//go:embed css/diff2html.css
var CSS string

const templateSuffix = ".tmpl"

var loadTemplates = sync.OnceValue(func() *template.Template {
	tmpl, err := template.New("diff2html").ParseFS(templateFS, "templates/*"+templateSuffix)
	if err != nil {
		panic(fmt.Sprintf("BUG: failed to parse embedded templates: %v", err))
	}
	return tmpl
})

// renderTemplate executes the named template. Values are inserted as is,
// so callers escape user content through EscapeForHTML first.
func renderTemplate(name string, data any) string {
	tmpl := loadTemplates().Lookup(name + templateSuffix)
	if tmpl == nil {
		panic(fmt.Sprintf("BUG: template %s not found", name))
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		panic(fmt.Sprintf("BUG: failed to execute template %s: %v", name, err))
	}
	return b.String()
}

type wrapperData struct {
	ColorScheme string
	Highlight   bool
	Content     string
}

type fileDiffData struct {
	FileHTMLID string
	Language   string
	FilePath   string
	Diffs      string
	Left       string
	Right      string
}

type filePathData struct {
	FileIcon     string
	FileDiffName string
	FileTag      string
}

type lineData struct {
	LineClass    string
	Type         string
	LineNumber   string
	ContentClass string
	Prefix       string
	Content      string
}

type lineNumbersData struct {
	OldNumber string
	NewNumber string
}

type blockHeaderData struct {
	LineClass    string
	InfoClass    string
	ContentClass string
	BlockHeader  string
}

type emptyDiffData struct {
	InfoClass    string
	ContentClass string
}

type fileSummaryWrapperData struct {
	ColorScheme string
	FilesNumber int
	Files       string
}

type fileSummaryLineData struct {
	FileIcon     string
	FileHTMLID   string
	FileName     string
	AddedLines   string
	DeletedLines string
}
