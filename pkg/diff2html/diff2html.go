// Package diff2html parses unified and combined diffs and renders them as
// HTML or JSON.
//
//	files := diff2html.Parse(diffText, diff2html.DefaultConfig())
//	page := diff2html.HTMLFromFiles(files, diff2html.DefaultConfig())
package diff2html

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/agusespa/diff2html/internal/parser"
	"github.com/agusespa/diff2html/internal/render"
	"github.com/agusespa/diff2html/internal/types"
)

type (
	DiffFile         = types.DiffFile
	DiffBlock        = types.DiffBlock
	DiffLine         = types.DiffLine
	LineType         = types.LineType
	FileMode         = types.FileMode
	Checksum         = types.Checksum
	OutputFormat     = types.OutputFormat
	LineMatchingType = types.LineMatchingType
	DiffStyle        = types.DiffStyle
	ColorScheme      = types.ColorScheme
)

const (
	LineByLine = types.LineByLine
	SideBySide = types.SideBySide

	MatchLines = types.MatchLines
	MatchWords = types.MatchWords
	MatchNone  = types.MatchNone

	StyleWord = types.StyleWord
	StyleChar = types.StyleChar

	SchemeAuto  = types.SchemeAuto
	SchemeDark  = types.SchemeDark
	SchemeLight = types.SchemeLight
)

// Config gathers parser and renderer options.
type Config struct {
	// SrcPrefix and DstPrefix are stripped from file names in addition to
	// the usual a/, b/, i/, w/, c/ and o/ prefixes.
	SrcPrefix string
	DstPrefix string
	// DiffMaxChanges and DiffMaxLineLength mark a file too big to render.
	// Zero disables the limit.
	DiffMaxChanges    int
	DiffMaxLineLength int
	DiffTooBigMessage func(fileIndex int) string

	OutputFormat                    OutputFormat
	DrawFileList                    bool
	DiffStyle                       DiffStyle
	ColorScheme                     ColorScheme
	Matching                        LineMatchingType
	MatchWordsThreshold             float64
	MaxLineLengthHighlight          int
	RenderNothingWhenEmpty          bool
	MatchingMaxComparisons          int
	MaxLineSizeInBlockForComparison int
	HighlightCode                   bool

	Logger *slog.Logger
}

func DefaultConfig() Config {
	renderer := render.DefaultRendererConfig()
	return Config{
		OutputFormat:                    LineByLine,
		DrawFileList:                    true,
		DiffStyle:                       renderer.DiffStyle,
		ColorScheme:                     renderer.ColorScheme,
		Matching:                        renderer.Matching,
		MatchWordsThreshold:             renderer.MatchWordsThreshold,
		MaxLineLengthHighlight:          renderer.MaxLineLengthHighlight,
		MatchingMaxComparisons:          renderer.MatchingMaxComparisons,
		MaxLineSizeInBlockForComparison: renderer.MaxLineSizeInBlockForComparison,
	}
}

func (c Config) parserConfig() parser.Config {
	return parser.Config{
		SrcPrefix:         c.SrcPrefix,
		DstPrefix:         c.DstPrefix,
		DiffMaxChanges:    c.DiffMaxChanges,
		DiffMaxLineLength: c.DiffMaxLineLength,
		DiffTooBigMessage: c.DiffTooBigMessage,
		Logger:            c.Logger,
	}
}

func (c Config) rendererConfig() render.RendererConfig {
	return render.RendererConfig{
		RenderConfig: render.RenderConfig{
			Matching:               c.Matching,
			MatchWordsThreshold:    c.MatchWordsThreshold,
			MaxLineLengthHighlight: c.MaxLineLengthHighlight,
			DiffStyle:              c.DiffStyle,
			ColorScheme:            c.ColorScheme,
			HighlightCode:          c.HighlightCode,
		},
		RenderNothingWhenEmpty:          c.RenderNothingWhenEmpty,
		MatchingMaxComparisons:          c.MatchingMaxComparisons,
		MaxLineSizeInBlockForComparison: c.MaxLineSizeInBlockForComparison,
	}
}

// Parse splits diff text into files. The result is never nil.
func Parse(input string, cfg Config) []DiffFile {
	return parser.Parse(input, cfg.parserConfig())
}

// HTML parses input and renders it.
func HTML(input string, cfg Config) string {
	return HTMLFromFiles(Parse(input, cfg), cfg)
}

// HTMLFromFiles renders parsed files: the file list (when DrawFileList is
// set) followed by the diffs in the configured layout.
func HTMLFromFiles(files []DiffFile, cfg Config) string {
	var fileList string
	if cfg.DrawFileList {
		fileList = render.NewFileListRenderer(render.FileListConfig{ColorScheme: cfg.ColorScheme}).Render(files)
	}

	var diffs string
	switch cfg.OutputFormat {
	case SideBySide:
		diffs = render.NewSideBySideRenderer(cfg.rendererConfig()).Render(files)
	default:
		diffs = render.NewLineByLineRenderer(cfg.rendererConfig()).Render(files)
	}

	return fileList + diffs
}

// JSON parses input and serializes the files.
func JSON(input string, cfg Config) (string, error) {
	return JSONFromFiles(Parse(input, cfg))
}

func JSONFromFiles(files []DiffFile) (string, error) {
	return encodeJSON(files, "")
}

// JSONFromFilesPretty is JSONFromFiles indented by two spaces.
func JSONFromFilesPretty(files []DiffFile) (string, error) {
	return encodeJSON(files, "  ")
}

func encodeJSON(files []DiffFile, indent string) (string, error) {
	if files == nil {
		files = []DiffFile{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(files); err != nil {
		return "", fmt.Errorf("failed to serialize diff files: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
