package render

import (
	"strings"

	"github.com/agusespa/diff2html/internal/types"
)

const (
	lineByLineNumberClass  = "d2h-code-linenumber"
	lineByLineContentClass = "d2h-code-line"
)

// LineByLineRenderer renders each file as a single column of rows, old
// lines above their replacements.
type LineByLineRenderer struct {
	config RendererConfig
}

func NewLineByLineRenderer(cfg RendererConfig) *LineByLineRenderer {
	return &LineByLineRenderer{config: cfg}
}

// Render returns the wrapped HTML of every file, joined by newlines.
func (r *LineByLineRenderer) Render(files []types.DiffFile) string {
	rendered := make([]string, 0, len(files))
	for _, file := range files {
		rendered = append(rendered, r.renderFile(file))
	}

	return renderTemplate("generic-wrapper", wrapperData{
		ColorScheme: ColorSchemeClass(r.config.ColorScheme),
		Highlight:   r.config.HighlightCode,
		Content:     strings.Join(rendered, "\n"),
	})
}

func (r *LineByLineRenderer) renderFile(file types.DiffFile) string {
	if len(file.Blocks) == 0 && r.config.RenderNothingWhenEmpty {
		return ""
	}

	fc := newFileContext(file, r.config.RenderConfig)
	var diffs string
	if len(file.Blocks) > 0 {
		diffs = r.renderBlocks(fc)
	} else {
		diffs = renderTemplate("generic-empty-diff", emptyDiffData{
			InfoClass:    string(ClassInfo),
			ContentClass: lineByLineContentClass,
		})
	}

	return renderTemplate("line-by-line-file-diff", fileDiffData{
		FileHTMLID: HTMLID(file),
		Language:   EscapeForHTML(file.Language),
		FilePath:   fc.filePath(),
		Diffs:      diffs,
	})
}

// renderBlocks renders every block of the file, one block per line.
func (r *LineByLineRenderer) renderBlocks(fc fileContext) string {
	blocks := make([]string, 0, len(fc.file.Blocks))
	for _, block := range fc.file.Blocks {
		var b strings.Builder
		b.WriteString(renderTemplate("generic-block-header", blockHeaderData{
			LineClass:    lineByLineNumberClass,
			InfoClass:    string(ClassInfo),
			ContentClass: lineByLineContentClass,
			BlockHeader:  fc.blockHeader(block.Header),
		}))

		r.config.walkBlock(block, fc.file.IsCombined,
			func(line types.DiffLine) {
				b.WriteString(r.renderLine(fc.contextLine(line)))
			},
			func(oldLines, newLines []types.DiffLine) {
				olds, news := fc.changedLines(oldLines, newLines)
				for _, side := range [][]*preparedLine{olds, news} {
					for _, line := range side {
						if line != nil {
							b.WriteString(r.renderLine(*line))
						}
					}
				}
			},
		)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

func (r *LineByLineRenderer) renderLine(line preparedLine) string {
	numbers := renderTemplate("line-by-line-numbers", lineNumbersData{
		OldNumber: formatNumber(line.OldNumber),
		NewNumber: formatNumber(line.NewNumber),
	})
	return renderTemplate("generic-line", lineData{
		LineClass:    lineByLineNumberClass,
		Type:         string(line.Type),
		LineNumber:   numbers,
		ContentClass: lineByLineContentClass,
		Prefix:       displayPrefix(line.Prefix),
		Content:      line.Content,
	})
}
