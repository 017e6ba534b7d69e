package render

import (
	"strings"

	"github.com/agusespa/diff2html/internal/types"
)

const (
	sideNumberClass      = "d2h-code-side-linenumber"
	sideContentClass     = "d2h-code-side-line"
	emptyPlaceholder     = "d2h-emptyplaceholder"
	sideEmptyPlaceholder = "d2h-code-side-emptyplaceholder"
)

// SideBySideRenderer renders each file as two aligned tables, old on the
// left and new on the right.
type SideBySideRenderer struct {
	config RendererConfig
}

func NewSideBySideRenderer(cfg RendererConfig) *SideBySideRenderer {
	return &SideBySideRenderer{config: cfg}
}

// Render returns the wrapped HTML of every file, joined by newlines.
func (r *SideBySideRenderer) Render(files []types.DiffFile) string {
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

func (r *SideBySideRenderer) renderFile(file types.DiffFile) string {
	if len(file.Blocks) == 0 && r.config.RenderNothingWhenEmpty {
		return ""
	}

	fc := newFileContext(file, r.config.RenderConfig)
	var left, right string
	if len(file.Blocks) > 0 {
		left, right = r.renderBlocks(fc)
	} else {
		left = renderTemplate("generic-empty-diff", emptyDiffData{
			InfoClass:    string(ClassInfo),
			ContentClass: sideContentClass,
		})
	}

	return renderTemplate("side-by-side-file-diff", fileDiffData{
		FileHTMLID: HTMLID(file),
		Language:   EscapeForHTML(file.Language),
		FilePath:   fc.filePath(),
		Left:       left,
		Right:      right,
	})
}

func (r *SideBySideRenderer) renderBlocks(fc fileContext) (string, string) {
	var left, right strings.Builder
	for _, block := range fc.file.Blocks {
		left.WriteString(r.renderHeader(fc.blockHeader(block.Header)))
		right.WriteString(r.renderHeader(""))

		r.config.walkBlock(block, fc.file.IsCombined,
			func(line types.DiffLine) {
				ctx := fc.contextLine(line)
				left.WriteString(r.renderLine(&ctx, ctx.OldNumber))
				right.WriteString(r.renderLine(&ctx, ctx.NewNumber))
			},
			func(oldLines, newLines []types.DiffLine) {
				olds, news := fc.changedLines(oldLines, newLines)
				for i := range olds {
					left.WriteString(r.renderLine(olds[i], oldNumber(olds[i])))
					right.WriteString(r.renderLine(news[i], newNumber(news[i])))
				}
			},
		)
	}
	return left.String(), right.String()
}

func (r *SideBySideRenderer) renderHeader(header string) string {
	return renderTemplate("generic-block-header", blockHeaderData{
		LineClass:    sideNumberClass,
		InfoClass:    string(ClassInfo),
		ContentClass: sideContentClass,
		BlockHeader:  header,
	})
}

// renderLine renders one side of a row. A nil line becomes an empty
// placeholder keeping both tables aligned.
func (r *SideBySideRenderer) renderLine(line *preparedLine, number *int) string {
	if line == nil {
		return renderTemplate("generic-line", lineData{
			LineClass:    sideNumberClass + " " + sideEmptyPlaceholder,
			Type:         string(ClassContext) + " " + emptyPlaceholder,
			ContentClass: sideContentClass + " " + sideEmptyPlaceholder,
		})
	}
	return renderTemplate("generic-line", lineData{
		LineClass:    sideNumberClass,
		Type:         string(line.Type),
		LineNumber:   formatNumber(number),
		ContentClass: sideContentClass,
		Prefix:       displayPrefix(line.Prefix),
		Content:      line.Content,
	})
}

func oldNumber(line *preparedLine) *int {
	if line == nil {
		return nil
	}
	return line.OldNumber
}

func newNumber(line *preparedLine) *int {
	if line == nil {
		return nil
	}
	return line.NewNumber
}
