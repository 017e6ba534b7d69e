package render

import (
	"strconv"

	"github.com/agusespa/diff2html/internal/rematch"
	"github.com/agusespa/diff2html/internal/types"
	"github.com/alecthomas/chroma/v2"
)

// lineGroup is either a single context line or a run of deleted lines
// followed by the inserted lines that replace them.
type lineGroup struct {
	context  []types.DiffLine
	oldLines []types.DiffLine
	newLines []types.DiffLine
}

func groupBlockLines(lines []types.DiffLine) []lineGroup {
	var groups []lineGroup
	var oldLines, newLines []types.DiffLine

	flush := func() {
		if len(oldLines) > 0 || len(newLines) > 0 {
			groups = append(groups, lineGroup{oldLines: oldLines, newLines: newLines})
			oldLines, newLines = nil, nil
		}
	}

	for _, line := range lines {
		if (line.Type != types.LineInsert && len(newLines) > 0) ||
			(line.Type == types.LineContext && len(oldLines) > 0) {
			flush()
		}

		switch {
		case line.Type == types.LineContext:
			groups = append(groups, lineGroup{context: []types.DiffLine{line}})
		case line.Type == types.LineInsert && len(oldLines) == 0:
			groups = append(groups, lineGroup{newLines: []types.DiffLine{line}})
		case line.Type == types.LineInsert:
			newLines = append(newLines, line)
		default:
			oldLines = append(oldLines, line)
		}
	}
	flush()
	return groups
}

// matchChangedLines aligns a delete run with the following insert run. With
// matching disabled, or past the configured bounds, it returns one group.
func (cfg RendererConfig) matchChangedLines(oldLines, newLines []types.DiffLine, isCombined bool) []rematch.Group[types.DiffLine] {
	if cfg.Matching != types.MatchLines && cfg.Matching != types.MatchWords {
		return []rematch.Group[types.DiffLine]{{Old: oldLines, New: newLines}}
	}

	content := func(l types.DiffLine) string {
		return DeconstructLine(l.Content, isCombined, false).Content
	}
	return rematch.MatchWithConfig(oldLines, newLines, rematch.NewDistanceFunc(content), rematch.MatchConfig{
		MaxComparisons: cfg.MatchingMaxComparisons,
		MaxLineSize:    cfg.MaxLineSizeInBlockForComparison,
	}, content)
}

// walkBlock visits the lines of a block in order: every context line through
// onContext, every aligned run of changes through onChanged.
func (cfg RendererConfig) walkBlock(block types.DiffBlock, isCombined bool, onContext func(types.DiffLine), onChanged func(oldLines, newLines []types.DiffLine)) {
	for _, g := range groupBlockLines(block.Lines) {
		switch {
		case len(g.context) > 0:
			for _, line := range g.context {
				onContext(line)
			}
		case len(g.oldLines) > 0 && len(g.newLines) > 0:
			for _, m := range cfg.matchChangedLines(g.oldLines, g.newLines, isCombined) {
				onChanged(m.Old, m.New)
			}
		default:
			onChanged(g.oldLines, g.newLines)
		}
	}
}

// preparedLine is a diff line ready for the line template: classes chosen,
// content escaped or highlighted.
type preparedLine struct {
	Type      CSSLineClass
	Prefix    string
	Content   string
	OldNumber *int
	NewNumber *int
}

// fileContext carries the per-file state of a render pass.
type fileContext struct {
	file   types.DiffFile
	config RenderConfig
	// lexer is nil when syntax highlighting is off.
	lexer chroma.Lexer
}

func newFileContext(file types.DiffFile, cfg RenderConfig) fileContext {
	fc := fileContext{file: file, config: cfg}
	if cfg.HighlightCode {
		fc.lexer = syntaxLexer(file)
	}
	return fc
}

// content renders unpaired line content, syntax highlighted when enabled.
func (fc fileContext) content(raw string) string {
	if fc.lexer != nil && len(raw) <= fc.config.MaxLineLengthHighlight {
		return highlightSyntax(fc.lexer, raw)
	}
	return EscapeForHTML(raw)
}

func (fc fileContext) contextLine(line types.DiffLine) preparedLine {
	parts := DeconstructLine(line.Content, fc.file.IsCombined, false)
	return preparedLine{
		Type:      ClassContext,
		Prefix:    parts.Prefix,
		Content:   fc.content(parts.Content),
		OldNumber: line.OldNumber,
		NewNumber: line.NewNumber,
	}
}

// changedLines pairs old and new lines by index. Lines present on both
// sides get inline highlighting. A side is nil when the line is missing or
// has no number on that side.
func (fc fileContext) changedLines(oldLines, newLines []types.DiffLine) (olds, news []*preparedLine) {
	n := max(len(oldLines), len(newLines))
	olds = make([]*preparedLine, n)
	news = make([]*preparedLine, n)

	for i := range n {
		var oldLine, newLine *types.DiffLine
		if i < len(oldLines) {
			oldLine = &oldLines[i]
		}
		if i < len(newLines) {
			newLine = &newLines[i]
		}

		var diff *HighlightedLines
		if oldLine != nil && newLine != nil {
			h := DiffHighlight(oldLine.Content, newLine.Content, fc.file.IsCombined, fc.config)
			diff = &h
		}

		if oldLine != nil && oldLine.OldNumber != nil {
			olds[i] = fc.changedLine(*oldLine, diff, true)
		}
		if newLine != nil && newLine.NewNumber != nil {
			news[i] = fc.changedLine(*newLine, diff, false)
		}
	}
	return olds, news
}

func (fc fileContext) changedLine(line types.DiffLine, diff *HighlightedLines, old bool) *preparedLine {
	p := &preparedLine{OldNumber: line.OldNumber, NewNumber: line.NewNumber}
	switch {
	case diff != nil && old:
		p.Type, p.Prefix, p.Content = ClassDeleteChanges, diff.OldLine.Prefix, diff.OldLine.Content
	case diff != nil:
		p.Type, p.Prefix, p.Content = ClassInsertChanges, diff.NewLine.Prefix, diff.NewLine.Content
	default:
		parts := DeconstructLine(line.Content, fc.file.IsCombined, false)
		p.Type, p.Prefix, p.Content = LineClass(line.Type), parts.Prefix, fc.content(parts.Content)
	}
	return p
}

// blockHeader escapes the header unless it is the too-big notice, which
// is already markup.
func (fc fileContext) blockHeader(header string) string {
	if fc.file.IsTooBig {
		return header
	}
	return EscapeForHTML(header)
}

// filePath renders the file header: generic icon, name and status tag.
func (fc fileContext) filePath() string {
	return renderTemplate("generic-file-path", filePathData{
		FileIcon:     renderTemplate("icon-file", nil),
		FileDiffName: EscapeForHTML(FilenameDiff(fc.file)),
		FileTag:      renderTemplate("tag-"+FileIcon(fc.file), nil),
	})
}

func displayPrefix(prefix string) string {
	if prefix == " " {
		return "&nbsp;"
	}
	return prefix
}

func formatNumber(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
