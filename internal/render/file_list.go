package render

import (
	"strconv"
	"strings"

	"github.com/agusespa/diff2html/internal/types"
)

// FileListRenderer renders the "Files changed" summary with one anchor per
// file.
type FileListRenderer struct {
	config FileListConfig
}

func NewFileListRenderer(cfg FileListConfig) *FileListRenderer {
	return &FileListRenderer{config: cfg}
}

func (r *FileListRenderer) Render(files []types.DiffFile) string {
	lines := make([]string, 0, len(files))
	for _, file := range files {
		lines = append(lines, renderTemplate("file-summary-line", fileSummaryLineData{
			FileIcon:     renderTemplate("icon-"+FileIcon(file), nil),
			FileHTMLID:   HTMLID(file),
			FileName:     EscapeForHTML(FilenameDiff(file)),
			AddedLines:   "+" + strconv.Itoa(file.AddedLines),
			DeletedLines: "-" + strconv.Itoa(file.DeletedLines),
		}))
	}

	return renderTemplate("file-summary-wrapper", fileSummaryWrapperData{
		ColorScheme: ColorSchemeClass(r.config.ColorScheme),
		FilesNumber: len(files),
		Files:       strings.Join(lines, "\n"),
	})
}
