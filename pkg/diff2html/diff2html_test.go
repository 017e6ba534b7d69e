package diff2html

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleDiff = `diff --git a/test.txt b/test.txt
--- a/test.txt
+++ b/test.txt
@@ -1 +1 @@
-old line
+new line
`

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LineByLine, cfg.OutputFormat)
	assert.True(t, cfg.DrawFileList)
	assert.Equal(t, StyleWord, cfg.DiffStyle)
	assert.Equal(t, SchemeLight, cfg.ColorScheme)
	assert.Equal(t, MatchNone, cfg.Matching)
	assert.Equal(t, 0.25, cfg.MatchWordsThreshold)
	assert.Equal(t, 10000, cfg.MaxLineLengthHighlight)
	assert.Equal(t, 2500, cfg.MatchingMaxComparisons)
	assert.Equal(t, 200, cfg.MaxLineSizeInBlockForComparison)
	assert.False(t, cfg.RenderNothingWhenEmpty)
	assert.False(t, cfg.HighlightCode)
}

func TestParse(t *testing.T) {
	files := Parse(simpleDiff, DefaultConfig())
	require.Len(t, files, 1)
	assert.Equal(t, "test.txt", files[0].NewName)
	assert.Equal(t, 1, files[0].AddedLines)
	assert.Equal(t, 1, files[0].DeletedLines)

	assert.NotNil(t, Parse("", DefaultConfig()))
}

func TestHTML(t *testing.T) {
	html := HTML(simpleDiff, DefaultConfig())
	assert.Contains(t, html, "d2h-wrapper")
	assert.Contains(t, html, "d2h-file-list-wrapper")
	assert.Contains(t, html, "d2h-diff-table")
	assert.NotContains(t, html, "d2h-file-side-diff")
	assert.Less(t, strings.Index(html, "d2h-file-list-wrapper"), strings.Index(html, "d2h-file-wrapper"))
}

func TestHTMLSideBySideWithoutFileList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputFormat = SideBySide
	cfg.DrawFileList = false

	html := HTML(simpleDiff, cfg)
	assert.Contains(t, html, "d2h-file-side-diff")
	assert.NotContains(t, html, "d2h-file-list-wrapper")
}

func TestHTMLFromFilesReusesParse(t *testing.T) {
	files := Parse(simpleDiff, DefaultConfig())

	line := HTMLFromFiles(files, DefaultConfig())
	side := DefaultConfig()
	side.OutputFormat = SideBySide

	assert.Equal(t, HTML(simpleDiff, DefaultConfig()), line)
	assert.Equal(t, HTML(simpleDiff, side), HTMLFromFiles(files, side))
}

func TestHTMLTooBig(t *testing.T) {
	// The limit is checked before each line, so the third change trips it.
	input := "--- a/big.txt\n+++ b/big.txt\n@@ -1,2 +1,2 @@\n-one\n-two\n+uno\n+dos\n"
	cfg := DefaultConfig()
	cfg.DiffMaxChanges = 1
	cfg.DiffTooBigMessage = func(int) string { return "<b>skipped</b>" }

	files := Parse(input, cfg)
	require.Len(t, files, 1)
	assert.True(t, files[0].IsTooBig)

	html := HTMLFromFiles(files, cfg)
	assert.Contains(t, html, "<b>skipped</b>")
	assert.NotContains(t, html, "uno")

	assert.NotContains(t, HTML(simpleDiff, cfg), "<b>skipped</b>")
}

func TestJSON(t *testing.T) {
	out, err := JSON(simpleDiff, DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, `"newName":"test.txt"`)
	assert.Contains(t, out, `"oldName":"test.txt"`)
	assert.NotContains(t, out, "\n")
	assert.NotContains(t, out, "null")

	var files []DiffFile
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	assert.Equal(t, Parse(simpleDiff, DefaultConfig()), files)
}

func TestJSONKeepsMarkup(t *testing.T) {
	out, err := JSON("--- a/<x>.txt\n+++ b/<x>.txt\n@@ -1 +1 @@\n-a\n+b\n", DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, `"newName":"<x>.txt"`)
}

func TestJSONFromFilesPretty(t *testing.T) {
	files := Parse(simpleDiff, DefaultConfig())

	out, err := JSONFromFilesPretty(files)
	require.NoError(t, err)
	assert.Contains(t, out, "\n  {")
	assert.Contains(t, out, `"newName": "test.txt"`)

	compact, err := JSONFromFiles(files)
	require.NoError(t, err)
	var a, b []DiffFile
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	require.NoError(t, json.Unmarshal([]byte(compact), &b))
	assert.Equal(t, a, b)
}

func TestJSONEmpty(t *testing.T) {
	out, err := JSONFromFiles(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}
