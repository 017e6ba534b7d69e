package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/agusespa/diff2html/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageOptions() PageOptions {
	return PageOptions{
		Title:              "Test Title",
		Header:             "Test Header",
		ColorScheme:        types.SchemeLight,
		FileContentToggle:  true,
		SynchronisedScroll: true,
	}
}

func TestPrepareHTMLReplacesPlaceholders(t *testing.T) {
	page, err := PrepareHTML("<div>test content</div>", pageOptions())
	require.NoError(t, err)

	assert.Contains(t, page, "<title>Test Title</title>")
	assert.Contains(t, page, "<h1>Test Header</h1>")
	assert.Contains(t, page, "<div>test content</div>")
	assert.Contains(t, page, "diff2htmlUi.fileListToggle(false);")
	assert.Contains(t, page, "diff2htmlUi.fileContentToggle();")
	assert.Contains(t, page, "diff2htmlUi.synchronisedScroll();")
	assert.Contains(t, page, "diff2html-ui.min.js")
	assert.Contains(t, page, ".d2h-wrapper")
	assert.NotContains(t, page, "<!--diff2html-")
}

func TestPrepareHTMLDisabledFeatures(t *testing.T) {
	opts := pageOptions()
	opts.FileContentToggle = false
	opts.SynchronisedScroll = false
	opts.FileListOpen = true

	page, err := PrepareHTML("", opts)
	require.NoError(t, err)
	assert.NotContains(t, page, "diff2htmlUi.fileContentToggle();")
	assert.NotContains(t, page, "diff2htmlUi.synchronisedScroll();")
	assert.NotContains(t, page, "//diff2html-")
	assert.Contains(t, page, "diff2htmlUi.fileListToggle(true);")
}

func TestPrepareHTMLColorSchemes(t *testing.T) {
	tests := []struct {
		scheme   types.ColorScheme
		contains []string
		excludes []string
	}{
		{types.SchemeLight, []string{"var(--d2h-light-color)"}, []string{"rgb(13, 17, 23)"}},
		{types.SchemeDark, []string{"rgb(13, 17, 23)"}, []string{"prefers-color-scheme: light"}},
		{types.SchemeAuto, []string{"prefers-color-scheme: light", "prefers-color-scheme: dark"}, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			opts := pageOptions()
			opts.ColorScheme = tt.scheme
			page, err := PrepareHTML("", opts)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, page, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, page, s)
			}
		})
	}
}

func TestPrepareHTMLSyntaxCSS(t *testing.T) {
	opts := pageOptions()
	page, err := PrepareHTML("", opts)
	require.NoError(t, err)
	assert.NotContains(t, page, ".chroma")

	opts.HighlightCode = true
	page, err = PrepareHTML("", opts)
	require.NoError(t, err)
	assert.Contains(t, page, ".chroma")
}

func TestPrepareHTMLEscapesTitle(t *testing.T) {
	opts := pageOptions()
	opts.Title = "<script>"
	page, err := PrepareHTML("", opts)
	require.NoError(t, err)
	assert.Contains(t, page, "<title>&lt;script&gt;</title>")
}

func TestPrepareHTMLCustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrapper.html")
	require.NoError(t, os.WriteFile(path, []byte("<h2><!--diff2html-title--></h2><main><!--diff2html-diff--></main>"), 0o644))

	opts := pageOptions()
	opts.WrapperTemplate = path
	page, err := PrepareHTML("<p>diff</p>", opts)
	require.NoError(t, err)
	assert.Equal(t, "<h2>Test Title</h2><main><p>diff</p></main>", page)
}

func TestPrepareHTMLMissingTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.html")
	opts := pageOptions()
	opts.WrapperTemplate = path

	_, err := PrepareHTML("", opts)
	assert.EqualError(t, err, "template ('"+path+"') not found")
}

func TestParseDestination(t *testing.T) {
	for _, valid := range []string{"preview", "stdout", "clipboard"} {
		got, err := ParseDestination(valid)
		require.NoError(t, err)
		assert.Equal(t, Destination(valid), got)
	}

	_, err := ParseDestination("printer")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, WriteFile(path, "<html></html>"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(content))

	assert.ErrorContains(t, WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.html"), ""), "failed to write to file")
}

func TestStdout(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Stdout(&out, "content"))
	assert.Equal(t, "content\n", out.String())
}

func TestPreview(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	original := openBrowser
	t.Cleanup(func() { openBrowser = original })

	var opened string
	openBrowser = func(path string) error {
		opened = path
		return nil
	}

	path, err := Preview(`{"files":[]}`, "json")
	require.NoError(t, err)
	assert.Equal(t, PreviewPath("json"), path)
	assert.Equal(t, "diff.json", filepath.Base(path))
	assert.Equal(t, path, opened)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"files":[]}`, string(content))

	openBrowser = func(string) error { return errors.New("no browser") }
	_, err = Preview("<html></html>", "html")
	assert.ErrorContains(t, err, "failed to open file in browser")
}
