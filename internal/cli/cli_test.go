package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiff = `diff --git a/main.go b/main.go
index 1111111..2222222 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,3 @@
 package main
-var a = 1
+var a = 2
 func main() {}
`

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunStdinToStdoutHTML(t *testing.T) {
	res := run(t, sampleDiff, "-i", "stdin", "-o", "stdout")

	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "<!DOCTYPE html>")
	assert.Contains(t, res.stdout, "<title>Diff to HTML</title>")
	assert.Contains(t, res.stdout, `class="d2h-file-list-wrapper`)
	assert.Contains(t, res.stdout, "d2h-file-diff")
	assert.Contains(t, res.stdout, "main.go")
	assert.Contains(t, res.stdout, `diff2htmlUi.fileListToggle(false);`)
}

func TestRunStdinToStdoutJSON(t *testing.T) {
	res := run(t, sampleDiff, "--input", "stdin", "--output", "stdout", "--format", "json")
	require.Equal(t, exitSuccess, res.code, res.stderr)

	var files []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "main.go", files[0]["newName"])
	assert.Equal(t, float64(1), files[0]["addedLines"])
	assert.Equal(t, float64(1), files[0]["deletedLines"])
}

func TestRunSideBySide(t *testing.T) {
	res := run(t, sampleDiff, "-i", "stdin", "-o", "stdout", "-s", "side")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, `class="d2h-file-side-diff"`)
}

func TestRunDarkSchemeAndSummary(t *testing.T) {
	res := run(t, sampleDiff, "-i", "stdin", "-o", "stdout", "--colorScheme", "dark", "--summary", "open")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "d2h-dark-color-scheme")
	assert.Contains(t, res.stdout, `diff2htmlUi.fileListToggle(true);`)
}

func TestRunHiddenSummary(t *testing.T) {
	res := run(t, sampleDiff, "-i", "stdin", "-o", "stdout", "--summary", "hidden")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.NotContains(t, res.stdout, `class="d2h-file-list-wrapper`)
}

func TestRunCustomTitle(t *testing.T) {
	res := run(t, sampleDiff, "-i", "stdin", "-o", "stdout", "-t", "My <Diff>")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "<title>My &lt;Diff&gt;</title>")
	assert.Contains(t, res.stdout, "<h1>My &lt;Diff&gt;</h1>")
}

func TestRunEmptyInput(t *testing.T) {
	res := run(t, "  \n\t\n", "-i", "stdin", "-o", "stdout")
	assert.Equal(t, exitEmptyInput, res.code)
	assert.Contains(t, res.stderr, emptyInputMessage)
	assert.Empty(t, res.stdout)
}

func TestRunFileInput(t *testing.T) {
	path := writeTemp(t, "changes.diff", sampleDiff)

	res := run(t, "", "-i", "file", "-o", "stdout", "-f", "json", "--", path)
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"newName":"main.go"`)
}

func TestRunMissingFile(t *testing.T) {
	res := run(t, "", "-i", "file", "-o", "stdout", filepath.Join(t.TempDir(), "missing.diff"))
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "failed to read file")
}

func TestRunFileInputWithoutPath(t *testing.T) {
	res := run(t, "", "-i", "file", "-o", "stdout")
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "file path required")
}

func TestRunInvalidStyle(t *testing.T) {
	res := run(t, sampleDiff, "-i", "stdin", "-s", "diagonal")
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, `Error: invalid style "diagonal"`)
}

func TestRunUnknownFlag(t *testing.T) {
	res := run(t, sampleDiff, "--nope")
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "flag provided but not defined: -nope")
}

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.html")

	res := run(t, sampleDiff, "-i", "stdin", "-F", out)
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, "Output written to: "+out)
	assert.Empty(t, res.stdout)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<!DOCTYPE html>")
}

func TestRunConfigFile(t *testing.T) {
	cfgPath := writeTemp(t, "config.json", `{"format": "json", "input": "stdin", "output": "stdout"}`)

	res := run(t, sampleDiff, "--config", cfgPath)
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "["))

	res = run(t, sampleDiff, "--config="+cfgPath, "-f", "html")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "<!DOCTYPE html>")
}

func TestRunInvalidConfigFile(t *testing.T) {
	cfgPath := writeTemp(t, "config.json", `{"format": `)

	res := run(t, sampleDiff, "--config", cfgPath)
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "failed to parse config file")
}

func TestRunVersion(t *testing.T) {
	res := run(t, "", "--version")
	assert.Equal(t, exitSuccess, res.code)
	assert.Equal(t, "diff2html version "+Version+"\n", res.stdout)
}

func TestRunHelp(t *testing.T) {
	res := run(t, "", "--help")
	assert.Equal(t, exitSuccess, res.code)
	assert.Contains(t, res.stdout, "diff2html - Generate HTML from unified diffs")
	assert.Contains(t, res.stdout, "-matchWordsThreshold")

	res = run(t, "", "-h")
	assert.Equal(t, exitSuccess, res.code)
	assert.Contains(t, res.stderr, "Usage:")
}

func TestRunWatchRequiresFileInput(t *testing.T) {
	res := run(t, sampleDiff, "-i", "stdin", "--watch")
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "--watch requires --input file")
}

func TestRunWatch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "changes.diff")
	out := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(in, []byte(sampleDiff), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int, 1)
	var stdout, stderr bytes.Buffer
	go func() {
		done <- Run(ctx, []string{"-i", "file", "-F", out, "--watch", in}, strings.NewReader(""), &stdout, &stderr)
	}()

	require.Eventually(t, func() bool {
		_, err := os.Stat(out)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	renamed := strings.ReplaceAll(sampleDiff, "main.go", "other.go")
	require.Eventually(t, func() bool {
		if err := os.WriteFile(in, []byte(renamed), 0o644); err != nil {
			return false
		}
		content, err := os.ReadFile(out)
		return err == nil && strings.Contains(string(content), "other.go")
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, exitSuccess, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestParseArgs(t *testing.T) {
	inv, err := parseArgs([]string{"-g", "a.lock", "--ignore", "b.sum", "-s", "side", "--", "HEAD~1", "--stat"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.lock", "b.sum"}, inv.cfg.Ignore)
	assert.Equal(t, "side", inv.cfg.Style)
	assert.Equal(t, []string{"HEAD~1", "--stat"}, inv.extraArgs)
	assert.False(t, inv.watch)
}

func TestParseArgsAppendsConfigIgnore(t *testing.T) {
	cfgPath := writeTemp(t, "config.json", `{"ignore": ["go.sum"]}`)

	inv, err := parseArgs([]string{"--config", cfgPath, "-g", "a.lock"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"go.sum", "a.lock"}, inv.cfg.Ignore)
	assert.Equal(t, cfgPath, inv.configPath)
}

func TestConfigFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"separate value", []string{"-s", "side", "--config", "a.json"}, "a.json"},
		{"equals", []string{"-config=b.json"}, "b.json"},
		{"missing value", []string{"--config"}, ""},
		{"after terminator", []string{"--", "--config", "c.json"}, ""},
		{"absent", []string{"-s", "side"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, configFlag(tt.args))
		})
	}
}
