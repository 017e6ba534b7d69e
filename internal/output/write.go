package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Destination names where the CLI sends its output.
type Destination string

const (
	DestinationPreview   Destination = "preview"
	DestinationStdout    Destination = "stdout"
	DestinationClipboard Destination = "clipboard"
)

// ParseDestination validates an --output value.
func ParseDestination(s string) (Destination, error) {
	switch d := Destination(s); d {
	case DestinationPreview, DestinationStdout, DestinationClipboard:
		return d, nil
	default:
		return "", fmt.Errorf("invalid output %q: expected preview, stdout or clipboard", s)
	}
}

func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	return nil
}

func Stdout(w io.Writer, content string) error {
	if _, err := fmt.Fprintln(w, content); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func Clipboard(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// openBrowser is swapped in tests.
var openBrowser = browser.OpenFile

// PreviewPath is the temp file Preview writes, diff.html or diff.json.
func PreviewPath(extension string) string {
	return filepath.Join(os.TempDir(), "diff."+extension)
}

// Preview writes content to a temp file and opens it in the default browser.
// It returns the file path.
func Preview(content, extension string) (string, error) {
	path := PreviewPath(extension)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := openBrowser(path); err != nil {
		return path, fmt.Errorf("failed to open file in browser: %w", err)
	}
	return path, nil
}
