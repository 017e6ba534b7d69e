package input

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agusespa/diff2html/pkg/spinner"
)

var defaultGitDiffArgs = []string{"-M", "-C", "HEAD"}

// GitDiffArgs builds the argument list of the git command: "diff", then
// "--no-color" unless given, the extra args (or -M -C HEAD), and one
// ":(exclude)" pathspec per ignored path after "--".
func GitDiffArgs(extra, ignore []string) []string {
	args := []string{"diff"}
	if !slices.Contains(extra, "--no-color") {
		args = append(args, "--no-color")
	}

	if len(extra) > 0 {
		args = append(args, extra...)
	} else {
		args = append(args, defaultGitDiffArgs...)
	}

	if len(ignore) > 0 {
		if !slices.Contains(args, "--") {
			args = append(args, "--")
		}
		for _, path := range ignore {
			args = append(args, ":(exclude)"+path)
		}
	}

	return args
}

// GitDiffSource runs git diff in Dir (the working directory when empty).
type GitDiffSource struct {
	Dir string
	// Progress receives a spinner while git runs, when it is a terminal.
	Progress io.Writer
	Logger   *slog.Logger
}

func (s *GitDiffSource) Name() string {
	return string(TypeCommand)
}

func (s *GitDiffSource) Description() string {
	return "Get the diff from git diff (defaults to git diff -M -C HEAD)"
}

func (s *GitDiffSource) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *GitDiffSource) Read(ctx context.Context, req Request) (string, error) {
	args := GitDiffArgs(req.Args, req.Ignore)
	s.logger().Debug("running git", "args", args, "dir", s.Dir)

	if s.Progress != nil && spinner.IsTerminal(s.Progress) {
		sp := spinner.New(s.Progress, "Running git diff...")
		sp.Start()
		defer sp.Stop()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("failed to run git diff: %s: %w", msg, err)
		}
		return "", fmt.Errorf("failed to run git diff: %w", err)
	}

	if !utf8.Valid(output) {
		return "", fmt.Errorf("git diff output is not valid UTF-8")
	}

	return string(output), nil
}
