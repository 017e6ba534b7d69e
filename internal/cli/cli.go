// Package cli implements the diff2html command.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/agusespa/diff2html/internal/input"
	"github.com/agusespa/diff2html/internal/output"
	"github.com/agusespa/diff2html/internal/watch"
	"github.com/agusespa/diff2html/pkg/config"
	"github.com/agusespa/diff2html/pkg/diff2html"
)

const (
	exitSuccess    = 0
	exitError      = 1
	exitEmptyInput = 3
)

var Version = "dev"

const emptyInputMessage = "The input is empty. Try piping diff output to diff2html or specify input arguments."

// errEmptyInput is returned by a run whose input holds only whitespace.
var errEmptyInput = errors.New("empty input")

type app struct {
	cfg     config.Config
	request input.Request
	source  input.Source
	logger  *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

// Run executes the command with args (without the program name) and
// returns the process exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	inv, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		if inv == nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return exitError
	}

	if inv.version {
		fmt.Fprintf(stdout, "diff2html version %s\n", Version)
		return exitSuccess
	}
	if inv.help {
		inv.usage(stdout)
		return exitSuccess
	}

	level := slog.LevelWarn
	if inv.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := inv.cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	inputType := input.Type(inv.cfg.Input)
	if inv.watch && inputType != input.TypeFile {
		fmt.Fprintln(stderr, "Error: --watch requires --input file")
		return exitError
	}

	registry := input.NewRegistry()
	registry.Register(input.TypeFile, &input.FileSource{})
	registry.Register(input.TypeStdin, &input.StdinSource{Reader: stdin})
	registry.Register(input.TypeCommand, &input.GitDiffSource{Progress: stderr, Logger: logger})

	a := &app{
		cfg:     inv.cfg,
		request: input.Request{Args: inv.extraArgs, Ignore: inv.cfg.Ignore},
		source:  registry.Get(inputType),
		logger:  logger,
		stdout:  stdout,
		stderr:  stderr,
	}
	logger.Debug("reading input", "source", a.source.Name(), "args", a.request.Args)

	if err := a.run(ctx, true); err != nil {
		if errors.Is(err, errEmptyInput) {
			fmt.Fprintln(stderr, emptyInputMessage)
			return exitEmptyInput
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if inv.watch {
		path := a.request.Args[0]
		fmt.Fprintf(stderr, "Watching %s for changes, press Ctrl+C to stop\n", path)
		err := watch.File(ctx, path, func() error {
			return a.run(ctx, false)
		}, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}

	return exitSuccess
}

// run reads, renders and delivers the diff once. The browser is only
// opened on the first run of a watch session.
func (a *app) run(ctx context.Context, first bool) error {
	text, err := a.source.Read(ctx, a.request)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return errEmptyInput
	}

	content, err := a.generate(text)
	if err != nil {
		return err
	}
	return a.deliver(content, first)
}

func (a *app) generate(text string) (string, error) {
	opts := a.cfg.Options()
	opts.Logger = a.logger

	files := diff2html.Parse(text, opts)
	a.logger.Debug("parsed diff", "files", len(files))

	if a.cfg.Format == config.FormatJSON {
		return diff2html.JSONFromFiles(files)
	}
	return output.PrepareHTML(diff2html.HTMLFromFiles(files, opts), a.cfg.PageOptions())
}

func (a *app) deliver(content string, first bool) error {
	if a.cfg.File != "" {
		a.logger.Debug("writing output", "destination", "file", "path", a.cfg.File)
		if err := output.WriteFile(a.cfg.File, content); err != nil {
			return err
		}
		fmt.Fprintf(a.stderr, "Output written to: %s\n", a.cfg.File)
		return nil
	}

	a.logger.Debug("writing output", "destination", a.cfg.Output)
	switch output.Destination(a.cfg.Output) {
	case output.DestinationStdout:
		return output.Stdout(a.stdout, content)
	case output.DestinationClipboard:
		if err := output.Clipboard(content); err != nil {
			return err
		}
		fmt.Fprintln(a.stderr, "Output copied to clipboard")
		return nil
	default:
		if !first {
			return output.WriteFile(output.PreviewPath(a.cfg.Format), content)
		}
		_, err := output.Preview(content, a.cfg.Format)
		return err
	}
}
