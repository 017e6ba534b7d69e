package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agusespa/diff2html/pkg/config"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// invocation is the parsed command line.
type invocation struct {
	cfg        config.Config
	extraArgs  []string
	configPath string
	watch      bool
	verbose    bool
	version    bool
	help       bool
	usage      func(w io.Writer)
}

// configFlag finds the --config value so the file can be loaded before the
// other flags override it.
func configFlag(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func parseArgs(args []string, stderr io.Writer) (*invocation, error) {
	inv := &invocation{cfg: config.Default()}

	if path := configFlag(args); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		inv.cfg = *loaded
	}

	fs := flag.NewFlagSet("diff2html", flag.ContinueOnError)
	fs.SetOutput(stderr)

	c := &inv.cfg
	stringFlag := func(p *string, name, short, usage string) {
		fs.StringVar(p, name, *p, usage)
		if short != "" {
			fs.StringVar(p, short, *p, "Shorthand for --"+name)
		}
	}

	stringFlag(&c.Style, "style", "s", "Output style: line or side")
	stringFlag(&c.DiffStyle, "diffStyle", "d", "Diff highlighting style: word or char")
	stringFlag(&c.Format, "format", "f", "Output format: html or json")
	stringFlag(&c.Input, "input", "i", "Diff input source: file, stdin or command")
	stringFlag(&c.Output, "output", "o", "Output destination: preview, stdout or clipboard")
	stringFlag(&c.File, "file", "F", "Send output to file (overrides output option)")
	stringFlag(&c.Title, "title", "t", "Page title for HTML output")
	stringFlag(&c.ColorScheme, "colorScheme", "", "Color scheme of HTML output: auto, light or dark")
	stringFlag(&c.Summary, "summary", "", "Show files summary: closed, open or hidden")
	stringFlag(&c.Matching, "matching", "", "Diff line matching type: lines, words or none")
	stringFlag(&c.HTMLWrapperTemplate, "htmlWrapperTemplate", "", "Use a custom template when generating markup")

	fs.Float64Var(&c.MatchWordsThreshold, "matchWordsThreshold", c.MatchWordsThreshold, "Diff line matching word threshold")
	fs.IntVar(&c.MatchingMaxComparisons, "matchingMaxComparisons", c.MatchingMaxComparisons, "Maximum line comparisons of a block of changes")
	fs.IntVar(&c.DiffMaxChanges, "diffMaxChanges", c.DiffMaxChanges, "Number of changed lines after which a file diff is deemed as too big (0 disables)")
	fs.IntVar(&c.DiffMaxLineLength, "diffMaxLineLength", c.DiffMaxLineLength, "Number of characters in a diff line after which a file diff is deemed as too big (0 disables)")
	fs.BoolVar(&c.RenderNothingWhenEmpty, "renderNothingWhenEmpty", c.RenderNothingWhenEmpty, "Render nothing if the diff shows no change")
	fs.IntVar(&c.MaxLineSizeInBlockForComparison, "maxLineSizeInBlockForComparison", c.MaxLineSizeInBlockForComparison, "Maximum number of characters of the bigger line in a block to apply comparison")
	fs.IntVar(&c.MaxLineLengthHighlight, "maxLineLengthHighlight", c.MaxLineLengthHighlight, "Maximum number of characters in a line to apply highlight")
	fs.BoolVar(&c.FileContentToggle, "fileContentToggle", c.FileContentToggle, "Show viewed checkbox to toggle file content")
	fs.BoolVar(&c.SynchronisedScroll, "synchronisedScroll", c.SynchronisedScroll, "Synchronised horizontal scroll for side-by-side view")
	fs.BoolVar(&c.HighlightCode, "highlightCode", c.HighlightCode, "Enable syntax highlighting")

	ignore := stringList(c.Ignore)
	fs.Var(&ignore, "ignore", "File to exclude from the git diff (repeatable)")
	fs.Var(&ignore, "g", "Shorthand for --ignore")

	fs.StringVar(&inv.configPath, "config", "", "Path to a JSON configuration file")
	fs.BoolVar(&inv.watch, "watch", false, "Re-render when the input file changes (requires --input file)")
	fs.BoolVar(&inv.verbose, "verbose", false, "Log debug information to stderr")
	fs.BoolVar(&inv.version, "version", false, "Show version information")
	fs.BoolVar(&inv.help, "help", false, "Show help message")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "diff2html - Generate HTML from unified diffs")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  diff2html [options] [-- git diff args | file path]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Examples:")
		fmt.Fprintln(out, "  diff2html                          # Preview git diff -M -C HEAD in the browser")
		fmt.Fprintln(out, "  diff2html -s side -- HEAD~1        # Side by side diff against the previous commit")
		fmt.Fprintln(out, "  git diff | diff2html -i stdin -o stdout > diff.html")
		fmt.Fprintln(out, "  diff2html -i file -F out.html -- changes.diff")
	}
	inv.usage = func(w io.Writer) {
		fs.SetOutput(w)
		fs.Usage()
	}

	if err := fs.Parse(args); err != nil {
		return inv, err
	}

	c.Ignore = ignore
	inv.extraArgs = fs.Args()
	return inv, nil
}
