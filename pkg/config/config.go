package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/agusespa/diff2html/internal/input"
	"github.com/agusespa/diff2html/internal/output"
	"github.com/agusespa/diff2html/internal/types"
	"github.com/agusespa/diff2html/pkg/diff2html"
)

// Style values of the --style flag.
const (
	StyleLine = "line"
	StyleSide = "side"
)

// Format values of the --format flag.
const (
	FormatHTML = "html"
	FormatJSON = "json"
)

// Summary values of the --summary flag.
const (
	SummaryClosed = "closed"
	SummaryOpen   = "open"
	SummaryHidden = "hidden"
)

const (
	DefaultTitle  = "Diff to HTML"
	DefaultHeader = "Diff to HTML"
)

// Config holds every CLI option. JSON keys match the long flag names.
type Config struct {
	Style                           string   `json:"style"`
	DiffStyle                       string   `json:"diffStyle"`
	Format                          string   `json:"format"`
	Input                           string   `json:"input"`
	Output                          string   `json:"output"`
	File                            string   `json:"file"`
	Title                           string   `json:"title"`
	ColorScheme                     string   `json:"colorScheme"`
	Summary                         string   `json:"summary"`
	Matching                        string   `json:"matching"`
	MatchWordsThreshold             float64  `json:"matchWordsThreshold"`
	MatchingMaxComparisons          int      `json:"matchingMaxComparisons"`
	DiffMaxChanges                  int      `json:"diffMaxChanges"`
	DiffMaxLineLength               int      `json:"diffMaxLineLength"`
	RenderNothingWhenEmpty          bool     `json:"renderNothingWhenEmpty"`
	MaxLineSizeInBlockForComparison int      `json:"maxLineSizeInBlockForComparison"`
	MaxLineLengthHighlight          int      `json:"maxLineLengthHighlight"`
	FileContentToggle               bool     `json:"fileContentToggle"`
	SynchronisedScroll              bool     `json:"synchronisedScroll"`
	HighlightCode                   bool     `json:"highlightCode"`
	HTMLWrapperTemplate             string   `json:"htmlWrapperTemplate"`
	Ignore                          []string `json:"ignore"`
}

func Default() Config {
	return Config{
		Style:                           StyleLine,
		DiffStyle:                       string(types.StyleWord),
		Format:                          FormatHTML,
		Input:                           string(input.TypeCommand),
		Output:                          string(output.DestinationPreview),
		ColorScheme:                     string(types.SchemeAuto),
		Summary:                         SummaryClosed,
		Matching:                        string(types.MatchNone),
		MatchWordsThreshold:             0.25,
		MatchingMaxComparisons:          1000,
		MaxLineSizeInBlockForComparison: 200,
		MaxLineLengthHighlight:          10000,
		FileContentToggle:               true,
		SynchronisedScroll:              true,
		HighlightCode:                   true,
	}
}

// LoadConfig reads a JSON file over the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Style {
	case StyleLine, StyleSide:
	default:
		return fmt.Errorf("invalid style %q: expected line or side", c.Style)
	}

	switch c.Format {
	case FormatHTML, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: expected html or json", c.Format)
	}

	switch c.Summary {
	case SummaryClosed, SummaryOpen, SummaryHidden:
	default:
		return fmt.Errorf("invalid summary %q: expected closed, open or hidden", c.Summary)
	}

	if _, err := types.ParseDiffStyle(c.DiffStyle); err != nil {
		return err
	}
	if _, err := types.ParseColorScheme(c.ColorScheme); err != nil {
		return err
	}
	if _, err := types.ParseLineMatchingType(c.Matching); err != nil {
		return err
	}
	if _, err := input.ParseType(c.Input); err != nil {
		return err
	}
	if _, err := output.ParseDestination(c.Output); err != nil {
		return err
	}

	if c.MatchWordsThreshold < 0 || c.MatchWordsThreshold > 1 {
		return fmt.Errorf("matchWordsThreshold must be between 0 and 1, got %v", c.MatchWordsThreshold)
	}

	limits := []struct {
		name  string
		value int
	}{
		{"matchingMaxComparisons", c.MatchingMaxComparisons},
		{"diffMaxChanges", c.DiffMaxChanges},
		{"diffMaxLineLength", c.DiffMaxLineLength},
		{"maxLineSizeInBlockForComparison", c.MaxLineSizeInBlockForComparison},
		{"maxLineLengthHighlight", c.MaxLineLengthHighlight},
	}
	for _, limit := range limits {
		if limit.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", limit.name, limit.value)
		}
	}

	return nil
}

// Options converts a validated config to library options.
func (c *Config) Options() diff2html.Config {
	opts := diff2html.DefaultConfig()

	opts.OutputFormat = diff2html.LineByLine
	if c.Style == StyleSide {
		opts.OutputFormat = diff2html.SideBySide
	}
	opts.DrawFileList = c.Summary != SummaryHidden
	opts.DiffStyle = types.DiffStyle(c.DiffStyle)
	opts.ColorScheme = types.ColorScheme(c.ColorScheme)
	opts.Matching = types.LineMatchingType(c.Matching)
	opts.MatchWordsThreshold = c.MatchWordsThreshold
	opts.MatchingMaxComparisons = c.MatchingMaxComparisons
	opts.DiffMaxChanges = c.DiffMaxChanges
	opts.DiffMaxLineLength = c.DiffMaxLineLength
	opts.RenderNothingWhenEmpty = c.RenderNothingWhenEmpty
	opts.MaxLineSizeInBlockForComparison = c.MaxLineSizeInBlockForComparison
	opts.MaxLineLengthHighlight = c.MaxLineLengthHighlight
	opts.HighlightCode = c.HighlightCode && c.Format == FormatHTML

	return opts
}

// PageOptions returns the page wrapper settings.
func (c *Config) PageOptions() output.PageOptions {
	title, header := DefaultTitle, DefaultHeader
	if c.Title != "" {
		title, header = c.Title, c.Title
	}

	return output.PageOptions{
		Title:              title,
		Header:             header,
		WrapperTemplate:    c.HTMLWrapperTemplate,
		ColorScheme:        types.ColorScheme(c.ColorScheme),
		FileListOpen:       c.Summary == SummaryOpen,
		FileContentToggle:  c.FileContentToggle,
		SynchronisedScroll: c.SynchronisedScroll,
		HighlightCode:      c.HighlightCode,
	}
}
