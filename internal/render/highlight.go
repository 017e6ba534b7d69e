package render

import (
	"strings"

	"github.com/agusespa/diff2html/internal/rematch"
	"github.com/agusespa/diff2html/internal/types"
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// HighlightedLines holds both sides of a changed pair after inline highlighting.
type HighlightedLines struct {
	OldLine types.LineParts
	NewLine types.LineParts
}

// DiffHighlight marks the words (or characters) that differ between two
// paired diff lines. The old side gets <del> spans, the new side <ins> spans.
// Content is HTML-escaped.
func DiffHighlight(oldLine, newLine string, isCombined bool, cfg RenderConfig) HighlightedLines {
	oldParts := DeconstructLine(oldLine, isCombined, false)
	newParts := DeconstructLine(newLine, isCombined, false)

	if len(oldParts.Content) > cfg.MaxLineLengthHighlight || len(newParts.Content) > cfg.MaxLineLengthHighlight {
		return HighlightedLines{
			OldLine: types.LineParts{Prefix: oldParts.Prefix, Content: EscapeForHTML(oldParts.Content)},
			NewLine: types.LineParts{Prefix: newParts.Prefix, Content: EscapeForHTML(newParts.Content)},
		}
	}

	var diffs []diffmatchpatch.Diff
	if cfg.DiffStyle == types.StyleChar {
		diffs = charDiff(oldParts.Content, newParts.Content)
	} else {
		diffs = wordDiff(oldParts.Content, newParts.Content)
	}

	changed := map[int]bool{}
	if cfg.DiffStyle == types.StyleWord && cfg.Matching == types.MatchWords {
		changed = matchChangedWords(diffs, cfg.MatchWordsThreshold)
	}

	var oldHTML, newHTML strings.Builder
	for i, d := range diffs {
		escaped := EscapeForHTML(d.Text)
		class := ""
		if changed[i] {
			class = ` class="d2h-change"`
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldHTML.WriteString(escaped)
			newHTML.WriteString(escaped)
		case diffmatchpatch.DiffDelete:
			oldHTML.WriteString("<del" + class + ">" + escaped + "</del>")
		case diffmatchpatch.DiffInsert:
			newHTML.WriteString("<ins" + class + ">" + escaped + "</ins>")
		}
	}

	return HighlightedLines{
		OldLine: types.LineParts{Prefix: oldParts.Prefix, Content: oldHTML.String()},
		NewLine: types.LineParts{Prefix: newParts.Prefix, Content: newHTML.String()},
	}
}

func charDiff(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	return dmp.DiffCleanupMerge(dmp.DiffMain(a, b, false))
}

// maxWordTokens keeps token indexes below the surrogate range so they
// survive the rune to string round trip inside diffmatchpatch.
const maxWordTokens = 0xD800

// wordDiff diffs a and b over UAX #29 word segments. Each distinct segment
// is mapped to one rune, diffed, then decoded back.
func wordDiff(a, b string) []diffmatchpatch.Diff {
	index := map[string]rune{}
	var tokens []string
	encode := func(s string) []rune {
		var out []rune
		iter := words.FromString(s)
		for iter.Next() {
			tok := iter.Value()
			r, ok := index[tok]
			if !ok {
				r = rune(len(tokens))
				index[tok] = r
				tokens = append(tokens, tok)
			}
			out = append(out, r)
		}
		return out
	}

	ra, rb := encode(a), encode(b)
	if len(tokens) >= maxWordTokens {
		return charDiff(a, b)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(ra, rb, false))
	for i := range diffs {
		var text strings.Builder
		for _, r := range diffs[i].Text {
			text.WriteString(tokens[r])
		}
		diffs[i].Text = text.String()
	}
	return diffs
}

// matchChangedWords pairs removed and added runs whose distance is below
// threshold and returns the indexes of every diff in such a pair.
func matchChangedWords(diffs []diffmatchpatch.Diff, threshold float64) map[int]bool {
	var added, removed []int
	for i, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added = append(added, i)
		case diffmatchpatch.DiffDelete:
			removed = append(removed, i)
		}
	}

	distance := rematch.NewDistanceFunc(func(i int) string { return diffs[i].Text })
	changed := map[int]bool{}
	for _, g := range rematch.Match(added, removed, distance) {
		if len(g.Old) == 1 && len(g.New) == 1 && distance(g.Old[0], g.New[0]) < threshold {
			changed[g.Old[0]] = true
			changed[g.New[0]] = true
		}
	}
	return changed
}
