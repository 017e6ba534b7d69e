// Package render turns parsed diff files into HTML fragments.
package render

import (
	"fmt"
	"strings"

	"github.com/agusespa/diff2html/internal/types"
)

// CSSLineClass is the class attribute of a rendered diff row.
type CSSLineClass string

const (
	ClassInserts       CSSLineClass = "d2h-ins"
	ClassDeletes       CSSLineClass = "d2h-del"
	ClassContext       CSSLineClass = "d2h-cntx"
	ClassInfo          CSSLineClass = "d2h-info"
	ClassInsertChanges CSSLineClass = "d2h-ins d2h-change"
	ClassDeleteChanges CSSLineClass = "d2h-del d2h-change"
)

// LineClass maps a line type to its row class.
func LineClass(t types.LineType) CSSLineClass {
	switch t {
	case types.LineInsert:
		return ClassInserts
	case types.LineDelete:
		return ClassDeletes
	default:
		return ClassContext
	}
}

// ColorSchemeClass maps a color scheme to the wrapper class.
func ColorSchemeClass(scheme types.ColorScheme) string {
	switch scheme {
	case types.SchemeDark:
		return "d2h-dark-color-scheme"
	case types.SchemeAuto:
		return "d2h-auto-color-scheme"
	default:
		return "d2h-light-color-scheme"
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeForHTML escapes & < > " ' and /.
func EscapeForHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func prefixLength(isCombined bool) int {
	if isCombined {
		return 2
	}
	return 1
}

// DeconstructLine splits a diff line into its one (or, for combined diffs,
// two) character prefix and the content, optionally escaping the content.
func DeconstructLine(line string, isCombined, escape bool) types.LineParts {
	split := min(prefixLength(isCombined), len(line))
	for split > 0 && split < len(line) && !isRuneStart(line[split]) {
		split--
	}
	parts := types.LineParts{Prefix: line[:split], Content: line[split:]}
	if escape {
		parts.Content = EscapeForHTML(parts.Content)
	}
	return parts
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func isDevNull(name string) bool {
	return strings.Contains(name, "dev/null")
}

func unifyPath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// FilenameDiff renders the file name, collapsing the common directories of
// a rename: "dir/{old.go → new.go}".
func FilenameDiff(file types.DiffFile) string {
	oldName := unifyPath(file.OldName)
	newName := unifyPath(file.NewName)

	if oldName == newName || isDevNull(oldName) || isDevNull(newName) {
		if !isDevNull(newName) {
			return newName
		}
		return oldName
	}

	oldParts := strings.Split(oldName, "/")
	newParts := strings.Split(newName, "/")
	i, j, k := 0, len(oldParts)-1, len(newParts)-1

	var prefix, suffix []string
	for i < j && i < k && oldParts[i] == newParts[i] {
		prefix = append(prefix, newParts[i])
		i++
	}
	for j > i && k > i && oldParts[j] == newParts[k] {
		suffix = append([]string{newParts[k]}, suffix...)
		j--
		k--
	}

	oldRest := strings.Join(oldParts[i:j+1], "/")
	newRest := strings.Join(newParts[i:k+1], "/")
	prefixPath := strings.Join(prefix, "/")
	suffixPath := strings.Join(suffix, "/")

	switch {
	case prefixPath != "" && suffixPath != "":
		return fmt.Sprintf("%s/{%s → %s}/%s", prefixPath, oldRest, newRest, suffixPath)
	case prefixPath != "":
		return fmt.Sprintf("%s/{%s → %s}", prefixPath, oldRest, newRest)
	case suffixPath != "":
		return fmt.Sprintf("{%s → %s}/%s", oldRest, newRest, suffixPath)
	default:
		return fmt.Sprintf("%s → %s", oldName, newName)
	}
}

// hashCode is the 32-bit string hash used by browsers' diff2html, over
// UTF-16 code units.
func hashCode(s string) int32 {
	var hash int32
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			hash = hash<<5 - hash + (0xD800 + r>>10)
			hash = hash<<5 - hash + (0xDC00 + r&0x3FF)
			continue
		}
		hash = hash<<5 - hash + r
	}
	return hash
}

// HTMLID returns the anchor id of a file: "d2h-" followed by six digits.
func HTMLID(file types.DiffFile) string {
	hash := int64(hashCode(FilenameDiff(file)))
	if hash < 0 {
		hash = -hash
	}
	return fmt.Sprintf("d2h-%06d", hash%1_000_000)
}

// FileIcon names the icon (and tag) suffix of a file: "file-added",
// "file-deleted", "file-renamed" or "file-changed".
func FileIcon(file types.DiffFile) string {
	switch {
	case file.IsRename || file.IsCopy:
		return "file-renamed"
	case file.IsNew:
		return "file-added"
	case file.IsDeleted:
		return "file-deleted"
	case file.NewName != file.OldName:
		return "file-renamed"
	default:
		return "file-changed"
	}
}
