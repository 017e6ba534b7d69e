package parser

import "strings"

// filename strips the header marker (if any), a trailing timestamp, the
// surrounding quotes and the first known path prefix from a diff path.
func filename(value, header, extraPrefix string) string {
	value = strings.TrimPrefix(value, header)
	value = timestampRe.ReplaceAllString(value, "")

	name := ""
	if m := quotedRe.FindStringSubmatch(value); m != nil {
		name = m[1]
	}

	for _, prefix := range filenamePrefixes(extraPrefix) {
		if strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}

func filenamePrefixes(extra string) []string {
	if extra == "" {
		return baseFilenamePrefixes
	}
	prefixes := make([]string, 0, len(baseFilenamePrefixes)+1)
	prefixes = append(prefixes, baseFilenamePrefixes...)
	return append(prefixes, extra)
}

func srcFilename(line, srcPrefix string) string {
	return filename(line, oldFileNameHeader, srcPrefix)
}

func dstFilename(line, dstPrefix string) string {
	return filename(line, newFileNameHeader, dstPrefix)
}

// extension returns the text after the last dot of name, or fallback when
// name has no dot.
func extension(name, fallback string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return fallback
}
