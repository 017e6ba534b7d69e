package parser

import "regexp"

const (
	oldFileNameHeader = "--- "
	newFileNameHeader = "+++ "
	hunkHeaderPrefix  = "@@"

	defaultTooBigMessage = "Diff too big to be displayed"
	binaryBlockHeader    = "Binary file"
)

var baseFilenamePrefixes = []string{"a/", "b/", "i/", "w/", "c/", "o/"}

var (
	oldModeRe         = regexp.MustCompile(`^old mode (\d{6})`)
	newModeRe         = regexp.MustCompile(`^new mode (\d{6})`)
	deletedFileModeRe = regexp.MustCompile(`^deleted file mode (\d{6})(?:,\d{6})?`)
	newFileModeRe     = regexp.MustCompile(`^new file mode (\d{6})`)

	copyFromRe   = regexp.MustCompile(`^copy from "?(.+?)"?$`)
	copyToRe     = regexp.MustCompile(`^copy to "?(.+?)"?$`)
	renameFromRe = regexp.MustCompile(`^rename from "?(.+?)"?$`)
	renameToRe   = regexp.MustCompile(`^rename to "?(.+?)"?$`)

	similarityIndexRe    = regexp.MustCompile(`^similarity index (\d+)%`)
	dissimilarityIndexRe = regexp.MustCompile(`^dissimilarity index (\d+)%`)
	indexRe              = regexp.MustCompile(`^index ([\da-z]+)\.\.([\da-z]+)\s*(\d{6})?`)

	binaryFilesRe = regexp.MustCompile(`^Binary files (.*) and (.*) differ`)
	binaryDiffRe  = regexp.MustCompile(`^GIT binary patch`)

	combinedIndexRe = regexp.MustCompile(`^index ([\da-z]+),([\da-z]+)\.\.([\da-z]+)`)
	combinedModeRe  = regexp.MustCompile(`^mode (\d{6}),(\d{6})\.\.(\d{6})`)

	hunkHeaderRe         = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@.*`)
	combinedHunkHeaderRe = regexp.MustCompile(`^@@@ -(\d+)(?:,\d+)? -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@@.*`)

	gitDiffStartRe      = regexp.MustCompile(`^diff --git "?([a-ciow]/.+)"? "?([a-ciow]/.+)"?`)
	unixDiffBinaryStart = regexp.MustCompile(`^Binary files "?([a-ciow]/.+)"? and "?([a-ciow]/.+)"? differ`)

	timestampRe = regexp.MustCompile(`\s+\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)? [+-]\d{4}.*$`)
	quotedRe    = regexp.MustCompile(`^"?(.+?)"?$`)
)
