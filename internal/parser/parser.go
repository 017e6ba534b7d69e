// Package parser turns unified and combined diff text into types.DiffFile
// values. Parsing never fails: malformed sections are logged and skipped.
package parser

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/agusespa/diff2html/internal/types"
)

// Config tunes Parse. The zero value is ready to use.
type Config struct {
	// SrcPrefix and DstPrefix are stripped from paths in addition to a/ b/ i/ w/ c/ o/.
	SrcPrefix string
	DstPrefix string
	// DiffMaxChanges marks a file too big once added+deleted exceeds it. <= 0 disables.
	DiffMaxChanges int
	// DiffMaxLineLength marks a file too big when a line is longer. <= 0 disables.
	DiffMaxLineLength int
	// DiffTooBigMessage builds the header of the placeholder block. It gets the file index.
	DiffTooBigMessage func(fileIndex int) string
	Logger            *slog.Logger
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c Config) tooBigMessage(fileIndex int) string {
	if c.DiffTooBigMessage == nil {
		return defaultTooBigMessage
	}
	return c.DiffTooBigMessage(fileIndex)
}

type parserState struct {
	cfg    Config
	logger *slog.Logger

	files        []types.DiffFile
	currentFile  *types.DiffFile
	currentBlock *types.DiffBlock

	oldLine  int
	oldLine2 *int
	newLine  int

	possibleOldName string
	possibleNewName string
}

func (s *parserState) saveBlock() {
	if s.currentBlock != nil && s.currentFile != nil {
		s.currentFile.Blocks = append(s.currentFile.Blocks, *s.currentBlock)
	}
	s.currentBlock = nil
}

func (s *parserState) saveFile() {
	if file := s.currentFile; file != nil {
		if file.OldName == "" {
			file.OldName = s.possibleOldName
		}
		if file.NewName == "" {
			file.NewName = s.possibleNewName
		}
		if file.NewName != "" {
			s.files = append(s.files, *file)
		}
	}
	s.currentFile = nil
	s.possibleOldName = ""
	s.possibleNewName = ""
}

func (s *parserState) startFile() {
	s.saveBlock()
	s.saveFile()
	s.currentFile = &types.DiffFile{Blocks: []types.DiffBlock{}}
}

func (s *parserState) startBlock(line string) {
	s.saveBlock()

	if file := s.currentFile; file != nil {
		if m := hunkHeaderRe.FindStringSubmatch(line); m != nil {
			file.IsCombined = false
			s.oldLine = atoi(m[1])
			s.oldLine2 = nil
			s.newLine = atoi(m[2])
		} else if m := combinedHunkHeaderRe.FindStringSubmatch(line); m != nil {
			file.IsCombined = true
			s.oldLine = atoi(m[1])
			s.oldLine2 = types.IntPtr(atoi(m[2]))
			s.newLine = atoi(m[3])
		} else {
			if strings.HasPrefix(line, hunkHeaderPrefix) {
				s.logger.Warn("failed to parse hunk header, starting at 0", "line", line)
			}
			file.IsCombined = false
			s.oldLine = 0
			s.oldLine2 = nil
			s.newLine = 0
		}
	}

	block := types.DiffBlock{
		OldStartLine: s.oldLine,
		NewStartLine: s.newLine,
		Header:       line,
		Lines:        []types.DiffLine{},
	}
	if s.oldLine2 != nil {
		block.OldStartLine2 = types.IntPtr(*s.oldLine2)
	}
	s.currentBlock = &block
}

var (
	addedPrefixes           = []string{"+"}
	deletedPrefixes         = []string{"-"}
	combinedAddedPrefixes   = []string{"+ ", " +", "++"}
	combinedDeletedPrefixes = []string{"- ", " -", "--"}
)

func (s *parserState) createLine(line string) {
	file, block := s.currentFile, s.currentBlock
	if file == nil || block == nil {
		return
	}

	added, deleted := addedPrefixes, deletedPrefixes
	if file.IsCombined {
		added, deleted = combinedAddedPrefixes, combinedDeletedPrefixes
	}

	diffLine := types.DiffLine{Content: line}
	switch {
	case hasAnyPrefix(line, added):
		file.AddedLines++
		diffLine.Type = types.LineInsert
		diffLine.NewNumber = types.IntPtr(s.newLine)
		s.newLine++
	case hasAnyPrefix(line, deleted):
		file.DeletedLines++
		diffLine.Type = types.LineDelete
		diffLine.OldNumber = types.IntPtr(s.oldLine)
		s.oldLine++
	default:
		diffLine.Type = types.LineContext
		diffLine.OldNumber = types.IntPtr(s.oldLine)
		diffLine.NewNumber = types.IntPtr(s.newLine)
		s.oldLine++
		s.newLine++
	}
	block.Lines = append(block.Lines, diffLine)
}

// markTooBig drops everything collected for the current file and installs
// the placeholder block.
func (s *parserState) markTooBig() {
	file := s.currentFile
	file.IsTooBig = true
	file.AddedLines = 0
	file.DeletedLines = 0
	file.Blocks = []types.DiffBlock{}
	s.currentBlock = nil
	s.startBlock(s.cfg.tooBigMessage(len(s.files)))
}

func (s *parserState) isTooBig(line string) bool {
	file := s.currentFile
	if s.cfg.DiffMaxChanges > 0 && file.AddedLines+file.DeletedLines > s.cfg.DiffMaxChanges {
		return true
	}
	return s.cfg.DiffMaxLineLength > 0 && len(line) > s.cfg.DiffMaxLineLength
}

// Parse converts diff text into one DiffFile per file section. Sections
// without a resolvable new name are dropped. The result is never nil.
func Parse(text string, cfg Config) []types.DiffFile {
	s := &parserState{
		cfg:    cfg,
		logger: cfg.logger(),
		files:  []types.DiffFile{},
	}

	lines := splitLines(text)
	hunkAhead := hunkHeaderAhead(lines)

	for i, line := range lines {
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		var prevLine, nextLine, afterNextLine string
		if i > 0 {
			prevLine = lines[i-1]
		}
		if i+1 < len(lines) {
			nextLine = lines[i+1]
		}
		if i+2 < len(lines) {
			afterNextLine = lines[i+2]
		}

		if strings.HasPrefix(line, "diff --git") || strings.HasPrefix(line, "diff --combined") {
			s.startFile()
			if m := gitDiffStartRe.FindStringSubmatch(line); m != nil {
				s.possibleOldName = filename(m[1], "", cfg.SrcPrefix)
				s.possibleNewName = filename(m[2], "", cfg.DstPrefix)
			}
			s.currentFile.IsGitDiff = true
			continue
		}

		if strings.HasPrefix(line, "Binary files") && (s.currentFile == nil || !s.currentFile.IsGitDiff) {
			s.startFile()
			if m := unixDiffBinaryStart.FindStringSubmatch(line); m != nil {
				s.possibleOldName = filename(m[1], "", cfg.SrcPrefix)
				s.possibleNewName = filename(m[2], "", cfg.DstPrefix)
			}
			s.currentFile.IsBinary = true
			continue
		}

		if s.currentFile == nil ||
			(!s.currentFile.IsGitDiff &&
				strings.HasPrefix(line, oldFileNameHeader) &&
				strings.HasPrefix(nextLine, newFileNameHeader) &&
				strings.HasPrefix(afterNextLine, hunkHeaderPrefix)) {
			s.startFile()
		}

		file := s.currentFile
		if file.IsTooBig {
			continue
		}
		if s.isTooBig(line) {
			s.markTooBig()
			continue
		}

		if (strings.HasPrefix(line, oldFileNameHeader) && strings.HasPrefix(nextLine, newFileNameHeader)) ||
			(strings.HasPrefix(line, newFileNameHeader) && strings.HasPrefix(prevLine, oldFileNameHeader)) {
			if file.OldName == "" && strings.HasPrefix(line, oldFileNameHeader) {
				file.OldName = srcFilename(line, cfg.SrcPrefix)
				file.Language = extension(file.OldName, file.Language)
				continue
			}
			if file.NewName == "" && strings.HasPrefix(line, newFileNameHeader) {
				file.NewName = dstFilename(line, cfg.DstPrefix)
				file.Language = extension(file.NewName, file.Language)
				continue
			}
		}

		implicitBlock := file.IsGitDiff && file.OldName != "" && file.NewName != "" && s.currentBlock == nil
		if strings.HasPrefix(line, hunkHeaderPrefix) || implicitBlock {
			s.startBlock(line)
			continue
		}

		if s.currentBlock != nil && (line[0] == '+' || line[0] == '-' || line[0] == ' ') {
			s.createLine(line)
			continue
		}

		applyMetadata(s, line, hunkAhead[i])
	}

	s.saveBlock()
	s.saveFile()
	return s.files
}

// splitLines drops "no newline" markers and normalizes line endings.
// The marker line itself stays behind as an empty line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, `\ No newline at end of file`, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// hunkHeaderAhead reports, per line, whether a ---/+++/@@ triplet starts at
// or after it before the next line beginning with "diff".
func hunkHeaderAhead(lines []string) []bool {
	ahead := make([]bool, len(lines))
	for i := len(lines) - 4; i >= 0; i-- {
		switch {
		case strings.HasPrefix(lines[i], "diff"):
			ahead[i] = false
		case strings.HasPrefix(lines[i], oldFileNameHeader) &&
			strings.HasPrefix(lines[i+1], newFileNameHeader) &&
			strings.HasPrefix(lines[i+2], hunkHeaderPrefix):
			ahead[i] = true
		default:
			ahead[i] = ahead[i+1]
		}
	}
	return ahead
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
