package parser

import (
	"regexp"

	"github.com/agusespa/diff2html/internal/types"
)

// metadataRule handles one git extended header line. hunkAhead reports
// whether a ---/+++/@@ triplet follows before the next file section.
type metadataRule struct {
	pattern *regexp.Regexp
	apply   func(s *parserState, m []string, hunkAhead bool)
}

// metadataRules is ordered: the first matching pattern wins.
var metadataRules = []metadataRule{
	{oldModeRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.OldMode = types.SingleMode(m[1])
	}},
	{newModeRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.NewMode = m[1]
	}},
	{deletedFileModeRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.DeletedFileMode = m[1]
		s.currentFile.IsDeleted = true
	}},
	{newFileModeRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.NewFileMode = m[1]
		s.currentFile.IsNew = true
	}},
	{copyFromRe, func(s *parserState, m []string, hunkAhead bool) {
		if !hunkAhead {
			s.currentFile.OldName = m[1]
		}
		s.currentFile.IsCopy = true
	}},
	{copyToRe, func(s *parserState, m []string, hunkAhead bool) {
		if !hunkAhead {
			s.currentFile.NewName = m[1]
		}
		s.currentFile.IsCopy = true
	}},
	{renameFromRe, func(s *parserState, m []string, hunkAhead bool) {
		if !hunkAhead {
			s.currentFile.OldName = m[1]
		}
		s.currentFile.IsRename = true
	}},
	{renameToRe, func(s *parserState, m []string, hunkAhead bool) {
		if !hunkAhead {
			s.currentFile.NewName = m[1]
		}
		s.currentFile.IsRename = true
	}},
	{binaryFilesRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.IsBinary = true
		s.currentFile.OldName = filename(m[1], "", s.cfg.SrcPrefix)
		s.currentFile.NewName = filename(m[2], "", s.cfg.DstPrefix)
		s.startBlock(binaryBlockHeader)
	}},
	{binaryDiffRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.IsBinary = true
		s.startBlock(m[0])
	}},
	{similarityIndexRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.UnchangedPercentage = types.IntPtr(atoi(m[1]))
	}},
	{dissimilarityIndexRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.ChangedPercentage = types.IntPtr(atoi(m[1]))
	}},
	{indexRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.ChecksumBefore = types.SingleChecksum(m[1])
		s.currentFile.ChecksumAfter = m[2]
		if m[3] != "" {
			s.currentFile.Mode = m[3]
		}
	}},
	// Combined headers: the first value is stored as the after value and
	// the remaining two as the before pair.
	{combinedIndexRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.ChecksumBefore = types.MultipleChecksums(m[2], m[3])
		s.currentFile.ChecksumAfter = m[1]
	}},
	{combinedModeRe, func(s *parserState, m []string, _ bool) {
		s.currentFile.OldMode = types.MultipleModes(m[2], m[3])
		s.currentFile.NewMode = m[1]
	}},
}

func applyMetadata(s *parserState, line string, hunkAhead bool) {
	if s.currentFile == nil {
		return
	}
	for _, rule := range metadataRules {
		if m := rule.pattern.FindStringSubmatch(line); m != nil {
			rule.apply(s, m, hunkAhead)
			return
		}
	}
}
