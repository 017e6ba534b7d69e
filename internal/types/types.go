package types

// LineType classifies a single diff line.
type LineType string

const (
	LineInsert  LineType = "insert"
	LineDelete  LineType = "delete"
	LineContext LineType = "context"
)

// DiffLine is one line of a hunk. Content keeps the prefix characters.
type DiffLine struct {
	Type      LineType `json:"type"`
	Content   string   `json:"content"`
	OldNumber *int     `json:"oldNumber,omitempty"`
	NewNumber *int     `json:"newNumber,omitempty"`
}

// DiffBlock is a hunk. OldStartLine2 is only set for combined diffs.
type DiffBlock struct {
	OldStartLine  int        `json:"oldStartLine"`
	OldStartLine2 *int       `json:"oldStartLine2,omitempty"`
	NewStartLine  int        `json:"newStartLine"`
	Header        string     `json:"header"`
	Lines         []DiffLine `json:"lines"`
}

// DiffFile holds everything the parser learned about one file section.
type DiffFile struct {
	OldName      string      `json:"oldName"`
	NewName      string      `json:"newName"`
	AddedLines   int         `json:"addedLines"`
	DeletedLines int         `json:"deletedLines"`
	IsCombined   bool        `json:"isCombined"`
	IsGitDiff    bool        `json:"isGitDiff"`
	Language     string      `json:"language"`
	Blocks       []DiffBlock `json:"blocks"`

	OldMode             *FileMode `json:"oldMode,omitempty"`
	NewMode             string    `json:"newMode,omitempty"`
	DeletedFileMode     string    `json:"deletedFileMode,omitempty"`
	NewFileMode         string    `json:"newFileMode,omitempty"`
	IsDeleted           bool      `json:"isDeleted,omitempty"`
	IsNew               bool      `json:"isNew,omitempty"`
	IsCopy              bool      `json:"isCopy,omitempty"`
	IsRename            bool      `json:"isRename,omitempty"`
	IsBinary            bool      `json:"isBinary,omitempty"`
	IsTooBig            bool      `json:"isTooBig,omitempty"`
	UnchangedPercentage *int      `json:"unchangedPercentage,omitempty"`
	ChangedPercentage   *int      `json:"changedPercentage,omitempty"`
	ChecksumBefore      *Checksum `json:"checksumBefore,omitempty"`
	ChecksumAfter       string    `json:"checksumAfter,omitempty"`
	Mode                string    `json:"mode,omitempty"`
}

// LineParts is a diff line split into its prefix and the rest.
type LineParts struct {
	Prefix  string `json:"prefix"`
	Content string `json:"content"`
}

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int {
	return &v
}
