package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FileMode is either a single mode or one mode per parent in a combined diff.
type FileMode struct {
	Single   string
	Multiple []string
}

// SingleMode returns a FileMode holding one mode.
func SingleMode(mode string) *FileMode {
	return &FileMode{Single: mode}
}

// MultipleModes returns a FileMode holding one mode per parent.
func MultipleModes(modes ...string) *FileMode {
	return &FileMode{Multiple: modes}
}

// IsMultiple reports whether m holds per-parent modes.
func (m FileMode) IsMultiple() bool {
	return m.Multiple != nil
}

func (m FileMode) MarshalJSON() ([]byte, error) {
	return marshalUnion(m.Single, m.Multiple)
}

func (m *FileMode) UnmarshalJSON(data []byte) error {
	single, multiple, err := unmarshalUnion(data)
	if err != nil {
		return fmt.Errorf("invalid file mode: %w", err)
	}
	m.Single, m.Multiple = single, multiple
	return nil
}

// Checksum is either a single blob id or one id per parent in a combined diff.
type Checksum struct {
	Single   string
	Multiple []string
}

// SingleChecksum returns a Checksum holding one id.
func SingleChecksum(sum string) *Checksum {
	return &Checksum{Single: sum}
}

// MultipleChecksums returns a Checksum holding one id per parent.
func MultipleChecksums(sums ...string) *Checksum {
	return &Checksum{Multiple: sums}
}

// IsMultiple reports whether c holds per-parent ids.
func (c Checksum) IsMultiple() bool {
	return c.Multiple != nil
}

func (c Checksum) MarshalJSON() ([]byte, error) {
	return marshalUnion(c.Single, c.Multiple)
}

func (c *Checksum) UnmarshalJSON(data []byte) error {
	single, multiple, err := unmarshalUnion(data)
	if err != nil {
		return fmt.Errorf("invalid checksum: %w", err)
	}
	c.Single, c.Multiple = single, multiple
	return nil
}

func marshalUnion(single string, multiple []string) ([]byte, error) {
	if multiple != nil {
		return json.Marshal(multiple)
	}
	return json.Marshal(single)
}

func unmarshalUnion(data []byte) (string, []string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var multiple []string
		if err := json.Unmarshal(trimmed, &multiple); err != nil {
			return "", nil, err
		}
		if multiple == nil {
			multiple = []string{}
		}
		return "", multiple, nil
	}
	var single string
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return "", nil, err
	}
	return single, nil, nil
}
