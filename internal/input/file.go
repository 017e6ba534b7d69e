package input

import (
	"context"
	"fmt"
	"io"
	"os"
)

type FileSource struct{}

func (s *FileSource) Name() string {
	return string(TypeFile)
}

func (s *FileSource) Description() string {
	return "Read the diff from the file given as the first argument"
}

func (s *FileSource) Read(_ context.Context, req Request) (string, error) {
	if len(req.Args) == 0 {
		return "", fmt.Errorf("file path required: pass the diff file as an argument")
	}

	content, err := os.ReadFile(req.Args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(content), nil
}

type StdinSource struct {
	Reader io.Reader
}

func (s *StdinSource) Name() string {
	return string(TypeStdin)
}

func (s *StdinSource) Description() string {
	return "Read the diff from standard input"
}

func (s *StdinSource) Read(_ context.Context, _ Request) (string, error) {
	content, err := io.ReadAll(s.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return string(content), nil
}
