// Package input reads the unified diff text the CLI renders.
package input

import (
	"context"
	"fmt"
	"sort"
)

// Type names an input source on the command line.
type Type string

const (
	TypeFile    Type = "file"
	TypeStdin   Type = "stdin"
	TypeCommand Type = "command"
)

// ParseType validates an --input value.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeFile, TypeStdin, TypeCommand:
		return t, nil
	default:
		return "", fmt.Errorf("invalid input %q: expected file, stdin or command", s)
	}
}

// Request carries the positional arguments and ignore list of one run.
type Request struct {
	Args   []string
	Ignore []string
}

type Source interface {
	Name() string
	Description() string
	Read(ctx context.Context, req Request) (string, error)
}

type Registry struct {
	sources map[Type]Source
}

func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[Type]Source),
	}
}

func (r *Registry) Register(t Type, source Source) {
	r.sources[t] = source
}

func (r *Registry) Get(t Type) Source {
	source, exists := r.sources[t]
	if !exists {
		panic(fmt.Sprintf("BUG: Requested input source '%s' not found in Registry", t))
	}
	return source
}

// Types lists the registered source types in sorted order.
func (r *Registry) Types() []Type {
	types := make([]Type, 0, len(r.sources))
	for t := range r.sources {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
