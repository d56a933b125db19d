package snippet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snippet is one unit of source text shown as a single animation cycle.
type Snippet struct {
	Language    string   `json:"language" yaml:"language"`
	Description string   `json:"description" yaml:"description"`
	Lines       []string `json:"code" yaml:"code"`
}

// Text returns the snippet lines joined with newlines.
func (s Snippet) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Empty reports whether the snippet has no lines to type.
func (s Snippet) Empty() bool {
	return len(s.Lines) == 0
}

// document is the code.json wrapper: {"codeSnippets": [...]}.
type document struct {
	CodeSnippets []Snippet `json:"codeSnippets" yaml:"codeSnippets"`
}

// Format selects the decoder for a snippet resource.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Decode parses a snippet collection. Both the {"codeSnippets": [...]}
// wrapper and a bare list are accepted.
func Decode(data []byte, format Format) ([]Snippet, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) ([]Snippet, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Snippet
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode snippets: %w", err)
		}
		return list, nil
	}
	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode snippets: %w", err)
	}
	return doc.CodeSnippets, nil
}

func decodeYAML(data []byte) ([]Snippet, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decode snippets: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var list []Snippet
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("decode snippets: %w", err)
		}
		return list, nil
	}
	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode snippets: %w", err)
	}
	return doc.CodeSnippets, nil
}

// Clone returns a deep copy of list.
func Clone(list []Snippet) []Snippet {
	if len(list) == 0 {
		return nil
	}
	out := make([]Snippet, len(list))
	for i, s := range list {
		out[i] = s
		out[i].Lines = append([]string(nil), s.Lines...)
	}
	return out
}
