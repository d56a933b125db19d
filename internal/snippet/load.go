package snippet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmpty reports a source that decoded to no usable snippets.
var ErrEmpty = errors.New("no snippets with code")

// Result describes where a collection came from.
type Result struct {
	Snippets []Snippet
	Source   string // resolved path or URL; empty for built-in defaults
	Fallback bool   // true when Defaults were substituted
	Err      error  // reason for the fallback, nil when source was empty
}

// IsRemote reports whether source names an http(s) resource.
func IsRemote(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// FormatFor picks a decoder from the resource name's extension.
func FormatFor(name string) Format {
	lower := strings.ToLower(name)
	if i := strings.IndexAny(lower, "?#"); i >= 0 {
		lower = lower[:i]
	}
	switch filepath.Ext(lower) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a collection from a file path or an http(s) URL.
func Load(ctx context.Context, source string) ([]Snippet, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("snippet source is empty")
	}
	if IsRemote(source) {
		client := NewClient()
		return client.Fetch(ctx, source)
	}
	return LoadFile(source)
}

// LoadFile reads and decodes a snippet file.
func LoadFile(path string) ([]Snippet, error) {
	resolved, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read snippets: %w", err)
	}
	return Decode(data, FormatFor(resolved))
}

// LoadOrDefault loads source and substitutes Defaults when it is empty,
// unreadable, malformed, or holds no snippet with code. It never fails.
func LoadOrDefault(ctx context.Context, source string) Result {
	source = strings.TrimSpace(source)
	if source == "" {
		return Result{Snippets: Defaults(), Fallback: true}
	}
	if !IsRemote(source) {
		if resolved, err := ExpandPath(source); err == nil {
			source = resolved
		}
	}

	list, err := Load(ctx, source)
	if err == nil && !HasCode(list) {
		err = ErrEmpty
	}
	if err != nil {
		return Result{Snippets: Defaults(), Source: source, Fallback: true, Err: err}
	}
	return Result{Snippets: list, Source: source}
}

// HasCode reports whether any snippet in list has at least one line.
func HasCode(list []Snippet) bool {
	for _, s := range list {
		if !s.Empty() {
			return true
		}
	}
	return false
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
