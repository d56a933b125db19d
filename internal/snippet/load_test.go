package snippet

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadOrDefault_EmptySourceUsesDefaults(t *testing.T) {
	res := LoadOrDefault(context.Background(), "  ")
	if !res.Fallback || res.Err != nil {
		t.Fatalf("LoadOrDefault(\"\") = fallback %v err %v, want fallback without error", res.Fallback, res.Err)
	}
	if len(res.Snippets) != len(defaultSnippets) {
		t.Fatalf("got %d snippets, want %d defaults", len(res.Snippets), len(defaultSnippets))
	}
}

func TestLoadOrDefault_MissingFileFallsBack(t *testing.T) {
	res := LoadOrDefault(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	if !res.Fallback || res.Err == nil {
		t.Fatalf("LoadOrDefault missing = fallback %v err %v, want fallback with error", res.Fallback, res.Err)
	}
	if !errors.Is(res.Err, os.ErrNotExist) {
		t.Fatalf("Err = %v, want os.ErrNotExist", res.Err)
	}
}

func TestLoadOrDefault_InvalidFileFallsBack(t *testing.T) {
	path := writeFile(t, "code.json", "{broken")
	res := LoadOrDefault(context.Background(), path)
	if !res.Fallback || res.Err == nil {
		t.Fatalf("LoadOrDefault invalid = fallback %v err %v, want fallback with error", res.Fallback, res.Err)
	}
	if res.Source != path {
		t.Fatalf("Source = %q, want %q", res.Source, path)
	}
}

func TestLoadOrDefault_NoCodeFallsBack(t *testing.T) {
	path := writeFile(t, "code.json", `{"codeSnippets":[{"language":"Go","code":[]}]}`)
	res := LoadOrDefault(context.Background(), path)
	if !errors.Is(res.Err, ErrEmpty) {
		t.Fatalf("Err = %v, want ErrEmpty", res.Err)
	}
	if !HasCode(res.Snippets) {
		t.Fatalf("fallback snippets have no code")
	}
}

func TestLoadOrDefault_ReadsFile(t *testing.T) {
	path := writeFile(t, "code.yaml", "codeSnippets:\n  - language: Go\n    code: [\"a\"]\n")
	res := LoadOrDefault(context.Background(), path)
	if res.Fallback || res.Err != nil {
		t.Fatalf("LoadOrDefault = fallback %v err %v, want loaded file", res.Fallback, res.Err)
	}
	if len(res.Snippets) != 1 || res.Snippets[0].Language != "Go" {
		t.Fatalf("Snippets = %#v, want one Go snippet", res.Snippets)
	}
}

func TestLoadFile_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.WriteFile(filepath.Join(home, "code.json"), []byte(`[{"code":["x"]}]`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	list, err := LoadFile("~/code.json")
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("LoadFile = %#v, want one snippet", list)
	}
}

func TestFormatFor(t *testing.T) {
	cases := map[string]Format{
		"code.json":                  FormatJSON,
		"code.YAML":                  FormatYAML,
		"/x/code.yml":                FormatYAML,
		"/api/code.yaml?v=2":         FormatYAML,
		"snippets":                   FormatJSON,
		"https://example.com/c.json": FormatJSON,
	}
	for name, want := range cases {
		if got := FormatFor(name); got != want {
			t.Fatalf("FormatFor(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestIsRemote(t *testing.T) {
	if !IsRemote(" HTTPS://example.com/code.json") {
		t.Fatalf("IsRemote(https) = false, want true")
	}
	if IsRemote("./assets/json/code.json") {
		t.Fatalf("IsRemote(path) = true, want false")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
