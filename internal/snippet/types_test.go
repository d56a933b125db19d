package snippet

import (
	"strings"
	"testing"
)

func TestDecode_JSONWrapper(t *testing.T) {
	data := []byte(`{"codeSnippets":[{"language":"Go","description":"d","code":["a","b"]}]}`)
	list, err := Decode(data, FormatJSON)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(list) != 1 || list[0].Language != "Go" || len(list[0].Lines) != 2 {
		t.Fatalf("Decode = %#v, want one Go snippet with 2 lines", list)
	}
	if got := list[0].Text(); got != "a\nb" {
		t.Fatalf("Text() = %q, want %q", got, "a\nb")
	}
}

func TestDecode_JSONBareList(t *testing.T) {
	list, err := Decode([]byte(`  [{"code":["x"]},{"code":[]}]`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(list) != 2 || !list[1].Empty() {
		t.Fatalf("Decode = %#v, want 2 snippets with the second empty", list)
	}
}

func TestDecode_YAML(t *testing.T) {
	wrapped := `
codeSnippets:
  - language: Python
    description: hello
    code:
      - "print('hi')"
`
	list, err := Decode([]byte(wrapped), FormatYAML)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(list) != 1 || list[0].Lines[0] != "print('hi')" {
		t.Fatalf("Decode = %#v, want one python snippet", list)
	}

	bare := "- language: Go\n  code: [\"package main\"]\n"
	list, err = Decode([]byte(bare), FormatYAML)
	if err != nil {
		t.Fatalf("Decode bare returned error: %v", err)
	}
	if len(list) != 1 || list[0].Language != "Go" {
		t.Fatalf("Decode bare = %#v, want one Go snippet", list)
	}

	list, err = Decode(nil, FormatYAML)
	if err != nil || list != nil {
		t.Fatalf("Decode(nil) = %#v, %v; want nil, nil", list, err)
	}
}

func TestDecode_InvalidFails(t *testing.T) {
	if _, err := Decode([]byte(`{not json`), FormatJSON); err == nil || !strings.Contains(err.Error(), "decode snippets") {
		t.Fatalf("Decode JSON error = %v, want decode snippets error", err)
	}
	if _, err := Decode([]byte("codeSnippets: [\n"), FormatYAML); err == nil {
		t.Fatalf("Decode YAML returned nil error, want error")
	}
}

func TestDefaults_AreIndependentCopies(t *testing.T) {
	a := Defaults()
	if len(a) == 0 || !HasCode(a) {
		t.Fatalf("Defaults() = %d snippets, want non-empty with code", len(a))
	}
	a[0].Lines[0] = "mutated"
	b := Defaults()
	if b[0].Lines[0] == "mutated" {
		t.Fatalf("Defaults() shares backing arrays between calls")
	}
	if a[0].Language != "TypeScript" {
		t.Fatalf("Defaults()[0].Language = %q, want TypeScript", a[0].Language)
	}
}
