package snippet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_FetchDecodesJSONAndYAML(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/assets/json/code.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"codeSnippets":[{"language":"TypeScript","code":["const a = 1;"]}]}`))
		case "/snippets":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte("- language: Go\n  code: [\"package x\"]\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	c := NewClient()
	list, err := c.Fetch(ctx, server.URL+"/assets/json/code.json")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(list) != 1 || list[0].Language != "TypeScript" {
		t.Fatalf("Fetch = %#v, want one TypeScript snippet", list)
	}

	list, err = c.Fetch(ctx, server.URL+"/snippets")
	if err != nil {
		t.Fatalf("Fetch yaml returned error: %v", err)
	}
	if len(list) != 1 || list[0].Language != "Go" {
		t.Fatalf("Fetch yaml = %#v, want one Go snippet", list)
	}

	if !strings.HasPrefix(gotUserAgent, "opencustom/") {
		t.Fatalf("User-Agent = %q, want opencustom/*", gotUserAgent)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad.json":
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	if _, err := c.Fetch(context.Background(), server.URL+"/bad.json"); err == nil || !strings.Contains(err.Error(), "decode snippets") {
		t.Fatalf("Fetch error = %v, want decode snippets error", err)
	}
	if _, err := c.Fetch(context.Background(), server.URL+"/code.json"); err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("Fetch error = %v, want status 500 error", err)
	}
}

func TestClient_RejectsOtherSchemes(t *testing.T) {
	if _, err := NewClient().Fetch(context.Background(), "ftp://example.com/code.json"); err == nil {
		t.Fatalf("Fetch returned nil error, want scheme error")
	}
	var c *Client
	if _, err := c.Fetch(context.Background(), "http://example.com"); err == nil {
		t.Fatalf("nil client Fetch returned nil error")
	}
}

func TestLoadOrDefault_RemoteFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	res := LoadOrDefault(context.Background(), server.URL+"/code.json")
	if !res.Fallback || res.Err == nil {
		t.Fatalf("LoadOrDefault remote = fallback %v err %v, want fallback with error", res.Fallback, res.Err)
	}
	if res.Source != server.URL+"/code.json" {
		t.Fatalf("Source = %q, want the URL unchanged", res.Source)
	}
}
