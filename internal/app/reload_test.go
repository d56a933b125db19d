package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/opencustom/internal/snippet"
	"github.com/five82/opencustom/internal/ui"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestCalculateBackoff_LongIntervalKept(t *testing.T) {
	if got := calculateBackoff(3, time.Minute); got != time.Minute {
		t.Fatalf("calculateBackoff(3, 1m) = %v, want 1m", got)
	}
}

func TestReload_EmptyCollectionIsError(t *testing.T) {
	load := func(context.Context, string) ([]snippet.Snippet, error) {
		return []snippet.Snippet{{Language: "Go"}}, nil
	}
	msg := reload(context.Background(), load, "code.json")
	if !errors.Is(msg.Err, snippet.ErrEmpty) {
		t.Fatalf("reload Err = %v, want ErrEmpty", msg.Err)
	}
	if msg.Source != "code.json" {
		t.Fatalf("reload Source = %q, want code.json", msg.Source)
	}
}

func TestStartReloader_SendsOnChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{})
	out := make(chan ui.ReloadMsg)
	load := func(_ context.Context, source string) ([]snippet.Snippet, error) {
		return []snippet.Snippet{{Language: "Go", Lines: []string{source}}}, nil
	}
	startReloader(ctx, changes, load, "a.json", out)

	changes <- struct{}{}
	select {
	case msg := <-out:
		if msg.Err != nil || len(msg.Snippets) != 1 || msg.Snippets[0].Lines[0] != "a.json" {
			t.Fatalf("unexpected reload message: %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("no reload message after change")
	}
}

func TestStartPoller_BacksOffAndRecovers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	load := func(context.Context, string) ([]snippet.Snippet, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("status 503")
		}
		return []snippet.Snippet{{Lines: []string{"ok"}}}, nil
	}
	out := make(chan ui.ReloadMsg, 1)
	startPoller(ctx, load, "https://example.com/code.json", 10*time.Millisecond, out)

	select {
	case msg := <-out:
		if msg.Err != nil {
			t.Fatalf("poller forwarded a failed fetch: %v", msg.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("poller never recovered")
	}
	if got := calls.Load(); got < 2 {
		t.Fatalf("load called %d times, want at least 2", got)
	}
}

func TestStartPoller_DisabledWithoutInterval(t *testing.T) {
	out := make(chan ui.ReloadMsg, 1)
	startPoller(context.Background(), nil, "x", 0, out)

	select {
	case msg := <-out:
		t.Fatalf("unexpected message %+v", msg)
	case <-time.After(30 * time.Millisecond):
	}
}
