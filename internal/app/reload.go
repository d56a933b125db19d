package app

import (
	"context"
	"time"

	"github.com/five82/opencustom/internal/log"
	"github.com/five82/opencustom/internal/snippet"
	"github.com/five82/opencustom/internal/ui"
)

// maxBackoff caps the retry delay for a failing remote source.
const maxBackoff = 30 * time.Second

type loadFunc func(ctx context.Context, source string) ([]snippet.Snippet, error)

// reload loads source once and reports the outcome as a ReloadMsg.
func reload(ctx context.Context, load loadFunc, source string) ui.ReloadMsg {
	list, err := load(ctx, source)
	if err == nil && !snippet.HasCode(list) {
		err = snippet.ErrEmpty
	}
	if err != nil {
		return ui.ReloadMsg{Source: source, Err: err}
	}
	return ui.ReloadMsg{Snippets: list, Source: source}
}

// send delivers msg unless ctx is done first.
func send(ctx context.Context, out chan<- ui.ReloadMsg, msg ui.ReloadMsg) bool {
	select {
	case out <- msg:
		return true
	case <-ctx.Done():
		return false
	}
}

// StartReloader reloads source every time changes fires. It returns
// immediately; the goroutine exits when ctx is cancelled or changes closes.
func StartReloader(ctx context.Context, changes <-chan struct{}, source string, out chan<- ui.ReloadMsg) {
	startReloader(ctx, changes, snippet.Load, source, out)
}

func startReloader(ctx context.Context, changes <-chan struct{}, load loadFunc, source string, out chan<- ui.ReloadMsg) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
			}
			log.Debug(log.CatWatcher, "snippet file changed", "source", source)
			if !send(ctx, out, reload(ctx, load, source)) {
				return
			}
		}
	}()
}

// StartPoller refetches a remote source at a fixed cadence, backing off
// while fetches fail. It returns immediately.
func StartPoller(ctx context.Context, source string, interval time.Duration, out chan<- ui.ReloadMsg) {
	startPoller(ctx, snippet.Load, source, interval, out)
}

func startPoller(ctx context.Context, load loadFunc, source string, interval time.Duration, out chan<- ui.ReloadMsg) {
	if interval <= 0 {
		return
	}
	go func() {
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			msg := reload(ctx, load, source)
			if msg.Err != nil {
				failures++
				log.Warn(log.CatSnippets, "snippet refresh failed", "source", source, "failures", failures, "error", msg.Err)
			} else {
				failures = 0
				if !send(ctx, out, msg) {
					return
				}
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles interval per consecutive failure, capped at
// maxBackoff. A base interval above the cap is never shortened.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return max(maxBackoff, interval)
		}
	}
	return backoff
}
