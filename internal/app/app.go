package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/five82/opencustom/internal/buffer"
	"github.com/five82/opencustom/internal/config"
	"github.com/five82/opencustom/internal/highlight"
	"github.com/five82/opencustom/internal/log"
	"github.com/five82/opencustom/internal/snippet"
	"github.com/five82/opencustom/internal/ui"
	"github.com/five82/opencustom/internal/watcher"
)

// debugEnv enables debug logging when set to 1 or true.
const debugEnv = "OPENCUSTOM_DEBUG"

// defaultLogFile is written in the working directory when debugging.
const defaultLogFile = "opencustom.log"

// Options configure the OpenCustom application. Empty fields defer to the
// config file.
type Options struct {
	ConfigPath string
	Snippets   string // overrides the snippets source
	Theme      string
	Debug      bool
	LogFile    string
	NoWatch    bool
}

// Session is a resolved configuration plus the snippet collection it
// points at.
type Session struct {
	Config    config.Config
	Snippets  snippet.Result
	Tokenizer *highlight.Tokenizer
}

// Prepare loads the config, applies overrides, and resolves the snippet
// collection. A missing or broken snippet source falls back to the built-in
// defaults; only a broken config file is an error.
func Prepare(ctx context.Context, opts Options) (Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Session{}, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	res := snippet.LoadOrDefault(ctx, cfg.Snippets)
	switch {
	case res.Err == nil:
		log.Info(log.CatSnippets, "snippets loaded", "source", res.Source, "count", len(res.Snippets))
	case errors.Is(res.Err, fs.ErrNotExist):
		log.Info(log.CatSnippets, "no snippet file, using defaults", "source", res.Source)
	default:
		log.Warn(log.CatSnippets, "snippet source unusable, using defaults", "source", res.Source, "error", res.Err)
	}

	return Session{
		Config:    cfg,
		Snippets:  res,
		Tokenizer: highlight.WithExtra(cfg.Rules),
	}, nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	if s := strings.TrimSpace(opts.Snippets); s != "" {
		cfg.Snippets = s
		if !snippet.IsRemote(s) {
			if resolved, err := snippet.ExpandPath(s); err == nil {
				cfg.Snippets = resolved
			}
		}
	}
	if t := strings.TrimSpace(opts.Theme); t != "" {
		cfg.Theme = t
	}
	if opts.NoWatch {
		cfg.Watch = false
	}
}

// debugEnabled reports whether --debug or the environment asks for logs.
func debugEnabled(opts Options) bool {
	if opts.Debug {
		return true
	}
	v := strings.ToLower(strings.TrimSpace(os.Getenv(debugEnv)))
	return v == "1" || v == "true"
}

// Run boots the OpenCustom TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if debugEnabled(opts) {
		path := opts.LogFile
		if path == "" {
			path = defaultLogFile
		}
		closeLog, err := log.Init(path, log.LevelDebug)
		if err != nil {
			return err
		}
		defer closeLog()
	}

	sess, err := Prepare(ctx, opts)
	if err != nil {
		return err
	}
	cfg := sess.Config

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reloads := make(chan ui.ReloadMsg)
	source := sess.Snippets.Source
	switch {
	case source == "":
		// Built-in defaults; nothing to follow.
	case snippet.IsRemote(source):
		StartPoller(ctx, source, cfg.Refresh, reloads)
	case cfg.Watch:
		if stop := startWatching(ctx, source, reloads); stop != nil {
			defer stop()
		}
	}

	log.Info(log.CatApp, "starting", "theme", cfg.Theme, "source", source, "fallback", sess.Snippets.Fallback)
	return ui.Run(ui.Options{
		Context:     ctx,
		Buffer:      buffer.New(buffer.MinCapacity, sess.Tokenizer),
		Snippets:    sess.Snippets.Snippets,
		Source:      source,
		Timing:      cfg.Timing,
		LineHeight:  cfg.Panel.LineHeight,
		Margin:      cfg.Panel.Margin,
		Cursor:      cfg.Panel.Cursor,
		ThemeName:   cfg.Theme,
		StartDelay:  cfg.StartDelay,
		PauseOnBlur: cfg.PauseOnBlur,
		Clipboard:   ui.SystemClipboard{},
		Reloads:     reloads,
	})
}

// startWatching follows a local snippet file. Failure to watch is logged
// and the app runs without live reload.
func startWatching(ctx context.Context, path string, out chan<- ui.ReloadMsg) func() {
	w, err := watcher.New(path, watcher.DefaultDebounce)
	if err != nil {
		log.Warn(log.CatWatcher, "live reload disabled", "path", path, "error", err)
		return nil
	}
	changes, err := w.Start()
	if err != nil {
		log.Warn(log.CatWatcher, "live reload disabled", "path", path, "error", err)
		_ = w.Stop()
		return nil
	}
	StartReloader(ctx, changes, path, out)
	return func() { _ = w.Stop() }
}
