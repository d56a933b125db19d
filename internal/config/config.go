package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/opencustom/internal/animator"
	"github.com/five82/opencustom/internal/highlight"
	"github.com/five82/opencustom/internal/snippet"
)

// Config is the resolved OpenCustom configuration.
type Config struct {
	Path        string // config file that was read, empty when none existed
	Snippets    string
	Theme       string
	Watch       bool
	PauseOnBlur bool
	StartDelay  time.Duration
	Refresh     time.Duration // refetch interval for URL sources, zero disables

	Timing animator.Timing
	Panel  Panel

	Rules []highlight.Rule // extra tokenizer rules, appended after the defaults
}

// Panel describes the code panel geometry.
type Panel struct {
	LineHeight int
	Margin     int
	Cursor     string
}

const (
	defaultConfigPath   = "~/.config/opencustom/config.toml"
	defaultSnippetsPath = "~/.config/opencustom/code.json"
	defaultTheme        = "Nightfox"
	defaultStartDelay   = time.Second
	defaultLineHeight   = 1
	defaultMargin       = 4
	defaultCursor       = "|"
)

type durations struct {
	MinMS     int `toml:"min_ms"`
	MaxMS     int `toml:"max_ms"`
	LineGapMS int `toml:"line_gap_ms"`
}

type fileConfig struct {
	Snippets     string `toml:"snippets"`
	Theme        string `toml:"theme"`
	Watch        *bool  `toml:"watch"`
	PauseOnBlur  *bool  `toml:"pause_on_blur"`
	StartDelayMS *int   `toml:"start_delay_ms"`
	RefreshS     int    `toml:"refresh_interval_s"`

	Typing  durations `toml:"typing"`
	Erasing durations `toml:"erasing"`
	Timing  struct {
		HoldMS         int `toml:"hold_ms"`
		ClearPauseMS   int `toml:"clear_pause_ms"`
		InterSnippetMS int `toml:"inter_snippet_ms"`
		SettleMS       int `toml:"settle_ms"`
	} `toml:"timing"`
	Panel struct {
		LineHeight int    `toml:"line_height"`
		Margin     *int   `toml:"margin"`
		Cursor     string `toml:"cursor"`
	} `toml:"panel"`
	Highlight struct {
		Rules []highlight.RuleSpec `toml:"rules"`
	} `toml:"highlight"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Snippets:    mustExpand(defaultSnippetsPath),
		Theme:       defaultTheme,
		Watch:       true,
		PauseOnBlur: true,
		StartDelay:  defaultStartDelay,
		Timing:      animator.DefaultTiming(),
		Panel: Panel{
			LineHeight: defaultLineHeight,
			Margin:     defaultMargin,
			Cursor:     defaultCursor,
		},
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Path = resolved

	if s := strings.TrimSpace(raw.Snippets); s != "" {
		cfg.Snippets = expandSource(s)
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}
	if raw.PauseOnBlur != nil {
		cfg.PauseOnBlur = *raw.PauseOnBlur
	}
	if raw.StartDelayMS != nil && *raw.StartDelayMS >= 0 {
		cfg.StartDelay = ms(*raw.StartDelayMS)
	}
	if raw.RefreshS > 0 {
		cfg.Refresh = time.Duration(raw.RefreshS) * time.Second
	}

	cfg.Timing = animator.Timing{
		TypeMin:      ms(raw.Typing.MinMS),
		TypeMax:      ms(raw.Typing.MaxMS),
		LineGap:      ms(raw.Typing.LineGapMS),
		EraseMin:     ms(raw.Erasing.MinMS),
		EraseMax:     ms(raw.Erasing.MaxMS),
		EraseLineGap: ms(raw.Erasing.LineGapMS),
		Hold:         ms(raw.Timing.HoldMS),
		ClearPause:   ms(raw.Timing.ClearPauseMS),
		InterSnippet: ms(raw.Timing.InterSnippetMS),
		Settle:       ms(raw.Timing.SettleMS),
	}.Normalized()

	if raw.Panel.LineHeight > 0 {
		cfg.Panel.LineHeight = raw.Panel.LineHeight
	}
	if raw.Panel.Margin != nil && *raw.Panel.Margin >= 0 {
		cfg.Panel.Margin = *raw.Panel.Margin
	}
	if raw.Panel.Cursor != "" {
		cfg.Panel.Cursor = raw.Panel.Cursor
	}

	rules, err := highlight.Compile(raw.Highlight.Rules)
	if err != nil {
		return Config{}, fmt.Errorf("highlight rules: %w", err)
	}
	cfg.Rules = rules

	return cfg, nil
}

// ms converts a millisecond count; non-positive values become zero so the
// timing defaults apply.
func ms(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}

// expandSource expands file paths and leaves URLs untouched.
func expandSource(source string) string {
	if snippet.IsRemote(source) {
		return source
	}
	return mustExpand(source)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return snippet.ExpandPath(defaultConfigPath)
	}
	return snippet.ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := snippet.ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
