package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/opencustom/internal/animator"
	"github.com/five82/opencustom/internal/buffer"
	"github.com/five82/opencustom/internal/log"
	"github.com/five82/opencustom/internal/snippet"
)

// ReloadMsg delivers a freshly loaded snippet collection.
type ReloadMsg struct {
	Snippets []snippet.Snippet
	Source   string
	Err      error
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Buffer      *buffer.Buffer
	Snippets    []snippet.Snippet
	Source      string // shown in the help overlay
	Timing      animator.Timing
	LineHeight  int
	Margin      int
	Cursor      string
	ThemeName   string
	StartDelay  time.Duration
	PauseOnBlur bool
	Clipboard   Clipboard
	Reloads     <-chan ReloadMsg

	// DriverOptions are appended after the options derived above.
	DriverOptions []animator.Option
}

// Model is the root application state for Bubble Tea.
type Model struct {
	driver *animator.Driver
	sched  *tickScheduler

	// Configuration
	source      string
	cursor      string
	startDelay  time.Duration
	pauseOnBlur bool
	clipboard   Clipboard
	reloads     <-chan ReloadMsg

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	toast    toast
	width    int
	height   int
	ready    bool
	showHelp bool

	// pausedByBlur is set when a blur stopped a running or pending cycle,
	// so focus only resumes what the blur paused.
	pausedByBlur bool
}

// New creates a new Bubble Tea model and the driver it owns.
func New(opts Options) Model {
	buf := opts.Buffer
	if buf == nil {
		buf = buffer.New(buffer.MinCapacity, nil)
	}
	cursor := opts.Cursor
	if cursor == "" {
		cursor = "|"
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	sched := &tickScheduler{}
	driverOpts := append([]animator.Option{
		animator.WithTiming(opts.Timing),
		animator.WithLineMetrics(opts.LineHeight, opts.Margin),
	}, opts.DriverOptions...)

	m := Model{
		driver:      animator.New(buf, sched, opts.Snippets, driverOpts...),
		sched:       sched,
		source:      opts.Source,
		cursor:      cursor,
		startDelay:  opts.StartDelay,
		pauseOnBlur: opts.PauseOnBlur,
		clipboard:   clip,
		reloads:     opts.Reloads,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
	m.applyHelpStyles()
	return m
}

// Driver returns the animation driver owned by the model.
func (m Model) Driver() *animator.Driver {
	return m.driver
}

func (m *Model) applyHelpStyles() {
	styles := m.theme.Styles()
	bg := lipgloss.Color(m.theme.Surface)
	m.help.Styles.ShortKey = styles.AccentText.Background(bg)
	m.help.Styles.ShortDesc = styles.MutedText.Background(bg)
	m.help.Styles.ShortSeparator = styles.FaintText.Background(bg)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.driver.Resume(msg.tok)
		return m, m.sched.flush()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.driver.Resize(panelHeight(msg.Height))
		if !m.ready {
			m.ready = true
			m.driver.StartAfter(m.startDelay)
		}
		return m, m.sched.flush()

	case tea.FocusMsg:
		if m.pauseOnBlur && m.pausedByBlur {
			m.pausedByBlur = false
			m.driver.Start()
		}
		return m, m.sched.flush()

	case tea.BlurMsg:
		if m.pauseOnBlur {
			st := m.driver.State()
			if st.Animating || st.Phase == animator.PhaseSettling {
				m.pausedByBlur = true
			}
			m.driver.Pause()
		}
		return m, nil

	case ReloadMsg:
		cmd := m.handleReload(msg)
		return m, tea.Batch(cmd, m.sched.flush(), waitForReload(m.reloads))

	case dismissToastMsg:
		m.toast = m.toast.dismiss(msg.seq)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if body := m.renderPanel(m.width, panelHeight(m.height)); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help; quit still quits.
		m.showHelp = false
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.driver.Toggle()

	case key.Matches(msg, m.keys.Start):
		m.driver.Start()

	case key.Matches(msg, m.keys.Pause):
		m.driver.Pause()

	case key.Matches(msg, m.keys.Next):
		m.driver.Next()

	case key.Matches(msg, m.keys.Copy):
		cmd = m.copySnippet()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyHelpStyles()
		log.Debug(log.CatUI, "theme changed", "theme", m.theme.Name)
	}

	return m, tea.Batch(cmd, m.sched.flush())
}

func (m *Model) copySnippet() tea.Cmd {
	code, ok := m.driver.CopySnapshot()
	if !ok {
		return m.notify("Nothing to copy yet", toastInfo)
	}
	if err := m.clipboard.WriteAll(code); err != nil {
		log.ErrorErr(log.CatUI, "copy to clipboard failed", err)
		return m.notify("Copy failed: "+err.Error(), toastError)
	}
	return m.notify(fmt.Sprintf("Copied %d lines", strings.Count(code, "\n")+1), toastSuccess)
}

func (m *Model) handleReload(msg ReloadMsg) tea.Cmd {
	if msg.Err != nil {
		log.Warn(log.CatSnippets, "snippet reload failed, keeping current collection", "source", msg.Source, "error", msg.Err)
		return m.notify("Reload failed: "+msg.Err.Error(), toastWarn)
	}
	if msg.Source != "" {
		m.source = msg.Source
	}
	m.driver.SetSnippets(msg.Snippets)
	log.Info(log.CatSnippets, "snippets reloaded", "source", msg.Source, "count", len(msg.Snippets))
	return m.notify(fmt.Sprintf("Reloaded %d snippets", len(msg.Snippets)), toastInfo)
}

func (m *Model) notify(message string, style toastStyle) tea.Cmd {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.show(message, style, ToastDuration)
	return cmd
}

// waitForReload blocks on the next reload. A nil channel yields no command.
func waitForReload(ch <-chan ReloadMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
