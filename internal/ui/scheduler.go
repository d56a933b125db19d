package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/opencustom/internal/animator"
)

// stepMsg carries a scheduled continuation back to the driver.
type stepMsg struct {
	tok *animator.Token
}

// tickScheduler turns driver delays into tea.Tick commands. The driver
// schedules during Update; flush hands the collected commands to the
// runtime.
type tickScheduler struct {
	pending []tea.Cmd
}

// Schedule implements animator.Scheduler.
func (s *tickScheduler) Schedule(delay time.Duration, tok *animator.Token) {
	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return stepMsg{tok: tok}
	}))
}

func (s *tickScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
