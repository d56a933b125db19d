package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastStyle determines the visual appearance of a toast.
type toastStyle int

const (
	toastSuccess toastStyle = iota
	toastInfo
	toastWarn
	toastError
)

// toast is a transient one-line notice shown in place of the footer.
type toast struct {
	message string
	style   toastStyle
	visible bool
	seq     int
}

// show displays message and returns the command that will dismiss it.
func (t toast) show(message string, style toastStyle, after time.Duration) (toast, tea.Cmd) {
	t.seq++
	t.message = message
	t.style = style
	t.visible = true
	return t, scheduleDismiss(t.seq, after)
}

// dismiss hides the toast if seq still names the toast on screen.
func (t toast) dismiss(seq int) toast {
	if seq != t.seq {
		return t
	}
	t.visible = false
	t.message = ""
	return t
}

func (t toast) view(theme Theme) string {
	if !t.visible || t.message == "" {
		return ""
	}

	var color, icon string
	switch t.style {
	case toastError:
		color, icon = theme.Danger, "✗"
	case toastWarn:
		color, icon = theme.Warning, "!"
	case toastInfo:
		color, icon = theme.Info, "i"
	default:
		color, icon = theme.Success, "✓"
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render(icon + " " + t.message)
}

// dismissToastMsg signals that the toast with seq should be dismissed.
type dismissToastMsg struct{ seq int }

func scheduleDismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return dismissToastMsg{seq: seq}
	})
}
