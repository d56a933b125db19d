package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/opencustom/internal/animator"
)

const logoText = "OpenCustom"

// renderHeader draws the top bar: logo and snippet on the left, playback
// status on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	st := m.driver.State()

	left := bg.Spaces(1) + bg.Render(logoText, styles.Logo)
	if st.Language != "" {
		left += bg.Spaces(2) + bg.Render(st.Language, styles.WarningText)
	}
	if st.Description != "" && m.width >= LayoutCompactWidth {
		left += bg.Spaces(1) + bg.Render("· "+st.Description, styles.MutedText)
	}

	right := bg.Render(statusLabel(st), statusStyle(styles, st))
	if st.Count > 0 {
		right += bg.Spaces(2) + bg.Render(fmt.Sprintf("%d/%d", st.Index+1, st.Count), styles.FaintText)
	}
	right += bg.Spaces(1)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return bg.FillLine(clipStyled(left, m.width), m.width)
	}
	return left + bg.Spaces(gap) + right
}

func statusLabel(st animator.State) string {
	switch {
	case st.Count == 0:
		return "no snippets"
	case st.Phase == animator.PhaseSettling:
		return "◌ starting"
	case !st.Animating:
		return "❚❚ paused"
	default:
		return "▶ " + st.Phase.String()
	}
}

func statusStyle(styles Styles, st animator.State) lipgloss.Style {
	switch {
	case st.Count == 0:
		return styles.DangerText
	case !st.Animating:
		return styles.MutedText
	default:
		return styles.SuccessText
	}
}

// renderFooter draws the bottom bar: the active toast, or the short help.
func (m Model) renderFooter() string {
	bg := NewBgStyle(m.theme.Surface)
	content := m.toast.view(m.theme)
	if content == "" {
		content = m.help.View(m.keys)
	}
	return bg.FillLine(clipStyled(bg.Spaces(1)+content, m.width), m.width)
}
