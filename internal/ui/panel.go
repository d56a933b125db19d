package ui

import (
	"fmt"
	"strings"

	"github.com/five82/opencustom/internal/buffer"
	"github.com/five82/opencustom/internal/highlight"
)

// RenderTokens styles a tokenized line with the theme's syntax colors.
func RenderTokens(styles Styles, tokens []highlight.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(styles.Token(tok.Category).Render(tok.Text))
	}
	return b.String()
}

// renderPanel draws the code panel: one numbered row per visible slot,
// clipped to width and padded to height.
func (m Model) renderPanel(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Panel)

	var slots []buffer.Slot
	if buf := m.driver.Buffer(); buf != nil {
		slots = buf.Slots()
	}
	gutterWidth := digits(len(slots))

	lines := make([]string, 0, height)
	for i := 0; i < height && i < len(slots); i++ {
		lines = append(lines, bg.FillLine(clipStyled(m.renderRow(styles, slots[i], gutterWidth), width), width))
	}
	for len(lines) < height {
		lines = append(lines, bg.FillLine("", width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(styles Styles, slot buffer.Slot, gutterWidth int) string {
	var b strings.Builder
	b.WriteString(styles.Gutter.Render(fmt.Sprintf(" %*d │ ", gutterWidth, slot.Index+1)))
	if slot.Visible {
		b.WriteString(RenderTokens(styles, slot.Tokens))
	}
	if slot.Cursor {
		b.WriteString(styles.Cursor.Render(m.cursor))
	}
	return b.String()
}
