package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// truncateText shortens plain text to the given display width, adding an
// ellipsis if needed.
func truncateText(value string, width int) string {
	value = strings.TrimSpace(value)
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 1 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "…")
}

// clipStyled cuts an ANSI-styled line to width display cells.
func clipStyled(line string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(line, uint(width), "")
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(s, width)
}

// digits returns the number of decimal digits in n.
func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
