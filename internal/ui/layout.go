package ui

import "time"

// Fixed rows around the code panel.
const (
	headerRows = 1
	footerRows = 1
)

// LayoutCompactWidth is the width below which the header drops the
// snippet description.
const LayoutCompactWidth = 70

// Help overlay width.
const helpWidth = 44

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 3 * time.Second

// panelHeight returns the rows available to the code panel.
func panelHeight(height int) int {
	return max(0, height-headerRows-footerRows)
}
