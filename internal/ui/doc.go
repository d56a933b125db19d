// Package ui renders the OpenCustom code panel as a Bubble Tea program.
//
// # Layout
//
//   - Header: logo, current snippet language and description, playback status
//   - Panel: one numbered row per buffer slot, syntax colored, with the cursor glyph
//   - Footer: short key help, replaced by a toast while one is showing
//
// # Event Flow
//
// The Model owns the animator.Driver. The driver never sleeps; every delay it
// asks for becomes a tea.Tick that comes back as a stepMsg, and Update hands
// the token to Driver.Resume. All driver calls therefore happen on the
// Bubble Tea update goroutine and no locking is needed.
//
//  1. The first tea.WindowSizeMsg sizes the buffer and starts the animation
//     after the configured start delay
//  2. Later size changes call Driver.Resize, which restarts after a settle delay
//  3. Focus loss pauses and focus gain resumes when pause_on_blur is set
//  4. ReloadMsg values from the snippet watcher replace the collection
//
// # Key Bindings
//
//   - space: Play/pause
//   - s / p: Start / pause
//   - n or →: Next snippet
//   - c or y: Copy the last fully typed snippet
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or Ctrl+C: Quit
package ui
