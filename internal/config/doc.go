// Package config loads the OpenCustom TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/opencustom/config.toml
//  3. If the file doesn't exist, return Default()
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	snippets = "~/.config/opencustom/code.json"   # path or http(s) URL
//	theme = "Nightfox"
//	watch = true
//	pause_on_blur = true
//	start_delay_ms = 1000
//	refresh_interval_s = 0                         # refetch URL sources, 0 = never
//
//	[typing]
//	min_ms = 30
//	max_ms = 50
//	line_gap_ms = 100
//
//	[erasing]
//	min_ms = 20
//	max_ms = 30
//	line_gap_ms = 50
//
//	[timing]
//	hold_ms = 3000
//	clear_pause_ms = 800
//	inter_snippet_ms = 500
//	settle_ms = 250
//
//	[panel]
//	line_height = 1
//	margin = 4
//	cursor = "|"
//
//	[[highlight.rules]]
//	pattern = '\bdefer\b'
//	category = "keyword"
//
// Every field is optional. Delays under [typing], [erasing] and [timing]
// must be positive; zero or a negative value keeps the default, so
// hold_ms = 0 restores 3000 rather than removing the hold. start_delay_ms
// and margin accept 0. Tilde expansion is performed for the config path
// and for a snippet path; URLs are left alone. Highlight rules are compiled
// during Load, so an invalid pattern or category is a load error rather than
// a silent runtime fallback.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Invalid highlight rules
//
// Missing config files are NOT an error. The program works out of the box
// with the built-in snippet collection.
package config
