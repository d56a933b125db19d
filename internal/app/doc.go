// Package app is the composition root for OpenCustom.
//
// # Overview
//
// Run wires configuration, snippet loading, live reload, and the UI:
//
//  1. Open the debug log when --debug or OPENCUSTOM_DEBUG asks for it
//  2. Load ~/.config/opencustom/config.toml and apply flag overrides
//  3. Resolve the snippet collection, falling back to built-in defaults
//  4. Follow the source: fsnotify for local files, a poller for URLs
//  5. Start the TUI and block until the user quits or ctx is cancelled
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> Prepare()          config.Load + snippet.LoadOrDefault
//	       ├─────> startWatching()    watcher.Watcher -> StartReloader()
//	       ├─────> StartPoller()      remote sources with refresh_interval_s
//	       └─────> ui.Run()           Bubble Tea program (blocks)
//
// Both reload paths send ui.ReloadMsg values on one channel that the UI
// drains. A reload that fails keeps the collection on screen.
//
// # Error Handling
//
// Only an unreadable or malformed config file stops startup. A missing or
// broken snippet source is logged and replaced by the defaults; a watcher
// that cannot start disables live reload. Remote refresh failures back off
// exponentially from the refresh interval, capped at 30 seconds unless the
// interval itself is longer.
package app
