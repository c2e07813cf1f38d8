// Package viz renders algorithm traces in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Menu]: algorithm picker that opens a player on selection
//   - [Player]: steps through one trace, driven by a playback controller
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Play/Pause
//	←/→   - Step backward/forward
//	R     - Reset to the first frame
//	g/G   - Jump to the first/last frame
//	0-9   - Jump to a tenth of the way through (9 is the end)
//	+/-   - Walk the speed ladder
//	T     - Cycle color themes
//	?     - Show help overlay
//
// The player redraws when the controller reports a change, so auto-advance
// needs no ticker of its own.
package viz
