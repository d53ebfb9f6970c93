// Package viz provides terminal rendering for machine runs.
//
// The package implements two surfaces on the Bubble Tea framework:
//
//   - [Model]: live view stepping a machine on a frame tick
//   - [App]: interactive menu (preset selection, free input entry)
//
// plus plain-text helpers (tape window, step table, verdict banner) used
// by the non-interactive CLI commands. Everything here consumes the
// engine's Step/Run surface and the trace; no simulation logic lives in
// this package.
//
// # Key Bindings (live view)
//
//	Space - Pause/Resume
//	R     - Reset to the initial configuration
//	+/-   - Faster/slower stepping
//	Q     - Quit
package viz
