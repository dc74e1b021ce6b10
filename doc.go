// Package easyscreen provides a single-session terminal control layer
// with guaranteed restoration on every exit path.
//
// Features:
//   - One process-wide screen session guarded against double initialization
//   - Classic 8-color pairs with a stable identity scheme
//   - Dual coordinate systems: (row, col) from the top-left, (x, y) from the bottom-left
//   - Character, raw, and timed input with pushback and auto-resize handling
//   - Panic-preserving scoped sessions that restore the terminal before reporting
//
// The default provider is tcell, which handles terminfo, raw mode, and event
// decoding. Everything above that is expressed through the Backend interface,
// so tests and embedders can substitute their own provider.
//
// Target environments: Linux, macOS, BSDs, Windows via tcell's console driver.
package easyscreen
