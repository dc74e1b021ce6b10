//go:build !easyscreendebug

package easyscreen

// assertf checks internal invariants. Release builds compile it away
// and let the caller downgrade instead; build with the easyscreendebug
// tag to turn violations into panics.
func assertf(cond bool, format string, args ...any) {}
