//go:build easyscreendebug

package easyscreen

import "fmt"

// assertf panics on violated invariants under the easyscreendebug tag
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
