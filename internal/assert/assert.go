// Package assert checks preconditions in debug builds.
//
// Build with -tags acidbasedebug to turn violated preconditions into panics.
// Release builds skip the check entirely and callers fall back to a
// non-crashing result.
package assert

import "fmt"

// That panics with the formatted message when Enabled and cond is false.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
