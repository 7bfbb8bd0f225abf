//go:build debug

package core

import "fmt"

// DebugBuild reports whether assertions are compiled in
const DebugBuild = true

// Assert panics when cond is false
func Assert(cond bool, msg string) {
	if !cond {
		panic("assertion failed: " + msg)
	}
}

// Assertf panics with a formatted message when cond is false
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
