//go:build !debug

package core

// DebugBuild reports whether assertions are compiled in
const DebugBuild = false

// Assert is a no-op in release builds; callers clamp instead
func Assert(cond bool, msg string) {}

// Assertf is a no-op in release builds; callers clamp instead
func Assertf(cond bool, format string, args ...any) {}
