//go:build !glow_panic_errors

package glow

// panicOnErrors makes reported errors panic instead of only being logged.
// Build with -tags glow_panic_errors to enable it by default.
const panicOnErrors = false
