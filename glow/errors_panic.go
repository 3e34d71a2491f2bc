//go:build glow_panic_errors

package glow

// panicOnErrors makes reported errors panic instead of only being logged.
const panicOnErrors = true
