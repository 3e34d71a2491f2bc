package glow

import "github.com/rs/zerolog"

// ContextBuilderOption is a functional option for configuring a Context.
// Use the With* functions to create options.
type ContextBuilderOption func(c *glowContext)

// WithLogger sets the logger used for diagnostics instead of the shared logging package logger.
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithLogger(logger zerolog.Logger) ContextBuilderOption {
	return func(c *glowContext) {
		c.logger = &logger
	}
}

// WithPanicOnErrors overrides the build default for turning reported errors into panics.
//
// Parameters:
//   - enabled: if true, reported errors panic
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithPanicOnErrors(enabled bool) ContextBuilderOption {
	return func(c *glowContext) {
		c.panics = enabled
	}
}

// WithErrorChecking makes wrappers drain the native error queue after each operation
// that issues native calls. Useful while debugging; costs a round trip per call.
//
// Parameters:
//   - enabled: if true, errors are checked after every wrapped operation
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithErrorChecking(enabled bool) ContextBuilderOption {
	return func(c *glowContext) {
		c.checkErrors = enabled
	}
}
