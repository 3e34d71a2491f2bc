package glowwindow

// WindowBuilderOption is a functional option for configuring a window.
// Use the With* functions to create options.
type WindowBuilderOption func(w *window)

// WithTitle sets the title used when Create is called with an empty title.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *window) {
		w.title = title
	}
}

// WithSize sets the size used when Create is called with a zero size.
//
// Parameters:
//   - width: width in screen coordinates
//   - height: height in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *window) {
		w.width = width
		w.height = height
	}
}

// WithMinSize limits how small the user can resize the window. Zero leaves a dimension
// unconstrained.
//
// Parameters:
//   - width: minimum width in screen coordinates
//   - height: minimum height in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinSize(width, height int) WindowBuilderOption {
	return func(w *window) {
		w.minWidth = width
		w.minHeight = height
	}
}

// WithMaxSize limits how large the user can resize the window. Zero leaves a dimension
// unconstrained.
//
// Parameters:
//   - width: maximum width in screen coordinates
//   - height: maximum height in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxSize(width, height int) WindowBuilderOption {
	return func(w *window) {
		w.maxWidth = width
		w.maxHeight = height
	}
}

// WithEventHandler sets the handler that receives the window's events.
//
// Parameters:
//   - handler: the event handler
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithEventHandler(handler WindowEventHandler) WindowBuilderOption {
	return func(w *window) {
		w.handler = handler
	}
}
