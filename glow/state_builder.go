package glow

// StateBuilderOption is a functional option for NewState.
type StateBuilderOption func(*state)

// WithStateMode sets the initial mode of the state.
//
// Parameters:
//   - mode: StateImmediate or StateDeferred
//
// Returns:
//   - StateBuilderOption: a function that applies the mode to the state
func WithStateMode(mode StateMode) StateBuilderOption {
	return func(s *state) {
		s.mode = mode
	}
}
