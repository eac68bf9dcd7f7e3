package sprite

// StageBuilderOption is a function that configures a sprite Stage during construction.
type StageBuilderOption func(*stageImpl)

// WithProjectionMode is an option builder that sets the projection z-term mode.
//
// Parameters:
//   - mode: the projection mode to use
//
// Returns:
//   - StageBuilderOption: a function that applies the mode option to a stageImpl
func WithProjectionMode(mode ProjectionMode) StageBuilderOption {
	return func(s *stageImpl) {
		s.mode = mode
	}
}

// WithProjectionOffset is an option builder that sets the projection offset.
// Hosts rendering into the full window leave this at the default (0, 0).
//
// Parameters:
//   - x: the horizontal offset (becomes the projection's left edge)
//   - y: the vertical offset (becomes the projection's top edge)
//
// Returns:
//   - StageBuilderOption: a function that applies the offset option to a stageImpl
func WithProjectionOffset(x, y float32) StageBuilderOption {
	return func(s *stageImpl) {
		s.offsetX = x
		s.offsetY = y
	}
}
