package engine

// Screen reports the current drawable surface shape to the objects that depend on it.
type Screen interface {
	Aspect() float32
}

// FixedScreen is a Screen with a fixed size, useful for headless runs and tests.
type FixedScreen struct {
	Width  int
	Height int
}

// Aspect returns Width/Height, or 1 when the height is not positive.
func (s *FixedScreen) Aspect() float32 {
	if s.Height <= 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// Resize changes the dimensions reported by the screen.
func (s *FixedScreen) Resize(width, height int) {
	s.Width = width
	s.Height = height
}
