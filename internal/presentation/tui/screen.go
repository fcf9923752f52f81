package tui

import "github.com/muesli/termenv"

// Screen tracks whether the session moved to the alternate screen buffer.
type Screen struct {
	out *termenv.Output
	alt bool
}

// NewScreen wraps out.
func NewScreen(out *termenv.Output) *Screen {
	return &Screen{out: out}
}

// EnterAlt switches to the alternate screen with the cursor at the top left.
func (s *Screen) EnterAlt() {
	if s.alt {
		return
	}
	s.out.AltScreen()
	s.out.MoveCursor(1, 1)
	s.alt = true
}

// InAlt reports whether the alternate screen is active.
func (s *Screen) InAlt() bool {
	return s.alt
}

// Restore leaves the alternate screen if it was entered.
func (s *Screen) Restore() {
	if !s.alt {
		return
	}
	s.out.ExitAltScreen()
	s.alt = false
}
