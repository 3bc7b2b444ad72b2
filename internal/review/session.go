package review

import "github.com/google/uuid"

// Session is the explicit state of one reviewer's walk through the
// catalog: which filter is active and where the cursor sits inside the
// filtered view. Operations take a Session and return the updated one;
// nothing about the walk lives in package state.
type Session struct {
	ID     uuid.UUID `json:"id"`
	Cursor int       `json:"cursor"`
	Filter Filter    `json:"filter"`
}

// NewSession starts a walk at the top of the given view.
func NewSession(f Filter) Session {
	if f == "" {
		f = FilterAll
	}
	return Session{ID: uuid.New(), Filter: f}
}

// Clamp resnaps the cursor after the view changed under it. A cursor that
// ran past the end restarts at the top rather than pinning to the last
// entry: the view shrank because something was judged, and the top is
// where the remaining work begins.
func (s Session) Clamp(viewLen int) Session {
	if s.Cursor < 0 || s.Cursor >= viewLen {
		s.Cursor = 0
	}
	return s
}

// Advance moves one entry forward, stopping at the end of the view.
func (s Session) Advance(viewLen int) Session {
	if s.Cursor < viewLen-1 {
		s.Cursor++
	}
	return s
}

// Retreat moves one entry back, stopping at the top.
func (s Session) Retreat() Session {
	if s.Cursor > 0 {
		s.Cursor--
	}
	return s
}

// WithFilter switches the active filter and restarts the cursor, since
// positions in one view mean nothing in another.
func (s Session) WithFilter(f Filter) Session {
	if f == s.Filter {
		return s
	}
	s.Filter = f
	s.Cursor = 0
	return s
}
