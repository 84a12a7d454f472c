// Package viewer implements the full-screen lightbox: a state machine that
// is either closed or open at an index into the current bookmark list, with
// circular prev/next navigation.
package viewer

// State tracks the lightbox cursor. The zero value is closed.
type State struct {
	open  bool
	index int
}

func NewState() *State {
	return &State{}
}

// Open moves to Open(i) when i is a valid position in a list of length n.
// Callers are responsible for refusing broken records before calling Open.
func (s *State) Open(i, n int) bool {
	if i < 0 || i >= n {
		return false
	}
	s.open = true
	s.index = i
	return true
}

func (s *State) Close() {
	s.open = false
	s.index = 0
}

func (s *State) IsOpen() bool { return s.open }

// Index returns the open position; only meaningful while IsOpen.
func (s *State) Index() int { return s.index }

// Prev steps backwards, wrapping from 0 to n-1.
func (s *State) Prev(n int) {
	if !s.open || n <= 0 {
		return
	}
	s.index = (s.index - 1 + n) % n
}

// Next steps forwards, wrapping from n-1 to 0.
func (s *State) Next(n int) {
	if !s.open || n <= 0 {
		return
	}
	s.index = (s.index + 1) % n
}

// Reindex adjusts the cursor after the record at removed was deleted,
// leaving a list of length n. The viewer closes only when the list becomes
// empty. When the removed position was before the cursor the cursor shifts
// down by one so the same record stays in view; otherwise it is clamped to
// the new end.
func (s *State) Reindex(removed, n int) {
	if !s.open {
		return
	}
	if n <= 0 {
		s.Close()
		return
	}
	if removed >= 0 && removed < s.index {
		s.index--
	}
	if s.index > n-1 {
		s.index = n - 1
	}
	if s.index < 0 {
		s.index = 0
	}
}
