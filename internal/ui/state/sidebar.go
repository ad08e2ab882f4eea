package state

// Sidebar is the ordered list of category rows with a keyboard cursor.
type Sidebar struct {
	Names  []string
	Cursor int
}

// SetNames replaces the rows, keeping the cursor on the same name when it
// is still present.
func (s *Sidebar) SetNames(names []string) {
	prev := s.Name()
	s.Names = append([]string(nil), names...)
	s.Cursor = 0
	if idx := s.IndexOf(prev); idx >= 0 {
		s.Cursor = idx
	}
}

// IndexOf returns the row of name or -1.
func (s *Sidebar) IndexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, n := range s.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Name returns the row under the cursor.
func (s *Sidebar) Name() string {
	if s.Cursor < 0 || s.Cursor >= len(s.Names) {
		return ""
	}
	return s.Names[s.Cursor]
}

// Focus puts the cursor on name when present.
func (s *Sidebar) Focus(name string) bool {
	idx := s.IndexOf(name)
	if idx < 0 || idx == s.Cursor {
		return false
	}
	s.Cursor = idx
	return true
}

// Move shifts the cursor by delta, wrapping around the ends.
func (s *Sidebar) Move(delta int) bool {
	n := len(s.Names)
	if n == 0 {
		return false
	}
	next := ((s.Cursor+delta)%n + n) % n
	if next == s.Cursor {
		return false
	}
	s.Cursor = next
	return true
}
