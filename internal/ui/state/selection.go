package state

import "github.com/atomicstack/arcmenu/internal/logging/events"

// Mode is the state of the category selection machine.
type Mode int

const (
	// ModeIdle shows the selected category.
	ModeIdle Mode = iota
	// ModeHoverPreview shows a category the pointer rested on without
	// changing the selection.
	ModeHoverPreview
)

func (m Mode) String() string {
	if m == ModeHoverPreview {
		return "hover-preview"
	}
	return "idle"
}

// Selection tracks which category is selected, which one is displayed and
// the two debounce timers that move between them. Timers are represented by
// tokens: arming one returns a fresh token and cancelling bumps the counter,
// so an expiry carrying an old token is recognised as stale.
type Selection struct {
	Selected  string
	Current   string
	Hovered   string
	Pointer   string
	InSurface bool
	Mode      Mode

	hoverToken   uint64
	hoverArmed   bool
	restoreToken uint64
	restoreArmed bool
}

// NewSelection starts idle on initial, which may be empty.
func NewSelection(initial string) *Selection {
	s := &Selection{}
	s.Reset(initial)
	return s
}

// Reset returns to Idle(initial) and cancels both timers.
func (s *Selection) Reset(initial string) {
	s.cancelHover()
	s.cancelRestore()
	s.Selected = initial
	s.Current = initial
	s.Hovered = ""
	s.Pointer = ""
	s.InSurface = false
	s.Mode = ModeIdle
}

// HoverPending reports whether a hover timer is armed.
func (s *Selection) HoverPending() bool { return s.hoverArmed }

// RestorePending reports whether a restore timer is armed.
func (s *Selection) RestorePending() bool { return s.restoreArmed }

// Activate commits name as the selection and displays it.
func (s *Selection) Activate(name string) {
	s.cancelHover()
	s.cancelRestore()
	s.Selected = name
	s.Current = name
	s.Hovered = ""
	s.Mode = ModeIdle
	events.Category.Activate(name)
}

// PointerEnter records the pointer over the row for name. When name is not
// already displayed a hover timer is armed and its token returned with true.
func (s *Selection) PointerEnter(name string) (uint64, bool) {
	s.enterSurface()
	if s.Pointer == name && (s.hoverArmed || name == s.Current) {
		return 0, false
	}
	s.Pointer = name
	s.cancelHover()
	if name == "" || name == s.Current {
		return 0, false
	}
	s.hoverToken++
	s.hoverArmed = true
	s.Hovered = name
	events.Category.HoverArm(name, s.hoverToken)
	return s.hoverToken, true
}

// PointerLeaveRow records the pointer leaving a row and cancels a pending
// hover.
func (s *Selection) PointerLeaveRow() {
	s.Pointer = ""
	s.cancelHover()
}

// HoverExpired handles the hover timer firing with token. It reports whether
// the displayed category changed.
func (s *Selection) HoverExpired(token uint64) bool {
	if !s.hoverArmed || token != s.hoverToken {
		events.Category.Stale("hover", token)
		return false
	}
	s.hoverArmed = false
	target := s.Hovered
	s.Hovered = ""
	if target == "" || s.Pointer != target || target == s.Current {
		return false
	}
	s.Current = target
	if s.Current == s.Selected {
		s.Mode = ModeIdle
	} else {
		s.Mode = ModeHoverPreview
	}
	events.Category.HoverCommit(target)
	return true
}

// SurfaceLeave records the pointer leaving the sidebar and grid. While a
// preview is showing a restore timer is armed and its token returned.
func (s *Selection) SurfaceLeave() (uint64, bool) {
	s.InSurface = false
	s.Pointer = ""
	s.cancelHover()
	if s.Mode != ModeHoverPreview {
		return 0, false
	}
	s.restoreToken++
	s.restoreArmed = true
	events.Category.RestoreArm(s.restoreToken)
	return s.restoreToken, true
}

// SurfaceEnter records the pointer returning and cancels a pending restore.
func (s *Selection) SurfaceEnter() {
	s.enterSurface()
}

// RestoreExpired handles the restore timer firing with token. It reports
// whether the displayed category changed back to the selection.
func (s *Selection) RestoreExpired(token uint64) bool {
	if !s.restoreArmed || token != s.restoreToken {
		events.Category.Stale("restore", token)
		return false
	}
	s.restoreArmed = false
	if s.InSurface {
		return false
	}
	changed := s.Current != s.Selected
	s.Current = s.Selected
	s.Mode = ModeIdle
	if changed {
		events.Category.Restore(s.Selected)
	}
	return changed
}

func (s *Selection) enterSurface() {
	s.InSurface = true
	s.cancelRestore()
}

func (s *Selection) cancelHover() {
	if s.hoverArmed {
		events.Category.HoverCancel(s.Hovered)
	}
	s.hoverToken++
	s.hoverArmed = false
	s.Hovered = ""
}

func (s *Selection) cancelRestore() {
	s.restoreToken++
	s.restoreArmed = false
}
