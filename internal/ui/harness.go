package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
// Timers do not run on their own: they queue until Advance delivers them,
// which makes debounce behaviour deterministic.
type Harness struct {
	model  *Model
	timers []tea.Msg
	quit   bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		model.after = h.schedule
		model.filterCursor.SetMode(cursor.CursorStatic)
	}
	return h
}

func (h *Harness) schedule(_ time.Duration, msg tea.Msg) tea.Cmd {
	h.timers = append(h.timers, msg)
	return nil
}

// Init runs the model's startup commands.
func (h *Harness) Init() {
	if h.model == nil {
		return
	}
	h.processCmd(h.model.Init())
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case tea.QuitMsg:
		h.quit = true
	default:
		h.Send(msg)
	}
}

// Advance fires every pending timer in the order it was armed.
func (h *Harness) Advance() {
	pending := h.timers
	h.timers = nil
	for _, msg := range pending {
		h.Send(msg)
	}
}

// Pending returns the number of armed timers.
func (h *Harness) Pending() int {
	return len(h.timers)
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
