package ui

import (
	"unicode"

	"github.com/atomicstack/arcmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.query.Pos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the search query. Edits that change the text
// return the command that refreshes the grid.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	q := &m.query
	switch msg.String() {
	case "ctrl+u":
		before := q.Pos()
		if !q.DeleteToStart() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		if !q.Active() {
			events.Filter.Cleared(m.selection.Current)
		}
		return true, m.applyQuery()
	case "ctrl+w":
		before := q.Pos()
		if !q.DeleteWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.WordBackspace(q.Text)
		return true, m.applyQuery()
	case "ctrl+a":
		return m.moveFilterCursor(q.MoveStart, false), nil
	case "ctrl+e":
		return m.moveFilterCursor(q.MoveEnd, false), nil
	case "ctrl+b":
		return m.moveFilterCursor(q.MoveRuneBackward, false), nil
	case "ctrl+f":
		return m.moveFilterCursor(q.MoveRuneForward, false), nil
	case "alt+b":
		return m.moveFilterCursor(q.MoveWordBackward, true), nil
	case "alt+f":
		return m.moveFilterCursor(q.MoveWordForward, true), nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.removeFilterRune() {
			return true, m.applyQuery()
		}
		return false, nil
	case tea.KeyRunes:
		if msg.Alt {
			return false, nil
		}
		if len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
			if unicode.IsSpace(r) {
				// allow the dedicated space handler to manage spaces
				return false, nil
			}
		}
		if m.appendToFilter(string(msg.Runes)) {
			return true, m.applyQuery()
		}
		return false, nil
	case tea.KeySpace:
		if m.appendToFilter(" ") {
			return true, m.applyQuery()
		}
		return false, nil
	}
	return false, nil
}

func (m *Model) moveFilterCursor(move func() bool, word bool) bool {
	before := m.query.Pos()
	if !move() {
		return false
	}
	m.noteFilterCursorChange(before)
	if word {
		events.Filter.CursorWord(m.query.Cursor)
	} else {
		events.Filter.Cursor(m.query.Cursor)
	}
	return true
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	before := m.query.Pos()
	if !m.query.Insert(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Append(m.query.Text)
	return true
}

func (m *Model) removeFilterRune() bool {
	before := m.query.Pos()
	if !m.query.DeleteRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Backspace(m.query.Text)
	return true
}

func (m *Model) filterPrompt() string {
	st := m.styles
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if st.Cursor != nil {
		m.filterCursor.Style = st.Cursor.Copy()
	}
	if st.Filter != nil {
		m.filterCursor.TextStyle = st.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if st.FilterPrompt != nil {
		prompt = st.FilterPrompt.Render(prompt)
	}
	text := m.query.Text
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if st.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = st.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(st.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.query.Pos()
	before := render(st.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(st.Filter, string(runes[pos+1:]))
	}
	caret := m.renderFilterCursor(caretRune)
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if m.styles.Cursor != nil {
		cursorStyle := m.styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
