package ui

import (
	"github.com/atomicstack/arcmenu/internal/logging/events"
	uistate "github.com/atomicstack/arcmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// applyQuery refreshes the grid after the search text changed: matching
// entries replace the grid while the query is non-blank, and the displayed
// category comes back once it is cleared.
func (m *Model) applyQuery() tea.Cmd {
	results, active := uistate.Search(m.categories, m.searchScope(), m.query.Text)
	if !active {
		return m.showCategory(m.selection.Current)
	}
	events.Filter.Results(m.query.Trimmed(), len(results))
	cmd := m.showResults(results)
	m.bestMatch = uistate.BestMatchIndex(results, m.query.Text)
	return cmd
}
