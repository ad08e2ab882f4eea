package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/arcmenu/internal/sysinfo"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const footerHint = "←↑↓→ move  enter launch  ^K actions  tab/alt+enter categories  ^N/^P next/prev  esc quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	l := m.layout()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(l),
		m.renderGutter(l),
		m.renderGridArea(l),
	)
	return strings.Join([]string{
		m.renderHeader(l),
		m.styles.Border.Render(strings.Repeat("─", l.width)),
		body,
		m.renderBottom(l),
	}, "\n")
}

func (m *Model) renderHeader(l layout) string {
	st := m.styles
	hostname := m.host.Hostname
	if hostname == "" {
		hostname = sysinfo.UnknownHost
	}
	system := st.OS.Render(m.host.OS)
	if m.host.Kernel != "" {
		system += st.Border.Render(" · ") + st.Kernel.Render(m.host.Kernel)
	}
	lines := []string{st.Hostname.Render(hostname), system}
	rows := make([]string, headerRows)
	for i := range rows {
		prefix := ""
		if m.profile != nil {
			if i < len(m.profile.Rows) {
				prefix = m.profile.Rows[i]
			} else {
				prefix = strings.Repeat(" ", m.profile.Width())
			}
			prefix += " "
		}
		rows[i] = fit(prefix+" "+lines[i], l.width)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderSidebar(l layout) string {
	rows := make([]string, l.bodyHeight)
	for r := range rows {
		idx := m.sidebarOffset + r
		if idx < 0 || idx >= len(m.sidebar.Names) {
			rows[r] = m.styles.Sidebar.Render(strings.Repeat(" ", l.sidebar))
			continue
		}
		rows[r] = m.sidebarRow(m.sidebar.Names[idx], idx, l.sidebar)
	}
	return strings.Join(rows, "\n")
}

// sidebarRow renders one category. The selection is highlighted, a
// previewed or hovered category gets the hover background, and the keyboard
// cursor is marked by the indicator.
func (m *Model) sidebarRow(name string, idx, width int) string {
	st := m.styles
	style := st.SidebarItem
	switch {
	case name == m.selection.Selected:
		style = st.SidebarSelected
	case name == m.selection.Current || name == m.selection.Pointer:
		style = st.SidebarHover
	}
	indicator := st.SidebarIndicator.Render("▌")
	if idx == m.sidebar.Cursor {
		indicator = st.SidebarCursor.Render("▌")
	}
	iconCell := ""
	if ic := m.sidebarIcons[name]; ic != nil && len(ic.Rows) > 0 {
		iconCell = ic.Rows[0]
	}
	labelWidth := width - 1 - lipgloss.Width(iconCell)
	return indicator + iconCell + style.Render(fit(" "+name, labelWidth))
}

func (m *Model) renderGutter(l layout) string {
	rows := make([]string, l.bodyHeight)
	for i := range rows {
		rows[i] = m.styles.Border.Render("│")
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderGridArea(l layout) string {
	var rows []string
	switch {
	case m.prompt != nil:
		rows = m.promptLines(l)
	case len(m.grid.Tiles) == 0 && m.grid.Finalized:
		rows = []string{m.styles.Info.Render(m.emptyMessage())}
	case len(m.grid.Tiles) == 0:
		rows = []string{m.styles.Info.Render("Loading…")}
	default:
		rows = m.tileRows(l)
	}
	return strings.Join(fitRows(rows, l.gridWidth, l.bodyHeight), "\n")
}

func (m *Model) emptyMessage() string {
	if m.query.Active() {
		return fmt.Sprintf("No matches for %q", m.query.Trimmed())
	}
	return "(no applications)"
}

func (m *Model) tileRows(l layout) []string {
	g := m.grid
	out := make([]string, 0, l.bodyHeight)
	for r := 0; r < l.visibleRows; r++ {
		first := (g.Offset + r) * g.Cols
		if first >= len(g.Tiles) {
			break
		}
		blocks := make([][]string, 0, g.Cols)
		for c := 0; c < g.Cols && first+c < len(g.Tiles); c++ {
			blocks = append(blocks, m.renderTile(first+c, l))
		}
		for line := 0; line < l.tileHeight; line++ {
			var b strings.Builder
			for _, block := range blocks {
				b.WriteString(block[line])
			}
			out = append(out, b.String())
		}
	}
	return out
}

func (m *Model) renderTile(idx int, l layout) []string {
	tile := m.grid.Tiles[idx]
	st := m.styles
	style := st.Tile
	switch idx {
	case m.grid.Cursor:
		style = st.TileSelected
	case m.hoverTile:
		style = st.TileHover
	}
	lines := make([]string, 0, l.tileHeight)
	for i := 0; i < l.iconRows; i++ {
		row := ""
		if tile.Icon != nil && i < len(tile.Icon.Rows) {
			row = tile.Icon.Rows[i]
		}
		lines = append(lines, center(row, l.tileWidth))
	}
	for _, label := range tileLabel(tile.Entry.Name, l.tileWidth-2) {
		lines = append(lines, style.Render(center(label, l.tileWidth)))
	}
	return lines
}

// tileLabel wraps name onto the label rows, truncating whatever does not
// fit.
func tileLabel(name string, width int) []string {
	lines := make([]string, tileLabelRows)
	if width <= 0 {
		return lines
	}
	wrapped := strings.Split(ansi.Wordwrap(name, width, ""), "\n")
	for i := range lines {
		if i < len(wrapped) {
			lines[i] = wrapped[i]
		}
	}
	if len(wrapped) > tileLabelRows {
		lines[tileLabelRows-1] = strings.Join(wrapped[tileLabelRows-1:], " ")
	}
	for i := range lines {
		lines[i] = ansi.Truncate(strings.TrimSpace(lines[i]), width, "…")
	}
	return lines
}

func (m *Model) promptLines(l layout) []string {
	p := m.prompt
	st := m.styles
	lines := make([]string, 0, len(p.choices)+1)
	lines = append(lines, st.PromptTitle.Render(fit(p.entry.Name, l.gridWidth)))
	for i, choice := range p.choices {
		style := st.PromptItem
		marker := "  "
		if i == p.cursor {
			style = st.PromptSelected
			marker = "▸ "
		}
		lines = append(lines, style.Render(fit(marker+choice.label, l.gridWidth)))
	}
	return lines
}

func (m *Model) renderBottom(l layout) string {
	lines := []styledLine{
		m.statusLine(),
		{text: m.filterPrompt(), raw: true},
		{text: m.buttonBar(l), raw: true},
	}
	if m.showFooter {
		lines = append(lines, styledLine{text: footerHint, style: m.styles.Footer})
	}
	return renderLines(applyWidth(lines, l.width))
}

func (m *Model) statusLine() styledLine {
	st := m.styles
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: st.Error}
	}
	if m.backendLastErr != "" {
		return styledLine{text: fmt.Sprintf("Reload failed: %s", m.backendLastErr), style: st.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: st.Info}
	}
	idx := m.hoverTile
	if idx < 0 {
		idx = m.grid.Cursor
	}
	if idx >= 0 && idx < len(m.grid.Tiles) {
		entry := m.grid.Tiles[idx].Entry
		text := entry.Name
		if entry.Comment != "" {
			text += " · " + entry.Comment
		}
		return styledLine{text: text, style: st.Info}
	}
	if m.grid.Category == "" {
		return styledLine{}
	}
	return styledLine{text: fmt.Sprintf("%d applications · %s", len(m.grid.Tiles), m.grid.Category), style: st.Footer}
}

func (m *Model) buttonBar(l layout) string {
	parts := make([]string, 0, len(l.buttons))
	for _, span := range l.buttons {
		parts = append(parts, m.styles.Button.Render(span.label))
	}
	return strings.Join(parts, strings.Repeat(" ", buttonGap))
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// fit pads or truncates s (which may carry ANSI escapes) to exactly width
// columns.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w > width {
		s = truncate.StringWithTail(s, uint(width), "…")
		w = lipgloss.Width(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func fitRows(rows []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		out[i] = fit(row, width)
	}
	return out
}

func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return fit(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
