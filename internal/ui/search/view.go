package search

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout relative to the widget origin. Both boxes carry a one-cell border.
const (
	inputTextRow    = 1 // text row inside the input border
	inputBoxHeight  = 3
	firstPanelRow   = inputBoxHeight + 1
	clearControl    = "×"
	clearControlGap = 1
)

// View renders the input box and, when visible, the suggestion panel
func (m *Model) View() string {
	box := m.styles.InputBox
	if m.input.Focused() {
		box = m.styles.InputFocused
	}

	field := lipgloss.NewStyle().
		Width(m.width - clearControlGap - lipgloss.Width(clearControl)).
		MaxWidth(m.width - clearControlGap - lipgloss.Width(clearControl)).
		Render(m.input.View())

	control := " "
	if m.input.Value() != "" {
		control = m.styles.ClearControl.Render(clearControl)
	}
	row := field + strings.Repeat(" ", clearControlGap) + control

	out := box.Width(m.width).Render(row)
	if !m.PanelVisible() {
		return out
	}
	return lipgloss.JoinVertical(lipgloss.Left, out, m.renderPanel())
}

func (m *Model) renderPanel() string {
	lowerQuery := strings.ToLower(m.input.Value())

	rows := make([]string, len(m.suggestions))
	for i, s := range m.suggestions {
		style := m.styles.Suggestion
		marker := "  "
		if i == m.highlight {
			style = m.styles.Highlight
			marker = "▸ "
		}
		rows[i] = style.Width(m.width).Render(marker + m.emphasize(s, lowerQuery, style))
	}
	return m.styles.Panel.Width(m.width).Render(strings.Join(rows, "\n"))
}

// emphasize marks the first occurrence of the query inside s
func (m *Model) emphasize(s, lowerQuery string, base lipgloss.Style) string {
	if lowerQuery == "" {
		return s
	}
	i := strings.Index(strings.ToLower(s), lowerQuery)
	// lowering can change byte lengths outside ASCII; only split when safe
	if i < 0 || len(strings.ToLower(s)) != len(s) {
		return s
	}
	j := i + len(lowerQuery)
	return s[:i] + m.styles.Match.Inherit(base).Render(s[i:j]) + s[j:]
}

// clearControlAt reports whether the widget-relative cell holds the clear control
func (m *Model) clearControlAt(x, y int) bool {
	if m.input.Value() == "" || y != inputTextRow {
		return false
	}
	// left border occupies column 0; the control is the last content column
	return x == m.width
}

// suggestionAt maps a widget-relative cell to a rendered suggestion row
func (m *Model) suggestionAt(x, y int) (int, bool) {
	if !m.PanelVisible() || x < 0 || x > m.width+1 {
		return 0, false
	}
	idx := y - firstPanelRow
	if idx < 0 || idx >= len(m.suggestions) {
		return 0, false
	}
	return idx, true
}

// inputAt reports whether the widget-relative cell is inside the input box
func (m *Model) inputAt(x, y int) bool {
	return y >= 0 && y < inputBoxHeight && x >= 0 && x <= m.width+1
}
