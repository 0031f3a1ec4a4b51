package gridpane

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/andyrewlee/gridsel/internal/grid"
	"github.com/andyrewlee/gridsel/internal/ui/common"
)

// View renders the grid.
func (m *Model) View() string {
	contentWidth := m.width - 2
	if contentWidth < 1 {
		contentWidth = 1
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	colWidth := clamp(contentWidth/4, 16, 28)
	if len(m.Sections) > 0 {
		colWidth = clamp(contentWidth/len(m.Sections), 16, 28)
	}
	if colWidth > contentWidth {
		colWidth = contentWidth
	}

	helpLines := m.helpLines(contentWidth)
	if !m.showKeymapHints {
		helpLines = nil
	}
	if len(helpLines) > contentHeight-1 {
		helpLines = nil
	}

	sectionHeight := contentHeight - len(helpLines)
	if sectionHeight < 1 {
		sectionHeight = 1
	}

	cols := []string{}
	for secIdx, sec := range m.Sections {
		cols = append(cols, m.renderSection(secIdx, sec, colWidth, sectionHeight))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	if len(helpLines) > 0 {
		body = body + "\n" + strings.Join(helpLines, "\n")
	}

	style := m.styles.Pane
	if m.focused {
		style = m.styles.FocusedPane
	}
	return style.Width(m.width - 2).Render(body)
}

func (m *Model) renderSection(secIdx int, sec Section, width, height int) string {
	header := m.renderHeader(secIdx, sec, width)

	cellAreaHeight := height - 1
	if cellAreaHeight < 1 {
		cellAreaHeight = 1
	}

	m.ensureScrollOffsets()
	offset := m.scrollOffsets[secIdx]
	if m.cursor.Section == secIdx {
		row := m.cursor.Item
		if row < offset {
			offset = row
		}
		if row >= offset+cellAreaHeight {
			offset = row - cellAreaHeight + 1
		}
		maxOffset := maxInt(0, len(sec.Cells)-cellAreaHeight)
		if offset > maxOffset {
			offset = maxOffset
		}
		m.scrollOffsets[secIdx] = offset
	}

	var rows []string
	for i := offset; i < len(sec.Cells) && len(rows) < cellAreaHeight; i++ {
		rows = append(rows, m.renderCell(secIdx, i, sec.Cells[i], width))
	}
	for len(rows) < cellAreaHeight {
		rows = append(rows, strings.Repeat(" ", width))
	}

	content := header + "\n" + strings.Join(rows, "\n")
	return lipgloss.NewStyle().Width(width).Render(content)
}

func (m *Model) renderHeader(secIdx int, sec Section, width int) string {
	selected := 0
	for item := range sec.Cells {
		if m.selected[grid.Coord{Section: secIdx, Item: item}] {
			selected++
		}
	}
	headerText := sec.Title + " (" + itoa(selected) + "/" + itoa(len(sec.Cells)) + ")"
	headerText = truncate(headerText, maxInt(1, width-1))
	return padRight(m.styles.SectionHeader.Render(headerText), width)
}

func (m *Model) renderCell(secIdx, itemIdx int, cell Cell, width int) string {
	coord := grid.Coord{Section: secIdx, Item: itemIdx}
	selected := m.selected[coord]
	atCursor := m.cursor == coord

	marker := "  "
	if selected {
		marker = "✓ "
	}
	line := truncate(marker+cell.Label, width)
	line = padRight(line, width)

	style := m.styles.Cell
	switch {
	case atCursor && selected:
		style = m.styles.CursorSelectedCell
	case atCursor:
		style = m.styles.CursorCell
	case selected:
		style = m.styles.SelectedCell
	case cell.Disabled:
		style = m.styles.DisabledCell
	}
	content := style.Render(line)

	if m.zone != nil {
		content = m.zone.Mark(cellZoneID(secIdx, itemIdx), content)
	}
	return content
}

func (m *Model) helpLines(contentWidth int) []string {
	items := []string{
		common.RenderHelpItem(m.styles, "j/k", "up/down"),
		common.RenderHelpItem(m.styles, "h/l", "section"),
		common.RenderHelpItem(m.styles, "Space", "toggle"),
		common.RenderHelpItem(m.styles, "a", "all"),
		common.RenderHelpItem(m.styles, "x", "clear"),
		common.RenderHelpItem(m.styles, "y", "copy"),
		common.RenderHelpItem(m.styles, "+/-", "limit"),
		common.RenderHelpItem(m.styles, "t", "theme"),
		common.RenderHelpItem(m.styles, "q", "quit"),
	}
	return common.WrapHelpItems(items, contentWidth)
}

func cellZoneID(secIdx, itemIdx int) string {
	return "grid-cell-" + itoa(secIdx) + "-" + itoa(itemIdx)
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= 1 {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, "…")
}

func padRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-lipgloss.Width(text))
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
