package app

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/gridsel/internal/grid"
	"github.com/andyrewlee/gridsel/internal/ui/common"
)

func (a *App) currentThemeColors() common.ThemeColors {
	return common.GetCurrentTheme().Colors
}

// View renders the application.
func (a *App) View() tea.View {
	theme := a.currentThemeColors()

	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = theme.Background
	view.ForegroundColor = theme.Foreground

	if a.quitting {
		view.SetContent("Goodbye!\n")
		return view
	}
	if !a.ready {
		view.SetContent("Loading...")
		return view
	}

	content := a.pane.View() + "\n" + a.statusLine()

	// Scan registers every zone mark in this frame so mouse events can
	// be resolved against cell bounds.
	view.SetContent(a.zone.Scan(content))
	return view
}

func (a *App) statusLine() string {
	parts := []string{
		a.styles.StatusCount.Render(strconv.Itoa(a.selectedCount) + " selected"),
	}

	if limit := a.pane.Controller().Limit(); limit != grid.NoLimit {
		label := "limit " + strconv.Itoa(limit)
		if a.selectedCount >= limit {
			label += " (full)"
		}
		parts = append(parts, a.styles.Muted.Render(label))
	}

	if a.selectedCount > 0 {
		if label := a.pane.CellUnder(a.lastSelected).Label; label != "" {
			parts = append(parts, a.styles.Muted.Render("last: "+label))
		}
	}

	line := strings.Join(parts, a.styles.Muted.Render("  •  "))
	if toast := a.toast.View(); toast != "" {
		gap := a.width - lipgloss.Width(line) - lipgloss.Width(toast) - 1
		if gap < 1 {
			gap = 1
		}
		line += strings.Repeat(" ", gap) + toast
	}
	return a.styles.StatusBar.Width(a.width).Render(line)
}
