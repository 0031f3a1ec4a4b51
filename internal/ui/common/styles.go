package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	// Layout - Pane borders and structure
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	// Text hierarchy
	Title lipgloss.Style // App name, section headers
	Body  lipgloss.Style // Normal text
	Muted lipgloss.Style // De-emphasized text
	Bold  lipgloss.Style // Emphasized text

	// Grid cells
	SectionHeader      lipgloss.Style
	Cell               lipgloss.Style
	SelectedCell       lipgloss.Style
	DisabledCell       lipgloss.Style
	CursorCell         lipgloss.Style
	CursorSelectedCell lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusCount lipgloss.Style

	// Help bar
	Help          lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns the styles for the active theme.
func DefaultStyles() Styles {
	return StylesForTheme(GetCurrentTheme())
}

// StylesForTheme builds the style set from a theme's palette.
func StylesForTheme(theme Theme) Styles {
	c := theme.Colors
	return Styles{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),
		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused).
			Padding(0, 1),

		Title: lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		Body:  lipgloss.NewStyle().Foreground(c.Foreground),
		Muted: lipgloss.NewStyle().Foreground(c.Muted),
		Bold:  lipgloss.NewStyle().Foreground(c.Foreground).Bold(true),

		SectionHeader: lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		Cell: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Surface1).
			Padding(0, 1),
		SelectedCell: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Selection).
			Padding(0, 1),
		DisabledCell: lipgloss.NewStyle().
			Foreground(c.Muted).
			Background(c.Surface1).
			Padding(0, 1),
		CursorCell: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Surface2).
			Padding(0, 1).
			Bold(true),
		CursorSelectedCell: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Highlight).
			Padding(0, 1).
			Bold(true),

		StatusBar:   lipgloss.NewStyle().Foreground(c.Muted),
		StatusCount: lipgloss.NewStyle().Foreground(c.Primary).Bold(true),

		Help:          lipgloss.NewStyle().Foreground(c.Muted),
		HelpKey:       lipgloss.NewStyle().Foreground(c.Primary),
		HelpDesc:      lipgloss.NewStyle().Foreground(c.Muted),
		HelpSeparator: lipgloss.NewStyle().Foreground(c.Border),

		Error:   lipgloss.NewStyle().Foreground(c.Error),
		Success: lipgloss.NewStyle().Foreground(c.Success),
		Warning: lipgloss.NewStyle().Foreground(c.Warning),
		Info:    lipgloss.NewStyle().Foreground(c.Info),

		ToastSuccess: lipgloss.NewStyle().
			Foreground(c.Background).
			Background(c.Success).
			Padding(0, 1),
		ToastError: lipgloss.NewStyle().
			Foreground(c.Background).
			Background(c.Error).
			Padding(0, 1),
		ToastInfo: lipgloss.NewStyle().
			Foreground(c.Background).
			Background(c.Info).
			Padding(0, 1),
	}
}
