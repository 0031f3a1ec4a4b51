package common

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// ThemeID identifies a color theme.
type ThemeID string

const (
	ThemeGruvbox    ThemeID = "gruvbox"
	ThemeTokyoNight ThemeID = "tokyo-night"
	ThemeCatppuccin ThemeID = "catppuccin"
	ThemeNord       ThemeID = "nord"

	ThemeGitHubLight    ThemeID = "github-light"
	ThemeSolarizedLight ThemeID = "solarized-light"
)

// ThemeColors defines all colors used by the application.
type ThemeColors struct {
	// Base palette
	Background    color.Color
	Foreground    color.Color
	Muted         color.Color
	Border        color.Color
	BorderFocused color.Color

	// Semantic colors
	Primary color.Color
	Success color.Color
	Warning color.Color
	Error   color.Color
	Info    color.Color

	// Surface colors for layering
	Surface1 color.Color
	Surface2 color.Color

	// Selection/highlight
	Selection color.Color
	Highlight color.Color
}

// Theme represents a complete color theme.
type Theme struct {
	ID     ThemeID
	Name   string
	Colors ThemeColors
}

// AvailableThemes returns all predefined themes, dark themes first.
func AvailableThemes() []Theme {
	return []Theme{
		GruvboxTheme(),
		TokyoNightTheme(),
		CatppuccinTheme(),
		NordTheme(),
		GitHubLightTheme(),
		SolarizedLightTheme(),
	}
}

// GetTheme returns a theme by ID, defaulting to Gruvbox.
func GetTheme(id ThemeID) Theme {
	for _, t := range AvailableThemes() {
		if t.ID == id {
			return t
		}
	}
	return GruvboxTheme()
}

// NextTheme returns the theme after id in the predefined order,
// wrapping around at the end.
func NextTheme(id ThemeID) Theme {
	themes := AvailableThemes()
	for i, t := range themes {
		if t.ID == id {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// currentTheme is read by every View call; theme switches happen on the
// UI goroutine, so no locking.
var currentTheme = GruvboxTheme()

// SetCurrentTheme switches the active theme.
func SetCurrentTheme(id ThemeID) {
	currentTheme = GetTheme(id)
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	return currentTheme
}

// GruvboxTheme - warm, retro, earthy tones with orange accent
func GruvboxTheme() Theme {
	return Theme{
		ID:   ThemeGruvbox,
		Name: "Gruvbox",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#282828"),
			Foreground:    lipgloss.Color("#ebdbb2"),
			Muted:         lipgloss.Color("#928374"),
			Border:        lipgloss.Color("#3c3836"),
			BorderFocused: lipgloss.Color("#fe8019"),

			Primary: lipgloss.Color("#fe8019"),
			Success: lipgloss.Color("#b8bb26"),
			Warning: lipgloss.Color("#fabd2f"),
			Error:   lipgloss.Color("#fb4934"),
			Info:    lipgloss.Color("#83a598"),

			Surface1: lipgloss.Color("#3c3836"),
			Surface2: lipgloss.Color("#504945"),

			Selection: lipgloss.Color("#504945"),
			Highlight: lipgloss.Color("#665c54"),
		},
	}
}

// TokyoNightTheme - cool blue tones
func TokyoNightTheme() Theme {
	return Theme{
		ID:   ThemeTokyoNight,
		Name: "Tokyo Night",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#1a1b26"),
			Foreground:    lipgloss.Color("#a9b1d6"),
			Muted:         lipgloss.Color("#565f89"),
			Border:        lipgloss.Color("#292e42"),
			BorderFocused: lipgloss.Color("#7aa2f7"),

			Primary: lipgloss.Color("#7aa2f7"),
			Success: lipgloss.Color("#9ece6a"),
			Warning: lipgloss.Color("#e0af68"),
			Error:   lipgloss.Color("#f7768e"),
			Info:    lipgloss.Color("#7dcfff"),

			Surface1: lipgloss.Color("#1f2335"),
			Surface2: lipgloss.Color("#24283b"),

			Selection: lipgloss.Color("#33467c"),
			Highlight: lipgloss.Color("#3d59a1"),
		},
	}
}

// CatppuccinTheme - pastel with mauve accent
func CatppuccinTheme() Theme {
	return Theme{
		ID:   ThemeCatppuccin,
		Name: "Catppuccin",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#1e1e2e"),
			Foreground:    lipgloss.Color("#cdd6f4"),
			Muted:         lipgloss.Color("#6c7086"),
			Border:        lipgloss.Color("#313244"),
			BorderFocused: lipgloss.Color("#cba6f7"),

			Primary: lipgloss.Color("#cba6f7"),
			Success: lipgloss.Color("#a6e3a1"),
			Warning: lipgloss.Color("#f9e2af"),
			Error:   lipgloss.Color("#f38ba8"),
			Info:    lipgloss.Color("#89dceb"),

			Surface1: lipgloss.Color("#313244"),
			Surface2: lipgloss.Color("#45475a"),

			Selection: lipgloss.Color("#45475a"),
			Highlight: lipgloss.Color("#585b70"),
		},
	}
}

// NordTheme - cool, muted arctic colors
func NordTheme() Theme {
	return Theme{
		ID:   ThemeNord,
		Name: "Nord",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#2e3440"),
			Foreground:    lipgloss.Color("#eceff4"),
			Muted:         lipgloss.Color("#4c566a"),
			Border:        lipgloss.Color("#3b4252"),
			BorderFocused: lipgloss.Color("#88c0d0"),

			Primary: lipgloss.Color("#88c0d0"),
			Success: lipgloss.Color("#a3be8c"),
			Warning: lipgloss.Color("#ebcb8b"),
			Error:   lipgloss.Color("#bf616a"),
			Info:    lipgloss.Color("#81a1c1"),

			Surface1: lipgloss.Color("#3b4252"),
			Surface2: lipgloss.Color("#434c5e"),

			Selection: lipgloss.Color("#434c5e"),
			Highlight: lipgloss.Color("#4c566a"),
		},
	}
}

// GitHubLightTheme - clean light theme with blue accent
func GitHubLightTheme() Theme {
	return Theme{
		ID:   ThemeGitHubLight,
		Name: "GitHub Light",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#ffffff"),
			Foreground:    lipgloss.Color("#1f2328"),
			Muted:         lipgloss.Color("#656d76"),
			Border:        lipgloss.Color("#d0d7de"),
			BorderFocused: lipgloss.Color("#0969da"),

			Primary: lipgloss.Color("#0969da"),
			Success: lipgloss.Color("#1a7f37"),
			Warning: lipgloss.Color("#9a6700"),
			Error:   lipgloss.Color("#cf222e"),
			Info:    lipgloss.Color("#0550ae"),

			Surface1: lipgloss.Color("#f6f8fa"),
			Surface2: lipgloss.Color("#eaeef2"),

			Selection: lipgloss.Color("#b6e3ff"),
			Highlight: lipgloss.Color("#80ccff"),
		},
	}
}

// SolarizedLightTheme - warm light theme
func SolarizedLightTheme() Theme {
	return Theme{
		ID:   ThemeSolarizedLight,
		Name: "Solarized Light",
		Colors: ThemeColors{
			Background:    lipgloss.Color("#fdf6e3"),
			Foreground:    lipgloss.Color("#657b83"),
			Muted:         lipgloss.Color("#93a1a1"),
			Border:        lipgloss.Color("#eee8d5"),
			BorderFocused: lipgloss.Color("#268bd2"),

			Primary: lipgloss.Color("#268bd2"),
			Success: lipgloss.Color("#859900"),
			Warning: lipgloss.Color("#b58900"),
			Error:   lipgloss.Color("#dc322f"),
			Info:    lipgloss.Color("#2aa198"),

			Surface1: lipgloss.Color("#eee8d5"),
			Surface2: lipgloss.Color("#e4ddc8"),

			Selection: lipgloss.Color("#e4ddc8"),
			Highlight: lipgloss.Color("#d3cbb7"),
		},
	}
}
