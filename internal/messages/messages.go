package messages

import "github.com/andyrewlee/gridsel/internal/grid"

// SelectionChanged is sent whenever the selection gains or loses cells.
type SelectionChanged struct {
	Count int
	Last  grid.Coord
}

// LimitChanged is sent when the selection cap is adjusted.
type LimitChanged struct {
	Limit int // grid.NoLimit when uncapped
}

// CopiedToClipboard is sent after the selected cells were exported.
type CopiedToClipboard struct {
	Count int
}

// ThemeChanged is sent when the user cycles to a new theme.
type ThemeChanged struct {
	Theme string
}

// ConfigReloaded is sent when the settings watcher picked up a change.
type ConfigReloaded struct {
	Reason string
}
