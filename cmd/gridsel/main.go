package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/gridsel/internal/app"
	"github.com/andyrewlee/gridsel/internal/config"
	"github.com/andyrewlee/gridsel/internal/logging"
	"github.com/andyrewlee/gridsel/internal/ui/gridpane"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("gridsel %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directories: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Initialize(cfg.Paths.LogsRoot, logging.ParseLevel(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()

	logging.Info("Starting gridsel")

	a := app.New(cfg, demoSections())

	p := tea.NewProgram(
		a,
		tea.WithFilter(mouseEventFilter),
	)
	a.SetMsgSender(p.Send)

	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}

	logging.Info("gridsel shutdown complete")
}

// demoSections is the built-in inventory shown when gridsel has no
// host application feeding it data.
func demoSections() []gridpane.Section {
	return []gridpane.Section{
		{Title: "Fruits", Cells: []gridpane.Cell{
			{ID: "apple", Label: "Apple"},
			{ID: "banana", Label: "Banana"},
			{ID: "cherry", Label: "Cherry"},
			{ID: "durian", Label: "Durian", Disabled: true},
			{ID: "elderberry", Label: "Elderberry"},
		}},
		{Title: "Out of Stock"},
		{Title: "Vegetables", Cells: []gridpane.Cell{
			{ID: "asparagus", Label: "Asparagus"},
			{ID: "broccoli", Label: "Broccoli"},
			{ID: "carrot", Label: "Carrot"},
			{ID: "daikon", Label: "Daikon"},
		}},
		{Title: "Grains", Cells: []gridpane.Cell{
			{ID: "amaranth", Label: "Amaranth"},
			{ID: "barley", Label: "Barley"},
			{ID: "couscous", Label: "Couscous", Disabled: true},
		}},
	}
}

var (
	lastMouseMotionEvent   time.Time
	lastMouseWheelEvent    time.Time
	lastMouseX, lastMouseY int
)

func mouseEventFilter(m tea.Model, msg tea.Msg) tea.Msg {
	switch msg := msg.(type) {
	case tea.MouseMotionMsg:
		// Always allow if position changed
		if msg.X != lastMouseX || msg.Y != lastMouseY {
			lastMouseX = msg.X
			lastMouseY = msg.Y
			lastMouseMotionEvent = time.Now()
			return msg
		}
		// Same position - apply time throttle
		now := time.Now()
		if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseMotionEvent = now
	case tea.MouseWheelMsg:
		now := time.Now()
		if now.Sub(lastMouseWheelEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseWheelEvent = now
	}
	return msg
}
