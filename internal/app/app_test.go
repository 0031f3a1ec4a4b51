package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/gridsel/internal/config"
	"github.com/andyrewlee/gridsel/internal/grid"
	"github.com/andyrewlee/gridsel/internal/messages"
	"github.com/andyrewlee/gridsel/internal/ui/gridpane"
)

// The program hands *App straight to tea.NewProgram.
var _ tea.Model = (*App)(nil)

func newTestApp(t *testing.T) *App {
	t.Helper()
	home := t.TempDir()
	paths := &config.Paths{
		Home:       home,
		ConfigPath: filepath.Join(home, "config.json"),
		LogsRoot:   filepath.Join(home, "logs"),
	}
	cfg, err := config.LoadWithPaths(paths)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	a := New(cfg, []gridpane.Section{
		{Title: "Fruit", Cells: []gridpane.Cell{{ID: "a", Label: "Apple"}, {ID: "b", Label: "Banana"}}},
		{Title: "Veg", Cells: []gridpane.Cell{{ID: "c", Label: "Carrot"}}},
	})
	a, _ = updateApp(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})
	return a
}

func updateApp(t *testing.T, a *App, msg tea.Msg) (*App, tea.Cmd) {
	t.Helper()
	model, cmd := a.Update(msg)
	next, ok := model.(*App)
	if !ok {
		t.Fatalf("Update returned %T, want *App", model)
	}
	return next, cmd
}

func TestAppTracksSelectionChanged(t *testing.T) {
	a := newTestApp(t)

	a, cmd := updateApp(t, a, tea.KeyPressMsg{Code: tea.KeySpace})
	if cmd == nil {
		t.Fatal("expected SelectionChanged command")
	}
	a, _ = updateApp(t, a, cmd())
	if a.selectedCount != 1 {
		t.Fatalf("expected count 1, got %d", a.selectedCount)
	}
}

func TestAppLimitKeysStepThrough(t *testing.T) {
	a := newTestApp(t)
	ctrl := a.pane.Controller()

	// Unlimited by default; '-' starts at the total cell count.
	a, cmd := updateApp(t, a, tea.KeyPressMsg{Code: '-'})
	if ctrl.Limit() != 3 {
		t.Fatalf("expected limit 3, got %d", ctrl.Limit())
	}
	if cmd == nil {
		t.Fatal("expected LimitChanged command")
	}
	if msg, ok := cmd().(messages.LimitChanged); !ok || msg.Limit != 3 {
		t.Fatalf("unexpected message %#v", cmd())
	}

	a, _ = updateApp(t, a, tea.KeyPressMsg{Code: '-'})
	if ctrl.Limit() != 2 {
		t.Fatalf("expected limit 2, got %d", ctrl.Limit())
	}

	// Stepping past the total removes the limit again.
	a, _ = updateApp(t, a, tea.KeyPressMsg{Code: '+'})
	a, _ = updateApp(t, a, tea.KeyPressMsg{Code: '+'})
	if ctrl.Limit() != grid.NoLimit {
		t.Fatalf("expected no limit, got %d", ctrl.Limit())
	}
}

func TestAppLimitEvictsSelection(t *testing.T) {
	a := newTestApp(t)
	ctrl := a.pane.Controller()
	ctrl.SetSelected(grid.Coord{Section: 0, Item: 0}, true)
	ctrl.SetSelected(grid.Coord{Section: 0, Item: 1}, true)
	ctrl.SetSelected(grid.Coord{Section: 1, Item: 0}, true)

	a, _ = updateApp(t, a, tea.KeyPressMsg{Code: '-'})
	a, _ = updateApp(t, a, tea.KeyPressMsg{Code: '-'})
	if ctrl.Limit() != 2 {
		t.Fatalf("expected limit 2, got %d", ctrl.Limit())
	}
	if ctrl.SelectedCount() != 2 {
		t.Fatalf("expected 2 selected after eviction, got %d", ctrl.SelectedCount())
	}
	if !ctrl.IsSelected(grid.Coord{Section: 0, Item: 0}) {
		t.Fatal("oldest selection should survive eviction")
	}
}

func TestAppThemeCycles(t *testing.T) {
	a := newTestApp(t)
	before := a.cfg.UI.Theme

	a, cmd := updateApp(t, a, tea.KeyPressMsg{Code: 't'})
	if cmd == nil {
		t.Fatal("expected ThemeChanged command")
	}
	a, _ = updateApp(t, a, cmd())
	if a.cfg.UI.Theme == before {
		t.Fatalf("theme did not change from %q", before)
	}
}

func TestAppConfigReloadAppliesLimit(t *testing.T) {
	a := newTestApp(t)
	if err := os.WriteFile(a.cfg.Paths.ConfigPath, []byte(`{"selection":{"limit":1}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a, _ = updateApp(t, a, messages.ConfigReloaded{Reason: "config"})
	if a.pane.Controller().Limit() != 1 {
		t.Fatalf("expected limit 1 after reload, got %d", a.pane.Controller().Limit())
	}
}

func TestAppViewRenders(t *testing.T) {
	a := newTestApp(t)
	a.selectedCount = 1
	view := a.View()
	if view.AltScreen != true {
		t.Fatal("expected alt screen view")
	}
}
