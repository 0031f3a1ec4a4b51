package app

import (
	"strconv"
	"sync"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/gridsel/internal/config"
	"github.com/andyrewlee/gridsel/internal/grid"
	"github.com/andyrewlee/gridsel/internal/keymap"
	"github.com/andyrewlee/gridsel/internal/logging"
	"github.com/andyrewlee/gridsel/internal/messages"
	"github.com/andyrewlee/gridsel/internal/safego"
	"github.com/andyrewlee/gridsel/internal/ui/common"
	"github.com/andyrewlee/gridsel/internal/ui/gridpane"
)

// App is the root Bubbletea model.
type App struct {
	cfg    *config.Config
	keys   keymap.KeyMap
	styles common.Styles

	zone  *zone.Manager
	pane  *gridpane.Model
	toast *common.ToastModel

	width  int
	height int
	ready  bool

	quitting bool

	selectedCount int
	lastSelected  grid.Coord

	showKeymapHints bool

	watcher      *settingsWatcher
	externalMsgs chan tea.Msg
	externalOnce sync.Once
	sender       func(tea.Msg)
}

// New creates the application model.
func New(cfg *config.Config, sections []gridpane.Section) *App {
	common.SetCurrentTheme(common.ThemeID(cfg.UI.Theme))
	keys := keymap.New(cfg.KeyMap)

	a := &App{
		cfg:             cfg,
		keys:            keys,
		styles:          common.DefaultStyles(),
		zone:            zone.New(),
		pane:            gridpane.New(sections, keys),
		toast:           common.NewToastModel(),
		showKeymapHints: cfg.UI.ShowKeymapHints,
	}
	a.pane.SetZone(a.zone)
	a.pane.SetStyles(a.styles)
	a.pane.SetShowKeymapHints(a.showKeymapHints)
	a.pane.Focus()
	a.applySelectionSettings(cfg.Selection)
	a.toast.SetStyles(a.styles)
	return a
}

// SetMsgSender wires the program's Send function so background
// goroutines can push messages into the update loop.
func (a *App) SetMsgSender(send func(tea.Msg)) {
	if send == nil {
		return
	}
	if a.externalMsgs == nil {
		a.externalMsgs = make(chan tea.Msg, 64)
	}
	a.externalOnce.Do(func() {
		a.sender = send
		safego.Go("app.drainExternalMsgs", a.drainExternalMsgs)
	})
}

func (a *App) enqueueExternalMsg(msg tea.Msg) {
	if msg == nil || a.externalMsgs == nil {
		return
	}
	select {
	case a.externalMsgs <- msg:
	default:
		logging.Warn("External message queue full; dropping message")
	}
}

func (a *App) drainExternalMsgs() {
	for msg := range a.externalMsgs {
		if msg == nil || a.sender == nil {
			continue
		}
		a.sender(msg)
	}
}

// Init starts the settings watcher.
func (a *App) Init() tea.Cmd {
	a.startSettingsWatcher()
	return a.pane.Init()
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case tea.KeyPressMsg:
		if cmd, handled := a.handleAppKey(msg); handled {
			return a, cmd
		}

	case messages.SelectionChanged:
		a.selectedCount = msg.Count
		a.lastSelected = msg.Last
		return a, nil

	case messages.LimitChanged:
		return a, a.toast.ShowInfo(limitLabel(msg.Limit))

	case messages.CopiedToClipboard:
		return a, a.toast.ShowSuccess("Copied " + strconv.Itoa(msg.Count) + " items")

	case messages.ThemeChanged:
		a.applyTheme(msg.Theme)
		return a, a.toast.ShowInfo("Theme: " + msg.Theme)

	case messages.ConfigReloaded:
		return a, a.reloadConfig(msg.Reason)

	case common.ToastDismissed:
		a.toast.Dismiss()
		return a, nil
	}

	pane, cmd := a.pane.Update(msg)
	a.pane = pane
	return a, cmd
}

func (a *App) handleAppKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		a.shutdown()
		return tea.Quit, true

	case key.Matches(msg, a.keys.LimitUp):
		return a.adjustLimit(1), true

	case key.Matches(msg, a.keys.LimitDown):
		return a.adjustLimit(-1), true

	case key.Matches(msg, a.keys.ThemeNext):
		theme := string(common.NextTheme(common.GetCurrentTheme().ID).ID)
		return func() tea.Msg { return messages.ThemeChanged{Theme: theme} }, true

	case key.Matches(msg, a.keys.ToggleHints):
		a.showKeymapHints = !a.showKeymapHints
		a.pane.SetShowKeymapHints(a.showKeymapHints)
		a.cfg.UI.ShowKeymapHints = a.showKeymapHints
		if err := a.cfg.SaveUISettings(); err != nil {
			logging.WithError(err, "Failed to persist keymap hints setting")
		}
		return nil, true
	}
	return nil, false
}

// adjustLimit steps the selection limit. Stepping past the total cell
// count removes the limit; stepping down from unlimited starts at the
// total.
func (a *App) adjustLimit(delta int) tea.Cmd {
	ctrl := a.pane.Controller()
	total := a.totalCells()
	limit := ctrl.Limit()

	switch {
	case delta > 0 && limit == grid.NoLimit:
		return nil
	case delta > 0:
		limit++
		if limit > total {
			limit = grid.NoLimit
		}
	case limit == grid.NoLimit:
		limit = total
	default:
		limit--
		if limit < 0 {
			limit = 0
		}
	}

	ctrl.SetLimit(limit)
	a.selectedCount = ctrl.SelectedCount()
	final := limit
	return func() tea.Msg { return messages.LimitChanged{Limit: final} }
}

func (a *App) applyTheme(name string) {
	common.SetCurrentTheme(common.ThemeID(name))
	a.styles = common.DefaultStyles()
	a.pane.SetStyles(a.styles)
	a.toast.SetStyles(a.styles)
	a.cfg.UI.Theme = name
	if err := a.cfg.SaveUISettings(); err != nil {
		logging.WithError(err, "Failed to persist theme setting")
	}
}

// reloadConfig re-reads the config file and applies the parts that can
// change at runtime.
func (a *App) reloadConfig(reason string) tea.Cmd {
	cfg, err := config.LoadWithPaths(a.cfg.Paths)
	if err != nil {
		logging.WithError(err, "Failed to reload config")
		return a.toast.ShowError("Config reload failed")
	}
	a.cfg = cfg

	a.keys = keymap.New(cfg.KeyMap)
	a.pane.SetKeyMap(a.keys)

	a.showKeymapHints = cfg.UI.ShowKeymapHints
	a.pane.SetShowKeymapHints(a.showKeymapHints)

	if string(common.GetCurrentTheme().ID) != cfg.UI.Theme {
		common.SetCurrentTheme(common.ThemeID(cfg.UI.Theme))
		a.styles = common.DefaultStyles()
		a.pane.SetStyles(a.styles)
		a.toast.SetStyles(a.styles)
	}

	a.applySelectionSettings(cfg.Selection)
	a.selectedCount = a.pane.Controller().SelectedCount()

	logging.Info("Config reloaded (%s)", reason)
	return a.toast.ShowInfo("Settings reloaded")
}

func (a *App) applySelectionSettings(s config.SelectionSettings) {
	limit := grid.NoLimit
	if s.Limit > 0 {
		limit = s.Limit
	}
	a.pane.Controller().SetLimit(limit)
}

func (a *App) totalCells() int {
	total := 0
	for sec := 0; sec < a.pane.NumSections(); sec++ {
		total += a.pane.NumItems(sec)
	}
	return total
}

func (a *App) layout() {
	paneHeight := a.height - 1
	if paneHeight < 1 {
		paneHeight = 1
	}
	a.pane.SetSize(a.width, paneHeight)
}

func (a *App) shutdown() {
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
}

func limitLabel(limit int) string {
	if limit == grid.NoLimit {
		return "Limit: off"
	}
	return "Limit: " + strconv.Itoa(limit)
}
