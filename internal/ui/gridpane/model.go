package gridpane

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/gridsel/internal/grid"
	"github.com/andyrewlee/gridsel/internal/keymap"
	"github.com/andyrewlee/gridsel/internal/messages"
	"github.com/andyrewlee/gridsel/internal/ui/common"
)

// Cell is one selectable entry in the grid.
type Cell struct {
	ID       string
	Label    string
	Disabled bool
}

// Section is a titled column of cells.
type Section struct {
	Title string
	Cells []Cell
}

// Model is the Bubbletea model for the grid pane. It doubles as the
// selection controller's surface: the controller drives the visual
// selected state, the pane feeds gestures back into the controller.
type Model struct {
	Sections []Section

	ctrl     *grid.Controller
	selected map[grid.Coord]bool
	cursor   grid.Coord

	focused bool
	width   int
	height  int

	scrollOffsets []int
	drag          dragState

	styles common.Styles
	zone   *zone.Manager
	keys   keymap.KeyMap

	showKeymapHints bool

	// Set by SetCellSelected while the controller mutates.
	dirty       bool
	lastTouched grid.Coord
}

// New creates a grid pane over the given sections.
func New(sections []Section, keys keymap.KeyMap) *Model {
	m := &Model{
		Sections: sections,
		selected: map[grid.Coord]bool{},
		styles:   common.DefaultStyles(),
		keys:     keys,
	}
	m.ctrl = grid.New(m)
	m.ctrl.SetHooks(grid.Hooks{
		ShouldSelect: func(c grid.Coord) bool { return !m.cellAt(c).Disabled },
	})
	m.ensureScrollOffsets()
	m.resetCursor()
	return m
}

// Controller exposes the selection controller to the host.
func (m *Model) Controller() *grid.Controller { return m.ctrl }

// NumSections implements grid.Shape.
func (m *Model) NumSections() int { return len(m.Sections) }

// NumItems implements grid.Shape.
func (m *Model) NumItems(section int) int {
	if section < 0 || section >= len(m.Sections) {
		return 0
	}
	return len(m.Sections[section].Cells)
}

// SetCellSelected implements grid.Surface.
func (m *Model) SetCellSelected(c grid.Coord, selected bool) {
	if selected {
		m.selected[c] = true
	} else {
		delete(m.selected, c)
	}
	m.dirty = true
	m.lastTouched = c
}

// SetZone sets the shared zone manager for mouse hit testing.
func (m *Model) SetZone(z *zone.Manager) { m.zone = z }

// SetShowKeymapHints controls whether helper text is rendered.
func (m *Model) SetShowKeymapHints(show bool) { m.showKeymapHints = show }

// SetStyles sets the styles for the pane.
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// SetKeyMap replaces the keybindings.
func (m *Model) SetKeyMap(keys keymap.KeyMap) { m.keys = keys }

// Init initializes the pane.
func (m *Model) Init() tea.Cmd { return nil }

// Focus sets focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus.
func (m *Model) Blur() { m.focused = false }

// Focused returns focus state.
func (m *Model) Focused() bool { return m.focused }

// SetSize sets the pane size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the current cursor coordinate.
func (m *Model) Cursor() grid.Coord { return m.cursor }

// CellUnder returns the cell at a coordinate; the zero Cell when the
// coordinate is outside the grid.
func (m *Model) CellUnder(c grid.Coord) Cell { return m.cellAt(c) }

// SelectedLabels returns the labels of the selected cells in the order
// they were selected.
func (m *Model) SelectedLabels() []string {
	coords := m.ctrl.Selected()
	labels := make([]string, 0, len(coords))
	for _, c := range coords {
		labels = append(labels, m.cellAt(c).Label)
	}
	return labels
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.CursorDown):
		m.moveItem(1)
	case key.Matches(msg, m.keys.CursorUp):
		m.moveItem(-1)
	case key.Matches(msg, m.keys.CursorLeft):
		m.moveSection(-1)
	case key.Matches(msg, m.keys.CursorRight):
		m.moveSection(1)
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ToggleSelected(m.cursor)
		return m, m.notifyChange()
	case key.Matches(msg, m.keys.SelectAll):
		m.ctrl.SelectAll()
		return m, m.notifyChange()
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.ClearSelected()
		return m, m.notifyChange()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelection()
	}

	return m, nil
}

func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (*Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseWheelUp:
		m.moveItem(-1)
	case tea.MouseWheelDown:
		m.moveItem(1)
	case tea.MouseWheelLeft:
		m.moveSection(-1)
	case tea.MouseWheelRight:
		m.moveSection(1)
	}
	return m, nil
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (*Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	cell, ok := m.cellAtPoint(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = cell
	m.startDrag(cell)
	return m, nil
}

func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) (*Model, tea.Cmd) {
	if !m.drag.active {
		return m, nil
	}
	cell, ok := m.cellAtPoint(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = cell
	m.dragTo(cell)
	return m, m.notifyChange()
}

func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) (*Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	clicked, anchor := m.endDrag()
	if clicked {
		m.ctrl.ToggleSelected(anchor)
	}
	return m, m.notifyChange()
}

// notifyChange emits SelectionChanged when the controller touched the
// surface since the last notification.
func (m *Model) notifyChange() tea.Cmd {
	if !m.dirty {
		return nil
	}
	m.dirty = false
	count := m.ctrl.SelectedCount()
	last := m.lastTouched
	return func() tea.Msg {
		return messages.SelectionChanged{Count: count, Last: last}
	}
}

func (m *Model) copySelection() tea.Cmd {
	labels := m.SelectedLabels()
	if len(labels) == 0 {
		return nil
	}
	text := ""
	for i, label := range labels {
		if i > 0 {
			text += "\n"
		}
		text += label
	}
	if err := common.CopyToClipboard(text); err != nil {
		return nil
	}
	count := len(labels)
	return func() tea.Msg {
		return messages.CopiedToClipboard{Count: count}
	}
}

func (m *Model) cellAt(c grid.Coord) Cell {
	if c.Section < 0 || c.Section >= len(m.Sections) {
		return Cell{}
	}
	cells := m.Sections[c.Section].Cells
	if c.Item < 0 || c.Item >= len(cells) {
		return Cell{}
	}
	return cells[c.Item]
}

func (m *Model) cellAtPoint(x, y int) (grid.Coord, bool) {
	if m.zone == nil {
		return grid.Coord{}, false
	}
	for sec := range m.Sections {
		for item := range m.Sections[sec].Cells {
			info := m.zone.Get(cellZoneID(sec, item))
			if info == nil || info.IsZero() {
				continue
			}
			region := common.HitRegion{
				ID:     cellZoneID(sec, item),
				X:      info.StartX,
				Y:      info.StartY,
				Width:  info.EndX - info.StartX + 1,
				Height: info.EndY - info.StartY + 1,
			}
			if region.Contains(x, y) {
				return grid.Coord{Section: sec, Item: item}, true
			}
		}
	}
	return grid.Coord{}, false
}

// moveItem moves the cursor through cells in linear order, crossing
// into the neighboring section at the ends.
func (m *Model) moveItem(delta int) {
	cur := m.cursor
	for ; delta > 0; delta-- {
		next, ok := grid.NextCell(m, cur)
		if !ok {
			break
		}
		cur = next
	}
	for ; delta < 0; delta++ {
		prev, ok := grid.PrevCell(m, cur)
		if !ok {
			break
		}
		cur = prev
	}
	m.cursor = cur
}

func (m *Model) moveSection(delta int) {
	if len(m.Sections) == 0 {
		return
	}
	sec := clamp(m.cursor.Section+delta, 0, len(m.Sections)-1)
	// Land on the nearest non-empty section in the direction of travel.
	for sec > 0 && sec < len(m.Sections)-1 && len(m.Sections[sec].Cells) == 0 {
		if delta > 0 {
			sec++
		} else {
			sec--
		}
	}
	if len(m.Sections[sec].Cells) == 0 {
		return
	}
	item := clamp(m.cursor.Item, 0, len(m.Sections[sec].Cells)-1)
	m.cursor = grid.Coord{Section: sec, Item: item}
}

func (m *Model) resetCursor() {
	if first, ok := grid.FirstCell(m); ok {
		m.cursor = first
	}
}

func (m *Model) ensureScrollOffsets() {
	if len(m.scrollOffsets) == len(m.Sections) {
		return
	}
	m.scrollOffsets = make([]int, len(m.Sections))
}

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
