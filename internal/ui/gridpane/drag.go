package gridpane

import "github.com/andyrewlee/gridsel/internal/grid"

// dragState tracks a press-drag-release gesture. The extent records
// every cell the pointer touched so a return to the anchor can undo the
// whole sweep.
type dragState struct {
	active bool
	moved  bool
	anchor grid.Coord
	ext    grid.Extent
}

func (m *Model) startDrag(c grid.Coord) {
	m.drag = dragState{active: true, anchor: c}
	m.drag.ext.Extend(c)
}

func (m *Model) dragTo(c grid.Coord) {
	if !m.drag.active {
		return
	}
	if c != m.drag.anchor {
		m.drag.moved = true
	}
	m.drag.ext.Extend(c)
	m.ctrl.SelectRange(m.drag.anchor, c, m.drag.ext)
}

// endDrag finishes the gesture. A press that never left its anchor
// reports as a click so the caller can toggle instead.
func (m *Model) endDrag() (clicked bool, anchor grid.Coord) {
	if !m.drag.active {
		return false, grid.Coord{}
	}
	clicked = !m.drag.moved
	anchor = m.drag.anchor
	m.drag = dragState{}
	return clicked, anchor
}

// Dragging reports whether a drag gesture is in progress.
func (m *Model) Dragging() bool { return m.drag.active }
