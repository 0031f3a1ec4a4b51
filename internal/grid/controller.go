package grid

// Surface is the grid collaborator the controller drives. It answers
// shape queries and applies the visual selected state of a cell. The
// controller holds a non-owning reference; the surface must outlive it.
type Surface interface {
	Shape
	SetCellSelected(c Coord, selected bool)
}

// Hooks are optional host callbacks consulted around every selection
// change. Nil gate funcs default to permissive, nil notification funcs
// to no-ops. Hooks must not call back into the controller; the
// selection is mid-mutation when they run.
type Hooks struct {
	ShouldSelect   func(Coord) bool
	ShouldDeselect func(Coord) bool
	DidSelect      func(Coord)
	DidDeselect    func(Coord)
}

// NoLimit disables the selection cap.
const NoLimit = -1

// Controller owns the selection state of one grid surface: an
// insertion-ordered set of selected coordinates, an optional cap on its
// size, and the drag-range algorithm. All methods are synchronous and
// must run on the goroutine that owns the surface.
type Controller struct {
	surface  Surface
	hooks    Hooks
	selected []Coord
	limit    int
}

// New creates a controller bound to surface with an empty selection and
// no cap.
func New(surface Surface) *Controller {
	return &Controller{
		surface: surface,
		limit:   NoLimit,
	}
}

// SetHooks replaces the host callbacks.
func (c *Controller) SetHooks(hooks Hooks) {
	c.hooks = hooks
}

// Limit returns the current cap, or NoLimit.
func (c *Controller) Limit() int {
	return c.limit
}

// SetLimit caps the selection size. A negative n removes the cap. When
// the current selection exceeds the new cap, the most recently selected
// cells are deselected first, one notification per cell, until it fits.
func (c *Controller) SetLimit(n int) {
	if n < 0 {
		n = NoLimit
	}
	c.limit = n
	if n == NoLimit {
		return
	}
	for len(c.selected) > n {
		c.removeAt(len(c.selected) - 1)
	}
}

// SelectedCount returns the number of selected cells.
func (c *Controller) SelectedCount() int {
	return len(c.selected)
}

// IsSelected reports whether coord is selected.
func (c *Controller) IsSelected(coord Coord) bool {
	return c.indexOf(coord) >= 0
}

// Selected returns the selected coordinates in insertion order.
func (c *Controller) Selected() []Coord {
	out := make([]Coord, len(c.selected))
	copy(out, c.selected)
	return out
}

// SetSelected moves coord toward the wanted state and returns the state
// coord ends up in. Selecting consults ShouldSelect and then the cap;
// deselecting consults ShouldDeselect and is never capacity-limited.
func (c *Controller) SetSelected(coord Coord, selected bool) bool {
	if selected {
		if c.indexOf(coord) >= 0 {
			return true
		}
		if !c.allowSelect(coord) {
			return false
		}
		if c.limit != NoLimit && len(c.selected) >= c.limit {
			return false
		}
		c.add(coord)
		return true
	}
	idx := c.indexOf(coord)
	if idx < 0 {
		return false
	}
	if !c.allowDeselect(coord) {
		return true
	}
	c.removeAt(idx)
	return false
}

// ToggleSelected flips coord and returns its new state. Unlike
// SetSelected, a full selection short-circuits before ShouldSelect is
// consulted; the deselect path is identical.
func (c *Controller) ToggleSelected(coord Coord) bool {
	if idx := c.indexOf(coord); idx >= 0 {
		if !c.allowDeselect(coord) {
			return true
		}
		c.removeAt(idx)
		return false
	}
	if c.limit != NoLimit && len(c.selected) >= c.limit {
		return false
	}
	if !c.allowSelect(coord) {
		return false
	}
	c.add(coord)
	return true
}

// SelectRange applies one step of a drag gesture. from is the anchor,
// to the cell under the pointer, and ext the bounds the gesture has
// visited so far. Cells between from and to are selected; cells inside
// ext but outside the current span are deselected. Every change routes
// through SetSelected, so hooks and the cap apply as usual.
func (c *Controller) SelectRange(from, to Coord, ext Extent) {
	switch cmp := from.Compare(to); {
	case cmp < 0:
		ForEachInRange(c.surface, from, to, false, false, func(cell Coord) {
			c.SetSelected(cell, true)
		})
		if ext.HasMax && to.Less(ext.Max) {
			ForEachInRange(c.surface, to, ext.Max, true, false, func(cell Coord) {
				c.SetSelected(cell, false)
			})
		}
		if ext.HasMin && ext.Min.Less(from) {
			ForEachInRange(c.surface, ext.Min, from, false, true, func(cell Coord) {
				c.SetSelected(cell, false)
			})
		}
	case cmp > 0:
		ForEachInRange(c.surface, to, from, false, false, func(cell Coord) {
			c.SetSelected(cell, true)
		})
		if ext.HasMin && ext.Min.Less(to) {
			ForEachInRange(c.surface, ext.Min, to, false, true, func(cell Coord) {
				c.SetSelected(cell, false)
			})
		}
		if ext.HasMax && from.Less(ext.Max) {
			ForEachInRange(c.surface, from, ext.Max, true, false, func(cell Coord) {
				c.SetSelected(cell, false)
			})
		}
	default:
		// Pointer is back on the anchor: everything the gesture touched
		// gets deselected except the anchor itself.
		if !ext.HasMin && !ext.HasMax {
			return
		}
		lo, hi := from, from
		if ext.HasMin {
			lo = ext.Min
		}
		if ext.HasMax {
			hi = ext.Max
		}
		ForEachInRange(c.surface, lo, hi, false, false, func(cell Coord) {
			if cell != from {
				c.SetSelected(cell, false)
			}
		})
	}
}

// SelectAll selects every cell the ShouldSelect hook permits, in linear
// order. The previous selection is discarded without per-cell
// notifications, and the cap deliberately does not apply: capping a
// bulk select would strand an arbitrary prefix.
func (c *Controller) SelectAll() {
	for _, cell := range c.selected {
		c.surface.SetCellSelected(cell, false)
	}
	c.selected = c.selected[:0]
	first, ok := FirstCell(c.surface)
	if !ok {
		return
	}
	last, _ := LastCell(c.surface)
	ForEachInRange(c.surface, first, last, false, false, func(cell Coord) {
		if c.allowSelect(cell) {
			c.add(cell)
		}
	})
}

// ClearSelected deselects everything in reverse insertion order, with a
// visual update and notification per cell.
func (c *Controller) ClearSelected() {
	for len(c.selected) > 0 {
		c.removeAt(len(c.selected) - 1)
	}
}

func (c *Controller) indexOf(coord Coord) int {
	for i, cell := range c.selected {
		if cell == coord {
			return i
		}
	}
	return -1
}

func (c *Controller) add(coord Coord) {
	c.selected = append(c.selected, coord)
	c.surface.SetCellSelected(coord, true)
	if c.hooks.DidSelect != nil {
		c.hooks.DidSelect(coord)
	}
}

func (c *Controller) removeAt(idx int) {
	coord := c.selected[idx]
	c.selected = append(c.selected[:idx], c.selected[idx+1:]...)
	c.surface.SetCellSelected(coord, false)
	if c.hooks.DidDeselect != nil {
		c.hooks.DidDeselect(coord)
	}
}

func (c *Controller) allowSelect(coord Coord) bool {
	return c.hooks.ShouldSelect == nil || c.hooks.ShouldSelect(coord)
}

func (c *Controller) allowDeselect(coord Coord) bool {
	return c.hooks.ShouldDeselect == nil || c.hooks.ShouldDeselect(coord)
}
