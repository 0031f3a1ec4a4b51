package grid

// Shape describes the dimensions of a sectioned grid. Implementations
// must return non-negative, stable counts for the duration of a single
// operation.
type Shape interface {
	NumSections() int
	NumItems(section int) int
}

// CellExists reports whether c names a real cell of the shape.
func CellExists(s Shape, c Coord) bool {
	if c.Section < 0 || c.Section >= s.NumSections() {
		return false
	}
	return c.Item >= 0 && c.Item < s.NumItems(c.Section)
}

// FirstCell returns the first cell in linear order, skipping empty
// leading sections. ok is false when the grid has no cells at all.
func FirstCell(s Shape) (Coord, bool) {
	for sec := 0; sec < s.NumSections(); sec++ {
		if s.NumItems(sec) > 0 {
			return Coord{Section: sec}, true
		}
	}
	return Coord{}, false
}

// LastCell returns the last cell in linear order.
func LastCell(s Shape) (Coord, bool) {
	for sec := s.NumSections() - 1; sec >= 0; sec-- {
		if n := s.NumItems(sec); n > 0 {
			return Coord{Section: sec, Item: n - 1}, true
		}
	}
	return Coord{}, false
}

// NextCell returns the cell strictly after c in linear order, moving to
// the next non-empty section when c is the last item of its section.
func NextCell(s Shape, c Coord) (Coord, bool) {
	if c.Section >= 0 && c.Section < s.NumSections() {
		if c.Item+1 < s.NumItems(c.Section) {
			return Coord{Section: c.Section, Item: c.Item + 1}, true
		}
	}
	for sec := c.Section + 1; sec < s.NumSections(); sec++ {
		if s.NumItems(sec) > 0 {
			return Coord{Section: sec}, true
		}
	}
	return Coord{}, false
}

// PrevCell returns the cell strictly before c in linear order, moving to
// the previous non-empty section when c is the first item of its section.
func PrevCell(s Shape, c Coord) (Coord, bool) {
	if c.Section >= 0 && c.Section < s.NumSections() {
		if n := s.NumItems(c.Section); c.Item > 0 && n > 0 {
			item := c.Item - 1
			if item >= n {
				item = n - 1
			}
			return Coord{Section: c.Section, Item: item}, true
		}
	}
	for sec := c.Section - 1; sec >= 0; sec-- {
		if n := s.NumItems(sec); n > 0 {
			return Coord{Section: sec, Item: n - 1}, true
		}
	}
	return Coord{}, false
}

// ForEachInRange visits every cell from start to end inclusive in
// ascending linear order. openLeft excludes start, openRight excludes
// end; either adjustment can empty the range. Cells falling outside the
// shape (an empty section inside the range, say) are skipped.
func ForEachInRange(s Shape, start, end Coord, openLeft, openRight bool, visit func(Coord)) {
	if openLeft {
		next, ok := NextCell(s, start)
		if !ok {
			return
		}
		start = next
	}
	if openRight {
		prev, ok := PrevCell(s, end)
		if !ok {
			return
		}
		end = prev
	}
	cur := start
	for {
		if end.Less(cur) {
			return
		}
		if CellExists(s, cur) {
			visit(cur)
		}
		next, ok := NextCell(s, cur)
		if !ok {
			return
		}
		cur = next
	}
}
