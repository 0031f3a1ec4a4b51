package grid

import "strconv"

// Coord addresses a single cell as a (section, item) pair.
// Coords are totally ordered: by section first, then item.
type Coord struct {
	Section int
	Item    int
}

// Compare returns -1, 0, or 1 ordering c against other.
func (c Coord) Compare(other Coord) int {
	if c.Section != other.Section {
		if c.Section < other.Section {
			return -1
		}
		return 1
	}
	if c.Item != other.Item {
		if c.Item < other.Item {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c orders strictly before other.
func (c Coord) Less(other Coord) bool {
	return c.Compare(other) < 0
}

func (c Coord) String() string {
	return strconv.Itoa(c.Section) + ":" + strconv.Itoa(c.Item)
}

// Extent tracks the coordinate bounds a drag gesture has visited.
// A zero Extent has no bounds; each bound exists independently.
type Extent struct {
	Min    Coord
	Max    Coord
	HasMin bool
	HasMax bool
}

// Extend grows the extent to include c.
func (e *Extent) Extend(c Coord) {
	if !e.HasMin || c.Less(e.Min) {
		e.Min = c
		e.HasMin = true
	}
	if !e.HasMax || e.Max.Less(c) {
		e.Max = c
		e.HasMax = true
	}
}

// Reset clears both bounds.
func (e *Extent) Reset() {
	*e = Extent{}
}
