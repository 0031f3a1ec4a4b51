package common

// HitRegion is a rectangular mouse target in screen cells. The grid
// pane builds one per rendered cell from its zone bounds.
type HitRegion struct {
	ID     string
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point falls inside the region. The
// right and bottom edges are exclusive.
func (h HitRegion) Contains(x, y int) bool {
	return x >= h.X && x < h.X+h.Width && y >= h.Y && y < h.Y+h.Height
}
