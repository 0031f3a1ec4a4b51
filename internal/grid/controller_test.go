package grid

import "testing"

// fakeSurface records the visually selected set so tests can assert the
// surface never drifts from the controller state.
type fakeSurface struct {
	sliceShape
	visual map[Coord]bool
}

func newFakeSurface(sections ...int) *fakeSurface {
	return &fakeSurface{
		sliceShape: sliceShape(sections),
		visual:     map[Coord]bool{},
	}
}

func (f *fakeSurface) SetCellSelected(c Coord, selected bool) {
	if selected {
		f.visual[c] = true
		return
	}
	delete(f.visual, c)
}

func checkNoDrift(t *testing.T, ctrl *Controller, surface *fakeSurface) {
	t.Helper()
	sel := ctrl.Selected()
	if len(sel) != len(surface.visual) {
		t.Fatalf("state has %d cells, surface shows %d", len(sel), len(surface.visual))
	}
	for _, c := range sel {
		if !surface.visual[c] {
			t.Fatalf("%v selected in state but not on surface", c)
		}
	}
}

func TestSetSelectedIdempotent(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)
	selects := 0
	ctrl.SetHooks(Hooks{DidSelect: func(Coord) { selects++ }})

	if !ctrl.SetSelected(Coord{0, 3}, true) {
		t.Fatal("first select should succeed")
	}
	if !ctrl.SetSelected(Coord{0, 3}, true) {
		t.Fatal("repeat select should report selected")
	}
	if selects != 1 {
		t.Fatalf("expected 1 DidSelect, got %d", selects)
	}
	if ctrl.SelectedCount() != 1 {
		t.Fatalf("expected 1 selected cell, got %d", ctrl.SelectedCount())
	}
	checkNoDrift(t, ctrl, surface)
}

func TestSetSelectedDeselectMissingIsNoop(t *testing.T) {
	surface := newFakeSurface(4)
	ctrl := New(surface)
	deselects := 0
	ctrl.SetHooks(Hooks{DidDeselect: func(Coord) { deselects++ }})

	if ctrl.SetSelected(Coord{0, 2}, false) {
		t.Fatal("deselecting an unselected cell should return false")
	}
	if deselects != 0 {
		t.Fatalf("expected no DidDeselect, got %d", deselects)
	}
}

func TestToggleIsTrueToggle(t *testing.T) {
	surface := newFakeSurface(5)
	ctrl := New(surface)

	if !ctrl.ToggleSelected(Coord{0, 1}) {
		t.Fatal("first toggle should select")
	}
	if ctrl.ToggleSelected(Coord{0, 1}) {
		t.Fatal("second toggle should deselect")
	}
	if ctrl.SelectedCount() != 0 {
		t.Fatalf("expected empty selection, got %d", ctrl.SelectedCount())
	}
	checkNoDrift(t, ctrl, surface)
}

func TestToggleAtCapacitySkipsSelectHook(t *testing.T) {
	surface := newFakeSurface(5)
	ctrl := New(surface)
	asked := 0
	ctrl.SetHooks(Hooks{ShouldSelect: func(Coord) bool { asked++; return true }})
	ctrl.SetLimit(1)

	if !ctrl.ToggleSelected(Coord{0, 0}) {
		t.Fatal("toggle under the cap should select")
	}
	if ctrl.ToggleSelected(Coord{0, 1}) {
		t.Fatal("toggle at the cap should refuse")
	}
	// The full-selection check runs before the hook on the toggle path.
	if asked != 1 {
		t.Fatalf("expected ShouldSelect once, got %d", asked)
	}

	// SetSelected consults the hook even when the selection is full.
	if ctrl.SetSelected(Coord{0, 2}, true) {
		t.Fatal("select at the cap should refuse")
	}
	if asked != 2 {
		t.Fatalf("expected ShouldSelect twice, got %d", asked)
	}
}

func TestSetLimitEvictsNewestFirst(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)
	var deselected []Coord
	ctrl.SetHooks(Hooks{DidDeselect: func(c Coord) { deselected = append(deselected, c) }})

	ctrl.SetSelected(Coord{0, 0}, true)
	ctrl.SetSelected(Coord{0, 5}, true)
	ctrl.SetLimit(1)

	if !ctrl.IsSelected(Coord{0, 0}) {
		t.Fatal("oldest cell should survive the cap")
	}
	if ctrl.IsSelected(Coord{0, 5}) {
		t.Fatal("newest cell should be evicted")
	}
	if len(deselected) != 1 || deselected[0] != (Coord{0, 5}) {
		t.Fatalf("expected eviction notification for 0:5, got %v", deselected)
	}
	checkNoDrift(t, ctrl, surface)
}

func TestSetLimitEvictionOrderIsLIFO(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)
	var deselected []Coord
	ctrl.SetHooks(Hooks{DidDeselect: func(c Coord) { deselected = append(deselected, c) }})

	for i := 0; i < 4; i++ {
		ctrl.SetSelected(Coord{0, i}, true)
	}
	ctrl.SetLimit(1)

	want := []Coord{{0, 3}, {0, 2}, {0, 1}}
	if !coordsEqual(deselected, want) {
		t.Fatalf("expected LIFO evictions %v, got %v", want, deselected)
	}
}

func TestSelectAtLimitRefused(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)
	ctrl.SetLimit(2)

	ctrl.SetSelected(Coord{0, 0}, true)
	ctrl.SetSelected(Coord{0, 1}, true)
	if ctrl.SetSelected(Coord{0, 2}, true) {
		t.Fatal("select past the cap should refuse")
	}
	if ctrl.SelectedCount() != 2 {
		t.Fatalf("expected 2 selected, got %d", ctrl.SelectedCount())
	}
	// Deselecting is never capacity-limited.
	if ctrl.SetSelected(Coord{0, 0}, false) {
		t.Fatal("deselect should succeed at the cap")
	}
	checkNoDrift(t, ctrl, surface)
}

func TestGatingBlocksSelect(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)
	blocked := Coord{0, 4}
	var selected []Coord
	ctrl.SetHooks(Hooks{
		ShouldSelect: func(c Coord) bool { return c != blocked },
		DidSelect:    func(c Coord) { selected = append(selected, c) },
	})

	if ctrl.SetSelected(blocked, true) {
		t.Fatal("gated cell should stay unselected")
	}
	if ctrl.ToggleSelected(blocked) {
		t.Fatal("gated cell should stay unselected via toggle")
	}
	ctrl.SelectRange(Coord{0, 2}, Coord{0, 6}, Extent{})
	for _, c := range selected {
		if c == blocked {
			t.Fatal("DidSelect fired for a gated cell")
		}
	}
	if ctrl.IsSelected(blocked) {
		t.Fatal("range selection added a gated cell")
	}
	if ctrl.SelectedCount() != 4 {
		t.Fatalf("expected 4 selected around the gated cell, got %d", ctrl.SelectedCount())
	}
}

func TestGatingBlocksDeselect(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)
	ctrl.SetSelected(Coord{0, 1}, true)
	ctrl.SetHooks(Hooks{ShouldDeselect: func(Coord) bool { return false }})

	if !ctrl.SetSelected(Coord{0, 1}, false) {
		t.Fatal("gated deselect should report still selected")
	}
	if !ctrl.ToggleSelected(Coord{0, 1}) {
		t.Fatal("gated toggle should report still selected")
	}
	if !ctrl.IsSelected(Coord{0, 1}) {
		t.Fatal("cell should remain selected")
	}
}

func TestSelectRangeForward(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)

	ctrl.SelectRange(Coord{0, 2}, Coord{0, 5}, Extent{})

	want := []Coord{{0, 2}, {0, 3}, {0, 4}, {0, 5}}
	if !coordsEqual(ctrl.Selected(), want) {
		t.Fatalf("expected %v, got %v", want, ctrl.Selected())
	}
	checkNoDrift(t, ctrl, surface)
}

func TestSelectRangeShrinkDeselectsTail(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)

	ext := Extent{Max: Coord{0, 6}, HasMax: true}
	ctrl.SelectRange(Coord{0, 2}, Coord{0, 5}, ext)
	ctrl.SelectRange(Coord{0, 2}, Coord{0, 4}, ext)

	if ctrl.IsSelected(Coord{0, 5}) {
		t.Fatal("item 5 should be deselected after the pointer pulled back")
	}
	for i := 2; i <= 4; i++ {
		if !ctrl.IsSelected(Coord{0, i}) {
			t.Fatalf("item %d should remain selected", i)
		}
	}
	checkNoDrift(t, ctrl, surface)
}

func TestSelectRangeBackward(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)

	ext := Extent{Min: Coord{0, 1}, HasMin: true, Max: Coord{0, 8}, HasMax: true}
	ctrl.SelectRange(Coord{0, 6}, Coord{0, 3}, ext)

	for i := 3; i <= 6; i++ {
		if !ctrl.IsSelected(Coord{0, i}) {
			t.Fatalf("item %d should be selected", i)
		}
	}
	// [min, to) and (from, max] fall outside the backward span.
	for _, i := range []int{1, 2, 7, 8} {
		if ctrl.IsSelected(Coord{0, i}) {
			t.Fatalf("item %d should not be selected", i)
		}
	}
	checkNoDrift(t, ctrl, surface)
}

func TestSelectRangeAnchorReturn(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)

	// Sweep out and return, the way a drag delivers it.
	ext := Extent{}
	anchor := Coord{0, 3}
	ext.Extend(anchor)
	for i := 4; i <= 7; i++ {
		cur := Coord{0, i}
		ext.Extend(cur)
		ctrl.SelectRange(anchor, cur, ext)
	}
	for i := 2; i >= 0; i-- {
		cur := Coord{0, i}
		ext.Extend(cur)
		ctrl.SelectRange(anchor, cur, ext)
	}
	ctrl.SelectRange(anchor, anchor, ext)

	if got := ctrl.Selected(); len(got) != 1 || got[0] != anchor {
		t.Fatalf("expected only the anchor selected, got %v", got)
	}
	checkNoDrift(t, ctrl, surface)
}

func TestSelectRangeAnchorReturnWithoutExtentIsNoop(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)
	ctrl.SetSelected(Coord{0, 9}, true)

	ctrl.SelectRange(Coord{0, 3}, Coord{0, 3}, Extent{})

	if !ctrl.IsSelected(Coord{0, 9}) {
		t.Fatal("no-op anchor return should leave the selection alone")
	}
}

func TestSelectRangeAcrossEmptySection(t *testing.T) {
	surface := newFakeSurface(3, 0, 3)
	ctrl := New(surface)

	ctrl.SelectRange(Coord{0, 1}, Coord{2, 1}, Extent{})

	want := []Coord{{0, 1}, {0, 2}, {2, 0}, {2, 1}}
	if !coordsEqual(ctrl.Selected(), want) {
		t.Fatalf("expected %v, got %v", want, ctrl.Selected())
	}
}

func TestSelectRangeRespectsLimit(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)
	ctrl.SetLimit(3)

	ctrl.SelectRange(Coord{0, 0}, Coord{0, 9}, Extent{})

	want := []Coord{{0, 0}, {0, 1}, {0, 2}}
	if !coordsEqual(ctrl.Selected(), want) {
		t.Fatalf("drag should stop adding at the cap: got %v", ctrl.Selected())
	}
}

func TestSelectAllIgnoresLimitAndGates(t *testing.T) {
	surface := newFakeSurface(4, 4)
	ctrl := New(surface)
	ctrl.SetLimit(2)
	ctrl.SetHooks(Hooks{ShouldSelect: func(c Coord) bool { return c.Item%2 == 0 }})

	ctrl.SelectAll()

	want := []Coord{{0, 0}, {0, 2}, {1, 0}, {1, 2}}
	if !coordsEqual(ctrl.Selected(), want) {
		t.Fatalf("expected even items %v, got %v", want, ctrl.Selected())
	}
	checkNoDrift(t, ctrl, surface)
}

func TestSelectAllReplacesSilently(t *testing.T) {
	surface := newFakeSurface(3)
	ctrl := New(surface)
	ctrl.SetSelected(Coord{0, 1}, true)
	deselects := 0
	ctrl.SetHooks(Hooks{DidDeselect: func(Coord) { deselects++ }})

	ctrl.SelectAll()

	if deselects != 0 {
		t.Fatalf("SelectAll should not notify deselects, got %d", deselects)
	}
	if ctrl.SelectedCount() != 3 {
		t.Fatalf("expected all 3 cells selected, got %d", ctrl.SelectedCount())
	}
	checkNoDrift(t, ctrl, surface)
}

func TestClearSelectedReverseOrder(t *testing.T) {
	surface := newFakeSurface(10)
	ctrl := New(surface)
	var deselected []Coord
	ctrl.SetHooks(Hooks{DidDeselect: func(c Coord) { deselected = append(deselected, c) }})

	ctrl.SetSelected(Coord{0, 0}, true)
	ctrl.SetSelected(Coord{0, 4}, true)
	ctrl.SetSelected(Coord{0, 2}, true)
	ctrl.ClearSelected()

	want := []Coord{{0, 2}, {0, 4}, {0, 0}}
	if !coordsEqual(deselected, want) {
		t.Fatalf("expected reverse insertion order %v, got %v", want, deselected)
	}
	if ctrl.SelectedCount() != 0 {
		t.Fatalf("expected empty selection, got %d", ctrl.SelectedCount())
	}
	checkNoDrift(t, ctrl, surface)
}

func TestSetSelectedActsOnOutOfShapeCoord(t *testing.T) {
	surface := newFakeSurface(2)
	ctrl := New(surface)

	// Direct calls take the coordinate at face value; only range
	// iteration consults the shape.
	if !ctrl.SetSelected(Coord{7, 42}, true) {
		t.Fatal("out-of-shape coordinate should select literally")
	}
	if !ctrl.IsSelected(Coord{7, 42}) {
		t.Fatal("out-of-shape coordinate should be tracked")
	}
}
