package collectionview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// coreOnly hides a layout's optional capabilities, leaving the required
// contract. Used to exercise the view's fallback paths.
type coreOnly struct {
	inner Layout
}

func (c coreOnly) Prepare(host Host) { c.inner.Prepare(host) }

func (c coreOnly) ItemAttributes(path IndexPath) ItemAttributes {
	return c.inner.ItemAttributes(path)
}

func (c coreOnly) ContentSize() Size { return c.inner.ContentSize() }

func (c coreOnly) ScrollDirection() ScrollDirection { return c.inner.ScrollDirection() }

func (c coreOnly) NextIndexPath(dir Direction, from IndexPath) (IndexPath, bool) {
	return c.inner.NextIndexPath(dir, from)
}

// declineResize never wants a re-layout on bounds changes.
type declineResize struct {
	*recordingLayout
}

func (declineResize) ShouldInvalidateForBoundsChange(Rect) bool { return false }

// reapplier asks for fresh attributes on every render pass.
type reapplier struct {
	*recordingLayout
}

func (reapplier) ShouldReapplyAttributes() bool { return true }

func gridView(counts []int) (*View, *testSource) {
	source := &testSource{counts: counts, unselectable: map[IndexPath]bool{}}
	v := NewView(NewRect(0, 0, 50, 6), source)
	v.SetLayout(NewGridLayout(Size{Width: 10, Height: 3}))
	return v, source
}

func TestView_ValidateIndexPath(t *testing.T) {
	v, _ := gridView([]int{10, 0, 3})

	type tc struct {
		path     IndexPath
		expected bool
	}

	tests := map[string]tc{
		"first item":         {IndexPath{0, 0}, true},
		"last of section":    {IndexPath{0, 9}, true},
		"past section end":   {IndexPath{0, 10}, false},
		"empty section":      {IndexPath{1, 0}, false},
		"negative item":      {IndexPath{0, -1}, false},
		"negative section":   {IndexPath{-1, 0}, false},
		"section past end":   {IndexPath{3, 0}, false},
		"third section item": {IndexPath{2, 2}, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := v.ValidateIndexPath(tt.path); got != tt.expected {
				t.Errorf("ValidateIndexPath(%+v) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestView_NextSelectableSkipsBlockedItems(t *testing.T) {
	v, source := gridView([]int{3, 2})
	source.unselectable[IndexPath{0, 1}] = true
	source.unselectable[IndexPath{0, 2}] = true

	got, ok := v.NextSelectableAfter(IndexPath{0, 0})
	if !ok || got != (IndexPath{1, 0}) {
		t.Errorf("NextSelectableAfter = %+v, %v; want {1 0}, true", got, ok)
	}

	got, ok = v.NextSelectableBefore(IndexPath{1, 0})
	if !ok || got != (IndexPath{0, 0}) {
		t.Errorf("NextSelectableBefore = %+v, %v; want {0 0}, true", got, ok)
	}

	if _, ok := v.NextSelectableAfter(IndexPath{1, 1}); ok {
		t.Error("no selectable item past the end")
	}
	if _, ok := v.NextSelectableBefore(IndexPath{0, 0}); ok {
		t.Error("no selectable item before the beginning")
	}
}

func TestView_NextSelectableClampsAnchor(t *testing.T) {
	// A slice-backed source panics on out-of-range paths, so the scan
	// anchor must be clamped before IsSelectable is consulted.
	flags := make([]bool, 10)
	for i := range flags {
		flags[i] = true
	}
	source := flagSource{selectable: [][]bool{flags}}
	v := NewView(NewRect(0, 0, 50, 6), source)
	v.SetLayout(NewGridLayout(Size{Width: 10, Height: 3}))

	got, ok := v.NextSelectableBefore(IndexPath{Section: 0, Item: 1 << 40})
	if !ok || got != (IndexPath{Section: 0, Item: 9}) {
		t.Errorf("NextSelectableBefore far past the end = %+v, %v; want {0 9}, true", got, ok)
	}

	got, ok = v.NextSelectableBefore(IndexPath{Section: 5, Item: 0})
	if !ok || got != (IndexPath{Section: 0, Item: 9}) {
		t.Errorf("NextSelectableBefore past the last section = %+v, %v; want {0 9}, true", got, ok)
	}
}

func TestView_ScrollClamping(t *testing.T) {
	// Grid content: 50 wide viewport, 10 items, 5 columns, two rows of
	// 3 => content height 6 against a 4-tall viewport.
	source := &testSource{counts: []int{10}}
	v := NewView(NewRect(0, 0, 50, 4), source)
	v.SetLayout(NewGridLayout(Size{Width: 10, Height: 3}))

	// The layout reports zero content width: fit to viewport, so the
	// horizontal axis must not scroll at all.
	v.ScrollBy(25, 0)
	if got := v.ScrollOffset(); got != (Point{X: 0, Y: 0}) {
		t.Errorf("offset after horizontal scroll = %+v, want origin", got)
	}

	v.ScrollBy(0, 100)
	if got := v.ScrollOffset(); got != (Point{X: 0, Y: 2}) {
		t.Errorf("offset after overscroll = %+v, want {0 2}", got)
	}

	v.ScrollBy(0, -100)
	if got := v.ScrollOffset(); got != (Point{X: 0, Y: 0}) {
		t.Errorf("offset after negative overscroll = %+v, want origin", got)
	}

	if got := v.EffectiveContentSize(); got != (Size{Width: 50, Height: 6}) {
		t.Errorf("EffectiveContentSize = %+v, want {50 6}", got)
	}
}

func TestView_EffectiveContentSizeClampsToViewport(t *testing.T) {
	// Content smaller than the viewport on both axes.
	source := &testSource{counts: []int{1}}
	v := NewView(NewRect(0, 0, 40, 20), source)
	v.SetLayout(NewGridLayout(Size{Width: 5, Height: 2}))

	if got := v.EffectiveContentSize(); got != (Size{Width: 40, Height: 20}) {
		t.Errorf("EffectiveContentSize = %+v, want viewport size", got)
	}
}

func TestView_VisibleItemsFallbackMatchesOptimized(t *testing.T) {
	grid := NewGridLayout(Size{Width: 10, Height: 3})
	source := &testSource{counts: []int{10, 4}}

	optimized := NewView(NewRect(0, 0, 50, 5), source)
	optimized.SetLayout(grid)

	fallback := NewView(NewRect(0, 0, 50, 5), source)
	fallback.SetLayout(coreOnly{inner: NewGridLayout(Size{Width: 10, Height: 3})})

	optimized.ScrollTo(Point{Y: 2})
	fallback.ScrollTo(Point{Y: 2})

	if diff := cmp.Diff(optimized.VisibleItems(), fallback.VisibleItems()); diff != "" {
		t.Errorf("brute-force visible set disagrees with optimized (-optimized +fallback):\n%s", diff)
	}
	if len(optimized.VisibleItems()) == 0 {
		t.Fatal("expected visible items")
	}
}

func TestView_VisibleItemsCached(t *testing.T) {
	v, _ := gridView([]int{10})

	first := v.VisibleItems()
	second := v.VisibleItems()
	if &first[0] != &second[0] {
		t.Error("visible set should be served from cache until invalidated")
	}

	v.InvalidateLayout()
	third := v.VisibleItems()
	if diff := cmp.Diff(first, third); diff != "" {
		t.Errorf("re-prepared visible set changed (-before +after):\n%s", diff)
	}
}

func TestView_ReapplierBypassesVisibleCache(t *testing.T) {
	source := &testSource{counts: []int{1}}
	v := NewView(NewRect(0, 0, 10, 10), source)
	v.SetLayout(reapplier{&recordingLayout{}})

	first := v.VisibleItems()
	if len(first) == 0 {
		t.Fatal("expected a visible item")
	}
	second := v.VisibleItems()
	if &first[0] == &second[0] {
		t.Error("a reapplying layout must get fresh attributes every pass")
	}
}

func TestView_MoveSelection(t *testing.T) {
	v, source := gridView([]int{10})

	// No selection yet: any movement selects the first selectable item.
	if !v.MoveSelection(Down) {
		t.Fatal("initial move should select the first item")
	}
	if got, _ := v.SelectedItem(); got != (IndexPath{0, 0}) {
		t.Fatalf("selection = %+v, want {0 0}", got)
	}

	v.MoveSelection(Right)
	if got, _ := v.SelectedItem(); got != (IndexPath{0, 1}) {
		t.Errorf("selection = %+v, want {0 1}", got)
	}

	// Skipping: the next slot to the right is blocked.
	source.unselectable[IndexPath{0, 2}] = true
	v.MoveSelection(Right)
	if got, _ := v.SelectedItem(); got != (IndexPath{0, 3}) {
		t.Errorf("selection = %+v, want {0 3} (skipped blocked item)", got)
	}

	// Boundary: no wraparound, selection unchanged.
	v.SelectItem(IndexPath{0, 4})
	if v.MoveSelection(Right) {
		t.Error("movement past the row boundary should fail")
	}
	if got, _ := v.SelectedItem(); got != (IndexPath{0, 4}) {
		t.Errorf("selection = %+v, want unchanged {0 4}", got)
	}

	// Down from the end of the first row lands directly below.
	v.MoveSelection(Down)
	if got, _ := v.SelectedItem(); got != (IndexPath{0, 9}) {
		t.Errorf("selection = %+v, want {0 9}", got)
	}
}

func TestView_MoveSelectionScrollsIntoView(t *testing.T) {
	source := &testSource{counts: []int{10}}
	v := NewView(NewRect(0, 0, 50, 3), source)
	v.SetLayout(NewGridLayout(Size{Width: 10, Height: 3}))

	v.SelectItem(IndexPath{0, 0})
	v.MoveSelection(Down)

	// The second row (y 3..6) must now be inside the 3-tall viewport.
	if got := v.ScrollOffset(); got != (Point{X: 0, Y: 3}) {
		t.Errorf("offset = %+v, want {0 3}", got)
	}
}

func TestView_ReloadDataDropsStaleState(t *testing.T) {
	v, source := gridView([]int{10})

	v.SelectItem(IndexPath{0, 9})
	gen := v.DataGeneration()

	source.counts = []int{5}
	v.ReloadData()

	if v.DataGeneration() != gen+1 {
		t.Errorf("generation = %d, want %d", v.DataGeneration(), gen+1)
	}
	if _, ok := v.SelectedItem(); ok {
		t.Error("selection pointing past the new counts should be dropped")
	}

	// The layout was invalidated in the same call: fresh geometry only
	// covers the 5 remaining items.
	if got := len(v.VisibleItems()); got != 5 {
		t.Errorf("visible items = %d, want 5", got)
	}
}

func TestView_SetBoundsHonorsDecline(t *testing.T) {
	l := declineResize{&recordingLayout{}}
	source := &testSource{counts: []int{1}}
	v := NewView(NewRect(0, 0, 10, 10), source)
	v.SetLayout(l)

	v.VisibleItems() // force the first prepare
	if l.prepares != 1 {
		t.Fatalf("prepares = %d, want 1", l.prepares)
	}

	v.SetBounds(NewRect(0, 0, 30, 30))
	v.VisibleItems()
	if l.prepares != 1 {
		t.Errorf("prepares = %d, want 1 (layout declined the resize)", l.prepares)
	}

	// Without the decline, the same resize re-prepares.
	plain := &recordingLayout{}
	v2 := NewView(NewRect(0, 0, 10, 10), source)
	v2.SetLayout(plain)
	v2.VisibleItems()
	v2.SetBounds(NewRect(0, 0, 30, 30))
	v2.VisibleItems()
	if plain.prepares != 2 {
		t.Errorf("prepares = %d, want 2 (resize invalidates by default)", plain.prepares)
	}
}

func TestView_ItemAt(t *testing.T) {
	// Offset bounds and a scrolled viewport: hit testing must account
	// for both translations.
	source := &testSource{counts: []int{10}}
	v := NewView(NewRect(2, 1, 50, 3), source)
	v.SetLayout(NewGridLayout(Size{Width: 10, Height: 3}))
	v.ScrollTo(Point{Y: 3})

	// Screen (2, 1) -> content (0, 3): first item of the second row.
	got, ok := v.ItemAt(Point{X: 2, Y: 1})
	if !ok || got != (IndexPath{0, 5}) {
		t.Errorf("ItemAt = %+v, %v; want {0 5}, true", got, ok)
	}

	// Outside the view's bounds.
	if _, ok := v.ItemAt(Point{X: 0, Y: 0}); ok {
		t.Error("point outside bounds should miss")
	}
}

func TestView_SectionFrameAggregationFallback(t *testing.T) {
	// Five 10-wide items fill the 50-wide row exactly, so the item-frame
	// union spans the same rect as the precomputed full-width answer. A
	// partially filled row would aggregate narrower; that slack is the
	// documented cost of the slow path.
	source := &testSource{counts: []int{5}}

	withFramer := NewView(NewRect(0, 0, 50, 10), source)
	withFramer.SetLayout(NewGridLayout(Size{Width: 10, Height: 3}))

	withoutFramer := NewView(NewRect(0, 0, 50, 10), source)
	withoutFramer.SetLayout(coreOnly{inner: NewGridLayout(Size{Width: 10, Height: 3})})

	fast := withFramer.SectionFrame(0)
	slow := withoutFramer.SectionFrame(0)
	if want := NewRect(0, 0, 50, 3); fast != want || slow != want {
		t.Errorf("section frames = %+v (precomputed), %+v (aggregated); want %+v", fast, slow, want)
	}
}

func TestView_DragCommit(t *testing.T) {
	source := &testSource{counts: []int{4}}
	v := NewView(NewRect(0, 0, 20, 10), source)
	v.SetLayout(NewListLayout(2))

	if !v.BeginDrag(IndexPath{0, 0}) {
		t.Fatal("BeginDrag should succeed with a reordering source")
	}
	info, ok := v.ActiveDrag()
	if !ok || info.Source != (IndexPath{0, 0}) {
		t.Fatalf("ActiveDrag = %+v, %v", info, ok)
	}

	// Rows are 2 tall; y=5 is the bottom half of row 2 -> gap 3.
	target, ok := v.UpdateDrag(Point{X: 5, Y: 5})
	if !ok || target != (DropIndexPath{Section: 0, Gap: 3}) {
		t.Fatalf("UpdateDrag = %+v, %v; want gap 3", target, ok)
	}

	gen := v.DataGeneration()
	if !v.EndDrag() {
		t.Fatal("EndDrag should commit")
	}

	// Gap 3 counts the dragged item's own slot; after removal the
	// destination is index 2.
	want := [2]IndexPath{{0, 0}, {0, 2}}
	if len(source.moves) != 1 || source.moves[0] != want {
		t.Errorf("moves = %+v, want [%+v]", source.moves, want)
	}
	if v.DataGeneration() != gen+1 {
		t.Error("a committed drop must reload data")
	}
	if _, ok := v.ActiveDrag(); ok {
		t.Error("session should be over")
	}
}

func TestView_DragNoopAndUnsupported(t *testing.T) {
	// Dropping an item back onto its own slot is not a move.
	source := &testSource{counts: []int{4}}
	v := NewView(NewRect(0, 0, 20, 10), source)
	v.SetLayout(NewListLayout(2))

	v.BeginDrag(IndexPath{0, 1})
	// y=2 is the top half of row 1 -> gap 1, which is the dragged
	// item's own slot.
	v.UpdateDrag(Point{X: 5, Y: 2})
	if v.EndDrag() {
		t.Error("dropping onto the original slot should not commit")
	}
	if len(source.moves) != 0 {
		t.Errorf("moves = %+v, want none", source.moves)
	}

	// A source without reordering support cannot start a session.
	v2 := NewView(NewRect(0, 0, 20, 10), plainSource{counts: []int{4}})
	v2.SetLayout(NewListLayout(2))
	if v2.BeginDrag(IndexPath{0, 0}) {
		t.Error("BeginDrag should fail without a ReorderingSource")
	}

	// A layout without drop support cannot start a session either.
	v3 := NewView(NewRect(0, 0, 20, 10), source)
	v3.SetLayout(coreOnly{inner: NewListLayout(2)})
	if v3.BeginDrag(IndexPath{0, 0}) {
		t.Error("BeginDrag should fail without a DropLayout")
	}
}
