package collectionview

import "sort"

// View is the host side of the collection view: it owns the data source
// and the attached layout, and drives invalidation, scrolling, selection,
// drag and drop, and rendering.
//
// All methods must be called from the goroutine driving the tcell event
// loop; the view is single-threaded by contract.
type View struct {
	source DataSource
	eng    engine

	bounds Rect
	scroll Point

	// generation counts data reloads. Geometry prepared under an older
	// generation is never served: ReloadData invalidates the layout in
	// the same call.
	generation uint64

	selected    IndexPath
	hasSelected bool

	visible   []VisibleItem
	visibleOK bool

	drag  *dragSession
	mouse mouseState

	// RenderItem draws one item into its clipped screen-space frame.
	// Items with Alpha 0 are skipped before this is called.
	RenderItem ItemRenderer

	// RenderSupplementary draws a header/footer/decoration band. May be
	// nil if the layout positions no supplementary elements.
	RenderSupplementary SupplementaryRenderer
}

// VisibleItem pairs an index path with its current attributes.
type VisibleItem struct {
	Path  IndexPath
	Attrs ItemAttributes
}

// NewView creates a view over the given screen-space bounds and data
// source. A layout must be attached with SetLayout before rendering.
func NewView(bounds Rect, source DataSource) *View {
	return &View{bounds: bounds, source: source}
}

// --- Host interface (read by layouts during Prepare) ---

// ViewportSize returns the size of the view's visible region.
func (v *View) ViewportSize() Size {
	return v.bounds.Size()
}

// NumberOfSections returns the data source's section count.
func (v *View) NumberOfSections() int {
	if v.source == nil {
		return 0
	}
	return v.source.NumberOfSections()
}

// NumberOfItems returns the data source's item count for a section.
func (v *View) NumberOfItems(section int) int {
	if v.source == nil {
		return 0
	}
	return v.source.NumberOfItems(section)
}

// --- Layout lifecycle ---

// SetLayout attaches a layout strategy, replacing any previous one. The
// new layout starts unprepared; it meets the view inside its first
// Prepare call.
func (v *View) SetLayout(l Layout) {
	v.eng = engine{layout: l}
	v.visibleOK = false
}

// Layout returns the attached layout, or nil.
func (v *View) Layout() Layout {
	return v.eng.layout
}

// InvalidateLayout marks cached geometry stale. The next render pass (or
// geometry query) re-prepares the layout. This is not a data reload: if
// the data source changed, call ReloadData instead.
func (v *View) InvalidateLayout() {
	v.visibleOK = false
	v.eng.invalidate()
}

// ReloadData tells the view its data source contents changed. It bumps
// the data generation and invalidates the layout in the same call, so
// geometry from the old generation is never served. Selection and drag
// state referring to paths that no longer exist are dropped.
func (v *View) ReloadData() {
	v.generation++
	if v.drag != nil {
		v.CancelDrag()
	}
	v.InvalidateLayout()
	if v.hasSelected && !v.ValidateIndexPath(v.selected) {
		v.hasSelected = false
	}
}

// DataGeneration returns the current reload generation.
func (v *View) DataGeneration() uint64 {
	return v.generation
}

// SetBounds moves or resizes the view. The layout may decline the
// resulting invalidation through BoundsChangeResponder.
func (v *View) SetBounds(bounds Rect) {
	invalidate := bounds.Size() != v.bounds.Size() &&
		v.eng.shouldInvalidateForBoundsChange(bounds)
	v.bounds = bounds
	v.visibleOK = false
	if invalidate {
		v.InvalidateLayout()
	}
	v.clampScroll()
}

// Bounds returns the view's screen-space region.
func (v *View) Bounds() Rect {
	return v.bounds
}

func (v *View) prepareIfNeeded() {
	if !v.eng.prepared() {
		v.visibleOK = false
		v.eng.prepare(v)
		v.clampScroll()
	}
}

// --- Index path validity and selectable traversal ---

// ValidateIndexPath reports whether the path addresses an existing item.
func (v *View) ValidateIndexPath(path IndexPath) bool {
	return path.Section >= 0 && path.Section < v.NumberOfSections() &&
		path.Item >= 0 && path.Item < v.NumberOfItems(path.Section)
}

func (v *View) isSelectable(path IndexPath) bool {
	if s, ok := v.source.(SelectableSource); ok {
		return s.IsSelectable(path)
	}
	return true
}

// NextSelectableAfter returns the first selectable item after path in
// linear order, or false past the end. The path itself need not be valid;
// it only anchors the scan.
func (v *View) NextSelectableAfter(path IndexPath) (IndexPath, bool) {
	sections := v.NumberOfSections()
	for s := max(path.Section, 0); s < sections; s++ {
		start := 0
		if s == path.Section {
			start = path.Item + 1
		}
		for i := start; i < v.NumberOfItems(s); i++ {
			p := IndexPath{Section: s, Item: i}
			if v.isSelectable(p) {
				return p, true
			}
		}
	}
	return IndexPath{}, false
}

// NextSelectableBefore returns the first selectable item before path in
// linear order, or false past the beginning. The path itself need not be
// valid; it only anchors the scan.
func (v *View) NextSelectableBefore(path IndexPath) (IndexPath, bool) {
	for s := min(path.Section, v.NumberOfSections()-1); s >= 0; s-- {
		start := v.NumberOfItems(s) - 1
		if s == path.Section {
			start = min(path.Item-1, start)
		}
		for i := start; i >= 0; i-- {
			p := IndexPath{Section: s, Item: i}
			if v.isSelectable(p) {
				return p, true
			}
		}
	}
	return IndexPath{}, false
}

// --- Selection ---

// SelectedItem returns the selected item, or false if nothing is selected.
func (v *View) SelectedItem() (IndexPath, bool) {
	return v.selected, v.hasSelected
}

// SelectItem selects the given item if it is valid and selectable.
func (v *View) SelectItem(path IndexPath) bool {
	if !v.ValidateIndexPath(path) || !v.isSelectable(path) {
		return false
	}
	v.selected = path
	v.hasSelected = true
	return true
}

// ClearSelection removes the selection.
func (v *View) ClearSelection() {
	v.hasSelected = false
}

// MoveSelection moves the selection in the given direction using the
// layout's successor relation, skipping over non-selectable items, and
// scrolls the new selection into view. With no current selection the
// first selectable item is chosen. Returns false at a boundary.
func (v *View) MoveSelection(dir Direction) bool {
	if v.eng.layout == nil {
		return false
	}
	v.prepareIfNeeded()

	if !v.hasSelected {
		first, ok := v.NextSelectableAfter(IndexPath{Section: 0, Item: -1})
		if !ok {
			return false
		}
		v.SelectItem(first)
		v.ScrollToItem(first)
		return true
	}

	next, ok := v.eng.layout.NextIndexPath(dir, v.selected)
	if !ok {
		return false
	}
	if !v.isSelectable(next) {
		// Continue past the blocked slot in the movement's linear
		// direction.
		switch dir {
		case Down, Right:
			next, ok = v.NextSelectableAfter(next)
		default:
			next, ok = v.NextSelectableBefore(next)
		}
		if !ok {
			return false
		}
	}
	v.SelectItem(next)
	v.ScrollToItem(next)
	return true
}

// --- Scroll geometry ---

// ScrollOffset returns the current content offset.
func (v *View) ScrollOffset() Point {
	return v.scroll
}

// ScrollTo sets the content offset, clamped to the scrollable range.
func (v *View) ScrollTo(offset Point) {
	v.prepareIfNeeded()
	v.scroll = offset
	v.clampScroll()
	v.visibleOK = false
}

// ScrollBy adjusts the content offset, clamped to the scrollable range.
func (v *View) ScrollBy(dx, dy int) {
	v.ScrollTo(Point{X: v.scroll.X + dx, Y: v.scroll.Y + dy})
}

// ScrollToItem scrolls the minimum distance needed to bring an item's
// frame fully into the viewport (or its top-left corner, if the frame is
// larger than the viewport).
func (v *View) ScrollToItem(path IndexPath) {
	if v.eng.layout == nil || !v.ValidateIndexPath(path) {
		return
	}
	v.prepareIfNeeded()
	frame := v.eng.layout.ItemAttributes(path).Frame
	vp := v.ViewportSize()

	offset := v.scroll
	if frame.Bottom() > offset.Y+vp.Height {
		offset.Y = frame.Bottom() - vp.Height
	}
	if frame.Y < offset.Y {
		offset.Y = frame.Y
	}
	if frame.Right() > offset.X+vp.Width {
		offset.X = frame.Right() - vp.Width
	}
	if frame.X < offset.X {
		offset.X = frame.X
	}
	v.ScrollTo(offset)
}

// EffectiveContentSize returns the layout's content size with each axis
// clamped up to the viewport: a zero (or undersized) axis scrolls exactly
// like a fit-to-viewport axis, which is not at all.
func (v *View) EffectiveContentSize() Size {
	v.prepareIfNeeded()
	vp := v.ViewportSize()
	if v.eng.layout == nil {
		return vp
	}
	return v.eng.layout.ContentSize().Max(vp)
}

func (v *View) clampScroll() {
	if v.eng.layout == nil || !v.eng.prepared() {
		return
	}
	content := v.eng.layout.ContentSize().Max(v.ViewportSize())
	vp := v.ViewportSize()
	v.scroll.X = min(max(v.scroll.X, 0), content.Width-vp.Width)
	v.scroll.Y = min(max(v.scroll.Y, 0), content.Height-vp.Height)
}

// contentViewport returns the viewport rectangle in content space.
func (v *View) contentViewport() Rect {
	return NewRect(v.scroll.X, v.scroll.Y, v.bounds.Width, v.bounds.Height)
}

// --- Geometry queries ---

// VisibleItems returns the items intersecting the viewport with their
// attributes, ordered back to front. The result is cached until the
// layout is invalidated or the view scrolls, unless the layout asks for
// attributes to be reapplied every pass.
func (v *View) VisibleItems() []VisibleItem {
	if v.eng.layout == nil {
		return nil
	}
	v.prepareIfNeeded()
	if v.visibleOK && !v.eng.reappliesAttributes() {
		return v.visible
	}

	viewport := v.contentViewport()
	paths, ok := v.eng.indexPathsInRect(viewport)
	if !ok {
		paths = v.bruteForceItemsIn(viewport)
	}

	items := make([]VisibleItem, 0, len(paths))
	for _, p := range paths {
		items = append(items, VisibleItem{Path: p, Attrs: v.eng.layout.ItemAttributes(p)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Attrs.ZIndex < items[j].Attrs.ZIndex
	})

	v.visible = items
	v.visibleOK = true
	return items
}

// bruteForceItemsIn is the fallback when the layout offers no optimized
// rect query: scan every item's frame.
func (v *View) bruteForceItemsIn(r Rect) []IndexPath {
	var paths []IndexPath
	for s := 0; s < v.NumberOfSections(); s++ {
		for i := 0; i < v.NumberOfItems(s); i++ {
			p := IndexPath{Section: s, Item: i}
			if v.eng.layout.ItemAttributes(p).Frame.Intersects(r) {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// ItemAt hit-tests a screen-space point against the visible items,
// topmost first. Returns false for points outside every item.
func (v *View) ItemAt(screenPoint Point) (IndexPath, bool) {
	if !screenPoint.In(v.bounds) {
		return IndexPath{}, false
	}
	content := v.toContent(screenPoint)
	visible := v.VisibleItems()
	for i := len(visible) - 1; i >= 0; i-- {
		if content.In(visible[i].Attrs.Frame) {
			return visible[i].Path, true
		}
	}
	return IndexPath{}, false
}

// SectionFrame returns the bounding box of one section in content space,
// including its supplementary elements. Uses the layout's precomputed
// answer when available, otherwise aggregates item and supplementary
// frames (the slow path). The aggregate covers only occupied frames, so it
// can be tighter than a layout's own full-width answer.
func (v *View) SectionFrame(section int) Rect {
	if v.eng.layout == nil {
		return Rect{}
	}
	v.prepareIfNeeded()
	if frame, ok := v.eng.sectionRect(section); ok {
		return frame
	}

	var frame Rect
	for i := 0; i < v.NumberOfItems(section); i++ {
		frame = frame.Union(v.eng.layout.ItemAttributes(IndexPath{Section: section, Item: i}).Frame)
	}
	if sup, ok := v.eng.layout.(SupplementaryLayout); ok {
		for _, kind := range sup.SupplementaryKinds() {
			frame = frame.Union(sup.SupplementaryAttributes(section, kind).Frame)
		}
	}
	return frame
}

// toContent converts a screen-space point to content space.
func (v *View) toContent(p Point) Point {
	return Point{X: p.X - v.bounds.X + v.scroll.X, Y: p.Y - v.bounds.Y + v.scroll.Y}
}

// toScreen converts a content-space rectangle to screen space.
func (v *View) toScreen(r Rect) Rect {
	return r.Translate(v.bounds.X-v.scroll.X, v.bounds.Y-v.scroll.Y)
}
