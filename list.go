package collectionview

import "sort"

// ListLayout arranges full-width rows, one item per row, with optional
// per-section header and footer bands. Row heights are fixed by default
// and may vary per item through RowHeightFunc.
//
// Drag and drop uses marker presentation: a one-cell-high line at the gap
// between rows.
type ListLayout struct {
	// RowHeight is the default row height. Values below 1 are treated
	// as 1.
	RowHeight int

	// RowHeightFunc, when set, overrides RowHeight per item.
	RowHeightFunc func(path IndexPath) int

	// HeaderHeight and FooterHeight are the per-section supplementary
	// band heights. Zero disables the band.
	HeaderHeight int
	FooterHeight int

	width    int
	sections []listSection
	content  Size
}

type listSection struct {
	frame Rect
	// rowY holds the content-space top of each row plus one trailing
	// entry for the bottom of the last row, so rowY[i+1]-rowY[i] is row
	// i's height and rowY[len-1] is the end of the row block.
	rowY []int
}

var _ Layout = (*ListLayout)(nil)
var _ SupplementaryLayout = (*ListLayout)(nil)
var _ RectQuerier = (*ListLayout)(nil)
var _ SectionFramer = (*ListLayout)(nil)
var _ DropLayout = (*ListLayout)(nil)

// NewListLayout creates a list with the given fixed row height.
func NewListLayout(rowHeight int) *ListLayout {
	return &ListLayout{RowHeight: rowHeight}
}

func (l *ListLayout) rowHeight(path IndexPath) int {
	if l.RowHeightFunc != nil {
		return max(1, l.RowHeightFunc(path))
	}
	return max(1, l.RowHeight)
}

// Prepare builds the per-section row offset tables.
func (l *ListLayout) Prepare(host Host) {
	l.width = host.ViewportSize().Width

	numSections := host.NumberOfSections()
	l.sections = make([]listSection, numSections)

	y := 0
	for s := 0; s < numSections; s++ {
		top := y
		y += l.HeaderHeight

		items := host.NumberOfItems(s)
		rowY := make([]int, items+1)
		for i := 0; i < items; i++ {
			rowY[i] = y
			y += l.rowHeight(IndexPath{Section: s, Item: i})
		}
		rowY[items] = y

		y += l.FooterHeight
		l.sections[s] = listSection{
			frame: NewRect(0, top, l.width, y-top),
			rowY:  rowY,
		}
	}
	l.content = Size{Width: 0, Height: y}
}

// ItemAttributes returns the cached frame for one row. O(1).
func (l *ListLayout) ItemAttributes(path IndexPath) ItemAttributes {
	rowY := l.sections[path.Section].rowY
	return NewItemAttributes(NewRect(0, rowY[path.Item], l.width, rowY[path.Item+1]-rowY[path.Item]))
}

// SupplementaryAttributes returns the header or footer band frame for a
// section. Unknown kinds yield empty attributes.
func (l *ListLayout) SupplementaryAttributes(section int, kind string) ItemAttributes {
	sec := l.sections[section]
	switch kind {
	case KindHeader:
		return NewItemAttributes(NewRect(0, sec.frame.Y, l.width, l.HeaderHeight))
	case KindFooter:
		return NewItemAttributes(NewRect(0, sec.frame.Bottom()-l.FooterHeight, l.width, l.FooterHeight))
	}
	return ItemAttributes{Alpha: 1}
}

// SupplementaryKinds returns the kinds with a non-zero band height.
func (l *ListLayout) SupplementaryKinds() []string {
	var kinds []string
	if l.HeaderHeight > 0 {
		kinds = append(kinds, KindHeader)
	}
	if l.FooterHeight > 0 {
		kinds = append(kinds, KindFooter)
	}
	return kinds
}

// IndexPathsInRect binary-searches the row range overlapping r in each
// overlapping section.
func (l *ListLayout) IndexPathsInRect(r Rect) []IndexPath {
	var paths []IndexPath
	for s, sec := range l.sections {
		items := len(sec.rowY) - 1
		if items == 0 || !sec.frame.Intersects(r) {
			continue
		}
		// First row whose bottom is past the rect's top.
		first := sort.Search(items, func(i int) bool {
			return sec.rowY[i+1] > r.Y
		})
		for i := first; i < items && sec.rowY[i] < r.Bottom(); i++ {
			if l.ItemAttributes(IndexPath{Section: s, Item: i}).Frame.Intersects(r) {
				paths = append(paths, IndexPath{Section: s, Item: i})
			}
		}
	}
	return paths
}

// SectionRect returns the precomputed bounding box of a section, including
// its supplementary bands.
func (l *ListLayout) SectionRect(section int) (Rect, bool) {
	if section < 0 || section >= len(l.sections) {
		return Rect{}, false
	}
	return l.sections[section].frame, true
}

// ContentSize reports zero width (fit to viewport, no horizontal scroll)
// and the stacked height of all sections.
func (l *ListLayout) ContentSize() Size {
	return l.content
}

// ScrollDirection is vertical for lists.
func (l *ListLayout) ScrollDirection() ScrollDirection {
	return ScrollVertical
}

// NextIndexPath moves Up and Down through rows, crossing into adjacent
// non-empty sections. Left and Right have no successor in a list. Movement
// never wraps.
func (l *ListLayout) NextIndexPath(dir Direction, from IndexPath) (IndexPath, bool) {
	switch dir {
	case Up:
		if from.Item > 0 {
			return IndexPath{Section: from.Section, Item: from.Item - 1}, true
		}
		for s := from.Section - 1; s >= 0; s-- {
			if items := len(l.sections[s].rowY) - 1; items > 0 {
				return IndexPath{Section: s, Item: items - 1}, true
			}
		}
	case Down:
		if from.Item+1 < len(l.sections[from.Section].rowY)-1 {
			return IndexPath{Section: from.Section, Item: from.Item + 1}, true
		}
		for s := from.Section + 1; s < len(l.sections); s++ {
			if len(l.sections[s].rowY)-1 > 0 {
				return IndexPath{Section: s, Item: 0}, true
			}
		}
	}
	return IndexPath{}, false
}

// DropType is marker: rows stay in place and a line marks the gap.
func (l *ListLayout) DropType() DropType {
	return DropMarker
}

// DropIndexPathAt resolves a content-space point to the nearest row gap:
// the upper half of a row targets the gap above it, the lower half the gap
// below.
func (l *ListLayout) DropIndexPathAt(p Point) (DropIndexPath, bool) {
	for s, sec := range l.sections {
		if !p.In(sec.frame) {
			continue
		}
		items := len(sec.rowY) - 1
		if items == 0 {
			return DropIndexPath{Section: s, Gap: 0}, true
		}
		// First gap whose row midline is below the point.
		gap := sort.Search(items, func(i int) bool {
			mid := sec.rowY[i] + (sec.rowY[i+1]-sec.rowY[i])/2
			return p.Y < mid
		})
		return DropIndexPath{Section: s, Gap: gap}, true
	}
	return DropIndexPath{}, false
}

// DropMarkerAttributes returns a full-width line, exactly one cell high,
// at the target gap, stacked above ordinary rows.
func (l *ListLayout) DropMarkerAttributes(target DropIndexPath) ItemAttributes {
	sec := l.sections[target.Section]
	y := sec.rowY[target.Gap]
	if target.Gap == len(sec.rowY)-1 && y > sec.frame.Y {
		// Keep the end-of-section marker on the last row's bottom cell
		// instead of spilling into the footer band.
		y--
	}
	attrs := NewItemAttributes(NewRect(0, y, l.width, 1))
	attrs.ZIndex = dropMarkerZIndex
	return attrs
}
