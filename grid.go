package collectionview

// GridLayout arranges fixed-size items left to right, top to bottom,
// wrapping into as many columns as the viewport width allows. Sections
// stack vertically, each with optional header and footer bands and an
// inset around its item block.
//
// Content width is reported as zero so the view fits it to the viewport;
// the grid scrolls vertically only.
//
// Item geometry is pure arithmetic over the cached section table, so
// ItemAttributes is also defined for the one-past-the-end slot of each
// section. Drag and drop uses displacement presentation, which queries
// that slot for placeholder geometry.
type GridLayout struct {
	// ItemSize is the cell size of every item. Dimensions below 1 are
	// treated as 1.
	ItemSize Size

	// Spacing is the gap between adjacent items, horizontally and
	// vertically.
	Spacing Size

	// SectionInset surrounds each section's item block, inside the
	// header and footer bands.
	SectionInset Edges

	// HeaderHeight and FooterHeight are the per-section supplementary
	// band heights. Zero disables the band.
	HeaderHeight int
	FooterHeight int

	itemW, itemH int
	columns      int
	width        int
	sections     []gridSection
	content      Size
}

type gridSection struct {
	frame    Rect
	itemsTop int
	items    int
	rows     int
}

var _ Layout = (*GridLayout)(nil)
var _ SupplementaryLayout = (*GridLayout)(nil)
var _ RectQuerier = (*GridLayout)(nil)
var _ SectionFramer = (*GridLayout)(nil)
var _ DropLayout = (*GridLayout)(nil)

// NewGridLayout creates a grid with the given item size and no spacing,
// insets, or supplementary bands.
func NewGridLayout(itemSize Size) *GridLayout {
	return &GridLayout{ItemSize: itemSize}
}

// Prepare builds the per-section origin table for the current viewport and
// data counts.
func (g *GridLayout) Prepare(host Host) {
	g.itemW = max(1, g.ItemSize.Width)
	g.itemH = max(1, g.ItemSize.Height)
	g.width = host.ViewportSize().Width

	avail := g.width - g.SectionInset.Horizontal()
	g.columns = max(1, (avail+g.Spacing.Width)/(g.itemW+g.Spacing.Width))

	numSections := host.NumberOfSections()
	g.sections = make([]gridSection, numSections)

	y := 0
	for s := 0; s < numSections; s++ {
		top := y
		y += g.HeaderHeight + g.SectionInset.Top

		items := host.NumberOfItems(s)
		rows := (items + g.columns - 1) / g.columns

		sec := gridSection{itemsTop: y, items: items, rows: rows}
		if rows > 0 {
			y += rows*g.itemH + (rows-1)*g.Spacing.Height
		}
		y += g.SectionInset.Bottom + g.FooterHeight
		sec.frame = NewRect(0, top, g.width, y-top)
		g.sections[s] = sec
	}
	g.content = Size{Width: 0, Height: y}
}

// Columns returns the number of columns computed by the last Prepare.
func (g *GridLayout) Columns() int {
	return g.columns
}

func (g *GridLayout) itemFrame(sec gridSection, item int) Rect {
	row := item / g.columns
	col := item % g.columns
	x := g.SectionInset.Left + col*(g.itemW+g.Spacing.Width)
	y := sec.itemsTop + row*(g.itemH+g.Spacing.Height)
	return NewRect(x, y, g.itemW, g.itemH)
}

// ItemAttributes returns the cached frame for one item. O(1).
func (g *GridLayout) ItemAttributes(path IndexPath) ItemAttributes {
	return NewItemAttributes(g.itemFrame(g.sections[path.Section], path.Item))
}

// SupplementaryAttributes returns the header or footer band frame for a
// section. Unknown kinds yield empty attributes.
func (g *GridLayout) SupplementaryAttributes(section int, kind string) ItemAttributes {
	sec := g.sections[section]
	switch kind {
	case KindHeader:
		return NewItemAttributes(NewRect(0, sec.frame.Y, g.width, g.HeaderHeight))
	case KindFooter:
		return NewItemAttributes(NewRect(0, sec.frame.Bottom()-g.FooterHeight, g.width, g.FooterHeight))
	}
	return ItemAttributes{Alpha: 1}
}

// SupplementaryKinds returns the kinds with a non-zero band height.
func (g *GridLayout) SupplementaryKinds() []string {
	var kinds []string
	if g.HeaderHeight > 0 {
		kinds = append(kinds, KindHeader)
	}
	if g.FooterHeight > 0 {
		kinds = append(kinds, KindFooter)
	}
	return kinds
}

// IndexPathsInRect narrows the scan to the row range overlapping r within
// each overlapping section, then filters by exact frame intersection.
func (g *GridLayout) IndexPathsInRect(r Rect) []IndexPath {
	var paths []IndexPath
	rowSpan := g.itemH + g.Spacing.Height
	for s, sec := range g.sections {
		if sec.rows == 0 || !sec.frame.Intersects(r) {
			continue
		}
		first := (r.Y - sec.itemsTop) / rowSpan
		last := (r.Bottom() - 1 - sec.itemsTop) / rowSpan
		first = max(first, 0)
		last = min(last, sec.rows-1)
		for row := first; row <= last; row++ {
			for item := row * g.columns; item < min((row+1)*g.columns, sec.items); item++ {
				if g.itemFrame(sec, item).Intersects(r) {
					paths = append(paths, IndexPath{Section: s, Item: item})
				}
			}
		}
	}
	return paths
}

// SectionRect returns the precomputed bounding box of a section, including
// its supplementary bands.
func (g *GridLayout) SectionRect(section int) (Rect, bool) {
	if section < 0 || section >= len(g.sections) {
		return Rect{}, false
	}
	return g.sections[section].frame, true
}

// ContentSize reports zero width (fit to viewport, no horizontal scroll)
// and the stacked height of all sections.
func (g *GridLayout) ContentSize() Size {
	return g.content
}

// ScrollDirection is vertical for grids.
func (g *GridLayout) ScrollDirection() ScrollDirection {
	return ScrollVertical
}

// NextIndexPath moves within the section's grid: Left/Right stay on the
// current row, Up/Down stay on the current column. Movement never wraps
// and never crosses a section boundary.
func (g *GridLayout) NextIndexPath(dir Direction, from IndexPath) (IndexPath, bool) {
	if from.Section < 0 || from.Section >= len(g.sections) {
		return IndexPath{}, false
	}
	sec := g.sections[from.Section]
	col := from.Item % g.columns

	next := from
	switch dir {
	case Left:
		if col == 0 {
			return IndexPath{}, false
		}
		next.Item--
	case Right:
		if col == g.columns-1 || from.Item+1 >= sec.items {
			return IndexPath{}, false
		}
		next.Item++
	case Up:
		if from.Item-g.columns < 0 {
			return IndexPath{}, false
		}
		next.Item -= g.columns
	case Down:
		if from.Item+g.columns >= sec.items {
			return IndexPath{}, false
		}
		next.Item += g.columns
	default:
		return IndexPath{}, false
	}
	return next, true
}

// DropType is displacement: items shift aside and the vacated slot acts as
// the placeholder.
func (g *GridLayout) DropType() DropType {
	return DropDisplacement
}

// DropIndexPathAt resolves a content-space point to the nearest item gap.
func (g *GridLayout) DropIndexPathAt(p Point) (DropIndexPath, bool) {
	for s, sec := range g.sections {
		if !p.In(sec.frame) {
			continue
		}
		if sec.items == 0 {
			return DropIndexPath{Section: s, Gap: 0}, true
		}
		rowSpan := g.itemH + g.Spacing.Height
		colSpan := g.itemW + g.Spacing.Width

		row := (p.Y - sec.itemsTop) / rowSpan
		row = min(max(row, 0), sec.rows-1)

		// Nearest vertical cell boundary within the row.
		gapCol := (p.X - g.SectionInset.Left + colSpan/2) / colSpan
		gapCol = min(max(gapCol, 0), g.columns)

		gap := min(row*g.columns+gapCol, sec.items)
		return DropIndexPath{Section: s, Gap: gap}, true
	}
	return DropIndexPath{}, false
}

// DropMarkerAttributes returns the top edge of the target slot, one cell
// high. Only meaningful when presenting marker-style drops; the grid's own
// drop type is displacement.
func (g *GridLayout) DropMarkerAttributes(target DropIndexPath) ItemAttributes {
	slot := g.itemFrame(g.sections[target.Section], target.Gap)
	attrs := NewItemAttributes(NewRect(slot.X, slot.Y, slot.Width, 1))
	attrs.ZIndex = dropMarkerZIndex
	return attrs
}
