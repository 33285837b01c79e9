package collectionview

// Host is the view-side surface a layout reads while preparing. It is a
// non-owning handle: layouts must not retain it beyond the Prepare call.
type Host interface {
	// ViewportSize returns the current size of the view's visible region.
	ViewportSize() Size

	// NumberOfSections returns the number of sections in the data source.
	NumberOfSections() int

	// NumberOfItems returns the number of items in the given section.
	NumberOfItems(section int) int
}

// Layout computes item geometry for a collection view. A layout is a
// replaceable strategy object: the view calls Prepare to (re)build cached
// geometry and then issues cheap per-item queries during rendering and
// scrolling.
//
// Query methods are only defined after a Prepare call with no intervening
// invalidation, and only for index paths the view has validated as in
// range. Both are caller-side ordering contracts, not detected errors.
type Layout interface {
	// Prepare recomputes and caches all geometry needed to answer
	// subsequent queries. Expensive work belongs here, not in the query
	// methods. Prepare must be deterministic: calling it again with an
	// unchanged host must reproduce identical geometry.
	Prepare(host Host)

	// ItemAttributes returns cached geometry for one item. Must be cheap;
	// it is called for every visible item on every render pass.
	ItemAttributes(path IndexPath) ItemAttributes

	// ContentSize returns the total laid-out size. A zero axis means
	// "fit to viewport": the view clamps any axis smaller than the
	// viewport up to the viewport size, suppressing scrolling on it.
	ContentSize() Size

	// ScrollDirection declares which axes scroll indicators appear on.
	ScrollDirection() ScrollDirection

	// NextIndexPath returns the successor of from in the given direction,
	// or false at a directional boundary. The relation must be
	// deterministic and irreflexive; no wraparound.
	NextIndexPath(dir Direction, from IndexPath) (IndexPath, bool)
}

// SupplementaryLayout is implemented by layouts that position header,
// footer, or decoration elements keyed by a string kind.
type SupplementaryLayout interface {
	// SupplementaryAttributes returns cached geometry for the
	// supplementary element of the given kind in the given section.
	SupplementaryAttributes(section int, kind string) ItemAttributes

	// SupplementaryKinds returns the kinds this layout positions.
	SupplementaryKinds() []string
}

// RectQuerier is an optional optimization hook. When absent the view falls
// back to a brute-force scan of every item's frame.
type RectQuerier interface {
	// IndexPathsInRect returns exactly the set of items whose frames
	// intersect r. Order is unspecified but must be stable across calls
	// with unchanged geometry.
	IndexPathsInRect(r Rect) []IndexPath
}

// SectionFramer is implemented by layouts that can report a section's
// bounding box (including its supplementary elements) directly. When
// absent, the view derives section frames by aggregating item attributes,
// which is considerably slower.
type SectionFramer interface {
	// SectionRect returns the bounding box of one section, or false if
	// the layout has no precomputed answer for it.
	SectionRect(section int) (Rect, bool)
}

// DropLayout is implemented by layouts that support drag and drop.
type DropLayout interface {
	// DropType returns how pending drops are presented.
	DropType() DropType

	// DropIndexPathAt resolves a content-space point to a drop location,
	// or false if no valid target exists there. Pure query: must not
	// mutate layout state.
	DropIndexPathAt(p Point) (DropIndexPath, bool)

	// DropMarkerAttributes returns geometry for the thin indicator shown
	// at the pending drop location. Only meaningful in DropMarker mode;
	// the returned frame's height is exactly one cell.
	DropMarkerAttributes(target DropIndexPath) ItemAttributes
}

// BoundsChangeResponder lets a layout decline invalidation on resize.
// Without it the view invalidates on every bounds change.
type BoundsChangeResponder interface {
	ShouldInvalidateForBoundsChange(newBounds Rect) bool
}

// AttributeReapplier is implemented by layouts whose attributes can change
// without a bounds change (time-based effects, for example). When
// ShouldReapplyAttributes returns true the view re-queries attributes for
// visible items on every render pass instead of reusing its cached visible
// set. Costlier, so the default is off.
type AttributeReapplier interface {
	ShouldReapplyAttributes() bool
}

// InvalidateHook is implemented by layouts that need custom invalidation
// work. The view always performs its base invalidation (dropping cached
// state and marking the layout stale) before calling the hook, so the hook
// cannot accidentally skip it.
type InvalidateHook interface {
	OnInvalidate()
}
