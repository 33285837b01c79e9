package collectionview

// layoutState tracks where a layout is in its preparation lifecycle.
//
// unprepared -> prepared (prepare)
// prepared   -> stale    (invalidate)
// stale      -> prepared (next prepare)
type layoutState int

const (
	layoutUnprepared layoutState = iota
	layoutPrepared
	layoutStale
)

// engine wraps a Layout with lifecycle bookkeeping and defaults for its
// optional capabilities. The view owns exactly one engine per attached
// layout; swapping layouts replaces the engine.
type engine struct {
	layout Layout
	state  layoutState
}

// invalidate marks cached geometry stale. The base invalidation (state
// transition, which in turn drops the view's visible-set cache) always runs
// before the layout's optional OnInvalidate hook.
func (e *engine) invalidate() {
	if e.layout == nil {
		return
	}
	e.state = layoutStale
	if hook, ok := e.layout.(InvalidateHook); ok {
		hook.OnInvalidate()
	}
}

// prepare brings the layout to the prepared state. Idempotent while no
// invalidation intervenes.
func (e *engine) prepare(host Host) {
	if e.layout == nil || e.state == layoutPrepared {
		return
	}
	e.layout.Prepare(host)
	e.state = layoutPrepared
}

func (e *engine) prepared() bool {
	return e.layout != nil && e.state == layoutPrepared
}

// indexPathsInRect returns the layout's optimized answer, or false if the
// layout has none and the caller must brute-force scan.
func (e *engine) indexPathsInRect(r Rect) ([]IndexPath, bool) {
	if q, ok := e.layout.(RectQuerier); ok {
		return q.IndexPathsInRect(r), true
	}
	return nil, false
}

// sectionRect returns the layout's precomputed section frame, or false if
// the caller must aggregate item frames itself.
func (e *engine) sectionRect(section int) (Rect, bool) {
	if f, ok := e.layout.(SectionFramer); ok {
		return f.SectionRect(section)
	}
	return Rect{}, false
}

// supplementaryKinds returns the kinds the layout positions, if any.
func (e *engine) supplementaryKinds() []string {
	if s, ok := e.layout.(SupplementaryLayout); ok {
		return s.SupplementaryKinds()
	}
	return nil
}

// dropType returns DropNone unless the layout supports drag and drop.
func (e *engine) dropType() DropType {
	if d, ok := e.layout.(DropLayout); ok {
		return d.DropType()
	}
	return DropNone
}

// shouldInvalidateForBoundsChange defaults to true: always re-layout on
// resize unless the layout declines.
func (e *engine) shouldInvalidateForBoundsChange(newBounds Rect) bool {
	if r, ok := e.layout.(BoundsChangeResponder); ok {
		return r.ShouldInvalidateForBoundsChange(newBounds)
	}
	return true
}

// reappliesAttributes defaults to false for performance.
func (e *engine) reappliesAttributes() bool {
	if r, ok := e.layout.(AttributeReapplier); ok {
		return r.ShouldReapplyAttributes()
	}
	return false
}
