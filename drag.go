package collectionview

import "github.com/google/uuid"

// dragSession tracks one in-flight drag. Sessions exist only between
// BeginDrag and EndDrag/CancelDrag.
type dragSession struct {
	id     uuid.UUID
	source IndexPath
	target DropIndexPath
	valid  bool
}

// DragInfo describes the active drag session.
type DragInfo struct {
	ID     uuid.UUID
	Source IndexPath
	Target DropIndexPath

	// HasTarget reports whether the pointer currently resolves to a
	// drop location.
	HasTarget bool
}

// ActiveDrag returns the current drag session, or false when none is in
// progress.
func (v *View) ActiveDrag() (DragInfo, bool) {
	if v.drag == nil {
		return DragInfo{}, false
	}
	return DragInfo{
		ID:        v.drag.id,
		Source:    v.drag.source,
		Target:    v.drag.target,
		HasTarget: v.drag.valid,
	}, true
}

// BeginDrag starts a drag session for the given item. It fails when the
// layout does not support dropping, the data source cannot reorder, or
// the path is invalid.
func (v *View) BeginDrag(path IndexPath) bool {
	if v.eng.dropType() == DropNone {
		return false
	}
	if _, ok := v.source.(ReorderingSource); !ok {
		return false
	}
	if !v.ValidateIndexPath(path) {
		return false
	}
	v.drag = &dragSession{id: uuid.New(), source: path}
	return true
}

// UpdateDrag resolves the pointer's screen-space position to a drop
// target. Pure query against cached geometry: the layout is not mutated.
func (v *View) UpdateDrag(screenPoint Point) (DropIndexPath, bool) {
	if v.drag == nil {
		return DropIndexPath{}, false
	}
	v.prepareIfNeeded()
	dl, ok := v.eng.layout.(DropLayout)
	if !ok {
		return DropIndexPath{}, false
	}
	target, ok := dl.DropIndexPathAt(v.toContent(screenPoint))
	v.drag.target = target
	v.drag.valid = ok
	return target, ok
}

// CancelDrag abandons the session without moving anything.
func (v *View) CancelDrag() {
	v.drag = nil
}

// EndDrag commits the session: if a drop target is resolved, the item
// moves there through the ReorderingSource and the view reloads. Returns
// true if a move was committed.
func (v *View) EndDrag() bool {
	drag := v.drag
	v.drag = nil
	if drag == nil || !drag.valid {
		return false
	}

	src, ok := v.source.(ReorderingSource)
	if !ok {
		return false
	}

	// A gap position counts slots including the dragged item; removing
	// the item first shifts gaps after it down by one.
	to := IndexPath{Section: drag.target.Section, Item: drag.target.Gap}
	if drag.target.Section == drag.source.Section && drag.target.Gap > drag.source.Item {
		to.Item--
	}
	if to == drag.source {
		return false
	}

	src.MoveItem(drag.source, to)
	v.ReloadData()
	v.SelectItem(to)
	return true
}
