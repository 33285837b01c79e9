package collectionview

// DataSource supplies the item counts a view and its layout are built
// over. Changing the underlying data requires a ReloadData call on the
// view; the view never detects mutations on its own.
type DataSource interface {
	NumberOfSections() int
	NumberOfItems(section int) int
}

// SelectableSource refines DataSource for sources with non-selectable
// items (separators, group labels rendered as items, and the like).
// Without it every item is selectable.
type SelectableSource interface {
	DataSource
	IsSelectable(path IndexPath) bool
}

// ReorderingSource refines DataSource for sources that support moving an
// item through drag and drop. MoveItem receives the item's current path
// and the destination slot after removal; the view reloads itself after a
// successful move.
type ReorderingSource interface {
	DataSource
	MoveItem(from IndexPath, to IndexPath)
}
