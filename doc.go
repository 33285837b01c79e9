// Package collectionview provides a terminal collection view: a scrollable
// grid/list widget whose item geometry is computed by a pluggable layout
// strategy.
//
// A View owns a data source and a Layout. The layout computes and caches all
// geometry in Prepare and answers cheap per-item queries afterwards; the view
// drives invalidation, scrolling, selection, drag and drop, and rendering on
// a tcell screen.
package collectionview
