// geometry.go re-exports geometry types from internal/geometry.
// Any changes to internal/geometry types must be mirrored here.
package collectionview

import "collectionview/internal/geometry"

// Point represents an (X, Y) coordinate in cell units.
type Point = geometry.Point

// Size represents a width/height pair in cell units.
type Size = geometry.Size

// Rect represents a rectangle with integer cell coordinates.
type Rect = geometry.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geometry.Edges

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geometry.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return geometry.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return geometry.EdgeSymmetric(v, h)
}
