package collectionview

// IndexPath identifies an item by section and position within that section.
type IndexPath struct {
	Section int
	Item    int
}

// Before reports whether p comes before other in linear item order.
func (p IndexPath) Before(other IndexPath) bool {
	if p.Section != other.Section {
		return p.Section < other.Section
	}
	return p.Item < other.Item
}

// ItemAttributes holds the computed presentation of one addressable element:
// its frame in content coordinates, opacity, and stacking order.
//
// Frames are expressed in content space; the view translates them into
// screen space when rendering.
type ItemAttributes struct {
	Frame  Rect
	Alpha  float64
	ZIndex int
}

// NewItemAttributes creates fully-opaque attributes for the given frame.
func NewItemAttributes(frame Rect) ItemAttributes {
	return ItemAttributes{Frame: frame, Alpha: 1}
}

// DropIndexPath identifies a gap between items where a drop would land.
// Gap ranges from 0 (before the first item) to the section's item count
// (after the last item).
type DropIndexPath struct {
	Section int
	Gap     int
}

// Supplementary item kinds understood by the built-in layouts. Custom
// layouts may define additional kinds; the kind is an opaque string tag
// agreed between layout and renderer.
const (
	KindHeader = "header"
	KindFooter = "footer"
)

// Direction is a movement direction for keyboard navigation.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// ScrollDirection declares which axes the view shows scroll indicators for.
// It does not by itself prevent scrolling on the other axis; a layout
// suppresses an axis by returning a zero content size for it.
type ScrollDirection int

const (
	ScrollVertical ScrollDirection = iota
	ScrollHorizontal
	ScrollBoth
)

func (s ScrollDirection) String() string {
	switch s {
	case ScrollVertical:
		return "vertical"
	case ScrollHorizontal:
		return "horizontal"
	case ScrollBoth:
		return "both"
	}
	return "unknown"
}

// DropType selects how a layout presents a pending drop location.
type DropType int

const (
	// DropNone disables drag and drop.
	DropNone DropType = iota

	// DropMarker keeps items in place and draws a thin marker at the
	// drop location.
	DropMarker

	// DropDisplacement shifts items aside and renders a placeholder slot
	// at the drop location. Placeholder geometry is queried through
	// ItemAttributes, which must therefore be defined for the
	// one-past-the-end slot of each section.
	DropDisplacement
)

// dropMarkerZIndex stacks drop markers above ordinary items.
const dropMarkerZIndex = 100

func (d DropType) String() string {
	switch d {
	case DropNone:
		return "none"
	case DropMarker:
		return "marker"
	case DropDisplacement:
		return "displacement"
	}
	return "unknown"
}
