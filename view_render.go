package collectionview

import "github.com/gdamore/tcell/v2"

// ItemState describes how an item should be presented by a renderer.
type ItemState struct {
	// Selected marks the view's current selection.
	Selected bool

	// Dragging marks the source item of an active drag session.
	Dragging bool

	// Dim requests reduced emphasis; set when the item's attributes
	// carry an alpha below 1.
	Dim bool
}

// ItemRenderer draws one item. frame is the item's screen-space frame
// clipped to the view's bounds; it is never empty.
type ItemRenderer func(screen tcell.Screen, path IndexPath, frame Rect, state ItemState)

// SupplementaryRenderer draws a header, footer, or decoration band into
// its clipped screen-space frame.
type SupplementaryRenderer func(screen tcell.Screen, section int, kind string, frame Rect)

// MarkerStyle is the style drop markers are drawn with.
var MarkerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

// Render draws the view's visible content onto the screen: supplementary
// bands first, then items back to front by z-index, then the drop marker
// when a marker-style drag session is active.
func (v *View) Render(screen tcell.Screen) {
	if v.eng.layout == nil || v.bounds.IsEmpty() || v.RenderItem == nil {
		return
	}
	v.prepareIfNeeded()
	v.clampScroll()

	v.renderSupplementaries(screen)
	v.renderItems(screen)
	v.renderDropMarker(screen)
}

func (v *View) renderSupplementaries(screen tcell.Screen) {
	kinds := v.eng.supplementaryKinds()
	if len(kinds) == 0 || v.RenderSupplementary == nil {
		return
	}
	sup := v.eng.layout.(SupplementaryLayout)
	viewport := v.contentViewport()
	for s := 0; s < v.NumberOfSections(); s++ {
		for _, kind := range kinds {
			attrs := sup.SupplementaryAttributes(s, kind)
			if attrs.Alpha == 0 || !attrs.Frame.Intersects(viewport) {
				continue
			}
			frame := v.toScreen(attrs.Frame).Intersect(v.bounds)
			if !frame.IsEmpty() {
				v.RenderSupplementary(screen, s, kind, frame)
			}
		}
	}
}

func (v *View) renderItems(screen tcell.Screen) {
	for _, item := range v.VisibleItems() {
		attrs := item.Attrs
		state := ItemState{
			Selected: v.hasSelected && v.selected == item.Path,
		}

		if v.drag != nil {
			if item.Path == v.drag.source {
				if v.eng.dropType() == DropDisplacement {
					// The dragged item's slot is vacated; the
					// placeholder gap stands in for it.
					continue
				}
				state.Dragging = true
			} else if frame, ok := v.displacedFrame(item.Path); ok {
				attrs.Frame = frame
			}
		}

		if attrs.Alpha == 0 {
			continue
		}
		state.Dim = attrs.Alpha < 1

		frame := v.toScreen(attrs.Frame).Intersect(v.bounds)
		if frame.IsEmpty() {
			continue
		}
		v.RenderItem(screen, item.Path, frame, state)
	}
}

// displacedFrame previews the post-drop arrangement: items after the
// dragged one close its vacated slot, and items at or past the pending
// gap shift one slot to leave a placeholder hole. Layouts supporting
// displacement define attributes for the one-past-the-end slot, so a
// cross-section shift stays within prepared geometry.
func (v *View) displacedFrame(path IndexPath) (Rect, bool) {
	if v.eng.dropType() != DropDisplacement || !v.drag.valid {
		return Rect{}, false
	}
	src, target := v.drag.source, v.drag.target

	slot := path.Item
	if path.Section == src.Section && path.Item > src.Item {
		slot--
	}
	if path.Section == target.Section {
		gap := target.Gap
		if target.Section == src.Section && target.Gap > src.Item {
			gap--
		}
		if slot >= gap {
			slot++
		}
	}
	if slot == path.Item {
		return Rect{}, false
	}
	return v.eng.layout.ItemAttributes(IndexPath{Section: path.Section, Item: slot}).Frame, true
}

func (v *View) renderDropMarker(screen tcell.Screen) {
	if v.drag == nil || !v.drag.valid || v.eng.dropType() != DropMarker {
		return
	}
	dl := v.eng.layout.(DropLayout)
	attrs := dl.DropMarkerAttributes(v.drag.target)
	frame := v.toScreen(attrs.Frame).Intersect(v.bounds)
	for x := frame.X; x < frame.Right(); x++ {
		for y := frame.Y; y < frame.Bottom(); y++ {
			screen.SetContent(x, y, '─', nil, MarkerStyle)
		}
	}
}
