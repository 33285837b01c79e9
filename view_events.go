package collectionview

import "github.com/gdamore/tcell/v2"

// mouseState tracks the press/drag/release cycle of the primary button.
type mouseState struct {
	down      bool
	pressPt   Point
	pressPath IndexPath
	onItem    bool
}

// HandleEvent processes a tcell event. Returns true if the event was
// consumed.
//
// Keys: arrows move the selection through the layout's successor
// relation; Home and End jump to the first/last selectable item; PgUp and
// PgDn scroll by a viewport. Mouse: click selects, press-and-move starts
// a drag session when the layout and data source support it, wheel
// scrolls.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		return v.handleMouse(ev)
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		return v.MoveSelection(Left)
	case tcell.KeyRight:
		return v.MoveSelection(Right)
	case tcell.KeyUp:
		return v.MoveSelection(Up)
	case tcell.KeyDown:
		return v.MoveSelection(Down)

	case tcell.KeyHome:
		if first, ok := v.NextSelectableAfter(IndexPath{Section: 0, Item: -1}); ok {
			v.SelectItem(first)
			v.ScrollToItem(first)
			return true
		}
	case tcell.KeyEnd:
		last := IndexPath{Section: v.NumberOfSections() - 1, Item: int(^uint(0) >> 1)}
		if p, ok := v.NextSelectableBefore(last); ok {
			v.SelectItem(p)
			v.ScrollToItem(p)
			return true
		}

	case tcell.KeyPgUp:
		v.ScrollBy(0, -v.bounds.Height)
		return true
	case tcell.KeyPgDn:
		v.ScrollBy(0, v.bounds.Height)
		return true

	case tcell.KeyEscape:
		if v.drag != nil {
			v.CancelDrag()
			return true
		}
	}
	return false
}

func (v *View) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	pt := Point{X: x, Y: y}
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		v.ScrollBy(0, -1)
		return true
	case buttons&tcell.WheelDown != 0:
		v.ScrollBy(0, 1)
		return true

	case buttons&tcell.Button1 != 0:
		if !v.mouse.down {
			// Press: remember what was hit; the gesture resolves on
			// release (click) or on movement (drag).
			v.mouse.down = true
			v.mouse.pressPt = pt
			v.mouse.pressPath, v.mouse.onItem = v.ItemAt(pt)
			return pt.In(v.bounds)
		}
		if v.drag != nil {
			v.UpdateDrag(pt)
			return true
		}
		if v.mouse.onItem && pt != v.mouse.pressPt && v.BeginDrag(v.mouse.pressPath) {
			v.UpdateDrag(pt)
			return true
		}
		return pt.In(v.bounds)

	case buttons == tcell.ButtonNone && v.mouse.down:
		v.mouse.down = false
		if v.drag != nil {
			v.EndDrag()
			return true
		}
		if v.mouse.onItem {
			v.SelectItem(v.mouse.pressPath)
			return true
		}
		return v.mouse.pressPt.In(v.bounds)
	}
	return false
}
