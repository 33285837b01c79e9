package collectionview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Fill paints every cell of the rectangle with the given rune and style.
func Fill(screen tcell.Screen, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// DrawText draws a single line of text starting at the rectangle's
// top-left corner, truncated by display width to fit inside it. Wide
// runes that would straddle the right edge are dropped. Returns the
// number of cells written.
func DrawText(screen tcell.Screen, r Rect, style tcell.Style, text string) int {
	if r.IsEmpty() {
		return 0
	}
	x := r.X
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > r.Right() {
			break
		}
		screen.SetContent(x, r.Y, ch, nil, style)
		x += w
	}
	return x - r.X
}
