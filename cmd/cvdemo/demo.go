package main

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"collectionview"
)

// demoSource is an in-memory data source of labelled items that supports
// selection locking and reordering.
type demoSource struct {
	sections  [][]string
	lockEvery int
}

func newDemoSource(cfg DataConfig) *demoSource {
	s := &demoSource{lockEvery: cfg.LockEvery}
	s.sections = make([][]string, cfg.Sections)
	for sec := range s.sections {
		items := make([]string, cfg.ItemsPerSection)
		for i := range items {
			items[i] = fmt.Sprintf("item %c%d", 'A'+sec, i)
		}
		s.sections[sec] = items
	}
	return s
}

func (s *demoSource) NumberOfSections() int { return len(s.sections) }

func (s *demoSource) NumberOfItems(section int) int { return len(s.sections[section]) }

func (s *demoSource) IsSelectable(path collectionview.IndexPath) bool {
	if s.lockEvery <= 0 {
		return true
	}
	return (path.Item+1)%s.lockEvery != 0
}

func (s *demoSource) MoveItem(from, to collectionview.IndexPath) {
	item := s.sections[from.Section][from.Item]
	src := s.sections[from.Section]
	s.sections[from.Section] = append(src[:from.Item], src[from.Item+1:]...)

	dst := s.sections[to.Section]
	dst = append(dst, "")
	copy(dst[to.Item+1:], dst[to.Item:])
	dst[to.Item] = item
	s.sections[to.Section] = dst
}

func (s *demoSource) label(path collectionview.IndexPath) string {
	return s.sections[path.Section][path.Item]
}

var (
	itemStyle     = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	selectedStyle = tcell.StyleDefault.Background(tcell.ColorDarkCyan).Bold(true)
	lockedStyle   = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorGray)
	bandStyle     = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
)

// runDemo owns the terminal: it hosts a view over the synthetic data set
// and loops on tcell events until q, Ctrl+C, or context cancellation.
func runDemo(ctx context.Context, logger *charmlog.Logger, cfg Config, layout collectionview.Layout) error {
	source := newDemoSource(cfg.Data)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse()

	width, height := screen.Size()
	v := collectionview.NewView(collectionview.NewRect(0, 0, width, height), source)
	v.SetLayout(layout)
	v.RenderItem = func(screen tcell.Screen, path collectionview.IndexPath, frame collectionview.Rect, state collectionview.ItemState) {
		style := itemStyle
		switch {
		case state.Selected:
			style = selectedStyle
		case state.Dragging, state.Dim:
			style = lockedStyle
		}
		collectionview.Fill(screen, frame, ' ', style)
		collectionview.DrawText(screen, frame, style, source.label(path))
	}
	v.RenderSupplementary = func(screen tcell.Screen, section int, kind string, frame collectionview.Rect) {
		if kind != collectionview.KindHeader {
			return
		}
		collectionview.DrawText(screen, frame, bandStyle, fmt.Sprintf("— section %c —", 'A'+section))
	}

	logger.Info("demo started",
		"layout", layout.ScrollDirection(),
		"sections", source.NumberOfSections(),
		"viewport", v.Bounds())

	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		screen.Clear()
		v.Render(screen)
		screen.Show()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				v.SetBounds(collectionview.NewRect(0, 0, w, h))
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
				gen := v.DataGeneration()
				v.HandleEvent(ev)
				if v.DataGeneration() != gen {
					logger.Debug("data reloaded", "generation", v.DataGeneration())
				}
			default:
				gen := v.DataGeneration()
				v.HandleEvent(ev)
				if v.DataGeneration() != gen {
					sel, _ := v.SelectedItem()
					logger.Info("item reordered", "to", sel, "generation", v.DataGeneration())
				}
			}
		}
	}
}
