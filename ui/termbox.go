package ui

import (
	"fmt"
	"sync/atomic"

	"github.com/nsf/termbox-go"

	"term-snake/game"
	"term-snake/game/types"
)

var termboxColors = map[types.CellKind]termbox.Attribute{
	types.Empty:     termbox.ColorDefault,
	types.Food:      termbox.ColorRed,
	types.SnakeBody: termbox.ColorGreen,
	types.SnakeHead: termbox.ColorYellow | termbox.AttrBold,
}

// Termbox is the termbox-go backend. Same layout as Terminal.
type Termbox struct {
	latch *game.HeadingLatch

	listening atomic.Bool
	done      chan struct{} // closed when Listen returns
}

func NewTermbox(latch *game.HeadingLatch) *Termbox {
	return &Termbox{latch: latch, done: make(chan struct{})}
}

func (t *Termbox) Init() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("init termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	return nil
}

// Fini wakes Listen if it is still polling and restores the terminal.
// termbox.Interrupt blocks until PollEvent receives it, so it is only sent
// while Listen runs.
func (t *Termbox) Fini() {
	if t.listening.Load() {
		select {
		case <-t.done:
		default:
			go termbox.Interrupt()
			<-t.done
		}
	}
	termbox.Close()
}

func (t *Termbox) Present(s game.Snapshot) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("termbox clear: %w", err)
	}

	right, bottom := s.Width+1, s.Height+1
	for col := 0; col <= right; col++ {
		termbox.SetCell(col, 0, '-', termbox.ColorWhite, termbox.ColorDefault)
		termbox.SetCell(col, bottom, '-', termbox.ColorWhite, termbox.ColorDefault)
	}
	for row := 1; row < bottom; row++ {
		termbox.SetCell(0, row, '|', termbox.ColorWhite, termbox.ColorDefault)
		termbox.SetCell(right, row, '|', termbox.ColorWhite, termbox.ColorDefault)
	}

	for x, row := range s.Cells {
		for y, kind := range row {
			termbox.SetCell(y+1, x+1, kind.Rune(), termboxColors[kind], termbox.ColorDefault)
		}
	}

	fg := termbox.ColorYellow
	if s.Over {
		fg = termbox.ColorRed | termbox.AttrBold
	}
	col := 0
	for _, r := range StatusLine(s) {
		termbox.SetCell(col, bottom+1, r, fg, termbox.ColorDefault)
		col++
	}

	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("termbox flush: %w", err)
	}
	return nil
}

// Listen polls termbox events until Fini interrupts it or input fails.
func (t *Termbox) Listen(quit func(), fail func(error)) {
	t.listening.Store(true)
	defer close(t.done)
	for t.handleEvent(termbox.PollEvent(), quit, fail) {
	}
}

// handleEvent applies one event and reports whether polling should go on.
func (t *Termbox) handleEvent(ev termbox.Event, quit func(), fail func(error)) bool {
	switch ev.Type {
	case termbox.EventInterrupt:
		return false
	case termbox.EventError:
		fail(fmt.Errorf("termbox input: %w", ev.Err))
		return false
	case termbox.EventKey:
		action, dir := termboxAction(ev)
		switch action {
		case ActionQuit:
			quit()
		case ActionTurn:
			t.latch.Set(dir)
		}
	}
	return true
}

func termboxAction(ev termbox.Event) (Action, types.Direction) {
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return ActionQuit, types.None
	case termbox.KeyArrowUp:
		return ActionTurn, types.Up
	case termbox.KeyArrowDown:
		return ActionTurn, types.Down
	case termbox.KeyArrowLeft:
		return ActionTurn, types.Left
	case termbox.KeyArrowRight:
		return ActionTurn, types.Right
	}
	if ev.Ch != 0 {
		return ActionForRune(ev.Ch)
	}
	return ActionNone, types.None
}
