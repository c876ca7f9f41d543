package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"term-snake/config"
	"term-snake/game"
	"term-snake/game/types"
	"term-snake/ui"
)

// openDisplay starts the chosen renderer and its input. The returned close
// function restores the terminal or window and is safe to call twice.
// Input read errors go to fail.
func openDisplay(cfg config.Config, grid types.Grid, latch *game.HeadingLatch, quit func(), fail func(error)) (game.Renderer, func(), error) {
	switch cfg.Renderer {
	case config.RendererTermbox:
		tb := ui.NewTermbox(latch)
		if err := tb.Init(); err != nil {
			return nil, nil, err
		}
		go tb.Listen(quit, fail)
		return tb, once(tb.Fini), nil

	case config.RendererWindow:
		w := ui.NewWindow(int32(cfg.CellSize), "Snake", latch)
		w.Open(grid)
		return w, once(w.Close), nil

	case config.RendererText:
		go readCommands(os.Stdin, latch, quit, fail)
		return ui.NewText(os.Stdout, true), func() {}, nil

	default:
		screen, err := ui.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		term := ui.NewTerminal(screen, latch)
		if err := term.Init(); err != nil {
			return nil, nil, fmt.Errorf("init terminal: %w", err)
		}
		go term.Listen(quit, fail)
		return term, once(term.Fini), nil
	}
}

func once(f func()) func() {
	var o sync.Once
	return func() { o.Do(f) }
}

// readCommands feeds line-buffered keys to the text renderer's game: each
// rune of a line is one key, so "w" then Enter turns up.
func readCommands(r io.Reader, latch *game.HeadingLatch, quit func(), fail func(error)) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		for _, ch := range sc.Text() {
			switch action, dir := ui.ActionForRune(ch); action {
			case ui.ActionTurn:
				latch.Set(dir)
			case ui.ActionQuit:
				quit()
				return
			}
		}
	}
	if err := sc.Err(); err != nil {
		fail(fmt.Errorf("read commands: %w", err))
	}
}
