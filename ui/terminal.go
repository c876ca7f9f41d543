package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"term-snake/game"
	"term-snake/game/types"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	cellStyles = map[types.CellKind]tcell.Style{
		types.Empty:     tcell.StyleDefault,
		types.Food:      tcell.StyleDefault.Foreground(tcell.ColorRed),
		types.SnakeBody: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		types.SnakeHead: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
)

// Terminal draws frames on a tcell screen and feeds key presses into a
// heading latch. The board sits inside a one-cell border at the top left;
// cell (x, y) is drawn at column y+1, row x+1.
type Terminal struct {
	screen tcell.Screen
	latch  *game.HeadingLatch
}

func NewTerminal(screen tcell.Screen, latch *game.HeadingLatch) *Terminal {
	return &Terminal{screen: screen, latch: latch}
}

// NewScreen opens the real terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return screen, nil
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Fini restores the terminal. PollEvent returns nil afterwards, which ends
// Listen.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

func (t *Terminal) Present(s game.Snapshot) error {
	t.screen.Clear()

	right, bottom := s.Width+1, s.Height+1
	for col := 0; col <= right; col++ {
		t.screen.SetContent(col, 0, '-', nil, styleBorder)
		t.screen.SetContent(col, bottom, '-', nil, styleBorder)
	}
	for row := 1; row < bottom; row++ {
		t.screen.SetContent(0, row, '|', nil, styleBorder)
		t.screen.SetContent(right, row, '|', nil, styleBorder)
	}

	for x, row := range s.Cells {
		for y, kind := range row {
			t.screen.SetContent(y+1, x+1, kind.Rune(), nil, cellStyles[kind])
		}
	}

	style := styleStatus
	if s.Over {
		style = styleOver
	}
	drawText(t.screen, 0, bottom+1, StatusLine(s), style)

	t.screen.Show()
	return nil
}

func drawText(screen tcell.Screen, col, row int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// Listen polls screen events until the screen is finalized. Turns go to the
// latch; quit keys call quit. A read error is handed to fail and ends Listen.
func (t *Terminal) Listen(quit func(), fail func(error)) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if t.HandleKey(ev) == ActionQuit {
				quit()
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventError:
			fail(fmt.Errorf("terminal input: %w", ev))
			return
		}
	}
}

// HandleKey applies one key event and reports what it did.
func (t *Terminal) HandleKey(ev *tcell.EventKey) Action {
	var dir types.Direction
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		dir = types.Up
	case tcell.KeyDown:
		dir = types.Down
	case tcell.KeyLeft:
		dir = types.Left
	case tcell.KeyRight:
		dir = types.Right
	case tcell.KeyRune:
		action, d := ActionForRune(ev.Rune())
		if action != ActionTurn {
			return action
		}
		dir = d
	default:
		return ActionNone
	}
	t.latch.Set(dir)
	return ActionTurn
}
