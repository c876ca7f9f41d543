package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"term-snake/game"
	"term-snake/game/types"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 30 // Room for the score line under the grid
)

// Window renders frames in a raylib window. Every raylib call must happen on
// the locked main thread, so keys are polled inside Present rather than in a
// goroutine.
type Window struct {
	cellSize int32
	title    string
	latch    *game.HeadingLatch
	open     bool
}

func NewWindow(cellSize int32, title string, latch *game.HeadingLatch) *Window {
	if cellSize <= 0 {
		cellSize = 24
	}
	return &Window{cellSize: cellSize, title: title, latch: latch}
}

// Open creates a window sized for the grid.
func (w *Window) Open(grid types.Grid) {
	width, height := windowSize(grid, w.cellSize)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, w.title)
	rl.SetTargetFPS(60)
	w.open = true
}

func (w *Window) Close() {
	if w.open {
		rl.CloseWindow()
		w.open = false
	}
}

func windowSize(grid types.Grid, cellSize int32) (int32, int32) {
	width := int32(grid.Width)*cellSize + borderPadding*2
	height := int32(grid.Height)*cellSize + borderPadding*2 + statusHeight
	return width, height
}

func (w *Window) Present(s game.Snapshot) error {
	if rl.WindowShouldClose() {
		return ErrClosed
	}
	if w.pollKeys() == ActionQuit {
		return ErrClosed
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	gridWidth := int32(s.Width) * w.cellSize
	gridHeight := int32(s.Height) * w.cellSize

	// Draw grid background
	rl.DrawRectangle(borderPadding-1, borderPadding-1, gridWidth+2, gridHeight+2, rl.DarkGray)

	for x, row := range s.Cells {
		for y, kind := range row {
			px := borderPadding + int32(y)*w.cellSize
			py := borderPadding + int32(x)*w.cellSize
			switch kind {
			case types.Food:
				rl.DrawRectangle(px, py, w.cellSize, w.cellSize, rl.Red)
			case types.SnakeBody:
				rl.DrawRectangle(px, py, w.cellSize, w.cellSize, rl.Green)
			case types.SnakeHead:
				rl.DrawRectangle(px, py, w.cellSize, w.cellSize, rl.Lime)
				w.drawHeading(px, py, s.Heading)
			default:
				rl.DrawRectangle(px, py, w.cellSize, w.cellSize, rl.Black)
			}
			rl.DrawRectangleLines(px, py, w.cellSize, w.cellSize, rl.Gray)
		}
	}

	color := rl.White
	if s.Over {
		color = rl.Red
	}
	rl.DrawText(StatusLine(s), borderPadding, borderPadding*2+gridHeight, 20, color)

	rl.EndDrawing()
	return nil
}

// drawHeading marks the head with a triangle pointing where it travels.
func (w *Window) drawHeading(px, py int32, heading types.Direction) {
	size := float32(w.cellSize)
	half := size / 2
	x, y := float32(px), float32(py)

	var a, b, c rl.Vector2
	switch heading {
	case types.Right:
		a, b, c = rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		a, b, c = rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + half, Y: y}
	case types.Up:
		a, b, c = rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + size, Y: y + half}
	case types.Down:
		a, b, c = rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x, Y: y + half}
	default:
		return
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

// pollKeys drains the key queue; the last turn wins.
func (w *Window) pollKeys() Action {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		action, dir := windowAction(key)
		switch action {
		case ActionQuit:
			return ActionQuit
		case ActionTurn:
			w.latch.Set(dir)
		}
	}
	return ActionNone
}

func windowAction(key int32) (Action, types.Direction) {
	switch key {
	case rl.KeyEscape:
		return ActionQuit, types.None
	case rl.KeyUp:
		return ActionTurn, types.Up
	case rl.KeyDown:
		return ActionTurn, types.Down
	case rl.KeyLeft:
		return ActionTurn, types.Left
	case rl.KeyRight:
		return ActionTurn, types.Right
	}
	// Letter key codes are the upper-case ASCII values.
	if key >= 'A' && key <= 'Z' {
		return ActionForRune(rune(key))
	}
	return ActionNone, types.None
}
