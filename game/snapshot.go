package game

import (
	"strings"

	"term-snake/game/manager"
	"term-snake/game/types"
)

// Snapshot is a finished, row-major picture of the board handed to renderers.
// Cells[x][y] is row x, column y. It shares no memory with the game.
// The matrix is left out of JSON; Rows is the wire form.
type Snapshot struct {
	Height  int                `json:"height"`
	Width   int                `json:"width"`
	Cells   [][]types.CellKind `json:"-"`
	Score   int                `json:"score"`
	Length  int                `json:"length"`
	Tick    int                `json:"tick"`
	Heading types.Direction    `json:"heading"`
	Over    bool               `json:"over"`
	Cause   string             `json:"cause,omitempty"`
}

// Snapshot classifies every cell. Calling it twice without a tick in
// between yields equal snapshots.
func (g *Game) Snapshot() Snapshot {
	cells := make([][]types.CellKind, g.grid.Height)
	for x := range cells {
		cells[x] = make([]types.CellKind, g.grid.Width)
	}

	for _, f := range g.food.GetFoodList() {
		cells[f.X][f.Y] = types.Food
	}
	for i, part := range g.snake.Body() {
		if i == 0 {
			cells[part.X][part.Y] = types.SnakeHead
		} else {
			cells[part.X][part.Y] = types.SnakeBody
		}
	}

	snap := Snapshot{
		Height:  g.grid.Height,
		Width:   g.grid.Width,
		Cells:   cells,
		Score:   g.snake.Score(),
		Length:  g.snake.Len(),
		Tick:    g.state.Ticks(),
		Heading: g.snake.Heading(),
		Over:    g.state.State() == manager.Over,
	}
	if snap.Over {
		snap.Cause = g.state.Cause().String()
	}
	return snap
}

// At returns the kind of cell c, or Empty outside the grid.
func (s Snapshot) At(c types.Cell) types.CellKind {
	if c.X < 0 || c.X >= s.Height || c.Y < 0 || c.Y >= s.Width {
		return types.Empty
	}
	return s.Cells[c.X][c.Y]
}

// Rows renders each row with the CellKind glyphs.
func (s Snapshot) Rows() []string {
	rows := make([]string, s.Height)
	var b strings.Builder
	for x, row := range s.Cells {
		b.Reset()
		for _, k := range row {
			b.WriteRune(k.Rune())
		}
		rows[x] = b.String()
	}
	return rows
}

func (s Snapshot) Equal(o Snapshot) bool {
	if s.Height != o.Height || s.Width != o.Width || s.Score != o.Score ||
		s.Length != o.Length || s.Tick != o.Tick || s.Heading != o.Heading ||
		s.Over != o.Over || s.Cause != o.Cause {
		return false
	}
	for x := range s.Cells {
		for y := range s.Cells[x] {
			if s.Cells[x][y] != o.Cells[x][y] {
				return false
			}
		}
	}
	return true
}
