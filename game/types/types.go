package types

import (
	"errors"
	"fmt"
	"strings"
)

// Game constants
const (
	MinGridSize   = 3  // Smallest side that still fits a snake, a food cell and a free cell
	DefaultHeight = 10 // Rows
	DefaultWidth  = 10 // Columns
)

var ErrGridTooSmall = errors.New("grid too small")

// Cell is a grid coordinate. X is the row, Y is the column.
type Cell struct {
	X, Y int
}

// Move returns the neighbouring cell in the given direction.
func (c Cell) Move(d Direction) Cell {
	delta := d.Delta()
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Height int
	Width  int
}

// Contains reports whether the cell lies inside the walls.
// Row Height and column Width are already outside.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Height && c.Y >= 0 && c.Y < g.Width
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Height * g.Width
}

// Cells calls fn for every cell in row-major order.
func (g Grid) Cells(fn func(Cell)) {
	for x := 0; x < g.Height; x++ {
		for y := 0; y < g.Width; y++ {
			fn(Cell{X: x, Y: y})
		}
	}
}

// Validate checks the grid is large enough to play on.
func (g Grid) Validate() error {
	if g.Height < MinGridSize || g.Width < MinGridSize {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrGridTooSmall, g.Height, g.Width, MinGridSize, MinGridSize)
	}
	return nil
}

// Direction is a cardinal heading. None is the zero value and means no request.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// deltas is the only place the direction to axis mapping lives:
// Up/Down move along X (rows), Left/Right move along Y (columns).
var deltas = [...]Cell{
	None:  {X: 0, Y: 0},
	Up:    {X: -1, Y: 0},
	Right: {X: 0, Y: 1},
	Down:  {X: 1, Y: 0},
	Left:  {X: 0, Y: -1},
}

// Delta returns the one-step displacement for d.
func (d Direction) Delta() Cell {
	if d < None || int(d) >= len(deltas) {
		return Cell{}
	}
	return deltas[d]
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	if string(b) == "none" {
		*d = None
		return nil
	}
	v, ok := ParseDirection(string(b))
	if !ok {
		return fmt.Errorf("unknown direction %q", b)
	}
	*d = v
	return nil
}

// ParseDirection accepts the direction names and their first letter.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, true
	case "right", "r":
		return Right, true
	case "down", "d":
		return Down, true
	case "left", "l":
		return Left, true
	default:
		return None, false
	}
}

// CellKind classifies a cell for rendering only.
type CellKind uint8

const (
	Empty CellKind = iota
	Food
	SnakeBody
	SnakeHead
)

// Rune returns the glyph used by the character renderers.
func (k CellKind) Rune() rune {
	switch k {
	case Food:
		return 'X'
	case SnakeBody:
		return 'o'
	case SnakeHead:
		return '@'
	default:
		return ' '
	}
}

func (k CellKind) String() string {
	switch k {
	case Food:
		return "food"
	case SnakeBody:
		return "body"
	case SnakeHead:
		return "head"
	default:
		return "empty"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
