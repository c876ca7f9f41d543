package game

import (
	"errors"
	"fmt"

	"term-snake/game/entity"
	"term-snake/game/manager"
	"term-snake/game/types"
)

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrCellTaken   = errors.New("cell taken")
)

// Options configures a new game. Zero fields fall back to the default board.
type Options struct {
	Height int
	Width  int

	// Start is the head of the initial single-segment snake. Body, if set,
	// replaces it with a longer head-first body.
	Start   *types.Cell
	Body    []types.Cell
	Heading types.Direction

	// Food holds the initial food cells. Nil means one cell at the default
	// position; an empty non-nil slice means none.
	Food    []types.Cell
	Spawner manager.Spawner

	// RejectReversal ignores heading requests that would turn the head back
	// into the neck. Off by default: a reversal kills the snake.
	RejectReversal bool

	Input HeadingSource
}

// DefaultStart places the snake at (height/2, width/5), which is (5,2) on a
// 10x10 grid.
func DefaultStart(g types.Grid) types.Cell {
	return types.Cell{X: g.Height / 2, Y: g.Width / 5}
}

// DefaultFood is (3,3) on a 10x10 grid.
func DefaultFood(g types.Grid) types.Cell {
	return types.Cell{X: 3 * g.Height / 10, Y: 3 * g.Width / 10}
}

// Game is the board: it owns the grid, the snake, the food and the state
// machine, and is mutated only by Tick.
type Game struct {
	grid types.Grid

	snake     *entity.Snake
	food      *manager.FoodManager
	collision *manager.CollisionManager
	state     *manager.StateManager

	input          HeadingSource
	rejectReversal bool
}

// TickResult describes what one tick did.
type TickResult struct {
	Tick  int
	Head  types.Cell
	Ate   bool
	Food  *types.Cell // newly spawned food, if any
	Over  bool
	Cause types.CollisionType
	Score int
}

func NewGame(opts Options) (*Game, error) {
	grid := types.Grid{Height: opts.Height, Width: opts.Width}
	if grid.Height == 0 {
		grid.Height = types.DefaultHeight
	}
	if grid.Width == 0 {
		grid.Width = types.DefaultWidth
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	heading := opts.Heading
	if heading == types.None {
		heading = types.Right
	}

	var snake *entity.Snake
	switch {
	case len(opts.Body) > 0:
		if err := validateBody(grid, opts.Body); err != nil {
			return nil, err
		}
		snake = entity.NewSnakeWithBody(opts.Body, heading)
	default:
		start := DefaultStart(grid)
		if opts.Start != nil {
			start = *opts.Start
		}
		if !grid.Contains(start) {
			return nil, fmt.Errorf("snake start %v: %w", start, ErrOutOfBounds)
		}
		snake = entity.NewSnake(start, heading)
	}

	g := &Game{
		grid:           grid,
		snake:          snake,
		food:           manager.NewFoodManager(grid, opts.Spawner),
		collision:      manager.NewCollisionManager(grid),
		state:          manager.NewStateManager(),
		input:          opts.Input,
		rejectReversal: opts.RejectReversal,
	}

	food := opts.Food
	if food == nil {
		food = []types.Cell{DefaultFood(grid)}
	}
	for _, f := range food {
		if err := g.PlaceFood(f); err != nil {
			return nil, fmt.Errorf("initial food: %w", err)
		}
	}
	return g, nil
}

func validateBody(grid types.Grid, body []types.Cell) error {
	seen := make(map[types.Cell]bool, len(body))
	for i, c := range body {
		if !grid.Contains(c) {
			return fmt.Errorf("snake segment %v: %w", c, ErrOutOfBounds)
		}
		if seen[c] {
			return fmt.Errorf("snake segment %v repeated: %w", c, ErrCellTaken)
		}
		seen[c] = true
		if i > 0 {
			prev := body[i-1]
			if abs(prev.X-c.X)+abs(prev.Y-c.Y) != 1 {
				return fmt.Errorf("snake segments %v and %v are not adjacent", prev, c)
			}
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// PlaceFood adds food on a free cell inside the grid.
func (g *Game) PlaceFood(c types.Cell) error {
	if !g.grid.Contains(c) {
		return fmt.Errorf("food %v: %w", c, ErrOutOfBounds)
	}
	if g.snake.Contains(c) {
		return fmt.Errorf("food %v on snake: %w", c, ErrCellTaken)
	}
	g.food.Place(c)
	return nil
}

// RemoveFood takes food off the board without eating it.
func (g *Game) RemoveFood(c types.Cell) bool {
	return g.food.PickIfPresent(c)
}

// SetHeading changes the heading used by the next tick.
func (g *Game) SetHeading(dir types.Direction) {
	g.applyHeading(dir)
}

func (g *Game) applyHeading(dir types.Direction) {
	if dir == types.None {
		return
	}
	if g.rejectReversal && g.snake.Len() > 1 && dir == g.snake.Heading().Opposite() {
		return
	}
	g.snake.SetHeading(dir)
}

// Tick advances the simulation by one step. Once the game is over it does
// nothing and returns the terminal result again.
func (g *Game) Tick() TickResult {
	if !g.state.Step() {
		return g.terminalResult()
	}

	if g.input != nil {
		if dir, ok := g.input.Take(); ok {
			g.applyHeading(dir)
		}
	}

	next := g.snake.Advance()
	res := TickResult{Tick: g.state.Ticks(), Head: next}

	ate := g.grid.Contains(next) && g.food.Contains(next)
	if cause := g.collision.Check(next, g.snake, ate); cause != types.NoCollision {
		g.state.End(cause)
		g.snake.Kill()
		res.Head = g.snake.Head()
		res.Over = true
		res.Cause = cause
		res.Score = g.snake.Score()
		return res
	}

	if ate {
		g.food.PickIfPresent(next)
	}
	g.snake.Commit(next, ate)
	res.Ate = ate
	if ate {
		if food, ok := g.food.Spawn(g.snake.Contains); ok {
			res.Food = &food
		}
	}
	res.Score = g.snake.Score()
	return res
}

func (g *Game) terminalResult() TickResult {
	return TickResult{
		Tick:  g.state.Ticks(),
		Head:  g.snake.Head(),
		Over:  true,
		Cause: g.state.Cause(),
		Score: g.snake.Score(),
	}
}

// Grid is fixed for the life of the game.
func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) State() manager.State {
	return g.state.State()
}

func (g *Game) IsOver() bool {
	return g.state.IsOver()
}

func (g *Game) Score() int {
	return g.snake.Score()
}

func (g *Game) Ticks() int {
	return g.state.Ticks()
}

func (g *Game) Cause() types.CollisionType {
	return g.state.Cause()
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []types.Cell {
	return g.snake.Body()
}

func (g *Game) Heading() types.Direction {
	return g.snake.Heading()
}

// Food returns a copy of the food cells.
func (g *Game) Food() []types.Cell {
	return g.food.GetFoodList()
}
