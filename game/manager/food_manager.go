package manager

import (
	"fmt"

	"term-snake/game/types"

	"golang.org/x/exp/rand"
)

// Spawner picks where the next food goes. free is every cell that is in the
// grid, not food and not snake, in row-major order.
type Spawner interface {
	Next(free []types.Cell) (types.Cell, bool)
}

// RandomSpawner picks uniformly among free cells. The same seed gives the
// same sequence.
type RandomSpawner struct {
	rng *rand.Rand
}

func NewRandomSpawner(seed uint64) *RandomSpawner {
	return &RandomSpawner{rng: rand.New(rand.NewSource(seed))}
}

func (rs *RandomSpawner) Next(free []types.Cell) (types.Cell, bool) {
	if len(free) == 0 {
		return types.Cell{}, false
	}
	return free[rs.rng.Intn(len(free))], true
}

// QueueSpawner hands out fixed positions in order, skipping any that are
// taken when their turn comes.
type QueueSpawner struct {
	queue []types.Cell
}

func NewQueueSpawner(positions ...types.Cell) *QueueSpawner {
	q := make([]types.Cell, len(positions))
	copy(q, positions)
	return &QueueSpawner{queue: q}
}

func (qs *QueueSpawner) Next(free []types.Cell) (types.Cell, bool) {
	for len(qs.queue) > 0 {
		next := qs.queue[0]
		qs.queue = qs.queue[1:]
		for _, c := range free {
			if c == next {
				return next, true
			}
		}
	}
	return types.Cell{}, false
}

// Remaining returns how many queued positions are left.
func (qs *QueueSpawner) Remaining() int {
	return len(qs.queue)
}

// NoSpawner never adds food.
type NoSpawner struct{}

func (NoSpawner) Next([]types.Cell) (types.Cell, bool) {
	return types.Cell{}, false
}

// FoodManager is the set of uneaten food cells.
type FoodManager struct {
	grid     types.Grid
	foodList []types.Cell
	spawner  Spawner
}

func NewFoodManager(grid types.Grid, spawner Spawner) *FoodManager {
	if spawner == nil {
		spawner = NoSpawner{}
	}
	return &FoodManager{
		grid:     grid,
		foodList: make([]types.Cell, 0, 1),
		spawner:  spawner,
	}
}

func (fm *FoodManager) Contains(c types.Cell) bool {
	for _, f := range fm.foodList {
		if f == c {
			return true
		}
	}
	return false
}

// Place adds food at c. Placing on existing food is a no-op.
func (fm *FoodManager) Place(c types.Cell) {
	if fm.Contains(c) {
		return
	}
	fm.foodList = append(fm.foodList, c)
}

// PickIfPresent removes the food at c and reports whether there was any.
func (fm *FoodManager) PickIfPresent(c types.Cell) bool {
	for i, f := range fm.foodList {
		if f == c {
			fm.foodList = append(fm.foodList[:i], fm.foodList[i+1:]...)
			return true
		}
	}
	return false
}

// Spawn asks the spawner for a new food cell among the cells that are not
// food and not occupied. It returns false when nothing was placed.
func (fm *FoodManager) Spawn(occupied func(types.Cell) bool) (types.Cell, bool) {
	free := make([]types.Cell, 0, fm.grid.Size())
	fm.grid.Cells(func(c types.Cell) {
		if !occupied(c) && !fm.Contains(c) {
			free = append(free, c)
		}
	})

	food, ok := fm.spawner.Next(free)
	if !ok {
		return types.Cell{}, false
	}
	if !fm.grid.Contains(food) || occupied(food) || fm.Contains(food) {
		panic(fmt.Sprintf("manager: spawner returned taken cell %v", food))
	}
	fm.foodList = append(fm.foodList, food)
	return food, true
}

// GetFoodList returns a copy of the food cells in placement order.
func (fm *FoodManager) GetFoodList() []types.Cell {
	out := make([]types.Cell, len(fm.foodList))
	copy(out, fm.foodList)
	return out
}

func (fm *FoodManager) Len() int {
	return len(fm.foodList)
}
