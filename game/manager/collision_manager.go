package manager

import (
	"term-snake/game/entity"
	"term-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies moving the snake's head to next. The self check runs
// against the cells that will still be occupied after the move, so the tail
// the snake is leaving does not count unless it is eating.
func (cm *CollisionManager) Check(next types.Cell, snake *entity.Snake, ate bool) types.CollisionType {
	if cm.isWallCollision(next) {
		return types.WallCollision
	}

	occupied := snake.OccupiedAfter(ate)
	for _, part := range occupied {
		if part == next {
			return types.SelfCollision
		}
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.grid.Contains(pos)
}

// IsFree reports whether food or a snake may be placed on pos.
func (cm *CollisionManager) IsFree(pos types.Cell, snake *entity.Snake, food *FoodManager) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if snake != nil && snake.Contains(pos) {
		return false
	}
	return food == nil || !food.Contains(pos)
}
