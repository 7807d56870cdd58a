package manager

import (
	"wrapsnake/game/entity"
	"wrapsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// DetectsSelfCollision walks the body outward from the head, reverse applying
// each segment's direction, and reports whether any segment sits on the head.
func (cm *CollisionManager) DetectsSelfCollision(snake *entity.Snake) bool {
	return cm.SelfCollisionIndex(snake) >= 0
}

// SelfCollisionIndex returns the index of the first body segment occupying the
// head cell, or -1 when the head is clear
func (cm *CollisionManager) SelfCollisionIndex(snake *entity.Snake) int {
	cursor := snake.Head
	for i, dir := range snake.Body {
		cursor = cm.grid.StepBack(cursor, dir)
		if cursor == snake.Head {
			return i
		}
	}
	return -1
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food.IsFresh() && pos == food.Pos
}
