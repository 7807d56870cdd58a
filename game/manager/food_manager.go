package manager

import (
	"wrapsnake/game/entity"
	"wrapsnake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the active food collection. Spawn positions come from the
// injected random source so a seeded game always lays out the same waves.
type FoodManager struct {
	grid         types.Grid
	foodList     []*entity.Food
	color        types.Color
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		foodList:     make([]*entity.Food, 0),
		color:        types.FoodColor,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// SpawnWave replaces the collection with count fresh items at random cells.
// Items may land on the snake or on each other.
func (fm *FoodManager) SpawnWave(count int) {
	fm.Clear()
	for i := 0; i < count; i++ {
		fm.AddFood(entity.NewFood(fm.GenerateFood(), fm.color))
	}
}

// GenerateFood picks a uniformly random cell in [0,width) x [0,height)
func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// PurgeEaten drops every eaten item and returns how many were removed
func (fm *FoodManager) PurgeEaten() int {
	kept := fm.foodList[:0]
	for _, f := range fm.foodList {
		if f.IsFresh() {
			kept = append(kept, f)
		}
	}
	removed := len(fm.foodList) - len(kept)
	for i := len(kept); i < len(fm.foodList); i++ {
		fm.foodList[i] = nil
	}
	fm.foodList = kept
	return removed
}

// ConsumeAt marks every fresh item on pos as eaten and returns how many it marked
func (fm *FoodManager) ConsumeAt(pos types.Point) int {
	eaten := 0
	for _, f := range fm.foodList {
		if fm.collisionMgr.IsFoodCollision(pos, f) {
			f.Eat()
			eaten++
		}
	}
	return eaten
}

func (fm *FoodManager) GetFoodList() []*entity.Food {
	return fm.foodList
}

func (fm *FoodManager) AddFood(food *entity.Food) {
	fm.foodList = append(fm.foodList, food)
}

func (fm *FoodManager) Len() int {
	return len(fm.foodList)
}

func (fm *FoodManager) Clear() {
	for i := range fm.foodList {
		fm.foodList[i] = nil
	}
	fm.foodList = fm.foodList[:0]
}
