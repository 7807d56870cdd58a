package entity

import "wrapsnake/game/types"

// FoodState tracks whether a food item is still on the field
type FoodState int

const (
	Fresh FoodState = iota
	Eaten
)

func (s FoodState) String() string {
	if s == Eaten {
		return "eaten"
	}
	return "fresh"
}

type Food struct {
	Pos   types.Point
	Color types.Color
	State FoodState
}

func NewFood(pos types.Point, color types.Color) *Food {
	return &Food{Pos: pos, Color: color, State: Fresh}
}

// Eat marks the food as consumed; it is purged on the next tick
func (f *Food) Eat() {
	f.State = Eaten
}

func (f *Food) IsFresh() bool {
	return f.State == Fresh
}
