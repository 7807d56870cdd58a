package game

import (
	"wrapsnake/game/entity"
	"wrapsnake/game/types"
)

// FoodView is the render side copy of a food item
type FoodView struct {
	Pos   types.Point
	Color types.Color
	State entity.FoodState
}

// Snapshot is a detached copy of everything a frontend needs to draw a frame.
// Mutating it has no effect on the game.
type Snapshot struct {
	Grid       types.Grid
	SquareSize int
	Background types.Color

	Head       types.Point
	Heading    types.Direction
	Body       []types.Direction
	BodyCells  []types.Point
	SnakeColor types.Color

	Food []FoodView

	Paused  bool
	Level   uint8
	Session string

	RunsPlayed int
	BestLength int
}

// Length is the number of drawn body segments
func (s Snapshot) Length() int {
	return len(s.Body)
}

func (g *Game) Snapshot() Snapshot {
	body := make([]types.Direction, len(g.snake.Body))
	copy(body, g.snake.Body)

	food := make([]FoodView, 0, g.foodMgr.Len())
	for _, f := range g.foodMgr.GetFoodList() {
		food = append(food, FoodView{Pos: f.Pos, Color: f.Color, State: f.State})
	}

	return Snapshot{
		Grid:       g.Grid,
		SquareSize: g.SquareSize,
		Background: g.Background,
		Head:       g.snake.Head,
		Heading:    g.snake.Heading,
		Body:       body,
		BodyCells:  g.snake.Cells(g.Grid),
		SnakeColor: g.snake.Color,
		Food:       food,
		Paused:     g.paused,
		Level:      g.level,
		Session:    g.sessionID,
		RunsPlayed: g.stats.RunsPlayed(),
		BestLength: g.stats.BestLength(),
	}
}
