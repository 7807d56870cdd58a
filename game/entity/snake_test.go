package entity

import (
	"testing"

	"wrapsnake/game/types"
)

var grid = types.Grid{Width: 20, Height: 20}

func TestNewSnake(t *testing.T) {
	s := NewSnake(types.StartPoint(), types.SnakeColor)
	if s.Head != (types.Point{X: 10, Y: 10}) {
		t.Errorf("head = %v, want (10,10)", s.Head)
	}
	if s.Heading != types.Right {
		t.Errorf("heading = %v, want right", s.Heading)
	}
	if len(s.Body) != 0 || s.Length() != 0 {
		t.Errorf("new snake has body %v", s.Body)
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	for _, from := range types.Directions {
		for _, to := range types.Directions {
			s := NewSnake(types.StartPoint(), types.SnakeColor)
			s.Heading = from

			accepted := s.Turn(to)
			if to == from.Opposite() {
				if accepted || s.Heading != from {
					t.Errorf("turn %v -> %v accepted, heading %v", from, to, s.Heading)
				}
				continue
			}
			if !accepted || s.Heading != to {
				t.Errorf("turn %v -> %v rejected, heading %v", from, to, s.Heading)
			}
		}
	}
}

func TestMoveWithoutBody(t *testing.T) {
	s := NewSnake(types.Point{X: 19, Y: 5}, types.SnakeColor)
	s.Move(grid)

	if s.Head != (types.Point{X: 0, Y: 5}) {
		t.Errorf("head = %v, want (0,5)", s.Head)
	}
	if len(s.Body) != 0 {
		t.Errorf("body = %v, want empty", s.Body)
	}
}

func TestMoveShiftsBody(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.SnakeColor)
	s.Body = []types.Direction{types.Right, types.Down}
	s.Heading = types.Up

	s.Move(grid)

	want := []types.Direction{types.Up, types.Right}
	if len(s.Body) != len(want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, s.Body[i], want[i])
		}
	}
	if s.Head != (types.Point{X: 5, Y: 4}) {
		t.Errorf("head = %v, want (5,4)", s.Head)
	}
}

func TestGrowIsConsumedByMove(t *testing.T) {
	s := NewSnake(types.StartPoint(), types.SnakeColor)
	s.Body = []types.Direction{types.Right}

	s.Grow()
	if s.PendingGrowth() != 1 || len(s.Body) != 1 || s.Length() != 2 {
		t.Fatalf("after grow: pending %d body %d", s.PendingGrowth(), len(s.Body))
	}

	tailBefore := s.Cells(grid)[0]
	s.Move(grid)

	if s.PendingGrowth() != 0 {
		t.Errorf("pending = %d after move", s.PendingGrowth())
	}
	if len(s.Body) != 2 {
		t.Fatalf("body len = %d, want 2", len(s.Body))
	}
	cells := s.Cells(grid)
	if cells[len(cells)-1] != tailBefore {
		t.Errorf("tail moved from %v to %v while growing", tailBefore, cells[len(cells)-1])
	}
}

func TestGrowOnEmptyBody(t *testing.T) {
	s := NewSnake(types.StartPoint(), types.SnakeColor)
	s.Grow()
	s.Move(grid)

	if len(s.Body) != 1 {
		t.Errorf("body len = %d, want 1", len(s.Body))
	}
	cells := s.Cells(grid)
	if cells[0] != types.StartPoint() {
		t.Errorf("first segment at %v, want start cell", cells[0])
	}
}

func TestCells(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0}, types.SnakeColor)
	s.Body = []types.Direction{types.Right, types.Down, types.Down}

	got := s.Cells(grid)
	want := []types.Point{{X: 19, Y: 0}, {X: 19, Y: 19}, {X: 19, Y: 18}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReset(t *testing.T) {
	s := NewSnake(types.Point{X: 3, Y: 3}, types.SnakeColor)
	s.Body = []types.Direction{types.Up, types.Up}
	s.Heading = types.Up
	s.Grow()

	s.Reset(types.StartPoint())

	if s.Head != types.StartPoint() || len(s.Body) != 0 || s.PendingGrowth() != 0 {
		t.Errorf("reset left head %v body %v pending %d", s.Head, s.Body, s.PendingGrowth())
	}
	if s.Heading != types.Up {
		t.Errorf("reset changed heading to %v", s.Heading)
	}
}

func TestFoodEat(t *testing.T) {
	f := NewFood(types.Point{X: 1, Y: 2}, types.FoodColor)
	if !f.IsFresh() {
		t.Fatal("new food is not fresh")
	}
	f.Eat()
	if f.IsFresh() || f.State != Eaten {
		t.Errorf("state = %v after Eat", f.State)
	}
}
