package manager

import (
	"testing"
	"time"

	"wrapsnake/game/entity"
	"wrapsnake/game/types"

	"golang.org/x/exp/rand"
)

var grid = types.Grid{Width: 20, Height: 20}

func newFoodManager(seed uint64) *FoodManager {
	return NewFoodManager(grid, rand.New(rand.NewSource(seed)), NewCollisionManager(grid))
}

func TestDetectsSelfCollisionClosedLoops(t *testing.T) {
	cm := NewCollisionManager(grid)

	// A square loop of four segments brings the cursor back onto the head.
	// Every rotation and reflection of it must be flagged.
	base := []types.Direction{types.Right, types.Down, types.Left, types.Up}
	loops := [][]types.Direction{}
	for _, turn := range []func(types.Direction) types.Direction{
		func(d types.Direction) types.Direction { return d },
		types.Direction.TurnRight,
		types.Direction.Opposite,
		types.Direction.TurnLeft,
	} {
		rotated := make([]types.Direction, len(base))
		mirrored := make([]types.Direction, len(base))
		for i, d := range base {
			rotated[i] = turn(d)
			// Mirror across the vertical axis: left and right swap
			m := turn(d)
			if m == types.Left || m == types.Right {
				m = m.Opposite()
			}
			mirrored[i] = m
		}
		loops = append(loops, rotated, mirrored)
	}

	for _, body := range loops {
		for _, head := range []types.Point{{X: 10, Y: 10}, {X: 0, Y: 0}, {X: 19, Y: 19}} {
			s := entity.NewSnake(head, types.SnakeColor)
			s.Body = body
			if !cm.DetectsSelfCollision(s) {
				t.Errorf("loop %v at %v not detected", body, head)
			}
			if idx := cm.SelfCollisionIndex(s); idx != 3 {
				t.Errorf("loop %v at %v collides at %d, want 3", body, head, idx)
			}
		}
	}
}

func TestDetectsSelfCollisionStraightBody(t *testing.T) {
	cm := NewCollisionManager(grid)
	s := entity.NewSnake(types.StartPoint(), types.SnakeColor)
	s.Body = []types.Direction{types.Right, types.Right, types.Down, types.Down, types.Left}

	if cm.DetectsSelfCollision(s) {
		t.Error("open body flagged as collision")
	}

	s.Body = nil
	if cm.DetectsSelfCollision(s) {
		t.Error("empty body flagged as collision")
	}
}

func TestDetectsSelfCollisionAcrossWrap(t *testing.T) {
	cm := NewCollisionManager(grid)
	s := entity.NewSnake(types.Point{X: 0, Y: 5}, types.SnakeColor)

	// A full lap around the torus ends on the head
	s.Body = make([]types.Direction, grid.Width)
	for i := range s.Body {
		s.Body[i] = types.Right
	}
	if !cm.DetectsSelfCollision(s) {
		t.Error("lap around the torus not detected")
	}

	s.Body = s.Body[:grid.Width-1]
	if cm.DetectsSelfCollision(s) {
		t.Error("one short of a lap flagged as collision")
	}
}

func TestSpawnWave(t *testing.T) {
	fm := newFoodManager(1)
	fm.SpawnWave(5)

	if fm.Len() != 5 {
		t.Fatalf("len = %d, want 5", fm.Len())
	}
	for _, f := range fm.GetFoodList() {
		if !grid.Contains(f.Pos) {
			t.Errorf("food at %v outside grid", f.Pos)
		}
		if !f.IsFresh() {
			t.Errorf("food at %v not fresh", f.Pos)
		}
		if f.Color != types.FoodColor {
			t.Errorf("food color = %v", f.Color)
		}
	}

	fm.SpawnWave(2)
	if fm.Len() != 2 {
		t.Errorf("second wave len = %d, want 2", fm.Len())
	}
}

func TestSpawnWaveDeterministic(t *testing.T) {
	a, b := newFoodManager(42), newFoodManager(42)
	a.SpawnWave(8)
	b.SpawnWave(8)

	for i := range a.GetFoodList() {
		if a.GetFoodList()[i].Pos != b.GetFoodList()[i].Pos {
			t.Fatalf("item %d differs: %v vs %v", i, a.GetFoodList()[i].Pos, b.GetFoodList()[i].Pos)
		}
	}
}

func TestConsumeAndPurge(t *testing.T) {
	fm := newFoodManager(1)
	p := types.Point{X: 4, Y: 4}
	fm.AddFood(entity.NewFood(p, types.FoodColor))
	fm.AddFood(entity.NewFood(p, types.FoodColor))
	fm.AddFood(entity.NewFood(types.Point{X: 5, Y: 4}, types.FoodColor))

	if n := fm.ConsumeAt(p); n != 2 {
		t.Errorf("ConsumeAt = %d, want 2 (stacked items)", n)
	}
	if n := fm.ConsumeAt(p); n != 0 {
		t.Errorf("eaten food consumed twice: %d", n)
	}
	if fm.Len() != 3 {
		t.Errorf("eaten food removed before purge, len %d", fm.Len())
	}

	if n := fm.PurgeEaten(); n != 2 {
		t.Errorf("PurgeEaten = %d, want 2", n)
	}
	if fm.Len() != 1 || fm.GetFoodList()[0].Pos != (types.Point{X: 5, Y: 4}) {
		t.Errorf("remaining food = %v", fm.GetFoodList())
	}
}

func TestStatsManager(t *testing.T) {
	sm := NewStatsManager()
	if _, ok := sm.Last(); ok {
		t.Fatal("Last on empty history")
	}
	if sm.AverageLength() != 0 {
		t.Errorf("average on empty history = %f", sm.AverageLength())
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.AddRun(RunRecord{SessionID: "a", StartTime: start, EndTime: start.Add(time.Minute), Level: 3, Length: 4})
	sm.AddRun(RunRecord{SessionID: "b", StartTime: start, EndTime: start.Add(time.Second), Level: 1, Length: 8})

	if sm.RunsPlayed() != 2 {
		t.Errorf("runs = %d", sm.RunsPlayed())
	}
	if sm.BestLength() != 8 || sm.BestLevel() != 3 {
		t.Errorf("best length %d level %d", sm.BestLength(), sm.BestLevel())
	}
	if sm.AverageLength() != 6 {
		t.Errorf("average = %f, want 6", sm.AverageLength())
	}
	last, _ := sm.Last()
	if last.SessionID != "b" || last.Duration() != time.Second {
		t.Errorf("last = %+v", last)
	}
}

func TestStatsManagerEvictsOldest(t *testing.T) {
	sm := NewStatsManager()
	for i := 0; i < MaxRecords+5; i++ {
		sm.AddRun(RunRecord{Length: i})
	}

	recs := sm.GetRecords()
	if len(recs) != MaxRecords {
		t.Fatalf("kept %d records, want %d", len(recs), MaxRecords)
	}
	if recs[0].Length != 5 {
		t.Errorf("oldest kept length = %d, want 5", recs[0].Length)
	}
	if sm.RunsPlayed() != MaxRecords+5 {
		t.Errorf("runs = %d", sm.RunsPlayed())
	}
	if sm.BestLength() != MaxRecords+4 {
		t.Errorf("best = %d", sm.BestLength())
	}
}
