package entity

import (
	"wrapsnake/game/types"
)

// Snake is the player controlled entity. Body holds one Direction per segment:
// index 0 is the segment right behind the head, the last element is the tail.
// Each entry is the heading the snake moved in when leaving that segment's cell.
type Snake struct {
	Heading types.Direction
	Body    []types.Direction
	Head    types.Point
	Color   types.Color

	pendingGrowth int
}

func NewSnake(startPos types.Point, color types.Color) *Snake {
	return &Snake{
		Heading: types.Right, // Start moving right
		Head:    startPos,
		Color:   color,
	}
}

// Turn sets the heading unless dir would reverse the snake onto itself.
// It reports whether the request was accepted.
func (s *Snake) Turn(dir types.Direction) bool {
	if dir.IsOpposite(s.Heading) {
		return false
	}
	s.Heading = dir
	return true
}

// Grow queues one segment. The segment is added by the next Move, which keeps
// the tail in place instead of dropping it.
func (s *Snake) Grow() {
	s.pendingGrowth++
}

// PendingGrowth returns the number of segments queued by Grow but not yet added
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// Length is the number of segments including queued growth
func (s *Snake) Length() int {
	return len(s.Body) + s.pendingGrowth
}

// Move advances the head one cell in the current heading on grid g. The body
// shifts along behind it; a queued Grow keeps the tail where it was.
func (s *Snake) Move(g types.Grid) {
	s.Head = g.Step(s.Head, s.Heading)

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		s.Body = append(s.Body, s.Heading)
	}
	if len(s.Body) == 0 {
		return
	}

	copy(s.Body[1:], s.Body)
	s.Body[0] = s.Heading
}

// Cells reconstructs the occupied body cells, nearest to the head first.
// The head itself is not included.
func (s *Snake) Cells(g types.Grid) []types.Point {
	cells := make([]types.Point, 0, len(s.Body))
	cursor := s.Head
	for _, dir := range s.Body {
		cursor = g.StepBack(cursor, dir)
		cells = append(cells, cursor)
	}
	return cells
}

// Reset puts the snake back on start with no body. The heading is kept.
func (s *Snake) Reset(start types.Point) {
	s.Head = start
	s.Body = s.Body[:0]
	s.pendingGrowth = 0
}
