package types

// Direction is one of the four cardinal headings
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order
var Directions = [...]Direction{Up, Down, Left, Right}

// Opposite returns the heading pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta converts a Direction into a one cell displacement; y grows downward
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// IsOpposite reports whether d and other point in exactly opposite ways
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// TurnLeft returns the heading after a quarter turn counter-clockwise
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// TurnRight returns the heading after a quarter turn clockwise
func (d Direction) TurnRight() Direction {
	return d.TurnLeft().Opposite()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
