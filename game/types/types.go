package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Color is a cosmetic RGBA color, layout compatible with image/color.RGBA
type Color struct {
	R, G, B, A uint8
}

// Game constants
const (
	StartX = 10 // Column the head is placed on at startup and after a reset
	StartY = 10 // Row the head is placed on at startup and after a reset

	MaxLevel = ^uint8(0)
)

var (
	SnakeColor      = Color{R: 255, G: 0, B: 0, A: 255}
	FoodColor       = Color{R: 43, G: 26, B: 171, A: 255}
	BackgroundColor = Color{R: 0, G: 230, B: 77, A: 255}
)

// StartPoint returns the fixed cell the snake spawns on
func StartPoint() Point {
	return Point{X: StartX, Y: StartY}
}

// Contains reports whether p lies inside the grid bounds
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back onto the torus
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Step moves p one cell in direction d, wrapping at the edges
func (g Grid) Step(p Point, d Direction) Point {
	delta := d.Delta()
	return g.Wrap(Point{X: p.X + delta.X, Y: p.Y + delta.Y})
}

// StepBack moves p one cell against direction d, wrapping at the edges
func (g Grid) StepBack(p Point, d Direction) Point {
	return g.Step(p, d.Opposite())
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}
