// Package render turns a game snapshot into pixel space drawing primitives.
// It has no graphics dependency so frontends only need to rasterize.
package render

import (
	"fmt"
	"math"
	"strings"

	"wrapsnake/game"
	"wrapsnake/game/entity"
	"wrapsnake/game/types"
)

// Shape selects how a Primitive is drawn
type Shape int

const (
	ShapeRect   Shape = iota // X, Y, W, H
	ShapeCircle              // X, Y center, Radius
	ShapeSector              // X, Y center, Radius, Start..End radians, y grows downward
)

type Primitive struct {
	Shape  Shape
	X, Y   float64
	W, H   float64
	Radius float64
	Start  float64
	End    float64
	Color  types.Color
}

// Canonical radii, as fractions of the square size
const (
	FoodRadius = 0.5
	NoseRadius = 0.25
)

// Build lays out one frame: background, fresh food, body, then the head
func Build(snap game.Snapshot) []Primitive {
	sq := float64(snap.SquareSize)
	out := make([]Primitive, 0, 2+len(snap.Food)+len(snap.BodyCells)+2)

	out = append(out, Primitive{
		Shape: ShapeRect,
		W:     float64(snap.Grid.Width) * sq,
		H:     float64(snap.Grid.Height) * sq,
		Color: snap.Background,
	})

	for _, f := range snap.Food {
		if f.State != entity.Fresh {
			continue
		}
		cx, cy := center(f.Pos, sq)
		out = append(out, Primitive{
			Shape:  ShapeCircle,
			X:      cx,
			Y:      cy,
			Radius: FoodRadius * sq,
			Color:  f.Color,
		})
	}

	for i, cell := range snap.BodyCells {
		exit := snap.Body[i]
		entry := exit
		if i+1 < len(snap.Body) {
			entry = snap.Body[i+1]
		}
		if entry == exit {
			out = append(out, square(cell, sq, snap.SnakeColor))
			continue
		}
		out = append(out, corner(cell, sq, exit, entry.Opposite(), snap.SnakeColor))
	}

	out = append(out, square(snap.Head, sq, snap.SnakeColor))
	out = append(out, nose(snap.Head, snap.Heading, sq, snap.SnakeColor))
	return out
}

func center(p types.Point, sq float64) (float64, float64) {
	return float64(p.X)*sq + sq/2, float64(p.Y)*sq + sq/2
}

func square(p types.Point, sq float64, c types.Color) Primitive {
	return Primitive{
		Shape: ShapeRect,
		X:     float64(p.X) * sq,
		Y:     float64(p.Y) * sq,
		W:     sq,
		H:     sq,
		Color: c,
	}
}

// corner draws a turning segment as a quarter disc centered on the cell
// corner shared by the two sides the body passes through
func corner(p types.Point, sq float64, sideA, sideB types.Direction, c types.Color) Primitive {
	x, y := float64(p.X)*sq, float64(p.Y)*sq
	dx, dy := 1.0, 1.0

	for _, side := range [2]types.Direction{sideA, sideB} {
		switch side {
		case types.Right:
			x += sq
			dx = -1
		case types.Down:
			y += sq
			dy = -1
		}
	}

	var start float64
	switch {
	case dx > 0 && dy > 0:
		start = 0
	case dx < 0 && dy > 0:
		start = math.Pi / 2
	case dx < 0 && dy < 0:
		start = math.Pi
	default:
		start = 3 * math.Pi / 2
	}

	return Primitive{
		Shape:  ShapeSector,
		X:      x,
		Y:      y,
		Radius: sq,
		Start:  start,
		End:    start + math.Pi/2,
		Color:  c,
	}
}

// nose is the half disc capping the leading edge of the head
func nose(p types.Point, heading types.Direction, sq float64, c types.Color) Primitive {
	cx, cy := center(p, sq)
	var start, end float64

	switch heading {
	case types.Right:
		cx += sq / 2
		start, end = -math.Pi/2, math.Pi/2
	case types.Left:
		cx -= sq / 2
		start, end = math.Pi/2, 3*math.Pi/2
	case types.Up:
		cy -= sq / 2
		start, end = math.Pi, 2*math.Pi
	case types.Down:
		cy += sq / 2
		start, end = 0, math.Pi
	}

	return Primitive{
		Shape:  ShapeSector,
		X:      cx,
		Y:      cy,
		Radius: NoseRadius * sq,
		Start:  start,
		End:    end,
		Color:  c,
	}
}

// StatusLine is the one line readout shown by every frontend
func StatusLine(snap game.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "level %d  length %d  best %d  runs %d",
		snap.Level, snap.Length(), snap.BestLength, snap.RunsPlayed)
	if snap.Paused {
		b.WriteString("  [paused: space]")
	}
	return b.String()
}
