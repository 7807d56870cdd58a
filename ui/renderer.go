package ui

import (
	"wrapsnake/game"
	"wrapsnake/game/types"
	"wrapsnake/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	targetFPS      = 60
	sectorSegments = 16
	fontSize       = 20
	textPadding    = 6
)

// Window implements loop.Frontend with a raylib window sized to the field
type Window struct {
	width  int32
	height int32
}

// OpenWindow creates the window. Esc closes it.
func OpenWindow(grid types.Grid, squareSize int, title string) *Window {
	w := &Window{
		width:  int32(grid.Width * squareSize),
		height: int32(grid.Height * squareSize),
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(w.width, w.height, title)
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(targetFPS)
	return w
}

func (w *Window) Intents() []game.Intent {
	var out []game.Intent
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if in := DecodeKey(key); in != game.IntentNone {
			out = append(out, in)
		}
	}
	return out
}

// DecodeKey maps arrows, WASD and space onto intents
func DecodeKey(key int32) game.Intent {
	switch key {
	case rl.KeySpace:
		return game.IntentPause
	case rl.KeyW, rl.KeyUp:
		return game.IntentUp
	case rl.KeyS, rl.KeyDown:
		return game.IntentDown
	case rl.KeyA, rl.KeyLeft:
		return game.IntentLeft
	case rl.KeyD, rl.KeyRight:
		return game.IntentRight
	default:
		return game.IntentNone
	}
}

func toColor(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (w *Window) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(snap.Background))

	for _, p := range render.Build(snap) {
		color := toColor(p.Color)
		switch p.Shape {
		case render.ShapeRect:
			rl.DrawRectangle(int32(p.X), int32(p.Y), int32(p.W), int32(p.H), color)
		case render.ShapeCircle:
			rl.DrawCircle(int32(p.X), int32(p.Y), float32(p.Radius), color)
		case render.ShapeSector:
			rl.DrawCircleSector(
				rl.Vector2{X: float32(p.X), Y: float32(p.Y)},
				float32(p.Radius),
				float32(p.Start*rl.Rad2deg),
				float32(p.End*rl.Rad2deg),
				sectorSegments,
				color)
		}
	}

	rl.DrawText(render.StatusLine(snap), textPadding, textPadding, fontSize, rl.Black)
	rl.EndDrawing()
}

func (w *Window) Closed() bool {
	return rl.WindowShouldClose()
}

// Err is always nil; raylib aborts the process on fatal window errors
func (w *Window) Err() error {
	return nil
}

func (w *Window) Close() {
	rl.CloseWindow()
}
