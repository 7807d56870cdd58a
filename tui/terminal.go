// Package tui is the terminal frontend. Each grid cell takes two columns so
// the field keeps a roughly square aspect.
package tui

import (
	"fmt"

	"wrapsnake/game"
	"wrapsnake/game/entity"
	"wrapsnake/game/types"
	"wrapsnake/render"

	"github.com/gdamore/tcell/v2"
)

const cellWidth = 2

var headGlyphs = map[types.Direction]rune{
	types.Up:    '▲',
	types.Down:  '▼',
	types.Left:  '◀',
	types.Right: '▶',
}

// Terminal implements loop.Frontend on top of a tcell screen
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	intents []game.Intent
	closed  bool
	err     error
}

// NewTerminal initializes screen and starts reading its events
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents runs on its own goroutine; the loop drains t.events
func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

func (t *Terminal) Intents() []game.Intent {
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			out := t.intents
			t.intents = nil
			return out
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			t.closed = true
			return
		}
		if in := DecodeKey(ev); in != game.IntentNone {
			t.intents = append(t.intents, in)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventError:
		t.err = ev
		t.closed = true
	}
}

// DecodeKey maps arrows, WASD and space onto intents
func DecodeKey(ev *tcell.EventKey) game.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.IntentUp
	case tcell.KeyDown:
		return game.IntentDown
	case tcell.KeyLeft:
		return game.IntentLeft
	case tcell.KeyRight:
		return game.IntentRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return game.IntentPause
		case 'w', 'W':
			return game.IntentUp
		case 's', 'S':
			return game.IntentDown
		case 'a', 'A':
			return game.IntentLeft
		case 'd', 'D':
			return game.IntentRight
		}
	}
	return game.IntentNone
}

// IsQuit reports Esc, Ctrl-C and q
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func style(fg, bg types.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
}

func color(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Terminal) Draw(snap game.Snapshot) {
	t.screen.Clear()

	bg := style(snap.Background, snap.Background)
	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			t.put(types.Point{X: x, Y: y}, ' ', bg)
		}
	}

	for _, f := range snap.Food {
		if f.State == entity.Fresh {
			t.put(f.Pos, '●', style(f.Color, snap.Background))
		}
	}

	body := style(snap.SnakeColor, snap.Background)
	for _, cell := range snap.BodyCells {
		t.put(cell, '█', body)
	}
	t.put(snap.Head, headGlyphs[snap.Heading], style(snap.Background, snap.SnakeColor))

	status := render.StatusLine(snap)
	for i, r := range status {
		t.screen.SetContent(i, snap.Grid.Height, r, nil, tcell.StyleDefault)
	}

	t.screen.Show()
}

// put fills both columns of a grid cell; glyphs sit in the left column
func (t *Terminal) put(p types.Point, glyph rune, st tcell.Style) {
	fill := ' '
	if glyph == '█' {
		fill = glyph
	}
	t.screen.SetContent(p.X*cellWidth, p.Y, glyph, nil, st)
	t.screen.SetContent(p.X*cellWidth+1, p.Y, fill, nil, st)
}

func (t *Terminal) Closed() bool {
	return t.closed
}

func (t *Terminal) Err() error {
	return t.err
}

// Close restores the terminal
func (t *Terminal) Close() {
	close(t.quit)
	t.screen.Fini()
}
