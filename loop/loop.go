// Package loop drives the engine from a single goroutine: decoded input,
// fixed rate updates and frame rendering, in that order every frame.
package loop

import (
	"context"
	"time"

	"wrapsnake/game"

	"go.uber.org/zap"
)

// maxCatchUp bounds how many updates one frame may run after a stall
const maxCatchUp = 5

// Frontend is a window or terminal the loop reads intents from and draws to
type Frontend interface {
	// Intents returns the decoded key presses since the last call, oldest first
	Intents() []game.Intent
	Draw(snap game.Snapshot)
	Closed() bool
	Err() error
}

// Engine is the part of *game.Game the loop needs
type Engine interface {
	Update()
	ReactOn(intent game.Intent)
	Snapshot() game.Snapshot
}

type Loop struct {
	frontend Frontend
	engine   Engine
	log      *zap.SugaredLogger

	tick          time.Duration
	frameInterval time.Duration
	now           func() time.Time

	updates uint64
	frames  uint64
}

type Option func(*Loop)

// WithFrameInterval makes the loop sleep between frames. Frontends that block
// on vsync leave it at zero.
func WithFrameInterval(d time.Duration) Option {
	return func(l *Loop) { l.frameInterval = d }
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(l *Loop) { l.log = log }
}

// New builds a loop that updates the engine ticksPerSecond times a second
func New(frontend Frontend, engine Engine, ticksPerSecond int, opts ...Option) *Loop {
	l := &Loop{
		frontend: frontend,
		engine:   engine,
		log:      zap.NewNop().Sugar(),
		tick:     time.Second / time.Duration(ticksPerSecond),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run blocks until the frontend closes or ctx is cancelled. It returns the
// frontend's error, if any.
func (l *Loop) Run(ctx context.Context) error {
	last := l.now()
	l.log.Infow("loop started", "tick", l.tick, "frameInterval", l.frameInterval)
	defer func() {
		l.log.Infow("loop stopped", "updates", l.updates, "frames", l.frames)
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if l.frontend.Closed() {
			return l.frontend.Err()
		}

		for _, in := range l.frontend.Intents() {
			l.engine.ReactOn(in)
		}

		now := l.now()
		steps := 0
		for now.Sub(last) >= l.tick {
			if steps == maxCatchUp {
				l.log.Warnw("update loop fell behind, skipping ticks", "behind", now.Sub(last))
				last = now
				break
			}
			l.engine.Update()
			l.updates++
			last = last.Add(l.tick)
			steps++
		}

		l.frontend.Draw(l.engine.Snapshot())
		l.frames++

		if l.frameInterval > 0 {
			timer := time.NewTimer(l.frameInterval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}
	}
}

// Updates returns how many engine updates have run
func (l *Loop) Updates() uint64 {
	return l.updates
}

// Frames returns how many frames have been drawn
func (l *Loop) Frames() uint64 {
	return l.frames
}
