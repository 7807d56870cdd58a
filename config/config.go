// Package config holds the command line settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"wrapsnake/game/types"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width          int
	Height         int
	SquareSize     int
	TicksPerSecond int
	Seed           uint64 // 0 picks a time based seed
	Frontend       string
	LogFile        string
	Debug          bool
}

func Default() Config {
	return Config{
		Width:          20,
		Height:         20,
		SquareSize:     40,
		TicksPerSecond: 8,
		Frontend:       FrontendWindow,
		LogFile:        "snake.log",
	}
}

// Parse reads args (without the program name) over the defaults and validates the result
func Parse(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("wrapsnake", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells")
	fs.IntVar(&cfg.SquareSize, "square", cfg.SquareSize, "Cell size in pixels")
	fs.IntVar(&cfg.TicksPerSecond, "ups", cfg.TicksPerSecond, "Game updates per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for food placement (0 = time based)")
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "window or terminal")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file path")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= types.StartX || c.Height <= types.StartY:
		return fmt.Errorf("%w: grid %dx%d does not contain the start cell (%d,%d)",
			ErrInvalid, c.Width, c.Height, types.StartX, types.StartY)
	case c.SquareSize <= 0:
		return fmt.Errorf("%w: square size %d", ErrInvalid, c.SquareSize)
	case c.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ups %d", ErrInvalid, c.TicksPerSecond)
	case c.Frontend != FrontendWindow && c.Frontend != FrontendTerminal:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, c.Frontend)
	case c.LogFile == "":
		return fmt.Errorf("%w: empty log path", ErrInvalid)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

// TickInterval is the time between two game updates
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}
