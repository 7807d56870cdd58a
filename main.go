package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wrapsnake/config"
	"wrapsnake/game"
	"wrapsnake/logging"
	"wrapsnake/loop"
	"wrapsnake/tui"
	"wrapsnake/ui"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// terminalFrame paces the terminal frontend, which has no vsync to block on
const terminalFrame = 16 * time.Millisecond

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return err
	}

	log, closeLog := logging.New(cfg.LogFile, cfg.Debug)
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Infow("starting",
		"grid", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"ups", cfg.TicksPerSecond,
		"frontend", cfg.Frontend,
		"seed", seed)

	g := game.NewGame(game.Settings{Grid: cfg.Grid(), SquareSize: cfg.SquareSize},
		rand.New(rand.NewSource(seed)), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []loop.Option{loop.WithLogger(log)}
	var frontend loop.Frontend
	switch cfg.Frontend {
	case config.FrontendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create terminal screen: %w", err)
		}
		term, err := tui.NewTerminal(screen)
		if err != nil {
			return err
		}
		defer term.Close()
		frontend = term
		opts = append(opts, loop.WithFrameInterval(terminalFrame))
	default:
		win := ui.OpenWindow(cfg.Grid(), cfg.SquareSize, "Snake")
		defer win.Close()
		frontend = win
	}

	l := loop.New(frontend, g, cfg.TicksPerSecond, opts...)
	if err := l.Run(ctx); err != nil {
		log.Errorw("frontend failed", "error", err)
		return fmt.Errorf("run: %w", err)
	}

	logSummary(log, g)
	return nil
}

func logSummary(log *zap.SugaredLogger, g *game.Game) {
	stats := g.GetStats()
	log.Infow("session summary",
		"runs", stats.RunsPlayed(),
		"bestLength", stats.BestLength(),
		"bestLevel", stats.BestLevel(),
		"averageLength", stats.AverageLength())
}
