package game

import (
	"time"

	"wrapsnake/game/entity"
	"wrapsnake/game/manager"
	"wrapsnake/game/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Settings are fixed at startup
type Settings struct {
	Grid       types.Grid
	SquareSize int // Pixel size of one cell, rendering metadata only
}

// Game owns the snake, the food collection and everything the tick update
// mutates. It is not safe for concurrent use; one goroutine drives it.
type Game struct {
	Grid       types.Grid
	SquareSize int
	Background types.Color

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stats        *manager.StatsManager

	paused    bool
	level     uint8
	sessionID string
	startTime time.Time
	ticks     uint64

	log *zap.SugaredLogger
	now func() time.Time
}

// NewGame builds a paused game with the head on the start cell, level 0 and
// no food. The first Update spawns the level 1 wave.
func NewGame(settings Settings, rng *rand.Rand, log *zap.SugaredLogger) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	collisionMgr := manager.NewCollisionManager(settings.Grid)
	g := &Game{
		Grid:         settings.Grid,
		SquareSize:   settings.SquareSize,
		Background:   types.BackgroundColor,
		snake:        entity.NewSnake(types.StartPoint(), types.SnakeColor),
		foodMgr:      manager.NewFoodManager(settings.Grid, rng, collisionMgr),
		collisionMgr: collisionMgr,
		stats:        manager.NewStatsManager(),
		paused:       true,
		log:          log,
		now:          time.Now,
	}
	g.startSession()

	log.Infow("game created",
		"session", g.sessionID,
		"width", g.Grid.Width,
		"height", g.Grid.Height,
		"square", g.SquareSize)
	return g
}

// Update advances the simulation by one tick
func (g *Game) Update() {
	g.ticks++

	if g.foodMgr.Len() == 0 {
		g.AdvanceLevel()
	}

	g.foodMgr.PurgeEaten()

	if eaten := g.foodMgr.ConsumeAt(g.snake.Head); eaten > 0 {
		for i := 0; i < eaten; i++ {
			g.snake.Grow()
		}
		g.log.Debugw("food eaten",
			"session", g.sessionID,
			"x", g.snake.Head.X,
			"y", g.snake.Head.Y,
			"length", g.snake.Length())
	}

	if g.paused {
		return
	}

	g.Move()

	if g.collisionMgr.DetectsSelfCollision(g.snake) {
		g.GameOver()
	}
}

// AdvanceLevel clears the food, bumps the level and spawns level+1 items
func (g *Game) AdvanceLevel() {
	if g.level < types.MaxLevel {
		g.level++
	}
	g.foodMgr.SpawnWave(int(g.level) + 1)

	g.log.Debugw("level advanced",
		"session", g.sessionID,
		"level", g.level,
		"food", g.foodMgr.Len())
}

// Move steps the snake one cell in its heading, wrapping at the edges
func (g *Game) Move() {
	g.snake.Move(g.Grid)
}

// ReactOn applies a decoded input. Unknown intents are ignored.
func (g *Game) ReactOn(intent Intent) {
	if intent == IntentPause {
		g.paused = !g.paused
		g.log.Debugw("pause toggled", "session", g.sessionID, "paused", g.paused)
		return
	}

	dir, ok := intent.Direction()
	if !ok {
		return
	}
	if !g.snake.Turn(dir) {
		g.log.Debugw("reversal rejected", "heading", g.snake.Heading, "requested", dir)
	}
}

// GameOver records the finished run and puts the game back into a paused,
// fully stocked level 1 state
func (g *Game) GameOver() {
	rec := manager.RunRecord{
		SessionID: g.sessionID,
		StartTime: g.startTime,
		EndTime:   g.now(),
		Level:     g.level,
		Length:    g.snake.Length(),
	}
	g.stats.AddRun(rec)

	g.log.Infow("game over",
		"session", rec.SessionID,
		"level", rec.Level,
		"length", rec.Length,
		"duration", rec.Duration(),
		"ticks", g.ticks)

	g.paused = true
	g.snake.Reset(types.StartPoint())
	g.level = 0
	g.startSession()
	g.AdvanceLevel()
}

func (g *Game) startSession() {
	g.sessionID = uuid.New().String()
	g.startTime = g.now()
	g.ticks = 0
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFoodList() []*entity.Food {
	return g.foodMgr.GetFoodList()
}

func (g *Game) GetStats() *manager.StatsManager {
	return g.stats
}

func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) Level() uint8 {
	return g.level
}

func (g *Game) SessionID() string {
	return g.sessionID
}
