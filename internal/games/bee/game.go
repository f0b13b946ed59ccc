// Package bee implements the bee arcade game: a bee flaps between pillar
// pairs that scroll across the screen, scoring a point for each pair passed.
// Entities live in a donburi world. A scene machine switches between the menu
// and the game, and scene-scoped entities are removed when their scene exits.
package bee

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/ecs"
	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/scene"
)

// Game implements the bee game logic.
type Game struct {
	world      donburi.World
	scenes     *scene.Machine
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.BeeConfig
	fixedCfg   bool // cfg came from NewWithConfig and is not reloaded
	difficulty *config.DifficultyManager

	dt      float64       // seconds per tick
	step    time.Duration // dt as a duration, for timers
	groundY int           // row of the ground line

	score     int
	gameOver  bool
	paused    bool
	tickCount int // ticks simulated in the current run

	input  core.InputFrame
	events []core.Event
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values keep the
// config's own difficulty settings.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// New creates a new bee game. Tuning is loaded on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with explicit tuning.
func NewWithConfig(cfg config.BeeConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bee"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bee"
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.BeeConfig {
	return g.cfg
}

// Reset builds a fresh world and starts on the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadBee(configPath)
		if err != nil {
			cfg = config.DefaultBeeConfig()
		}
		config.ApplyBeePreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.runtime = runtime
	g.dt = runtime.TickDuration()
	g.step = core.Seconds(g.dt)
	g.groundY = runtime.ScreenH - 1
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.events = nil
	g.input = core.NewInputFrame()

	g.world = donburi.NewWorld()
	g.scenes = scene.NewMachine()
	g.scenes.OnEnter(scene.Menu, g.enterMenu)
	g.scenes.OnExit(scene.Menu, func() { ecs.DespawnTagged(g.world, MenuScene) })
	g.scenes.OnEnter(scene.Game, g.enterGame)
	g.scenes.OnExit(scene.Game, func() { ecs.DespawnTagged(g.world, GameScene) })

	g.spawnClouds()
	g.scenes.Start(scene.Menu)
}

// Step advances the game by one tick. Scene changes requested during the
// tick are applied at its end.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.input = in

	switch g.scenes.Current() {
	case scene.Menu:
		g.menuInput()
	case scene.Game:
		g.gameStep()
	}
	g.cloudsMove()
	g.scenes.Apply()

	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) gameStep() {
	in := g.input

	if in.Has(core.ActionBack) {
		g.scenes.Set(scene.Menu)
		return
	}
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.scenes.Restart()
		}
		return
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.tickCount++

	g.jumpInput()
	g.beeFly()
	g.pillarSpawner()
	g.pillarMove()
	g.scoring()
	g.collision()
	g.animate()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var current string
	if g.scenes != nil {
		current = g.scenes.Current().String()
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Scene:    current,
	}
}

// SetHighScore updates the best score shown the next time the menu opens.
func (g *Game) SetHighScore(score int) {
	g.runtime.HighScore = score
}

// Scene returns the active scene.
func (g *Game) Scene() scene.State {
	return g.scenes.Current()
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Value: value,
		Scene: g.scenes.Current().String(),
	})
}

func (g *Game) enterGame() {
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	g.spawnBee()
	g.spawnPillarShared()
	g.emit(core.EventSceneEntered, 0)
}

func init() {
	registry.Register("bee", func() registry.Game {
		return New()
	})
}
