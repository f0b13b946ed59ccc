// Package window runs a game in a desktop window with Ebitengine. Every
// screen cell becomes a CellW x CellH pixel tile, so games draw the same
// buffer they draw for the terminal.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-bee/internal/audio"
	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

// Tile size in pixels.
const (
	CellW = 10
	CellH = 16
)

// boardRows is how many scores the in-window scoreboard lists.
const boardRows = 10

// Options carries the services a window uses. Every field may be left zero.
type Options struct {
	Store    *storage.Store
	Player   audio.Player
	Logger   *log.Logger
	Username string
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	frame      core.InputFrame
	state      core.GameState
	glyphs     map[rune]*ebiten.Image
	board      []string // scoreboard lines while it is open
	scoreSaved bool
}

// New creates a window frontend and resets the game.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if opts.Player == nil {
		opts.Player = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Username == "" {
		opts.Username = storage.DefaultPlayer
	}
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(game.ID()); err == nil {
			cfg.HighScore = high
		}
	}

	game.Reset(cfg)
	return &Window{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		frame:  core.NewInputFrame(),
		state:  game.State(),
		glyphs: make(map[rune]*ebiten.Image),
	}
}

// Update runs one simulation tick. Ebitengine calls it TickRate times per
// second.
func (w *Window) Update() error {
	if w.board != nil {
		if anyInput() {
			w.board = nil
		}
		return nil
	}

	if quit := collectInput(w.state.Scene, &w.frame); quit {
		return ebiten.Termination
	}

	result := w.game.Step(w.frame)
	w.frame.Clear()
	w.state = result.State

	audio.Dispatch(w.opts.Player, result.Events)

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventSceneEntered:
			w.scoreSaved = false
		case core.EventCrashed:
			w.saveScore(e.Value)
		case core.EventOpenScores:
			w.board = w.scoreLines()
		case core.EventQuit:
			return ebiten.Termination
		}
	}
	return nil
}

func (w *Window) saveScore(score int) {
	if w.scoreSaved {
		return
	}
	w.scoreSaved = true
	if score <= 0 {
		return
	}

	if w.opts.Store != nil {
		if _, err := w.opts.Store.SaveScore(w.game.ID(), w.opts.Username, score); err != nil {
			w.opts.Logger.Warn("could not save score", "err", err)
		}
	}
	w.opts.Logger.Info("run finished", "player", w.opts.Username, "score", score)

	if score > w.config.HighScore {
		w.config.HighScore = score
		if hs, ok := w.game.(interface{ SetHighScore(int) }); ok {
			hs.SetHighScore(score)
		}
	}
}

// scoreLines builds the text of the scoreboard overlay.
func (w *Window) scoreLines() []string {
	lines := []string{"HIGH SCORES", ""}
	if w.opts.Store == nil {
		return append(lines, "No score database.", "", "Press any key")
	}

	scores, err := w.opts.Store.TopScores(w.game.ID(), boardRows)
	if err != nil {
		w.opts.Logger.Warn("could not load scores", "err", err)
	}
	if len(scores) == 0 {
		lines = append(lines, "No scores recorded yet.")
	}
	for i, s := range scores {
		lines = append(lines, fmt.Sprintf("%2d. %-12s %5d", i+1, s.Player, s.Score))
	}
	return append(lines, "", "Press any key")
}

// Layout keeps the logical screen at the game's cell grid; Ebitengine scales
// it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.config.ScreenW * CellW, w.config.ScreenH * CellH
}

// Run opens a window and plays until the player quits or closes it.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, cfg, opts)

	ebiten.SetWindowSize(cfg.ScreenW*CellW, cfg.ScreenH*CellH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	w.opts.Player.StartAmbient()
	defer w.opts.Player.StopAmbient()

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
