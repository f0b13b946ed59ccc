package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bee/internal/audio"
	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

// statusTicks is how long a status line (e.g. screenshot saved) stays up.
const statusTicks = 120

// Options carries the services a Model uses. Every field may be left zero.
type Options struct {
	Store     *storage.Store
	Player    audio.Player
	Logger    *log.Logger
	Username  string
	Clipboard bool               // copy screenshots to the system clipboard
	Renderer  *lipgloss.Renderer // per-session renderer for SSH
}

func (o Options) withDefaults() Options {
	if o.Player == nil {
		o.Player = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Username == "" {
		o.Username = storage.DefaultPlayer
	}
	return o
}

// highScorer is implemented by games that show the best score.
type highScorer interface {
	SetHighScore(score int)
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	opts          Options
	renderer      *Renderer
	keys          *KeyMapper
	inputFrame    core.InputFrame
	gameState     core.GameState
	quitting      bool
	wantScores    bool // the menu asked for the scoreboard; ticks stop until Resume
	scoreSaved    bool // score of the current run has been handled
	pendingResize bool // terminal changed size mid-run; reset once back on the menu
	status        string
	statusTTL     int
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	opts = opts.withDefaults()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(game.ID()); err == nil {
			cfg.HighScore = high
		} else {
			opts.Logger.Warn("could not read high score", "err", err)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		renderer:   NewRenderer(opts.Renderer),
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game, starts the ambient track and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Player.StartAmbient()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, m.gameState.Scene, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, m.gameState.Scene, &m.inputFrame) {
		m.quitting = true
		m.opts.Player.StopAmbient()
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size. A run in progress keeps its
// geometry; the game is rebuilt at the new size once it is back on the menu.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.Scene == sceneGame && !m.gameState.GameOver {
		m.pendingResize = true
		return m, nil
	}
	m.game.Reset(m.config)
	return m, nil
}

// handleTick runs one simulation step and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.wantScores {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	audio.Dispatch(m.opts.Player, result.Events)

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventSceneEntered:
			m.scoreSaved = false
		case core.EventCrashed:
			m.saveScore(e.Value)
		case core.EventOpenScores:
			m.wantScores = true
		case core.EventQuit:
			m.quitting = true
			m.opts.Player.StopAmbient()
			return m, tea.Quit
		}
	}

	if m.pendingResize && m.gameState.Scene == sceneMenu {
		m.pendingResize = false
		m.game.Reset(m.config)
	}
	if m.statusTTL > 0 {
		m.statusTTL--
	}
	if m.wantScores {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run once. Failures are logged and the game
// goes on.
func (m *Model) saveScore(score int) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if score <= 0 {
		return
	}

	if m.opts.Store != nil {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Username, score); err != nil {
			m.opts.Logger.Warn("could not save score", "err", err)
		}
	}
	m.opts.Logger.Info("run finished", "player", m.opts.Username, "score", score)

	if score > m.config.HighScore {
		m.config.HighScore = score
		if hs, ok := m.game.(highScorer); ok {
			hs.SetHighScore(score)
		}
	}
}

// Resume restarts the tick loop after the scoreboard closes.
func (m Model) Resume() (Model, tea.Cmd) {
	m.wantScores = false
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = statusTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.statusTTL > 0 && m.status != "" {
		m.screen.DrawTextColor(1, 0, " "+m.status+" ", core.ColorBrightWhite)
	}
	return m.renderer.Render(m.screen, m.gameState.Scene)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the player asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsScores reports whether the scoreboard should be shown.
func (m Model) WantsScores() bool {
	return m.wantScores
}

// Run plays the game in the current terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
