package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/registry"
)

// SessionModel is the top-level model for one player: it runs the game
// and swaps in the scoreboard when the menu asks for it.
type SessionModel struct {
	game     Model
	board    ScoreboardModel
	inBoard  bool
	quitting bool
	width    int
	height   int
}

// NewSessionModel creates a session around a game.
func NewSessionModel(game registry.Game, cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		game:   NewModel(game, cfg, opts),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
		updated, _ := m.game.Update(wsm)
		m.game = updated.(Model)
		if !m.inBoard {
			return m, nil
		}
	}

	if m.inBoard {
		return m.updateBoard(msg)
	}

	updated, cmd := m.game.Update(msg)
	m.game = updated.(Model)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, cmd
	}
	if m.game.WantsScores() {
		m.inBoard = true
		info := registry.GameInfo{ID: m.game.game.ID(), Title: m.game.game.Title()}
		m.board = NewScoreboardModel(m.game.opts.Store, info, m.game.opts.Username, m.game.opts.Renderer, m.width, m.height)
		return m, m.board.Init()
	}
	return m, cmd
}

func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	updated, cmd := m.board.Update(msg)
	m.board = updated.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		m.game.opts.Player.StopAmbient()
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.inBoard = false
		var resume tea.Cmd
		m.game, resume = m.game.Resume()
		return m, resume
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inBoard {
		return m.board.View()
	}
	return m.game.View()
}

// InBoard reports whether the scoreboard is showing.
func (m SessionModel) InBoard() bool {
	return m.inBoard
}
