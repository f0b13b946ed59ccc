package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bee/internal/core"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("scripted", "ana", 12); err != nil {
		t.Fatal(err)
	}

	g := &scriptedGame{
		state: core.GameState{Scene: sceneMenu},
		queue: [][]core.Event{{{Kind: core.EventOpenScores}}},
	}
	m := NewSessionModel(g, testRuntime(), Options{Store: store, Username: "ana"})
	m.Init()

	m, _ = sessionUpdate(t, m, TickMsg{})
	if !m.InBoard() {
		t.Fatal("open scores event should show the scoreboard")
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Scripted", "ana", "Your best 12"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard view missing %q:\n%s", want, view)
		}
	}

	m, _ = sessionUpdate(t, m, TickMsg{})
	if len(g.inputs) != 1 {
		t.Error("ticks must not reach the game while the scoreboard is up")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InBoard() {
		t.Fatal("esc should close the scoreboard")
	}
	if cmd == nil {
		t.Error("closing the scoreboard should restart ticks")
	}

	sessionUpdate(t, m, TickMsg{})
	if len(g.inputs) != 2 {
		t.Errorf("game did not resume (%d steps)", len(g.inputs))
	}
}

func TestSessionQuitFromScoreboard(t *testing.T) {
	g := &scriptedGame{queue: [][]core.Event{{{Kind: core.EventOpenScores}}}}
	m := NewSessionModel(g, testRuntime(), Options{})
	m.Init()
	m, _ = sessionUpdate(t, m, TickMsg{})

	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Scene: sceneMenu}}
	m := NewSessionModel(g, testRuntime(), Options{})
	m.Init()

	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 50, Height: 16})
	if m.width != 50 || m.height != 16 {
		t.Errorf("session size = %dx%d", m.width, m.height)
	}
	if m.game.screen.Width() != 50 {
		t.Errorf("game screen width = %d", m.game.screen.Width())
	}
}
