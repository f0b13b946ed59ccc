package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

func boardFor(store *storage.Store, gameID, player string) ScoreboardModel {
	info := registry.GameInfo{ID: gameID, Title: "Board " + gameID}
	return NewScoreboardModel(store, info, player, nil, 80, 24)
}

func TestScoreboardShowsPlayersAndStats(t *testing.T) {
	store := openStore(t)
	for _, s := range []struct {
		player string
		score  int
	}{{"ana", 12}, {"bo", 30}, {"ana", 4}} {
		if _, err := store.SaveScore("zz-board", s.player, s.score); err != nil {
			t.Fatal(err)
		}
	}

	m := boardFor(store, "zz-board", "")

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][1] != "bo" || rows[0][2] != "30" {
		t.Errorf("first row = %v", rows[0])
	}

	stats := m.statsLine()
	for _, want := range []string{"Runs 3", "Players 2", "Best 30"} {
		if !strings.Contains(stats, want) {
			t.Errorf("stats line %q missing %q", stats, want)
		}
	}
	if strings.Contains(stats, "Your best") {
		t.Errorf("anonymous board should not show a personal best: %q", stats)
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Board zz-board") {
		t.Errorf("title missing from view:\n%s", m.View())
	}
}

func TestScoreboardShowsPlayerBest(t *testing.T) {
	store := openStore(t)
	for _, s := range []struct {
		player string
		score  int
	}{{"ana", 12}, {"bo", 30}, {"ana", 4}} {
		if _, err := store.SaveScore("zz-best", s.player, s.score); err != nil {
			t.Fatal(err)
		}
	}

	if stats := boardFor(store, "zz-best", "ana").statsLine(); !strings.Contains(stats, "Your best 12") {
		t.Errorf("stats line for ana = %q", stats)
	}
	if stats := boardFor(store, "zz-best", "cy").statsLine(); strings.Contains(stats, "Your best") {
		t.Errorf("player without runs should not show a best: %q", stats)
	}
}

func TestScoreboardUsesSessionRenderer(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	m := NewScoreboardModel(nil, registry.GameInfo{ID: "zz-r", Title: "R"}, "", r, 80, 24)
	if m.renderer != r {
		t.Fatal("scoreboard should keep the renderer it was given")
	}
	if out := m.View(); strings.Contains(out, "\x1b[") {
		t.Errorf("plain renderer produced escape codes:\n%q", out)
	}

	if NewScoreboardModel(nil, registry.GameInfo{ID: "zz-r"}, "", nil, 80, 24).renderer == nil {
		t.Error("nil renderer should fall back to the default")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := boardFor(nil, "zz-empty", "ana")
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("empty view:\n%s", m.View())
	}
	if m.statsLine() != "" {
		t.Errorf("stats line = %q, want empty", m.statsLine())
	}
}

func TestScoreboardBack(t *testing.T) {
	m := boardFor(nil, "zz-back", "")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd != nil {
		t.Error("embedded scoreboard should go back without quitting")
	}

	m = boardFor(nil, "zz-back", "")
	m.standalone = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("standalone scoreboard should quit on back")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}
