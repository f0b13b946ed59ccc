package window

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

type stubGame struct {
	resets int
	high   int
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.resets++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(dst *core.Screen)              { dst.Clear() }
func (g *stubGame) State() core.GameState                { return core.GameState{Scene: "menu"} }
func (g *stubGame) SetHighScore(score int)               { g.high = score }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key   ebiten.Key
		scene string
		want  core.Action
	}{
		{ebiten.KeyUp, "menu", core.ActionUp},
		{ebiten.KeyUp, "game", core.ActionJump},
		{ebiten.KeyW, "game", core.ActionJump},
		{ebiten.KeySpace, "menu", core.ActionJump},
		{ebiten.KeyDown, "menu", core.ActionDown},
		{ebiten.KeyEnter, "menu", core.ActionConfirm},
		{ebiten.KeyEscape, "game", core.ActionBack},
		{ebiten.KeyP, "game", core.ActionPause},
		{ebiten.KeyR, "game", core.ActionRestart},
		{ebiten.KeyX, "game", core.ActionNone},
	}
	for _, tt := range tests {
		if got := actionFor(tt.key, tt.scene); got != tt.want {
			t.Errorf("actionFor(%v, %q) = %v, want %v", tt.key, tt.scene, got, tt.want)
		}
	}
}

func TestGlyphRune(t *testing.T) {
	for in, want := range map[rune]rune{'a': 'a', '●': 'o', '┌': '+', 'é': '?', '<': '<'} {
		if got := glyphRune(in); got != want {
			t.Errorf("glyphRune(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCellColor(t *testing.T) {
	if c := cellColor(core.ColorRed, "game"); c.R != 0xcd || c.A != 0xff {
		t.Errorf("red = %v", c)
	}
	if cellColor(core.ColorDefault, "game") == cellColor(core.ColorDefault, "menu") {
		t.Error("default text color should follow the scene background")
	}
}

func TestNewResetsAndLoadsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("stub", "ana", 8); err != nil {
		t.Fatal(err)
	}
	g := &stubGame{}
	w := New(g, core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60}, Options{Store: store})

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if w.config.HighScore != 8 {
		t.Errorf("HighScore = %d, want 8", w.config.HighScore)
	}
	if lw, lh := w.Layout(0, 0); lw != 30*CellW || lh != 10*CellH {
		t.Errorf("Layout = %dx%d", lw, lh)
	}
}

func TestSaveScoreOncePerRun(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	w := New(g, core.RuntimeConfig{ScreenW: 30, ScreenH: 10}, Options{Store: store, Username: "bo"})

	w.saveScore(11)
	w.saveScore(11)

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Player != "bo" {
		t.Fatalf("scores = %+v", scores)
	}
	if g.high != 11 {
		t.Errorf("high = %d, want 11", g.high)
	}

	lines := strings.Join(w.scoreLines(), "\n")
	if !strings.Contains(lines, "bo") || !strings.Contains(lines, "11") {
		t.Errorf("scoreboard lines:\n%s", lines)
	}
}

func TestScoreLinesWithoutStore(t *testing.T) {
	w := New(&stubGame{}, core.RuntimeConfig{ScreenW: 30, ScreenH: 10}, Options{})
	if lines := w.scoreLines(); lines[0] != "HIGH SCORES" || !strings.Contains(strings.Join(lines, " "), "No score database") {
		t.Errorf("lines = %q", lines)
	}
}
