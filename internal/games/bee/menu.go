package bee

import (
	"fmt"
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/ecs"
	"github.com/vovakirdan/tui-bee/internal/scene"
)

// MenuAction is what a menu button does when activated.
type MenuAction int

const (
	MenuPlay MenuAction = iota
	MenuScores
	MenuQuit
)

// String returns the button caption.
func (a MenuAction) String() string {
	switch a {
	case MenuPlay:
		return "Play"
	case MenuScores:
		return "Scores"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

// Menu layout in cells.
const (
	buttonWidth   = 14
	buttonHeight  = 3
	buttonSpacing = 4
)

var titleBanner = []string{
	"█▀▀▄ █▀▀▀ █▀▀▀",
	"█▄▄▀ █▄▄  █▄▄ ",
	"█  █ █    █   ",
	"█▄▄▀ █▄▄▄ █▄▄▄",
}

var (
	buttonQuery = donburi.NewQuery(filter.Contains(Button))
	labelQuery  = donburi.NewQuery(filter.Contains(Label, Position))
)

// enterMenu spawns the title, the best score and the buttons.
func (g *Game) enterMenu() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	actions := []MenuAction{MenuPlay, MenuScores, MenuQuit}

	firstButton := h/2 - 2
	titleY := core.Max(0, firstButton-len(titleBanner)-3)

	for i, line := range titleBanner {
		g.spawnLabel(line, titleY+i, core.ColorBrightYellow)
	}
	g.spawnLabel(fmt.Sprintf("Best: %d", g.runtime.HighScore), firstButton-2, core.ColorWhite)

	x := (w - buttonWidth) / 2
	for i, a := range actions {
		e := ecs.Spawn(g.world, Button, MenuScene)
		Button.SetValue(e, ButtonData{
			Text:   a.String(),
			Action: a,
			Index:  i,
			Bounds: core.NewRect(x, firstButton+i*buttonSpacing, buttonWidth, buttonHeight),
		})
	}

	e := ecs.Spawn(g.world, Menu, MenuScene)
	Menu.SetValue(e, MenuData{Buttons: len(actions)})

	g.emit(core.EventSceneEntered, 0)
}

func (g *Game) spawnLabel(text string, y int, color core.Color) {
	x := (g.runtime.ScreenW - len([]rune(text))) / 2
	e := ecs.Spawn(g.world, Label, Position, MenuScene)
	Label.SetValue(e, LabelData{Text: text, Color: color})
	Position.SetValue(e, PositionData{X: float64(x), Y: float64(y)})
}

// menuInput moves the cursor and activates buttons by key or click.
func (g *Game) menuInput() {
	m, ok := ecs.Single[MenuData](g.world, Menu)
	if !ok || m.Buttons == 0 {
		return
	}
	in := g.input

	if in.Has(core.ActionUp) {
		m.Cursor = (m.Cursor - 1 + m.Buttons) % m.Buttons
	}
	if in.Has(core.ActionDown) {
		m.Cursor = (m.Cursor + 1) % m.Buttons
	}

	if in.Click != nil {
		if b, ok := g.buttonAt(*in.Click); ok {
			m.Cursor = b.Index
			g.activate(b.Action)
			return
		}
	}

	if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
		if b, ok := g.buttonByIndex(m.Cursor); ok {
			g.activate(b.Action)
		}
	}
}

func (g *Game) activate(a MenuAction) {
	switch a {
	case MenuPlay:
		g.scenes.Set(scene.Game)
	case MenuScores:
		g.emit(core.EventOpenScores, 0)
	case MenuQuit:
		g.emit(core.EventQuit, 0)
	}
}

func (g *Game) buttonAt(p core.Point) (ButtonData, bool) {
	var found ButtonData
	ok := false
	buttonQuery.Each(g.world, func(e *donburi.Entry) {
		b := Button.Get(e)
		if !ok && b.Bounds.ContainsPoint(p) {
			found, ok = *b, true
		}
	})
	return found, ok
}

func (g *Game) buttonByIndex(i int) (ButtonData, bool) {
	var found ButtonData
	ok := false
	buttonQuery.Each(g.world, func(e *donburi.Entry) {
		b := Button.Get(e)
		if b.Index == i {
			found, ok = *b, true
		}
	})
	return found, ok
}

// Buttons returns the menu buttons ordered by index. Frontends use the
// bounds to map pointer positions.
func (g *Game) Buttons() []ButtonData {
	var out []ButtonData
	buttonQuery.Each(g.world, func(e *donburi.Entry) {
		out = append(out, *Button.Get(e))
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}
