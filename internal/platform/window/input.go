package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-bee/internal/core"
)

const sceneGame = "game"

// binding maps keys to an action per scene.
type binding struct {
	keys []ebiten.Key
	menu core.Action
	game core.Action
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeySpace}, menu: core.ActionJump, game: core.ActionJump},
	{keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeyK}, menu: core.ActionUp, game: core.ActionJump},
	{keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS, ebiten.KeyJ}, menu: core.ActionDown, game: core.ActionDown},
	{keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, menu: core.ActionConfirm, game: core.ActionConfirm},
	{keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}, menu: core.ActionBack, game: core.ActionBack},
	{keys: []ebiten.Key{ebiten.KeyP}, menu: core.ActionPause, game: core.ActionPause},
	{keys: []ebiten.Key{ebiten.KeyR}, menu: core.ActionRestart, game: core.ActionRestart},
}

var quitKeys = []ebiten.Key{ebiten.KeyQ}

// actionFor returns the action a key triggers in a scene.
func actionFor(k ebiten.Key, scene string) core.Action {
	for _, b := range bindings {
		for _, bk := range b.keys {
			if bk != k {
				continue
			}
			if scene == sceneGame {
				return b.game
			}
			return b.menu
		}
	}
	return core.ActionNone
}

// collectInput records this tick's presses into frame and reports a quit
// request. Left clicks flap in the game and point at buttons elsewhere.
func collectInput(scene string, frame *core.InputFrame) bool {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		for _, q := range quitKeys {
			if k == q {
				return true
			}
		}
		if a := actionFor(k, scene); a != core.ActionNone {
			frame.Set(a)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if scene == sceneGame {
			frame.Set(core.ActionJump)
		} else {
			x, y := ebiten.CursorPosition()
			frame.SetClick(x/CellW, y/CellH)
		}
	}
	return false
}

// anyInput reports whether any key or mouse button went down this tick.
func anyInput() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
