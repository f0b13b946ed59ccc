package bee

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-bee/internal/core"
)

// PositionData is the top-left corner of a sprite in cell space.
type PositionData struct {
	X, Y float64
}

// BeeData is the player's flight state.
type BeeData struct {
	Vel         float64 // vertical velocity, cells/s, positive is down
	AimX        float64 // column the bee drifts toward
	HomeX       float64 // center of the wander range
	WanderWidth float64
	Wander      core.Timer
}

// AnimData cycles sprite frames on a timer.
type AnimData struct {
	Timer  core.Timer
	Frame  int
	Frames int
}

// PillarData is one obstacle pair. Offset is the row of the gap center.
type PillarData struct {
	Offset float64
	GapH   int
	Passed bool
}

// CloudData is a drifting background cloud.
type CloudData struct {
	Vel        float64 // cells/s to the left
	MinX, MaxX float64 // wrap bounds
	Shape      int
}

// LabelData is a line of UI text.
type LabelData struct {
	Text  string
	Color core.Color
}

// ButtonData is a clickable menu entry.
type ButtonData struct {
	Text   string
	Action MenuAction
	Index  int
	Bounds core.Rect
}

// MenuData is the menu cursor resource.
type MenuData struct {
	Cursor  int
	Buttons int
}

// PillarSharedData is the spawn resource for the Game scene.
type PillarSharedData struct {
	Speed     float64 // cells/s
	Direction float64 // +1 moves right, -1 moves left
	Spawn     core.Timer
	EnterX    float64 // spawn column
	ExitX     float64 // despawn threshold
}

var (
	Position     = donburi.NewComponentType[PositionData]()
	Bee          = donburi.NewComponentType[BeeData]()
	Anim         = donburi.NewComponentType[AnimData]()
	Pillar       = donburi.NewComponentType[PillarData]()
	Cloud        = donburi.NewComponentType[CloudData]()
	Label        = donburi.NewComponentType[LabelData]()
	Button       = donburi.NewComponentType[ButtonData]()
	Menu         = donburi.NewComponentType[MenuData]()
	PillarShared = donburi.NewComponentType[PillarSharedData]()

	// Scene markers. Entities spawned by a scene's enter hook carry its tag
	// and are removed by its exit hook.
	MenuScene = donburi.NewTag().SetName("MenuScene")
	GameScene = donburi.NewTag().SetName("GameScene")

	Background = donburi.NewTag().SetName("Background")
)
