package bee

import (
	"math"
	"time"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/ecs"
)

func (g *Game) spawnInterval() time.Duration {
	return time.Duration(g.cfg.Pillars.SpawnIntervalMS) * time.Millisecond
}

// spawnPillarShared creates the spawn resource for a run. The spawn timer
// starts already elapsed so the first pair appears on the first tick.
func (g *Game) spawnPillarShared() {
	pc := g.cfg.Pillars
	w := float64(g.runtime.ScreenW)
	width := float64(pc.Width)
	margin := float64(pc.EdgeMargin)

	shared := PillarSharedData{
		Speed:     g.difficulty.Speed(pc.Speed, 0, 0),
		Direction: 1,
		EnterX:    -width - margin,
		ExitX:     w + margin,
	}
	if pc.Direction == config.DirectionLeft {
		shared.Direction = -1
		shared.EnterX = w + margin
		shared.ExitX = -width - margin
	}

	shared.Spawn = core.NewTimer(g.difficulty.Interval(g.spawnInterval(), 0, 0), core.TimerRepeating)
	shared.Spawn.SetElapsed(time.Duration(math.MaxInt64))

	e := ecs.Spawn(g.world, PillarShared, GameScene)
	PillarShared.SetValue(e, shared)
}

// spawnPillar adds one pair at the entry edge with a random gap.
func (g *Game) spawnPillar(shared *PillarSharedData) {
	pc := g.cfg.Pillars

	gap := pc.MinGapSize
	if span := pc.MaxGapSize - pc.MinGapSize; span > 0 {
		gap += g.rng.Intn(span + 1)
	}
	gap = g.difficulty.GapSize(gap, g.score, g.tickCount)

	half := float64(gap) / 2
	center := float64(g.groundY)/2 + (g.rng.Float64()-0.5)*float64(pc.GapOffsetRange)
	center = core.ClampF(center, half+1, float64(g.groundY)-half-1)

	e := ecs.Spawn(g.world, Position, Pillar, GameScene)
	Position.SetValue(e, PositionData{X: shared.EnterX})
	Pillar.SetValue(e, PillarData{Offset: center, GapH: gap})
}

// pillarRects returns the top and bottom obstacle boxes of a pair. The top
// box hangs from row 0, the bottom one stands on the ground line.
func (g *Game) pillarRects(e *donburi.Entry) (top, bottom core.Rect) {
	p := Pillar.Get(e)
	x := int(math.Floor(Position.Get(e).X))
	gapTop := int(math.Round(p.Offset - float64(p.GapH)/2))
	gapBottom := gapTop + p.GapH

	top = core.NewRect(x, 0, g.cfg.Pillars.Width, gapTop)
	bottom = core.NewRect(x, gapBottom, g.cfg.Pillars.Width, g.groundY-gapBottom)
	return top, bottom
}

// spawnBee places the bee at its home column, mid-air, flapping.
func (g *Game) spawnBee() {
	bc := g.cfg.Bee
	home := float64(g.runtime.ScreenW)*bc.XRatio - float64(bc.Width)/2
	home = core.ClampF(home, 0, float64(g.runtime.ScreenW-bc.Width))

	wander := core.NewTimer(time.Duration(bc.WanderIntervalMS)*time.Millisecond, core.TimerRepeating)
	anim := core.NewTimer(time.Duration(bc.AnimFrameMS)*time.Millisecond, core.TimerRepeating)

	e := ecs.Spawn(g.world, Position, Bee, Anim, GameScene)
	Position.SetValue(e, PositionData{
		X: home,
		Y: float64(g.groundY-bc.Height) / 2,
	})
	Bee.SetValue(e, BeeData{
		AimX:        home,
		HomeX:       home,
		WanderWidth: bc.WanderWidth,
		Wander:      wander,
	})
	Anim.SetValue(e, AnimData{Timer: anim, Frames: len(beeFrames)})
}
