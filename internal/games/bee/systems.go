package bee

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/ecs"
)

var (
	beeQuery    = donburi.NewQuery(filter.Contains(Bee, Position))
	pillarQuery = donburi.NewQuery(filter.Contains(Pillar, Position))
	cloudQuery  = donburi.NewQuery(filter.Contains(Cloud, Position))
	animQuery   = donburi.NewQuery(filter.Contains(Anim))
)

// player returns the bee entry, if the Game scene has spawned one.
func (g *Game) player() (*donburi.Entry, bool) {
	return beeQuery.First(g.world)
}

// jumpInput applies the jump impulse and gravity to the bee's velocity.
func (g *Game) jumpInput() {
	e, ok := g.player()
	if !ok {
		return
	}
	b := Bee.Get(e)
	phys := g.cfg.Physics

	if g.input.Has(core.ActionJump) {
		b.Vel = phys.JumpImpulse
		g.emit(core.EventJump, 0)
	}

	b.Vel += phys.Gravity * g.dt
	b.Vel = core.ClampF(b.Vel, -phys.MaxRiseSpeed, phys.MaxFallSpeed)
}

// beeFly integrates vertical motion and drifts the bee toward its aim column.
func (g *Game) beeFly() {
	e, ok := g.player()
	if !ok {
		return
	}
	b := Bee.Get(e)
	pos := Position.Get(e)

	pos.Y += b.Vel * g.dt

	b.Wander.Tick(g.step)
	if b.Wander.JustFinished() {
		b.AimX = b.HomeX + (g.rng.Float64()-0.5)*b.WanderWidth
	}
	pos.X = core.Lerp(pos.X, b.AimX, g.cfg.Bee.WanderRate*g.dt)
}

// pillarSpawner ticks the shared spawn timer and spawns a pair when it fires.
func (g *Game) pillarSpawner() {
	shared, ok := ecs.Single[PillarSharedData](g.world, PillarShared)
	if !ok {
		return
	}
	shared.Spawn.Tick(g.step)
	if !shared.Spawn.JustFinished() {
		return
	}

	shared.Speed = g.difficulty.Speed(g.cfg.Pillars.Speed, g.score, g.tickCount)
	shared.Spawn.SetDuration(g.difficulty.Interval(g.spawnInterval(), g.score, g.tickCount))
	g.spawnPillar(shared)
}

// pillarMove scrolls every pillar and despawns those past the exit edge.
func (g *Game) pillarMove() {
	shared, ok := ecs.Single[PillarSharedData](g.world, PillarShared)
	if !ok {
		return
	}

	var gone []donburi.Entity
	pillarQuery.Each(g.world, func(e *donburi.Entry) {
		pos := Position.Get(e)
		pos.X += shared.Speed * shared.Direction * g.dt
		if g.pastExit(shared, pos.X) {
			gone = append(gone, e.Entity())
		}
	})
	for _, e := range gone {
		g.world.Remove(e)
	}
}

func (g *Game) pastExit(shared *PillarSharedData, x float64) bool {
	if shared.Direction > 0 {
		return x > shared.ExitX
	}
	return x < shared.ExitX
}

// scoring awards a point for every pillar whose trailing edge has cleared
// the bee. Each pillar scores once.
func (g *Game) scoring() {
	e, ok := g.player()
	if !ok {
		return
	}
	shared, ok := ecs.Single[PillarSharedData](g.world, PillarShared)
	if !ok {
		return
	}
	bee := g.beeRect(e)
	width := float64(g.cfg.Pillars.Width)

	pillarQuery.Each(g.world, func(pe *donburi.Entry) {
		p := Pillar.Get(pe)
		if p.Passed {
			return
		}
		x := Position.Get(pe).X
		var cleared bool
		if shared.Direction > 0 {
			cleared = x >= float64(bee.Right())
		} else {
			cleared = x+width <= float64(bee.X)
		}
		if !cleared {
			return
		}
		p.Passed = true
		g.score++
		g.emit(core.EventScored, g.score)
	})
}

// collision ends the run on a pillar hit or a ground touch and keeps the
// bee below the ceiling.
func (g *Game) collision() {
	e, ok := g.player()
	if !ok {
		return
	}
	pos := Position.Get(e)
	b := Bee.Get(e)
	h := float64(g.cfg.Bee.Height)

	if pos.Y < 0 {
		pos.Y = 0
		if b.Vel < 0 {
			b.Vel = 0
		}
	}

	crashed := false
	if pos.Y+h >= float64(g.groundY) {
		pos.Y = float64(g.groundY) - h
		crashed = true
	}

	bee := g.beeRect(e)
	pillarQuery.Each(g.world, func(pe *donburi.Entry) {
		if crashed {
			return
		}
		top, bottom := g.pillarRects(pe)
		if bee.Intersects(top) || bee.Intersects(bottom) {
			crashed = true
		}
	})

	if crashed && !g.gameOver {
		g.gameOver = true
		g.emit(core.EventCrashed, g.score)
	}
}

// animate advances sprite frames.
func (g *Game) animate() {
	animQuery.Each(g.world, func(e *donburi.Entry) {
		a := Anim.Get(e)
		a.Timer.Tick(g.step)
		if a.Timer.JustFinished() && a.Frames > 0 {
			a.Frame = (a.Frame + a.Timer.TimesFinished()) % a.Frames
		}
	})
}

// cloudsMove drifts clouds left and wraps them to the right edge.
// It runs in every scene, paused or not.
func (g *Game) cloudsMove() {
	cloudQuery.Each(g.world, func(e *donburi.Entry) {
		c := Cloud.Get(e)
		pos := Position.Get(e)
		pos.X -= c.Vel * g.dt
		if pos.X < c.MinX {
			pos.X = c.MaxX
		}
	})
}

func (g *Game) beeRect(e *donburi.Entry) core.Rect {
	pos := Position.Get(e)
	return core.NewRect(
		int(math.Floor(pos.X)),
		int(math.Floor(pos.Y)),
		g.cfg.Bee.Width,
		g.cfg.Bee.Height,
	)
}
